package authority

import (
	"strconv"
	"strings"
)

// CompareVersions compares two semver strings (X.Y.Z format).
// Returns -1 if a < b, 0 if equal, 1 if a > b. Missing components
// count as zero, so "0.4" and "0.4.0" compare equal.
func CompareVersions(a, b string) int {
	partsA := strings.Split(strings.TrimPrefix(a, "v"), ".")
	partsB := strings.Split(strings.TrimPrefix(b, "v"), ".")

	for i := range 3 {
		numA, _ := strconv.Atoi(safeIndex(partsA, i))
		numB, _ := strconv.Atoi(safeIndex(partsB, i))
		if numA < numB {
			return -1
		}
		if numA > numB {
			return 1
		}
	}
	return 0
}

func safeIndex(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return "0"
}
