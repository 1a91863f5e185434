// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the swatch configuration directory (~/.swatch).
// Returns an empty string if the home directory cannot be determined.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swatch")
}

// DefaultConfigPath returns the default config file path (~/.swatch/swatch.yaml).
func DefaultConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "swatch.yaml")
}

// ResolvePaletteDir normalizes a palette directory path from user input.
//
// Input normalization:
//   - "~/palettes" -> "/home/user/palettes"
//   - "relative/palettes" -> "/cwd/relative/palettes"
//   - "" -> "."
//
// The directory does not need to exist; loaders treat missing
// directories as empty.
func ResolvePaletteDir(path string) string {
	if path == "" {
		path = "."
	}
	path = ExpandHome(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// ExpandHome replaces a leading ~ or ~/ with the user's home directory.
// Paths without a tilde prefix are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
