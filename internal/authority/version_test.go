package authority

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0.3.0", "0.4.0", -1},
		{"0.4.0", "0.3.0", 1},
		{"0.4.0", "0.4.0", 0},
		{"0.4", "0.4.0", 0},
		{"1.0.0", "0.9.9", 1},
		{"v0.4.0", "0.4.0", 0},
		{"0.4.1", "0.4.0", 1},
		{"0.10.0", "0.9.0", 1},
		{"", "0.0.0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, CompareVersions(tt.a, tt.b))
		})
	}
}
