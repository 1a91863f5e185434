package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "palettes"), ExpandHome("~/palettes"))
	assert.Equal(t, "/absolute/path", ExpandHome("/absolute/path"))
	assert.Equal(t, "relative/path", ExpandHome("relative/path"))
	// A tilde that is not a home prefix stays untouched.
	assert.Equal(t, "~user/palettes", ExpandHome("~user/palettes"))
}

func TestResolvePaletteDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "palettes"), ResolvePaletteDir("~/palettes"))
	assert.Equal(t, filepath.Join(cwd, "palettes"), ResolvePaletteDir("palettes"))
	assert.Equal(t, "/srv/palettes", ResolvePaletteDir("/srv/palettes"))
	assert.Equal(t, cwd, ResolvePaletteDir(""))
}

func TestConfigDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".swatch"), ConfigDir())
	assert.Equal(t, filepath.Join(home, ".swatch", "swatch.yaml"), DefaultConfigPath())
}
