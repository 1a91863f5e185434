package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadUserPalettesFromDir(t *testing.T) {
	base := t.TempDir()
	palettesDir := filepath.Join(base, "palettes")
	require.NoError(t, os.MkdirAll(palettesDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(palettesDir, "mine.yaml"), []byte(validPaletteYAML), 0o600))

	defs, fsys, err := LoadUserPalettesFromDir(base)
	require.NoError(t, err)
	require.NotNil(t, fsys)
	require.Len(t, defs, 1)
	require.Equal(t, "storm-gray", defs[0].ID)
}

func TestLoadUserPalettesFromDir_MissingBase(t *testing.T) {
	defs, fsys, err := LoadUserPalettesFromDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	require.Nil(t, fsys)
	require.Nil(t, defs)
}

func TestLoadUserPalettesFromDir_NoPalettesSubdir(t *testing.T) {
	defs, fsys, err := LoadUserPalettesFromDir(t.TempDir())
	require.NoError(t, err)
	require.Nil(t, fsys)
	require.Nil(t, defs)
}

func TestLoadUserPalettesFromDir_EmptyPath(t *testing.T) {
	defs, fsys, err := LoadUserPalettesFromDir("")
	require.NoError(t, err)
	require.Nil(t, fsys)
	require.Nil(t, defs)
}

func TestLoadUserPalettesFromDir_InvalidFilesLoggedNotFatal(t *testing.T) {
	base := t.TempDir()
	palettesDir := filepath.Join(base, "palettes")
	require.NoError(t, os.MkdirAll(palettesDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(palettesDir, "bad.yaml"), []byte("palettes: [broken"), 0o600))

	defs, fsys, err := LoadUserPalettesFromDir(base)
	require.NoError(t, err)
	require.NotNil(t, fsys)
	require.Nil(t, defs)
}
