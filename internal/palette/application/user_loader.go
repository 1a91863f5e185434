package palette

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zjrosen/swatch/internal/log"
)

// UserPaletteDir returns the path to user YAML palette definitions.
// Returns ~/.swatch/palettes. Returns empty string if home directory
// cannot be determined.
func UserPaletteDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swatch", "palettes")
}

// UserPaletteBaseDir returns the base directory for user palettes.
// Returns ~/.swatch (root for os.DirFS). Returns empty string if home
// directory cannot be determined.
func UserPaletteBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swatch")
}

// LoadUserPalettesFromDir loads YAML palette definitions from a user
// directory. baseDir should be the root directory (e.g., ~/.swatch/)
// that contains a "palettes" subdirectory. Returns nil, nil, nil if
// the directory doesn't exist (graceful fallback). Invalid files are
// logged and skipped rather than failing the whole load.
func LoadUserPalettesFromDir(baseDir string) ([]PaletteDef, fs.FS, error) {
	if baseDir == "" {
		return nil, nil, nil
	}

	info, err := os.Stat(baseDir)
	if err != nil {
		// Missing or unreadable base directory means no user palettes.
		return nil, nil, nil
	}
	if !info.IsDir() {
		return nil, nil, nil
	}

	palettesDir := filepath.Join(baseDir, "palettes")
	info, err = os.Stat(palettesDir)
	if err != nil {
		return nil, nil, nil
	}
	if !info.IsDir() {
		return nil, nil, nil
	}

	userFS := os.DirFS(baseDir)

	defs, err := LoadPalettesFromYAML(userFS, "palettes")
	if err != nil {
		// Log warning but don't fail - user may have partial/invalid files.
		log.Warn(log.CatLoader, "loading user palettes", "error", err.Error(), "dir", baseDir)
		return nil, userFS, nil
	}

	return defs, userFS, nil
}
