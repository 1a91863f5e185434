package palette

import (
	"fmt"
	"io/fs"
	stdpath "path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/swatch/internal/palette/domain"
)

// PaletteFile is the root structure for a palette definition file.
type PaletteFile struct {
	Palettes []PaletteDef `yaml:"palettes"`
}

// PaletteDef defines a single palette in YAML. Colors maps slot names
// to "#RRGGBB" strings and must cover every slot exactly.
type PaletteDef struct {
	ID     string            `yaml:"id"`     // e.g., "storm-gray"
	Name   string            `yaml:"name"`   // Human-readable name; defaults to ID
	Colors map[string]string `yaml:"colors"` // slot name -> hex color
	Source string            `yaml:"-"`      // file the definition came from
}

// Slots converts the YAML color map into domain slot colors. Every
// slot must be present and no unknown slot names are allowed.
func (d PaletteDef) Slots() (map[palette.Slot]palette.Color, error) {
	out := make(map[palette.Slot]palette.Color, palette.NumSlots)
	for _, slot := range palette.SlotOrder {
		hex, ok := d.Colors[string(slot)]
		if !ok {
			return nil, fmt.Errorf("palette %s: missing color for slot %q", d.ID, slot)
		}
		c, err := palette.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: slot %q: %w", d.ID, slot, err)
		}
		out[slot] = c
	}
	if len(d.Colors) != palette.NumSlots {
		for name := range d.Colors {
			if _, ok := out[palette.Slot(name)]; !ok {
				return nil, fmt.Errorf("palette %s: unknown slot %q", d.ID, name)
			}
		}
	}
	return out, nil
}

// LoadPalettesFromYAML loads palette definitions from all .yaml/.yml
// files under root in the given filesystem. Files are parsed eagerly
// so a malformed file surfaces at load time, but an empty or missing
// directory is not an error; palette directories are optional.
func LoadPalettesFromYAML(fsys fs.FS, root string) ([]PaletteDef, error) {
	var all []PaletteDef

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isPaletteFile(d.Name()) {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		defs, err := parsePaletteDefs(content, path)
		if err != nil {
			return err
		}
		all = append(all, defs...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan palette definitions: %w", err)
	}

	return all, nil
}

// parsePaletteDefs parses one palette file's content and stamps each
// definition with its source path.
func parsePaletteDefs(content []byte, source string) ([]PaletteDef, error) {
	var file PaletteFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}

	defs := make([]PaletteDef, 0, len(file.Palettes))
	for _, def := range file.Palettes {
		if strings.TrimSpace(def.ID) == "" {
			return nil, fmt.Errorf("palette in %s: missing id", source)
		}
		def.Source = stdpath.Clean(source)
		defs = append(defs, def)
	}
	return defs, nil
}

// isPaletteFile reports whether a filename looks like a palette
// definition file.
func isPaletteFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
