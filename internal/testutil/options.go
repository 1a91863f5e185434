package testutil

import palette "github.com/zjrosen/swatch/internal/palette/domain"

// paletteData holds all data for a palette row to be inserted.
type paletteData struct {
	idx    int
	id     string
	name   string
	colors [palette.NumSlots]string
}

// defaultPalette returns a paletteData with a neutral gray ramp. The
// index is assigned by the builder at insert time unless overridden.
func defaultPalette(id string) paletteData {
	return paletteData{
		id:   id,
		name: id, // Default name is the ID
		colors: [palette.NumSlots]string{
			"#101010", "#303030", "#505050", "#707070",
			"#404040", "#606060", "#909090", "#C0C0C0",
		},
	}
}

// PaletteOption configures a palette during builder setup.
type PaletteOption func(*paletteData)

// Name sets the palette display name.
func Name(name string) PaletteOption {
	return func(p *paletteData) { p.name = name }
}

// Index pins the palette to an explicit registry index.
func Index(idx int) PaletteOption {
	return func(p *paletteData) { p.idx = idx }
}

// Colors sets all eight colors in slot order.
func Colors(hex [palette.NumSlots]string) PaletteOption {
	return func(p *paletteData) { p.colors = hex }
}

// SlotColor overrides a single slot's color.
func SlotColor(slot palette.Slot, hex string) PaletteOption {
	return func(p *paletteData) {
		for i, known := range palette.SlotOrder {
			if slot == known {
				p.colors[i] = hex
				return
			}
		}
	}
}
