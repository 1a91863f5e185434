package testutil

import (
	"fmt"

	palette "github.com/zjrosen/swatch/internal/palette/domain"
)

// WithBuiltinTestData adds the nine well-known palettes at their
// canonical indices.
func (b *Builder) WithBuiltinTestData() *Builder {
	for _, builtin := range palette.Builtins() {
		var hex [palette.NumSlots]string
		for i, c := range builtin.Colors {
			hex[i] = c.Hex()
		}
		b.WithPalette(builtin.ID, Name(builtin.Name), Index(builtin.Index), Colors(hex))
	}
	return b
}

// WithRampTestData adds n synthetic palettes after whatever is already
// queued, each with a distinct base color so rows are tellable apart.
func (b *Builder) WithRampTestData(n int) *Builder {
	ramp := []string{
		"#D94F3D", "#3D8BD9", "#3DD96A", "#D9C83D",
		"#8B3DD9", "#D93DAE", "#3DD9C8", "#D9823D",
	}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("ramp-%02d", i+1)
		b.WithPalette(id, SlotColor(palette.SlotBase, ramp[i%len(ramp)]))
	}
	return b
}
