package browser

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	palette "github.com/zjrosen/swatch/internal/palette/domain"
)

// Strip renders a palette's eight colors as a horizontal band of
// background-colored blocks, blockWidth cells per color. A blockWidth
// of zero or less renders nothing, which lets users turn the band off.
func Strip(colors [palette.NumSlots]palette.Color, blockWidth int) string {
	if blockWidth <= 0 {
		return ""
	}

	block := strings.Repeat(" ", blockWidth)
	var b strings.Builder
	for _, c := range colors {
		style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
		b.WriteString(style.Render(block))
	}
	return b.String()
}

// StripWidth returns the rendered cell width of a strip.
func StripWidth(blockWidth int) int {
	if blockWidth <= 0 {
		return 0
	}
	return blockWidth * palette.NumSlots
}
