// Package details renders a single palette as a bordered inspector panel.
package details

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	palette "github.com/zjrosen/swatch/internal/palette/domain"
	"github.com/zjrosen/swatch/internal/render"
	"github.com/zjrosen/swatch/internal/ui/styles"
)

// ClosedMsg is emitted when the inspector is dismissed.
type ClosedMsg struct{}

// YankedMsg is emitted after a color hex was copied to the clipboard.
type YankedMsg struct {
	Hex string
	Err error
}

// Model holds the inspector state for one palette entry.
type Model struct {
	entry  *palette.Entry
	cursor int // selected slot row
	width  int
	height int
}

// New creates an inspector for the given entry.
func New(entry *palette.Entry) Model {
	return Model{entry: entry}
}

// SetSize updates the viewport dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Entry returns the palette being inspected.
func (m Model) Entry() *palette.Entry {
	return m.entry
}

// SelectedSlot returns the slot under the cursor.
func (m Model) SelectedSlot() palette.Slot {
	return palette.SlotOrder[m.cursor]
}

// Update handles key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "enter":
		return m, func() tea.Msg { return ClosedMsg{} }
	case "j", "down":
		if m.cursor < palette.NumSlots-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "y":
		colors := m.entry.Colors()
		hex := colors[m.cursor].Hex()
		return m, func() tea.Msg {
			return YankedMsg{Hex: hex, Err: clipboard.WriteAll(hex)}
		}
	}
	return m, nil
}

// panel dimensions
const (
	panelWidth  = 44
	panelHeight = 16
)

// View renders the inspector centered in the viewport.
func (m Model) View() string {
	if m.entry == nil {
		return ""
	}

	var b strings.Builder

	colors := m.entry.Colors()
	b.WriteString(styles.IDStyle.Render(m.entry.ID()))
	b.WriteString(styles.IndexStyle.Render(fmt.Sprintf("  index %d · offset %d", m.entry.Index(), m.entry.Index()-1)))
	b.WriteString("\n")
	b.WriteString(styles.IndexStyle.Render(render.PaletteAssetPrefix + m.entry.ID()))
	b.WriteString("\n\n")

	for i, slot := range palette.SlotOrder {
		b.WriteString(m.renderSlotRow(i, slot, colors[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("j/k move · y copy hex · esc close"))

	panel := styles.RenderWithTitleBorder(
		b.String(), m.entry.Name(),
		panelWidth, panelHeight,
		true, styles.OverlayTitleColor, styles.BorderFocusColor,
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
	}
	return panel
}

func (m Model) renderSlotRow(i int, slot palette.Slot, c palette.Color) string {
	indicator := "  "
	if i == m.cursor {
		indicator = styles.SelectionIndicatorStyle.Render("> ")
	}

	block := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render("    ")

	label := fmt.Sprintf("%-10s", slot)
	labelStyle := styles.NameStyle
	if i == m.cursor {
		labelStyle = styles.NameSelectedStyle
	}

	return indicator + block + " " + labelStyle.Render(label) + " " + styles.HexStyle.Render(c.Hex())
}
