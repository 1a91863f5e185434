// Package browser renders the scrollable palette list.
package browser

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/swatch/internal/keys"
	palette "github.com/zjrosen/swatch/internal/palette/domain"
	"github.com/zjrosen/swatch/internal/ui/styles"
)

// SelectMsg is emitted when the user opens a palette's details.
type SelectMsg struct {
	Entry *palette.Entry
}

// RefreshMsg is emitted when the user asks for a palette dir reload.
type RefreshMsg struct{}

// YankedMsg is emitted after a palette id was copied to the clipboard.
type YankedMsg struct {
	ID  string
	Err error
}

// Config holds display options, seeded from the ui section of the
// config file.
type Config struct {
	ShowIndexes   bool
	ShowStatusBar bool
	SwatchWidth   int
}

// Model holds the palette list state.
type Model struct {
	cfg     Config
	keys    keys.KeyMap
	helpBar help.Model

	entries []*palette.Entry
	visible []int // indices into entries, after filtering

	filter    textinput.Model
	filtering bool

	cursor   int // position within visible
	offset   int // first visible row
	width    int
	height   int
	showHelp bool
	version  string
}

// New creates a browser model with the given display options.
func New(cfg Config) Model {
	filter := textinput.New()
	filter.Placeholder = "filter palettes"
	filter.Prompt = "/"
	filter.CharLimit = 64

	return Model{
		cfg:     cfg,
		keys:    keys.DefaultKeyMap(),
		helpBar: help.New(),
		filter:  filter,
	}
}

// SetSize updates the viewport dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.helpBar.Width = width
	m.clampScroll()
	return m
}

// SetVersion sets the registry version shown in the status bar.
func (m Model) SetVersion(version string) Model {
	m.version = version
	return m
}

// SetEntries replaces the palette list, keeping the cursor on the same
// palette when it still exists.
func (m Model) SetEntries(entries []*palette.Entry) Model {
	var selectedID string
	if e := m.Selected(); e != nil {
		selectedID = e.ID()
	}

	m.entries = entries
	m.applyFilter()

	if selectedID != "" {
		for i, idx := range m.visible {
			if m.entries[idx].ID() == selectedID {
				m.cursor = i
				break
			}
		}
	}
	m.clampCursor()
	return m
}

// Selected returns the entry under the cursor, or nil for an empty list.
func (m Model) Selected() *palette.Entry {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.entries[m.visible[m.cursor]]
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filtering
}

// Update handles key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		return m.updateFiltering(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Top):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.Bottom):
		m.cursor = len(m.visible) - 1
	case key.Matches(keyMsg, m.keys.Enter):
		if e := m.Selected(); e != nil {
			entry := e
			return m, func() tea.Msg { return SelectMsg{Entry: entry} }
		}
	case key.Matches(keyMsg, m.keys.Refresh):
		return m, func() tea.Msg { return RefreshMsg{} }
	case key.Matches(keyMsg, m.keys.Yank):
		if e := m.Selected(); e != nil {
			id := e.ID()
			return m, func() tea.Msg {
				return YankedMsg{ID: id, Err: clipboard.WriteAll(id)}
			}
		}
	case key.Matches(keyMsg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, m.keys.ToggleIndexes):
		m.cfg.ShowIndexes = !m.cfg.ShowIndexes
	case key.Matches(keyMsg, m.keys.ToggleStatus):
		m.cfg.ShowStatusBar = !m.cfg.ShowStatusBar
	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.helpBar.ShowAll = m.showHelp
	case key.Matches(keyMsg, m.keys.Escape):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		}
	}

	m.clampCursor()
	return m, nil
}

func (m Model) updateFiltering(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter rebuilds the visible index list from the filter text.
// Matches are case-insensitive substring matches on id or name.
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = make([]int, 0, len(m.entries))
	for i, e := range m.entries {
		if query == "" ||
			strings.Contains(strings.ToLower(e.ID()), query) ||
			strings.Contains(strings.ToLower(e.Name()), query) {
			m.visible = append(m.visible, i)
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor > len(m.visible)-1 {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

// clampScroll keeps the cursor inside the visible window.
func (m *Model) clampScroll() {
	rows := m.listHeight()
	if rows < 1 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// listHeight is the number of rows available for palette lines.
func (m Model) listHeight() int {
	h := m.height - 1 // title
	if m.cfg.ShowStatusBar {
		h--
	}
	if m.filtering || m.filter.Value() != "" {
		h--
	}
	h-- // help bar
	if m.showHelp {
		h -= 3 // full help takes extra rows
	}
	return h
}

// View renders the palette list.
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Palettes (%d)", len(m.visible))
	if m.filter.Value() != "" && len(m.visible) != len(m.entries) {
		title = fmt.Sprintf("Palettes (%d/%d)", len(m.visible), len(m.entries))
	}
	b.WriteString(styles.OverlayTitleStyle.Render(title))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	rows := m.listHeight()
	if rows < 1 {
		rows = 1
	}
	end := m.offset + rows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	if len(m.visible) == 0 {
		b.WriteString(styles.IndexStyle.Render("  no palettes registered"))
		b.WriteString("\n")
	}

	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if m.cfg.ShowStatusBar {
		b.WriteString(m.statusBar())
		b.WriteString("\n")
	}
	b.WriteString(m.helpBar.View(m.keys))

	return b.String()
}

func (m Model) renderRow(i int) string {
	entry := m.entries[m.visible[i]]
	selected := i == m.cursor

	indicator := "  "
	if selected {
		indicator = styles.SelectionIndicatorStyle.Render("> ")
	}

	var indexText string
	if m.cfg.ShowIndexes {
		indexText = fmt.Sprintf("%3d ", entry.Index())
	}

	strip := Strip(entry.Colors(), m.cfg.SwatchWidth)
	stripPad := 0
	if strip != "" {
		strip += " "
		stripPad = 1
	}

	// Truncate the text before styling so ANSI sequences stay intact.
	nameText := entry.Name()
	idText := " " + entry.ID()
	if m.width > 0 {
		avail := m.width - 2 - len(indexText) - StripWidth(m.cfg.SwatchWidth) - stripPad
		if avail < 1 {
			avail = 1
		}
		if lipgloss.Width(nameText)+lipgloss.Width(idText) > avail {
			if lipgloss.Width(nameText)+2 >= avail {
				idText = ""
				nameText = styles.TruncateString(nameText, avail)
			} else {
				idText = styles.TruncateString(idText, avail-lipgloss.Width(nameText))
			}
		}
	}

	nameStyle := styles.NameStyle
	if selected {
		nameStyle = styles.NameSelectedStyle
	}

	return indicator +
		styles.IndexStyle.Render(indexText) +
		strip +
		nameStyle.Render(nameText) +
		styles.IDStyle.Render(idText)
}

func (m Model) statusBar() string {
	parts := []string{fmt.Sprintf("%d palettes", len(m.entries))}
	if m.version != "" {
		parts = append(parts, "registry v"+m.version)
	}
	if q := m.filter.Value(); q != "" {
		parts = append(parts, fmt.Sprintf("filter: %q", q))
	}
	bar := styles.StatusBarStyle.Render(strings.Join(parts, "  ·  "))
	return lipgloss.NewStyle().Width(m.width).Render(bar)
}
