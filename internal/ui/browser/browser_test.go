package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	palette "github.com/zjrosen/swatch/internal/palette/domain"
)

func builtinEntries(t *testing.T) []*palette.Entry {
	t.Helper()
	reg := palette.NewRegistry("1.0.0")
	for _, b := range palette.Builtins() {
		require.NoError(t, reg.RegisterAt(b.ID, b.Index, b.Name, b.Colors[:]))
	}
	return reg.Entries()
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Config{ShowIndexes: true, ShowStatusBar: true, SwatchWidth: 2})
	m = m.SetSize(80, 24)
	m = m.SetVersion("1.0.0")
	m = m.SetEntries(builtinEntries(t))
	return m
}

func keyPress(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, "archive-olive", m.Selected().ID())

	m, _ = m.Update(keyPress("j"))
	assert.Equal(t, "harbor-blue", m.Selected().ID())

	m, _ = m.Update(keyPress("k"))
	assert.Equal(t, "archive-olive", m.Selected().ID())

	m, _ = m.Update(keyPress("G"))
	assert.Equal(t, "royal-plum", m.Selected().ID())

	m, _ = m.Update(keyPress("g"))
	assert.Equal(t, "archive-olive", m.Selected().ID())
}

func TestNavigation_ClampsAtEdges(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.Update(keyPress("k"))
	assert.Equal(t, "archive-olive", m.Selected().ID())

	m, _ = m.Update(keyPress("G"))
	m, _ = m.Update(keyPress("j"))
	assert.Equal(t, "royal-plum", m.Selected().ID())
}

func TestEnterEmitsSelect(t *testing.T) {
	m := newTestModel(t)
	m, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	sel, ok := msg.(SelectMsg)
	require.True(t, ok)
	assert.Equal(t, "archive-olive", sel.Entry.ID())
	_ = m
}

func TestRefreshEmitsMsg(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyPress("r"))
	require.NotNil(t, cmd)
	_, ok := cmd().(RefreshMsg)
	assert.True(t, ok)
}

func TestFilter(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.Update(keyPress("/"))
	assert.True(t, m.Filtering())

	for _, r := range "plum" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.NotNil(t, m.Selected())
	assert.Equal(t, "royal-plum", m.Selected().ID())

	// Enter keeps the filter, escape clears it.
	m, _ = m.Update(keyPress("enter"))
	assert.False(t, m.Filtering())
	assert.Equal(t, "royal-plum", m.Selected().ID())

	m, _ = m.Update(keyPress("esc"))
	m = m.SetEntries(builtinEntries(t))
	assert.Len(t, m.entries, 9)
}

func TestFilter_MatchesName(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(keyPress("/"))
	for _, r := range "Harbor" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.NotNil(t, m.Selected())
	assert.Equal(t, "harbor-blue", m.Selected().ID())
}

func TestFilter_NoMatches(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(keyPress("/"))
	for _, r := range "zzz" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Nil(t, m.Selected())
	// The view renders the empty state instead of panicking.
	assert.Contains(t, m.View(), "no palettes")
}

func TestSetEntries_KeepsCursorOnSameID(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(keyPress("j"))
	m, _ = m.Update(keyPress("j"))
	require.Equal(t, "ember-signal", m.Selected().ID())

	// A grown list keeps the cursor on the same palette.
	reg := palette.NewRegistry("1.0.0")
	for _, b := range palette.Builtins() {
		require.NoError(t, reg.RegisterAt(b.ID, b.Index, b.Name, b.Colors[:]))
	}
	slots := map[palette.Slot]palette.Color{}
	for i, slot := range palette.SlotOrder {
		slots[slot] = palette.Color{R: i * 10, G: i * 10, B: i * 10}
	}
	_, err := reg.Register("extra", "Extra", slots)
	require.NoError(t, err)

	m = m.SetEntries(reg.Entries())
	assert.Equal(t, "ember-signal", m.Selected().ID())
}

func TestView_ShowsEntries(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Palettes (9)")
	assert.Contains(t, view, "Archive Olive")
	assert.Contains(t, view, "archive-olive")
	assert.Contains(t, view, "9 palettes")
	assert.Contains(t, view, "registry v1.0.0")
}

func TestView_ToggleIndexes(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "  1 ")

	m, _ = m.Update(keyPress("i"))
	assert.NotContains(t, m.View(), "  1 ")
}

func TestView_ToggleStatusBar(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(keyPress("w"))
	assert.NotContains(t, m.View(), "9 palettes")
}

func TestScrolling(t *testing.T) {
	m := New(Config{SwatchWidth: 0})
	m = m.SetSize(40, 6) // room for only a few rows
	m = m.SetEntries(builtinEntries(t))

	m, _ = m.Update(keyPress("G"))
	view := m.View()
	assert.Contains(t, view, "Royal Plum")
	assert.NotContains(t, view, "Archive Olive")
}
