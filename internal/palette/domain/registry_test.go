package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testSlots returns a full, valid slot map with a recognizable base color.
func testSlots(seed int) map[Slot]Color {
	slots := make(map[Slot]Color, NumSlots)
	for i, slot := range SlotOrder {
		slots[slot] = Color{R: (seed + i) % 256, G: (seed + i*2) % 256, B: (seed + i*3) % 256}
	}
	return slots
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry("0.4.0")

	added, err := reg.Register("storm-gray", "Storm Gray", testSlots(10))
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 1, reg.Count())

	entry, ok := reg.Get("storm-gray")
	require.True(t, ok)
	require.Equal(t, "storm-gray", entry.ID())
	require.Equal(t, "Storm Gray", entry.Name())
	require.Equal(t, 1, entry.Index())
}

func TestRegistry_Register_EmptyNameFallsBackToID(t *testing.T) {
	reg := NewRegistry("0.4.0")

	added, err := reg.Register("storm-gray", "", testSlots(10))
	require.NoError(t, err)
	require.True(t, added)

	entry, ok := reg.Get("storm-gray")
	require.True(t, ok)
	require.Equal(t, "storm-gray", entry.Name())
}

func TestRegistry_Register_DuplicateIsNoOp(t *testing.T) {
	reg := NewRegistry("0.4.0")

	added, err := reg.Register("storm-gray", "Storm Gray", testSlots(10))
	require.NoError(t, err)
	require.True(t, added)

	// Second registration with a different name and colors changes nothing.
	added, err = reg.Register("storm-gray", "Different Name", testSlots(99))
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, 1, reg.Count())

	entry, ok := reg.Get("storm-gray")
	require.True(t, ok)
	require.Equal(t, "Storm Gray", entry.Name())
	ordered, err := ColorsFromSlots(testSlots(10))
	require.NoError(t, err)
	require.Equal(t, ordered, entry.Colors())
}

func TestRegistry_Register_Validation(t *testing.T) {
	missingSlot := testSlots(10)
	delete(missingSlot, SlotAccent)

	badChannel := testSlots(10)
	badChannel[SlotBase] = Color{R: 300, G: 0, B: 0}

	unknownSlot := testSlots(10)
	unknownSlot[Slot("glow")] = Color{}

	tests := []struct {
		name  string
		id    string
		slots map[Slot]Color
	}{
		{"empty id", "", testSlots(10)},
		{"whitespace id", "   ", testSlots(10)},
		{"missing slot", "x", missingSlot},
		{"channel out of range", "x", badChannel},
		{"unknown slot", "x", unknownSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry("0.4.0")
			added, err := reg.Register(tt.id, "", tt.slots)
			require.ErrorIs(t, err, ErrValidation)
			require.False(t, added)
			require.Equal(t, 0, reg.Count(), "failed registration must not mutate the registry")
		})
	}
}

func TestRegistry_RegisterAt(t *testing.T) {
	reg := NewRegistry("0.4.0")
	colors := make([]Color, NumSlots)
	for i := range colors {
		colors[i] = Color{R: i * 10, G: i * 20, B: i * 30}
	}

	require.NoError(t, reg.RegisterAt("migrated-1", 1, "Migrated One", colors))
	require.NoError(t, reg.RegisterAt("migrated-2", 2, "", colors))
	require.Equal(t, 2, reg.Count())

	// Index must be exactly Count()+1.
	err := reg.RegisterAt("migrated-9", 9, "", colors)
	require.ErrorIs(t, err, ErrIndexOutOfOrder)

	// Duplicate ids are an error here, not a no-op.
	err = reg.RegisterAt("migrated-1", 3, "", colors)
	require.ErrorIs(t, err, ErrDuplicateID)
	require.Equal(t, 2, reg.Count())
}

func TestRegistry_Lookups(t *testing.T) {
	reg := NewRegistry("0.4.0")
	_, err := reg.Register("a", "A", testSlots(1))
	require.NoError(t, err)
	_, err = reg.Register("b", "B", testSlots(2))
	require.NoError(t, err)

	index, ok := reg.IndexOf("b")
	require.True(t, ok)
	require.Equal(t, 2, index)

	id, ok := reg.IDAt(1)
	require.True(t, ok)
	require.Equal(t, "a", id)

	entry, ok := reg.ByIndex(2)
	require.True(t, ok)
	require.Equal(t, "b", entry.ID())

	_, ok = reg.Get("missing")
	require.False(t, ok)
	_, ok = reg.ByIndex(0)
	require.False(t, ok)
	_, ok = reg.ByIndex(3)
	require.False(t, ok)
	_, ok = reg.IndexOf("missing")
	require.False(t, ok)
}

func TestRegistry_Entries_IndexOrder(t *testing.T) {
	reg := NewRegistry("0.4.0")
	for _, id := range []string{"c", "a", "b"} {
		_, err := reg.Register(id, "", testSlots(5))
		require.NoError(t, err)
	}

	entries := reg.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "c", entries[0].ID())
	require.Equal(t, "a", entries[1].ID())
	require.Equal(t, "b", entries[2].ID())
	for i, entry := range entries {
		require.Equal(t, i+1, entry.Index())
	}
}

func TestRegistry_AdoptFrom(t *testing.T) {
	older := NewRegistry("0.3.0")
	_, err := older.Register("a", "A", testSlots(1))
	require.NoError(t, err)
	_, err = older.Register("b", "B", testSlots(2))
	require.NoError(t, err)

	newer := NewRegistry("0.4.0")
	newer.AdoptFrom(older)

	require.Equal(t, 2, newer.Count())
	index, ok := newer.IndexOf("b")
	require.True(t, ok)
	require.Equal(t, 2, index)

	// Growth in the adopting instance continues from the adopted count.
	added, err := newer.Register("c", "C", testSlots(3))
	require.NoError(t, err)
	require.True(t, added)
	index, ok = newer.IndexOf("c")
	require.True(t, ok)
	require.Equal(t, 3, index)
}

func TestRegistry_AdoptFrom_SelfAndNil(t *testing.T) {
	reg := NewRegistry("0.4.0")
	_, err := reg.Register("a", "A", testSlots(1))
	require.NoError(t, err)

	reg.AdoptFrom(nil)
	reg.AdoptFrom(reg)
	require.Equal(t, 1, reg.Count())
}

func TestRegistry_GUIDsAreUnique(t *testing.T) {
	a := NewRegistry("0.4.0")
	b := NewRegistry("0.4.0")
	require.NotEmpty(t, a.GUID())
	require.NotEqual(t, a.GUID(), b.GUID())
	require.Equal(t, "0.4.0", a.Version())
}
