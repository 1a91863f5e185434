package palette

// Entry is a registered palette. Entries are created once by the
// registry at registration time and never mutated afterwards; a second
// registration attempt with the same id is a no-op and does not touch
// the existing entry, including its name.
type Entry struct {
	id     string
	name   string
	colors [NumSlots]Color
	index  int
}

// newEntry creates an entry. Callers have already validated the fields.
func newEntry(id, name string, colors [NumSlots]Color, index int) *Entry {
	return &Entry{
		id:     id,
		name:   name,
		colors: colors,
		index:  index,
	}
}

// ID returns the stable palette id.
func (e *Entry) ID() string {
	return e.id
}

// Name returns the human-readable palette name.
func (e *Entry) Name() string {
	return e.name
}

// Index returns the 1-based registry index assigned at registration.
func (e *Entry) Index() int {
	return e.index
}

// Colors returns the ordered color sequence (SlotOrder order).
// The array is returned by value, so callers cannot mutate the entry.
func (e *Entry) Colors() [NumSlots]Color {
	return e.colors
}

// ColorFor returns the color for a single slot.
func (e *Entry) ColorFor(slot Slot) (Color, bool) {
	for i, known := range SlotOrder {
		if slot == known {
			return e.colors[i], true
		}
	}
	return Color{}, false
}
