// Package palette implements the versioned palette registry: an
// append-only, id↔index bijective store of named 8-color palettes.
package palette

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Registry owns the id↔index bijection and the entry data. It is pure
// data-structure logic: no I/O, no knowledge of the host, no deletion.
// Indices are dense and 1-based; once assigned they are never reused.
type Registry struct {
	mu      sync.RWMutex
	guid    string
	version string
	entries map[string]*Entry // id -> entry
	ids     map[int]string    // index -> id, dense over [1, count]
	count   int
}

// NewRegistry creates an empty registry carrying the given semantic
// version. The version is used for arbitration when multiple copies of
// the registry coexist in one process.
func NewRegistry(version string) *Registry {
	return &Registry{
		guid:    uuid.NewString(),
		version: version,
		entries: make(map[string]*Entry),
		ids:     make(map[int]string),
	}
}

// Version returns the registry's semantic version.
func (r *Registry) Version() string {
	return r.version
}

// GUID returns the per-instance identifier. Distinct loaded copies get
// distinct GUIDs even when they carry the same version, which keeps
// arbitration log lines unambiguous.
func (r *Registry) GUID() string {
	return r.guid
}

// Register validates and adds a palette, allocating the next free
// index. Returns true if a new entry was added, false (and no error)
// if the id was already registered. The name is optional; when empty
// the id doubles as the display name.
func (r *Registry) Register(id, name string, slots map[Slot]Color) (bool, error) {
	if err := validateID(id); err != nil {
		return false, err
	}
	colors, err := ColorsFromSlots(slots)
	if err != nil {
		return false, err
	}
	if name == "" {
		name = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return false, nil
	}

	index := r.count + 1
	r.entries[id] = newEntry(id, name, colors, index)
	r.ids[index] = id
	r.count = index
	return true, nil
}

// RegisterAt installs an entry at a caller-specified index. It exists
// only for migration, which replays entries that already existed in a
// previously-authoritative implementation. The index must be exactly
// Count()+1 and the id must be new; unlike Register, a duplicate id
// here is an error because migration never revisits an index.
func (r *Registry) RegisterAt(id string, index int, name string, colors []Color) error {
	if err := validateID(id); err != nil {
		return err
	}
	ordered, err := ValidateSequence(colors)
	if err != nil {
		return err
	}
	if name == "" {
		name = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if index != r.count+1 {
		return ErrIndexOutOfOrder
	}
	if _, exists := r.entries[id]; exists {
		return ErrDuplicateID
	}

	r.entries[id] = newEntry(id, name, ordered, index)
	r.ids[index] = id
	r.count = index
	return nil
}

// Get returns the entry for an id, or false if the id is unknown.
func (r *Registry) Get(id string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	return entry, ok
}

// ByIndex returns the entry at a 1-based index, or false if the index
// is outside [1, Count()].
func (r *Registry) ByIndex(index int) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.ids[index]
	if !ok {
		return nil, false
	}
	return r.entries[id], true
}

// IndexOf returns the index assigned to an id.
func (r *Registry) IndexOf(id string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return 0, false
	}
	return entry.index, true
}

// IDAt returns the id registered at a 1-based index.
func (r *Registry) IDAt(index int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.ids[index]
	return id, ok
}

// Count returns the number of registered palettes. The count never
// decreases.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Entries returns all entries in index order.
func (r *Registry) Entries() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*Entry, 0, r.count)
	for i := 1; i <= r.count; i++ {
		entries = append(entries, r.entries[r.ids[i]])
	}
	return entries
}

// Snapshot returns the persisted form of every entry in index order.
func (r *Registry) Snapshot() []SnapshotRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]SnapshotRecord, 0, r.count)
	for i := 1; i <= r.count; i++ {
		e := r.entries[r.ids[i]]
		records = append(records, SnapshotRecord{
			ID:     e.id,
			Index:  e.index,
			Name:   e.name,
			Colors: e.colors,
		})
	}
	return records
}

// AdoptFrom shallow-adopts another registry's entry and index maps.
// Used during version arbitration: the winning (newer) instance carries
// forward everything the losing instance had registered, preserving
// index alignment, before taking authority over the accessor slot.
// Existing local state is discarded; arbitration runs before any local
// registration, so there is nothing to merge.
func (r *Registry) AdoptFrom(other *Registry) {
	if other == nil || other == r {
		return
	}

	other.mu.RLock()
	entries := other.entries
	ids := other.ids
	count := other.count
	other.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = entries
	r.ids = ids
	r.count = count
}

// validateID rejects empty or whitespace-only ids.
func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Reason: "must be a non-empty string"}
	}
	return nil
}
