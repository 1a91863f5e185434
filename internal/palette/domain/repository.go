package palette

// SnapshotRecord is the persisted form of a single registry entry.
// Colors are stored in SlotOrder order.
type SnapshotRecord struct {
	ID     string
	Index  int
	Name   string
	Colors [NumSlots]Color
}

// SnapshotRepository defines the persistence interface for registry
// snapshots. Implementations may use SQLite, in-memory storage, or
// other backends. Records load in index order so a fresh registry can
// replay them through RegisterAt.
type SnapshotRepository interface {
	// SaveSnapshot persists the full entry set, replacing any previous
	// snapshot.
	SaveSnapshot(records []SnapshotRecord) error

	// LoadSnapshot retrieves the persisted entry set ordered by index.
	// An empty store returns an empty slice, not an error.
	LoadSnapshot() ([]SnapshotRecord, error)

	// Close releases any resources held by the repository.
	Close() error
}
