package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

// Builder accumulates palette rows and inserts them in index order.
type Builder struct {
	t        *testing.T
	db       *sql.DB
	palettes []paletteData
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sql.DB) *Builder {
	t.Helper()
	return &Builder{t: t, db: db}
}

// WithPalette adds a palette with optional configuration.
func (b *Builder) WithPalette(id string, opts ...PaletteOption) *Builder {
	p := defaultPalette(id)
	for _, opt := range opts {
		opt(&p)
	}
	b.palettes = append(b.palettes, p)
	return b
}

// Build inserts all accumulated palettes into the database. Palettes
// without an explicit index get the next free one in insertion order.
func (b *Builder) Build() {
	b.t.Helper()
	next := b.maxIndex() + 1
	for _, p := range b.palettes {
		if p.idx == 0 {
			p.idx = next
			next++
		} else if p.idx >= next {
			next = p.idx + 1
		}
		b.insertPalette(p)
	}
	b.palettes = nil
}

func (b *Builder) maxIndex() int {
	b.t.Helper()
	var max sql.NullInt64
	err := b.db.QueryRow(`SELECT MAX(idx) FROM palettes`).Scan(&max)
	require.NoError(b.t, err)
	return int(max.Int64)
}

func (b *Builder) insertPalette(p paletteData) {
	b.t.Helper()
	_, err := b.db.Exec(
		`INSERT INTO palettes (idx, id, name, outline, shadow, base, base_light, trim, trim_light, accent, highlight)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.idx, p.id, p.name,
		p.colors[0], p.colors[1], p.colors[2], p.colors[3],
		p.colors[4], p.colors[5], p.colors[6], p.colors[7],
	)
	require.NoError(b.t, err)
}
