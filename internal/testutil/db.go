// Package testutil provides test utilities for database setup.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"
)

// Schema mirrors the snapshot store's palettes table.
const Schema = `
CREATE TABLE palettes (
	idx INTEGER PRIMARY KEY CHECK (idx >= 1),
	id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	outline TEXT NOT NULL,
	shadow TEXT NOT NULL,
	base TEXT NOT NULL,
	base_light TEXT NOT NULL,
	trim TEXT NOT NULL,
	trim_light TEXT NOT NULL,
	accent TEXT NOT NULL,
	highlight TEXT NOT NULL
);
`

// NewTestDB creates an in-memory SQLite database with the palettes schema.
// The caller is responsible for closing the database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}
