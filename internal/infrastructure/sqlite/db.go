// Package sqlite persists registry snapshots to a local SQLite
// database using the pure-Go ncruces driver, so restarts replay the
// same entry set at the same indices.
package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/swatch/internal/log"
	"github.com/zjrosen/swatch/internal/palette/domain"
)

// schema creates the palettes table. idx mirrors the registry's
// 1-based index; the UNIQUE constraint on id preserves the bijection
// at the storage layer too.
const schema = `
CREATE TABLE IF NOT EXISTS palettes (
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

// DB wraps the SQLite connection and owns directory setup, backups,
// and schema creation.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens (or creates) the snapshot database at path. The parent
// directory is created with 0700 permissions. An existing database
// file is copied to path+".bak" before schema setup runs, so a bad
// upgrade can be rolled back by hand.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := backupFile(path, path+".bak"); err != nil {
			// A failed backup is not fatal; the database itself is intact.
			log.Warn(log.CatStore, "pre-migration backup failed", "path", path, "error", err.Error())
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DB{conn: conn, path: path}, nil
}

// Palettes returns the snapshot repository backed by this database.
func (d *DB) Palettes() palette.SnapshotRepository {
	return newPaletteRepository(d.conn)
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// backupFile copies src to dst, truncating any previous backup.
func backupFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- src is the configured database path
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600) // #nosec G304
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, in)
	return err
}
