package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/zjrosen/swatch/internal/palette/domain"
)

// paletteColumns is the list of columns to select for palette queries.
const paletteColumns = `idx, id, name, outline, shadow, base, base_light, trim, trim_light, accent, highlight`

// paletteRepository implements palette.SnapshotRepository using SQLite.
type paletteRepository struct {
	db *sql.DB
}

// newPaletteRepository creates a new paletteRepository instance.
func newPaletteRepository(db *sql.DB) *paletteRepository {
	return &paletteRepository{db: db}
}

// Ensure paletteRepository implements palette.SnapshotRepository.
var _ palette.SnapshotRepository = (*paletteRepository)(nil)

// scanPalette scans a row into a PaletteModel.
func scanPalette(scanner interface{ Scan(...any) error }) (*PaletteModel, error) {
	var model PaletteModel
	err := scanner.Scan(
		&model.Idx, &model.ID, &model.Name,
		&model.Colors[0], &model.Colors[1], &model.Colors[2], &model.Colors[3],
		&model.Colors[4], &model.Colors[5], &model.Colors[6], &model.Colors[7],
	)
	return &model, err
}

// SaveSnapshot replaces the stored snapshot with the given records in
// a single transaction. The registry is append-only, so the incoming
// snapshot is always a superset of the stored one; replacing wholesale
// keeps the write path trivial.
func (r *paletteRepository) SaveSnapshot(records []palette.SnapshotRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM palettes`); err != nil {
		return fmt.Errorf("clear previous snapshot: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO palettes (` + paletteColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range records {
		m := toPaletteModel(rec)
		if _, err := stmt.Exec(
			m.Idx, m.ID, m.Name,
			m.Colors[0], m.Colors[1], m.Colors[2], m.Colors[3],
			m.Colors[4], m.Colors[5], m.Colors[6], m.Colors[7],
		); err != nil {
			return fmt.Errorf("insert palette %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot retrieves the stored snapshot ordered by index, ready
// for sequential replay.
func (r *paletteRepository) LoadSnapshot() ([]palette.SnapshotRecord, error) {
	rows, err := r.db.Query(`SELECT ` + paletteColumns + ` FROM palettes ORDER BY idx ASC`)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []palette.SnapshotRecord
	for rows.Next() {
		model, err := scanPalette(rows)
		if err != nil {
			return nil, fmt.Errorf("scan palette row: %w", err)
		}
		rec, err := model.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate palette rows: %w", err)
	}

	return records, nil
}

// Close releases any resources held by the repository.
// This is a no-op because the connection is owned by the DB struct.
func (r *paletteRepository) Close() error {
	return nil
}
