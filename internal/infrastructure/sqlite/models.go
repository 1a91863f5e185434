package sqlite

import (
	"fmt"

	"github.com/zjrosen/swatch/internal/palette/domain"
)

// PaletteModel represents the database row for the palettes table.
// Colors are stored as "#RRGGBB" strings, one column per slot in
// SlotOrder order.
type PaletteModel struct {
	Idx    int
	ID     string
	Name   string
	Colors [palette.NumSlots]string
}

// toPaletteModel converts a domain snapshot record to a database row.
func toPaletteModel(rec palette.SnapshotRecord) *PaletteModel {
	m := &PaletteModel{
		Idx:  rec.Index,
		ID:   rec.ID,
		Name: rec.Name,
	}
	for i, c := range rec.Colors {
		m.Colors[i] = c.Hex()
	}
	return m
}

// toRecord converts a database row back to a domain snapshot record.
func (m *PaletteModel) toRecord() (palette.SnapshotRecord, error) {
	rec := palette.SnapshotRecord{
		ID:    m.ID,
		Index: m.Idx,
		Name:  m.Name,
	}
	for i, hex := range m.Colors {
		c, err := palette.ParseHex(hex)
		if err != nil {
			return rec, fmt.Errorf("palette %s slot %q: %w", m.ID, palette.SlotOrder[i], err)
		}
		rec.Colors[i] = c
	}
	return rec, nil
}
