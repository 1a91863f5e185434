package presentation

import (
	palette "github.com/zjrosen/swatch/internal/palette/domain"
	"github.com/zjrosen/swatch/internal/render"
)

// PaletteDTO represents a registered palette for presentation
type PaletteDTO struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Index  int               `json:"index"`
	Offset int               `json:"offset"`
	Colors map[string]string `json:"colors"`
	Sprite string            `json:"sprite"`
}

// FromEntry converts a registry entry to a DTO. The sprite path is the
// asset location the render descriptors resolve for this palette.
func FromEntry(entry *palette.Entry) PaletteDTO {
	colors := entry.Colors()
	bySlot := make(map[string]string, palette.NumSlots)
	for i, slot := range palette.SlotOrder {
		bySlot[string(slot)] = colors[i].Hex()
	}

	return PaletteDTO{
		ID:     entry.ID(),
		Name:   entry.Name(),
		Index:  entry.Index(),
		Offset: entry.Index() - 1,
		Colors: bySlot,
		Sprite: render.PaletteAssetPrefix + entry.ID(),
	}
}

// FromEntries converts registry entries to DTOs, preserving index order.
func FromEntries(entries []*palette.Entry) []PaletteDTO {
	dtos := make([]PaletteDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = FromEntry(entry)
	}
	return dtos
}
