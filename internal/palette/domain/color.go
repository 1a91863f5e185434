package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot identifies one of the eight semantic color slots every palette
// must fill. Sprite sheets are painted against these roles, so the set
// is fixed: a palette with a missing or extra slot cannot be applied.
type Slot string

const (
	SlotOutline   Slot = "outline"
	SlotShadow    Slot = "shadow"
	SlotBase      Slot = "base"
	SlotBaseLight Slot = "baseLight"
	SlotTrim      Slot = "trim"
	SlotTrimLight Slot = "trimLight"
	SlotAccent    Slot = "accent"
	SlotHighlight Slot = "highlight"
)

// NumSlots is the number of semantic slots in every palette.
const NumSlots = 8

// SlotOrder is the canonical storage order for palette colors.
// Index i of an entry's color sequence holds the color for SlotOrder[i].
var SlotOrder = [NumSlots]Slot{
	SlotOutline,
	SlotShadow,
	SlotBase,
	SlotBaseLight,
	SlotTrim,
	SlotTrimLight,
	SlotAccent,
	SlotHighlight,
}

// IsValid returns true if the slot is one of the eight known slots.
func (s Slot) IsValid() bool {
	for _, known := range SlotOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Color is a single RGB triple. Channels are plain ints so that values
// arriving from YAML files or a foreign accessor can be range-checked
// instead of silently truncated.
type Color struct {
	R int
	G int
	B int
}

// Validate returns a ValidationError if any channel is outside 0-255.
func (c Color) Validate() error {
	for _, ch := range [3]int{c.R, c.G, c.B} {
		if ch < 0 || ch > 255 {
			return &ValidationError{
				Field:  "color",
				Reason: fmt.Sprintf("channel value %d outside 0-255", ch),
			}
		}
	}
	return nil
}

// Hex returns the color as a "#RRGGBB" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a "#RRGGBB" (or "RRGGBB") string into a Color.
func ParseHex(s string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 {
		return Color{}, &ValidationError{
			Field:  "color",
			Reason: fmt.Sprintf("%q is not a #RRGGBB hex color", s),
		}
	}
	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Color{}, &ValidationError{
			Field:  "color",
			Reason: fmt.Sprintf("%q is not a #RRGGBB hex color", s),
		}
	}
	return Color{
		R: int(value >> 16 & 0xFF),
		G: int(value >> 8 & 0xFF),
		B: int(value & 0xFF),
	}, nil
}

// ColorsFromSlots assembles the canonical ordered color sequence from a
// slot-keyed map. Every slot must be present and valid; unknown keys
// are rejected so a typo'd slot name fails loudly instead of leaving a
// slot unset.
func ColorsFromSlots(slots map[Slot]Color) ([NumSlots]Color, error) {
	var ordered [NumSlots]Color

	for slot := range slots {
		if !slot.IsValid() {
			return ordered, &ValidationError{
				Field:  "colors",
				Reason: fmt.Sprintf("unknown slot %q", slot),
			}
		}
	}

	for i, slot := range SlotOrder {
		color, ok := slots[slot]
		if !ok {
			return ordered, &ValidationError{
				Field:  "colors",
				Reason: fmt.Sprintf("missing slot %q", slot),
			}
		}
		if err := color.Validate(); err != nil {
			return ordered, &ValidationError{
				Field:  "colors",
				Reason: fmt.Sprintf("slot %q: %v", slot, err),
			}
		}
		ordered[i] = color
	}

	return ordered, nil
}

// ValidateSequence checks an already-ordered color sequence, as
// received from a host accessor during migration.
func ValidateSequence(colors []Color) ([NumSlots]Color, error) {
	var ordered [NumSlots]Color
	if len(colors) != NumSlots {
		return ordered, &ValidationError{
			Field:  "colors",
			Reason: fmt.Sprintf("expected %d colors, got %d", NumSlots, len(colors)),
		}
	}
	for i, color := range colors {
		if err := color.Validate(); err != nil {
			return ordered, &ValidationError{
				Field:  "colors",
				Reason: fmt.Sprintf("slot %q: %v", SlotOrder[i], err),
			}
		}
		ordered[i] = color
	}
	return ordered, nil
}
