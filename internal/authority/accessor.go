// Package authority decides which palette-registry implementation owns
// the host's process-wide color accessors, and migrates entries from
// whichever implementation held them before. The host historically let
// any loaded copy overwrite the two accessor entry points; ownership
// here is modeled as an explicit slot holding a single Accessor, and
// "owning" the slot means the installed accessor is identical (same
// reference) to this registry's own. Any other code installing its own
// accessor silently revokes authority until the next check.
package authority

import (
	"sync"

	palette "github.com/zjrosen/swatch/internal/palette/domain"
)

// Accessor is the pair of process-wide query entry points: total color
// count and per-index color lookup. The host's built-in default, a
// foreign implementation, and this registry all satisfy it.
type Accessor interface {
	// ColorCount returns the total number of palettes the installed
	// implementation claims to manage.
	ColorCount() int

	// ColorsAt returns the ordered color sequence for a 1-based index,
	// or false when the implementation has no data for that index.
	ColorsAt(index int) ([]palette.Color, bool)
}

// Slot holds the currently-installed accessor. There is one slot per
// process in production (ProcessSlot); tests create their own.
type Slot struct {
	mu      sync.RWMutex
	current Accessor
}

// NewSlot creates an empty accessor slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Install overwrites the slot with the given accessor.
func (s *Slot) Install(a Accessor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = a
}

// Current returns the installed accessor, or nil if none is installed.
func (s *Slot) Current() Accessor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// OwnedBy reports whether the installed accessor is exactly the given
// one. This is identity comparison, not a flag: ownership survives only
// as long as nobody else has overwritten the slot.
func (s *Slot) OwnedBy(a Accessor) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current == a
}

var processSlot = NewSlot()

// ProcessSlot returns the process-wide accessor slot.
func ProcessSlot() *Slot {
	return processSlot
}

// registryAccessor adapts a Registry to the host accessor contract.
// Its pointer identity doubles as the registry's authority token.
type registryAccessor struct {
	reg *palette.Registry
}

func (a *registryAccessor) ColorCount() int {
	return a.reg.Count()
}

func (a *registryAccessor) ColorsAt(index int) ([]palette.Color, bool) {
	entry, ok := a.reg.ByIndex(index)
	if !ok {
		return nil, false
	}
	colors := entry.Colors()
	return colors[:], true
}
