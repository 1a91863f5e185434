package authority

import (
	"sync"

	"github.com/zjrosen/swatch/internal/log"
	palette "github.com/zjrosen/swatch/internal/palette/domain"
)

// SharedSlot arbitrates between independently-loaded copies of the
// registry code within one process. Each copy offers its own instance
// at load time; the highest semantic version wins regardless of load
// order, and losing copies delegate to the winner. When a newer
// instance displaces an older one it shallow-adopts the older
// instance's entry and index maps first, so no registered data is lost
// across the handoff.
type SharedSlot struct {
	mu   sync.Mutex
	inst *palette.Registry
}

// NewSharedSlot creates an empty shared instance slot.
func NewSharedSlot() *SharedSlot {
	return &SharedSlot{}
}

// Offer presents a candidate instance and returns the instance the
// caller must use from now on. Re-offering a losing candidate after
// arbitration is a no-op that returns the established winner again.
func (s *SharedSlot) Offer(candidate *palette.Registry) *palette.Registry {
	if candidate == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.inst
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inst == nil {
		s.inst = candidate
		log.Debug(log.CatAuthority, "first registry instance installed",
			"registry", candidate.GUID(), "version", candidate.Version())
		return candidate
	}
	if s.inst == candidate {
		return candidate
	}

	if CompareVersions(s.inst.Version(), candidate.Version()) >= 0 {
		// Existing instance is same or newer; candidate becomes a
		// delegator.
		log.Debug(log.CatAuthority, "candidate adopts existing instance",
			"candidate", candidate.GUID(), "candidateVersion", candidate.Version(),
			"existing", s.inst.GUID(), "existingVersion", s.inst.Version())
		return s.inst
	}

	// Candidate is strictly newer: carry the older instance's data
	// forward, then replace it.
	candidate.AdoptFrom(s.inst)
	log.Info(log.CatAuthority, "newer registry instance takes over",
		"winner", candidate.GUID(), "winnerVersion", candidate.Version(),
		"loser", s.inst.GUID(), "loserVersion", s.inst.Version(),
		"adopted", candidate.Count())
	s.inst = candidate
	return candidate
}

// Current returns the winning instance, or nil before the first Offer.
func (s *SharedSlot) Current() *palette.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inst
}

var processShared = NewSharedSlot()

// ProcessShared returns the process-wide shared instance slot.
func ProcessShared() *SharedSlot {
	return processShared
}
