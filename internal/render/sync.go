package render

import (
	"strings"
	"sync"

	"github.com/zjrosen/swatch/internal/log"
)

// Synchronizer updates palette-bearing descriptors after registry
// growth. It runs exactly once per register/migration batch, after all
// entries in the batch are committed, so a batch of N additions costs
// one descriptor pass.
type Synchronizer struct {
	mu         sync.Mutex
	pathPrefix string
	base       map[*Descriptor]struct{}
}

// NewSynchronizer creates a synchronizer using the fixed palette asset
// prefix.
func NewSynchronizer() *Synchronizer {
	return NewSynchronizerWithPrefix(PaletteAssetPrefix)
}

// NewSynchronizerWithPrefix creates a synchronizer with a custom asset
// prefix. Used by hosts that mount palette sheets elsewhere.
func NewSynchronizerWithPrefix(prefix string) *Synchronizer {
	return &Synchronizer{
		pathPrefix: prefix,
		base:       make(map[*Descriptor]struct{}),
	}
}

// MarkBase registers a descriptor as always palette-bearing regardless
// of its sprite path. The hosts ship a small fixed set of these (the
// default character sheets) whose paths predate the palette prefix.
func (s *Synchronizer) MarkBase(d *Descriptor) {
	if d == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base[d] = struct{}{}
}

// SyncAfterGrowth brings descriptors up to date after addedCount new
// entries were committed, with newCount the post-growth registry count.
// Only descriptors whose FrameHeight falls in [newCount-addedCount,
// newCount) are touched: a height outside that range reflects an
// unrelated, caller-specific frame count, and rewriting it would
// corrupt that sheet's slicing. Returns the number of descriptors
// updated.
func (s *Synchronizer) SyncAfterGrowth(newCount, addedCount int, descriptors []*Descriptor) int {
	if addedCount <= 0 || newCount <= 0 {
		return 0
	}
	threshold := newCount - addedCount

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for _, d := range descriptors {
		if d == nil {
			continue
		}
		if d.FrameHeight < threshold || d.FrameHeight >= newCount {
			continue
		}
		if !s.isPaletteBearing(d) {
			continue
		}
		d.FrameHeight = newCount
		updated++
	}

	log.Debug(log.CatSync, "descriptor sync pass",
		"newCount", newCount, "added", addedCount, "updated", updated)
	return updated
}

func (s *Synchronizer) isPaletteBearing(d *Descriptor) bool {
	if _, ok := s.base[d]; ok {
		return true
	}
	return strings.HasPrefix(d.SpritePathPrefix, s.pathPrefix)
}
