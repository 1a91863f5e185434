package palette

import (
	"errors"
	"fmt"
)

// Registry errors
var (
	// ErrValidation is the sentinel all ValidationErrors unwrap to.
	ErrValidation = errors.New("palette validation failed")

	// ErrIndexOutOfOrder is returned by RegisterAt when the caller-supplied
	// index is not exactly Count()+1. Migration must replay entries in
	// strict index order so that later entries can rely on earlier ones.
	ErrIndexOutOfOrder = errors.New("index must be the next free index")

	// ErrDuplicateID is returned by RegisterAt when the id is already
	// registered. Plain Register treats duplicates as a no-op instead.
	ErrDuplicateID = errors.New("palette id already registered")
)

// ValidationError describes why a registration was rejected. The
// registry is never mutated when one of these is returned.
type ValidationError struct {
	Field  string // "id", "name", "colors", or "color"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap lets callers match any validation failure with
// errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
