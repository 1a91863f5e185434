// Package pubsub provides a generic publish/subscribe event system.
// The registry service publishes growth events through a broker so
// that consumers (the TUI, the log fan-out) observe batches without
// the registry knowing about them.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// CreatedEvent signals a newly produced value, e.g. a log entry.
	CreatedEvent EventType = "created"
	// GrowthEvent signals that a register/migration batch committed new
	// palette entries.
	GrowthEvent EventType = "growth"
	// AuthorityEvent signals that the registry (re)took ownership of the
	// host accessor slot.
	AuthorityEvent EventType = "authority"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
