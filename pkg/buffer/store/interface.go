package store

import "github.com/garunski/telemetry-buffer/pkg/buffer/events"

// EventStore defines the interface for cached-event storage operations.
// This interface allows for better testability and reduced coupling.
type EventStore interface {
	// Put writes an event under the given key
	Put(key string, event events.Event) error

	// Remove deletes the entry for the given key
	Remove(key string) error

	// Iterate invokes visit for every stored entry. Iteration order is
	// store-defined and not guaranteed chronological.
	Iterate(visit func(key string, event events.Event) error) error

	// Count returns the number of stored entries
	Count() (int, error)

	// List returns all stored entries as a map of key to event
	List() (map[string]events.Event, error)

	// Purge removes every stored entry
	Purge() error
}

// Ensure *PendingStore implements EventStore interface
var _ EventStore = (*PendingStore)(nil)
