// Package store provides persistence for guessing-game rounds.
package store

import "time"

// Round is one completed comparison.
type Round struct {
	ID      string
	Secret  uint32
	Guess   uint32
	Outcome string
	Ts      time.Time
}

// Store is the interface for round persistence.
type Store interface {
	// Record appends a round. An empty ID is assigned by the store.
	Record(r Round) error
	// Recent returns up to limit rounds, newest first. A limit <= 0 returns all.
	Recent(limit int) ([]Round, error)
	// Close releases resources.
	Close() error
}
