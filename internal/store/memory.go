package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-memory store for testing.
type Memory struct {
	mu     sync.RWMutex
	rounds []Round
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Record appends a round.
func (m *Memory) Record(r Round) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Ts.IsZero() {
		r.Ts = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds = append(m.rounds, r)
	return nil
}

// Recent returns up to limit rounds, newest first.
func (m *Memory) Recent(limit int) ([]Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.rounds) == 0 {
		return nil, nil
	}
	n := len(m.rounds)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Round, 0, n)
	for i := len(m.rounds) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.rounds[i])
	}
	return out, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
