// internal/store/memory.go
//
// In-memory record of the sessions played during one run.
// Feeds the closing tally; nothing outlives the process.
//
// Characteristics:
//   - Records are kept in the order they were saved.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Record summarises one finished session.
type Record struct {
	ID         string
	Word       string
	Won        bool
	Incorrect  int
	Guesses    int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Store defines the interface for session records.
type Store interface {
	// Save appends a finished session. Records need a non-empty ID.
	Save(ctx context.Context, r Record) error

	// List returns all records in save order.
	List(ctx context.Context) ([]Record, error)
}

// Tally counts wins among records.
func Tally(records []Record) (wins, played int) {
	for _, r := range records {
		if r.Won {
			wins++
		}
	}
	return wins, len(records)
}

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex // guards records
	records []Record
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Save appends r.
func (m *memory) Save(ctx context.Context, r Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.ID == "" {
		return errors.New("store: record without id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

// List returns a copy of the saved records.
func (m *memory) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Record(nil), m.records...), nil
}
