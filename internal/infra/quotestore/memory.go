package quotestore

import (
	"context"
	"sync"
	"time"

	"hotel-concierge/internal/domain/quote"
	"hotel-concierge/internal/pkg/clock"
)

// MemoryStore is the process-local quote ledger: a mutex-guarded map with
// lazy TTL sweeps. Cardinality is low, so one coarse lock is enough.
type MemoryStore struct {
	mu     sync.Mutex
	quotes map[string]quote.Quote
	ttl    time.Duration
	clock  clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		quotes: make(map[string]quote.Quote),
		ttl:    ttl,
		clock:  clk,
	}
}

func (s *MemoryStore) Store(_ context.Context, q *quote.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.quotes[q.ID] = *q
	return nil
}

// GetAndValidate returns the live quote for quoteID without consuming it.
// A mismatched reservation number leaves the quote in place so it stays
// usable with the correct reservation.
func (s *MemoryStore) GetAndValidate(_ context.Context, quoteID, reservationNumber string) (*quote.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	q, ok := s.quotes[quoteID]
	if !ok {
		return nil, quote.ErrNotFound
	}
	if !q.MatchesReservation(reservationNumber) {
		return nil, quote.ErrMismatch
	}

	out := q
	return &out, nil
}

// Consume removes the quote. Removing an absent id is a no-op.
func (s *MemoryStore) Consume(_ context.Context, quoteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.quotes, quoteID)
	return nil
}

func (s *MemoryStore) sweepLocked() {
	now := s.clock.Now()
	for id, q := range s.quotes {
		if q.Expired(now, s.ttl) {
			delete(s.quotes, id)
		}
	}
}
