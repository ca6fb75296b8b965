package quotestore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-concierge/internal/domain/quote"
	"hotel-concierge/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const quoteKeyPrefix = "quote:"

// RedisStore is the shared-cache flavor of the quote ledger. Expiry is
// delegated to redis key TTLs, so there is no sweep to run.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Store(ctx context.Context, q *quote.Quote) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return errs.Wrap(err, "failed to encode quote")
	}

	if err := s.client.Set(ctx, quoteKeyPrefix+q.ID, payload, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store quote")
	}
	return nil
}

func (s *RedisStore) GetAndValidate(ctx context.Context, quoteID, reservationNumber string) (*quote.Quote, error) {
	payload, err := s.client.Get(ctx, quoteKeyPrefix+quoteID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, quote.ErrNotFound
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read quote")
	}

	var q quote.Quote
	if err := json.Unmarshal(payload, &q); err != nil {
		return nil, errs.Wrap(err, "failed to decode quote")
	}

	if !q.MatchesReservation(reservationNumber) {
		return nil, quote.ErrMismatch
	}

	return &q, nil
}

func (s *RedisStore) Consume(ctx context.Context, quoteID string) error {
	// DEL of a missing key is a no-op, matching the idempotent contract.
	if err := s.client.Del(ctx, quoteKeyPrefix+quoteID).Err(); err != nil {
		return errs.Wrap(err, "failed to consume quote")
	}
	return nil
}
