package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the tier-1 distributed cache. Implementations are best-effort:
// the TicketCache logs failures and falls through to the other tier, so a
// Store must never be a hard dependency of a read.
type Store interface {
	// Get returns the payload for key, reporting ok=false on a clean miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the payload under key with the given expiry.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// redisStore adapts a go-redis client to the Store interface. Entries
// self-expire server side via SETEX, so readers never re-check freshness.
type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps rdb as a tier-1 Store. Returns nil for a nil client
// so callers can pass the result straight to NewTicketCache and degrade to
// tier-2-only operation.
func NewRedisStore(rdb *redis.Client) Store {
	if rdb == nil {
		return nil
	}
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	bs, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return bs, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return s.rdb.SetEx(ctx, key, payload, ttl).Err()
}
