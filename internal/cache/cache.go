// Package cache owns the single cached collection of derived tickets. It
// layers a distributed Redis tier over an in-process tier and refreshes
// both from the upstream provider on a full miss. The distributed tier is
// a pure optimization: every failure there is logged and treated as a
// miss, never surfaced to the caller.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/iliyamo/tickethub/internal/model"
	"github.com/iliyamo/tickethub/internal/ticket"
)

// Key is the single logical slot holding the whole ticket collection.
// There is no per-ticket caching.
const Key = "tickets:all"

// Gateway is the slice of the upstream client the cache needs for a
// refresh. Both calls are all-or-nothing: one failure fails the refresh.
type Gateway interface {
	FetchTasks(ctx context.Context) ([]model.RawTask, error)
	FetchUsers(ctx context.Context) ([]model.RawUser, error)
}

// RefreshFunc observes a completed refresh. It runs on the request
// goroutine and must not block; publishers fire and forget.
type RefreshFunc func(count int, elapsed time.Duration)

// TicketCache coordinates the two tiers and the upstream refresh.
//
// Reads consult tier-1 first (entries self-expire in Redis, no TTL
// re-check), then tier-2 with a freshness check, then refresh. Concurrent
// misses may each run the refresh; that is benign since entries derived
// within one TTL window are value-identical and the last writer wins.
type TicketCache struct {
	store     Store // tier-1, may be nil
	memory    *Memory
	gateway   Gateway
	ttl       time.Duration
	now       func() time.Time
	onRefresh RefreshFunc
}

// NewTicketCache builds the cache. store may be nil (tier-2 only).
// onRefresh may be nil.
func NewTicketCache(store Store, gateway Gateway, ttl time.Duration, onRefresh RefreshFunc) *TicketCache {
	return &TicketCache{
		store:     store,
		memory:    NewMemory(ttl),
		gateway:   gateway,
		ttl:       ttl,
		now:       time.Now,
		onRefresh: onRefresh,
	}
}

// GetTickets returns the derived ticket collection, from tier-1, tier-2
// or a fresh upstream round trip, in that order. Refresh failures
// propagate unwrapped enough for errors.Is against the upstream and
// derivation sentinels; there is no fallback to stale data.
func (tc *TicketCache) GetTickets(ctx context.Context) ([]model.Ticket, error) {
	if tc.store != nil {
		payload, ok, err := tc.store.Get(ctx, Key)
		if err != nil {
			log.Printf("cache: tier-1 read failed: %v", err)
		} else if ok {
			var tickets []model.Ticket
			if err := json.Unmarshal(payload, &tickets); err != nil {
				log.Printf("cache: tier-1 payload malformed: %v", err)
			} else {
				return tickets, nil
			}
		}
	}

	if tickets, ok := tc.memory.Get(tc.now()); ok {
		return tickets, nil
	}

	return tc.refresh(ctx)
}

// refresh performs the full upstream round trip pair, derives the ticket
// collection and repopulates both tiers. All-or-nothing: partial success
// (tasks fetched, users failed) fails the whole refresh.
func (tc *TicketCache) refresh(ctx context.Context) ([]model.Ticket, error) {
	started := tc.now()

	tasks, err := tc.gateway.FetchTasks(ctx)
	if err != nil {
		return nil, err
	}
	users, err := tc.gateway.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	tickets, err := ticket.Derive(tasks, users)
	if err != nil {
		return nil, err
	}

	now := tc.now()
	if tc.store != nil {
		if payload, err := json.Marshal(tickets); err != nil {
			log.Printf("cache: marshal for tier-1 failed: %v", err)
		} else if err := tc.store.Set(ctx, Key, payload, tc.ttl); err != nil {
			log.Printf("cache: tier-1 write failed: %v", err)
		}
	}
	tc.memory.Put(tickets, now)

	if tc.onRefresh != nil {
		tc.onRefresh(len(tickets), now.Sub(started))
	}
	return tickets, nil
}
