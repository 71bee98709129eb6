package cache

import (
	"sync"
	"time"

	"github.com/iliyamo/tickethub/internal/model"
)

// Memory is the in-process cache tier: a single slot holding the derived
// ticket collection together with its write time. Entries older than the
// TTL are treated as absent. Safe for concurrent use.
type Memory struct {
	mu        sync.RWMutex
	ttl       time.Duration
	tickets   []model.Ticket
	writeTime time.Time
}

// NewMemory returns an empty in-process tier with the given TTL.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl}
}

// Get returns the cached collection when an entry exists and is still
// within the TTL window relative to now. A stale or missing entry reports
// ok=false.
func (m *Memory) Get(now time.Time) ([]model.Ticket, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.tickets == nil || now.Sub(m.writeTime) >= m.ttl {
		return nil, false
	}
	return m.tickets, true
}

// Put replaces the cached collection and stamps it with now. Consumers of
// Get treat the slice as read-only, so no copy is taken.
func (m *Memory) Put(tickets []model.Ticket, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets = tickets
	m.writeTime = now
}
