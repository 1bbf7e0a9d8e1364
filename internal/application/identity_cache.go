package application

import (
	"sync"
	"time"

	"github.com/vidserve/backend/internal/domain/entity"
)

type cacheEntry struct {
	identity entity.Identity
	loadedAt time.Time
}

// IdentityCache is a process-local map from user id to a previously loaded
// identity projection. Entries older than the TTL are treated as absent and
// refreshed on next lookup; there is no eviction beyond that, so the map
// grows with the set of distinct logged-in users. Each process holds its own
// cache; there is no cross-process coherency.
type IdentityCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func NewIdentityCache(ttl time.Duration) *IdentityCache {
	return &IdentityCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached identity if the entry is younger than the TTL.
func (c *IdentityCache) Get(userID string) (*entity.Identity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[userID]
	if !ok || c.now().Sub(e.loadedAt) >= c.ttl {
		return nil, false
	}
	id := e.identity
	return &id, true
}

// Put stores the identity with the current timestamp, overwriting any
// existing entry for the same user.
func (c *IdentityCache) Put(id entity.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id.UserID] = cacheEntry{identity: id, loadedAt: c.now()}
}

// Len reports the number of entries, fresh or stale.
func (c *IdentityCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
