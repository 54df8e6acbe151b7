package market

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"craft-planner/core/procurement"

	"golang.org/x/sync/singleflight"
)

// cachedSnapshot is a snapshot together with its expiry bookkeeping.
type cachedSnapshot struct {
	snapshot *Snapshot
	built    time.Time
	ttl      time.Duration
}

func (c *cachedSnapshot) isExpired(now time.Time) bool {
	if c.ttl == 0 {
		return true
	}
	return now.Sub(c.built) > c.ttl
}

// SnapshotCache reuses snapshots per item set for a TTL and collapses concurrent
// refreshes of the same set into one oracle call.
type SnapshotCache struct {
	oracle PriceOracle
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]*cachedSnapshot
	sf      singleflight.Group
}

// NewSnapshotCache wraps oracle. A zero ttl disables reuse but keeps stampede protection.
func NewSnapshotCache(oracle PriceOracle, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		oracle:  oracle,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*cachedSnapshot),
	}
}

// Get returns a fresh snapshot covering ids, fetching one when none is cached or it expired.
func (c *SnapshotCache) Get(ctx context.Context, ids []procurement.ItemID) (*Snapshot, error) {
	ids = normalizeIDs(ids)
	key := cacheKey(ids)

	if snap, ok := c.lookup(key); ok {
		return snap, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Another caller may have stored it while we waited for the flight.
		if snap, ok := c.lookup(key); ok {
			return snap, nil
		}

		snap, err := c.oracle.Quotes(ctx, ids)
		if err != nil {
			return nil, err
		}

		now := c.now()
		c.mu.Lock()
		c.pruneLocked(now)
		c.entries[key] = &cachedSnapshot{snapshot: snap, built: now, ttl: c.ttl}
		c.mu.Unlock()
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

func (c *SnapshotCache) lookup(key string) (*Snapshot, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || entry.isExpired(c.now()) {
		return nil, false
	}
	return entry.snapshot, true
}

// pruneLocked drops expired entries. c.mu must be held for writing.
func (c *SnapshotCache) pruneLocked(now time.Time) {
	for key, entry := range c.entries {
		if entry.isExpired(now) {
			delete(c.entries, key)
		}
	}
}

// Invalidate drops the snapshot cached for ids.
func (c *SnapshotCache) Invalidate(ids []procurement.ItemID) {
	key := cacheKey(normalizeIDs(ids))
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateAll drops every cached snapshot.
func (c *SnapshotCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*cachedSnapshot)
	c.mu.Unlock()
}

// Quotes implements PriceOracle so a cache can stand wherever an oracle is expected.
func (c *SnapshotCache) Quotes(ctx context.Context, ids []procurement.ItemID) (*Snapshot, error) {
	return c.Get(ctx, ids)
}

func cacheKey(ids []procurement.ItemID) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}
