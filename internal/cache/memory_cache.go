package cache

import (
	"context"
	"sync"
	"time"

	"brewdash/internal/model"
)

type memoryEntry struct {
	analysis  *model.FourPAnalysis
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates an in-process cache, the default backend when no
// Redis is configured. Expired entries are dropped lazily on read.
func NewMemoryCache(ttl time.Duration) AnalysisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) (*model.FourPAnalysis, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if c.now().After(entry.expiresAt) {
		c.evict(key, entry.expiresAt)
		return nil, nil
	}
	return entry.analysis, nil
}

// evict drops an expired entry, re-checking under the write lock so a
// fresh Put racing with the read lock release is left alone.
func (c *memoryCache) evict(key string, expiresAt time.Time) {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && entry.expiresAt.Equal(expiresAt) {
		delete(c.entries, key)
	}
	c.mu.Unlock()
}

func (c *memoryCache) Put(_ context.Context, key string, analysis *model.FourPAnalysis) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{analysis: analysis, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}
