package plan

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/metrics"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the plan document cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache settings used when none are configured
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedDocumentEntry struct {
	Version  string
	Document *domain.PlanDocument
	CachedAt time.Time
}

// documentCache keeps recently read plan documents keyed by plan id.
// Cached documents are shared; callers must not modify them.
type documentCache struct {
	lru    *expirable.LRU[string, *cachedDocumentEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newDocumentCache(config CacheConfig) *documentCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	if config.TTL <= 0 {
		config.TTL = DefaultCacheTTL
	}
	return &documentCache{
		lru: expirable.NewLRU[string, *cachedDocumentEntry](config.Size, nil, config.TTL),
	}
}

// Get returns the cached document for id; entries from an older schema count as misses
func (c *documentCache) Get(id string) (*domain.PlanDocument, bool) {
	entry, found := c.lru.Get(id)
	if found && entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		found = false
	}
	if !found {
		c.misses.Add(1)
		metrics.PlanCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}
	c.hits.Add(1)
	metrics.PlanCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return entry.Document, true
}

func (c *documentCache) Set(id string, doc *domain.PlanDocument) {
	c.lru.Add(id, &cachedDocumentEntry{
		Version:  CacheSchemaVersion,
		Document: doc,
		CachedAt: time.Now(),
	})
}

func (c *documentCache) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *documentCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
