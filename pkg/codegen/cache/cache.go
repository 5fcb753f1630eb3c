// Package cache keeps the declarations parsed from each source file so
// repeated discovery over an unchanged tree skips parsing.
package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/cubeengine/plugingen/pkg/plugins"
)

type entry struct {
	hash  string
	descs []plugins.Descriptor
}

// ParseCache is an in-memory LRU of parse results keyed by file path.
// It is safe for concurrent use.
type ParseCache struct {
	config  *Config
	cache   *lru.LRU[string, entry]
	metrics *metrics
}

// NewParseCache creates a new parse cache
func NewParseCache(config *Config) *ParseCache {
	if config == nil {
		config = DefaultConfig()
	}
	if config.MaxEntries < 1 {
		config.MaxEntries = 1
	}

	return &ParseCache{
		config:  config,
		cache:   lru.NewLRU[string, entry](config.MaxEntries, nil, config.TTL),
		metrics: newMetrics(),
	}
}

// Get returns the declarations parsed from path when content is unchanged.
// The result is a copy the caller may modify.
func (c *ParseCache) Get(path string, content []byte) ([]plugins.Descriptor, bool) {
	e, ok := c.cache.Get(path)
	if !ok || e.hash != ContentHash(path, content) {
		c.metrics.recordMiss()
		return nil, false
	}

	c.metrics.recordHit()
	return cloneDescriptors(e.descs), true
}

// Set records the declarations parsed from path, replacing any older entry
func (c *ParseCache) Set(path string, content []byte, descs []plugins.Descriptor) {
	c.cache.Add(path, entry{
		hash:  ContentHash(path, content),
		descs: cloneDescriptors(descs),
	})
}

// Stats returns cache statistics
func (c *ParseCache) Stats() Stats {
	stats := Stats{
		Hits:      c.metrics.getHits(),
		Misses:    c.metrics.getMisses(),
		ItemCount: int64(c.cache.Len()),
	}

	// Calculate hit rate
	total := stats.Hits + stats.Misses
	if total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}

	return stats
}

// cloneDescriptors copies descriptors deeply enough that appending to a
// copy's dependencies never reaches the cached slice
func cloneDescriptors(descs []plugins.Descriptor) []plugins.Descriptor {
	if descs == nil {
		return nil
	}
	out := make([]plugins.Descriptor, len(descs))
	for i, d := range descs {
		out[i] = d
		if d.Dependencies != nil {
			out[i].Dependencies = append([]plugins.Dependency(nil), d.Dependencies...)
		}
	}
	return out
}

// metrics tracks cache metrics
type metrics struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func newMetrics() *metrics {
	return &metrics{}
}

func (m *metrics) recordHit() {
	m.hits.Add(1)
}

func (m *metrics) recordMiss() {
	m.misses.Add(1)
}

func (m *metrics) getHits() int64 {
	return m.hits.Load()
}

func (m *metrics) getMisses() int64 {
	return m.misses.Load()
}
