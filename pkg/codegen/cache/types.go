package cache

import (
	"time"

	defaults "github.com/cubeengine/plugingen/pkg/codegen/config"
)

// Config holds parse cache configuration
type Config struct {
	// MaxEntries bounds the number of source files kept
	MaxEntries int

	// TTL expires entries not refreshed within this duration. Zero keeps
	// entries until evicted.
	TTL time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxEntries: defaults.DefaultParseCacheEntries,
		TTL:        defaults.DefaultParseCacheTTL,
	}
}

// Stats represents cache statistics
type Stats struct {
	Hits      int64
	Misses    int64
	ItemCount int64
	HitRate   float64
}
