// Package config provides default values shared across the codegen packages.
//
// Values that are also exposed as tool settings (see pkg/config) are the
// fallbacks used when neither a flag nor an environment variable is set.
package config

import (
	"time"
)

// Output Defaults
const (
	// DefaultSourceOut is the root for generated Java sources
	DefaultSourceOut = "build/generated/sources/plugingen"

	// DefaultClassOut is the root for generated resources such as
	// META-INF/sponge_plugins.json and META-INF/MANIFEST.MF
	DefaultClassOut = "build/generated/resources/plugingen"

	// DefaultDirMode is the mode for created output directories
	DefaultDirMode = 0755

	// DefaultFileMode is the mode for created output files
	DefaultFileMode = 0644
)

// Parse Cache Defaults
const (
	// DefaultParseCacheEntries bounds the number of Java sources whose
	// declarations are kept between watch-mode regenerations
	DefaultParseCacheEntries = 4096

	// DefaultParseCacheTTL expires entries for sources that were not seen
	// again within this window
	DefaultParseCacheTTL = 30 * time.Minute
)

// Watch Defaults
const (
	// DefaultWatchDelay is how long the watcher waits for changes to settle
	// before regenerating
	DefaultWatchDelay = 500 * time.Millisecond
)
