package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Generator option keys. The names are the ones the build passes to the
// generator and must stay stable.
const (
	OptionVersion        = "cubeengine.module.version"
	OptionSourceVersion  = "cubeengine.module.sourceversion"
	OptionID             = "cubeengine.module.id"
	OptionName           = "cubeengine.module.name"
	OptionDescription    = "cubeengine.module.description"
	OptionTeam           = "cubeengine.module.team"
	OptionURL            = "cubeengine.module.url"
	OptionLibCubeVersion = "cubeengine.module.libcube.version"
	OptionSpongeVersion  = "cubeengine.module.sponge.version"
)

const (
	// Unknown is the value of any option that was not supplied
	Unknown = "unknown"

	// UnresolvedSourceVersion is what the build passes when git metadata
	// was not substituted into the template
	UnresolvedSourceVersion = "${githead.branch}-${githead.commit}"
)

// SupportedOptions lists every option key the generator reads
var SupportedOptions = []string{
	OptionVersion,
	OptionSourceVersion,
	OptionID,
	OptionName,
	OptionDescription,
	OptionTeam,
	OptionURL,
	OptionLibCubeVersion,
	OptionSpongeVersion,
}

// Options holds the generator options for one compilation unit
type Options map[string]string

// GetOrDefault returns the option value, or def when the option is absent
func (o Options) GetOrDefault(key, def string) string {
	if value, ok := o[key]; ok {
		return value
	}
	return def
}

// Get returns the option value, or Unknown when the option is absent
func (o Options) Get(key string) string {
	return o.GetOrDefault(key, Unknown)
}

// SourceVersion returns the normalized source version
func (o Options) SourceVersion() string {
	return NormalizeSourceVersion(o.Get(OptionSourceVersion))
}

// Merge returns a copy of o overlaid with other. Values in other win.
func (o Options) Merge(other Options) Options {
	merged := make(Options, len(o)+len(other))
	for k, v := range o {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Keys returns the option keys in sorted order
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeSourceVersion maps the unresolved build placeholder to Unknown
func NormalizeSourceVersion(version string) string {
	if version == UnresolvedSourceVersion {
		return Unknown
	}
	return version
}

// ParseOptions parses javac style "key=value" assignments. A bare key is
// recorded with an empty value.
func ParseOptions(assignments []string) (Options, error) {
	opts := make(Options, len(assignments))
	for _, assignment := range assignments {
		key, value, _ := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid option %q: missing key", assignment)
		}
		opts[key] = value
	}
	return opts, nil
}

// OptionEnvName returns the environment variable an option is read from,
// e.g. cubeengine.module.version -> CUBEENGINE_MODULE_VERSION
func OptionEnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// LoadOptionsFromEnv reads every supported option from the environment
func LoadOptionsFromEnv() Options {
	opts := make(Options)
	for _, key := range SupportedOptions {
		if value, ok := os.LookupEnv(OptionEnvName(key)); ok {
			opts[key] = value
		}
	}
	return opts
}
