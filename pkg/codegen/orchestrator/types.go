package orchestrator

import (
	"github.com/cubeengine/plugingen/pkg/codegen/packages"
	"github.com/cubeengine/plugingen/pkg/codegen/packages/javasource"
	"github.com/cubeengine/plugingen/pkg/codegen/packages/manifestmf"
	"github.com/cubeengine/plugingen/pkg/codegen/packages/sponge"
	"github.com/cubeengine/plugingen/pkg/config"
	"github.com/cubeengine/plugingen/pkg/plugins"
)

// DependencyKind selects one of the dependencies every plugin receives
type DependencyKind int

const (
	// DependencyCore is the dependency on the core plugin
	DependencyCore DependencyKind = iota
	// DependencyPlatformAPI is the dependency on the Sponge API
	DependencyPlatformAPI
)

func (k DependencyKind) String() string {
	switch k {
	case DependencyCore:
		return "core"
	case DependencyPlatformAPI:
		return "platform-api"
	default:
		return "unknown"
	}
}

// synthesized maps each kind to its fixed id and the option holding its version
var synthesized = map[DependencyKind]struct {
	id     string
	option string
}{
	DependencyCore:        {id: plugins.CoreID, option: config.OptionLibCubeVersion},
	DependencyPlatformAPI: {id: plugins.PlatformAPIID, option: config.OptionSpongeVersion},
}

// Config holds processor configuration
type Config struct {
	// Generator options for the compilation unit
	Options config.Options

	// Generators run for every declaration, in registration order.
	// Nil selects DefaultRegistry().
	Registry *packages.Registry
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Options:  config.Options{},
		Registry: DefaultRegistry(),
	}
}

// DefaultRegistry registers the wrapper source, the Sponge manifest and the
// jar manifest generators, in that order
func DefaultRegistry() *packages.Registry {
	registry := packages.NewRegistry()
	registry.Register("javasource", javasource.NewGenerator())
	registry.Register("sponge", sponge.NewGenerator())
	registry.Register("manifestmf", manifestmf.NewGenerator())
	return registry
}
