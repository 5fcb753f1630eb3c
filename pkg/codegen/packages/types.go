package packages

import (
	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/plugins"
)

// Generator renders the files for one plugin declaration
type Generator interface {
	// Generate creates the files for the requested plugin
	Generate(req *GenerateRequest) ([]codegen.GeneratedFile, error)

	// GetName returns the name of the generator
	GetName() string

	// GetConfigFiles returns the paths this generator creates for a
	// descriptor. Creating any other path is a generation failure.
	GetConfigFiles(desc *plugins.Descriptor) []string
}

// GenerateRequest represents a render request for one declaration
type GenerateRequest struct {
	// Declaration, with the synthesized dependencies already appended
	Descriptor *plugins.Descriptor

	// Option lookups resolved for this declaration
	Metadata *Metadata
}

// Registry manages generators in registration order
type Registry struct {
	generators map[string]Generator
	order      []string
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry. Registering a name again
// replaces the generator but keeps its position.
func (r *Registry) Register(name string, gen Generator) {
	if _, exists := r.generators[name]; !exists {
		r.order = append(r.order, name)
	}
	r.generators[name] = gen
}

// List returns all registered generators in registration order
func (r *Registry) List() []Generator {
	gens := make([]Generator, 0, len(r.order))
	for _, name := range r.order {
		gens = append(gens, r.generators[name])
	}
	return gens
}

// Names returns the registered generator names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
