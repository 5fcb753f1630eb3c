package codegen

import (
	"github.com/cubeengine/plugingen/pkg/plugins"
)

// Location selects the output root a generated file is written under
type Location string

const (
	// LocationSourceOutput is the generated sources root
	LocationSourceOutput Location = "source"
	// LocationClassOutput is the compiled classes/resources root
	LocationClassOutput Location = "class"
)

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	Location Location // Output root
	Path     string   // Slash separated path relative to the output root
	Content  []byte
	Size     int64
}

// NewGeneratedFile creates a generated file and records its size
func NewGeneratedFile(location Location, path string, content []byte) GeneratedFile {
	return GeneratedFile{
		Location: location,
		Path:     path,
		Content:  content,
		Size:     int64(len(content)),
	}
}

// Round is one compilation round as seen by the generator: the annotated
// declarations discovered so far and whether this is the final round.
type Round struct {
	Core    []plugins.Descriptor
	Modules []plugins.Descriptor

	// Over is set on the terminal round, after all sources are processed
	Over bool
}

// CoreDeclarations returns the declarations carrying the core marker
func (r *Round) CoreDeclarations() []plugins.Descriptor {
	return r.Core
}

// ModuleDeclarations returns the declarations carrying the module marker
func (r *Round) ModuleDeclarations() []plugins.Descriptor {
	return r.Modules
}

// Add files a descriptor under the set matching its marker
func (r *Round) Add(desc plugins.Descriptor) {
	if desc.Core {
		r.Core = append(r.Core, desc)
		return
	}
	r.Modules = append(r.Modules, desc)
}

// Len returns the number of declarations in the round
func (r *Round) Len() int {
	return len(r.Core) + len(r.Modules)
}

// MergeRounds concatenates rounds in order. The result is terminal only
// if every input is.
func MergeRounds(rounds ...*Round) *Round {
	merged := &Round{Over: len(rounds) > 0}
	for _, r := range rounds {
		if r == nil {
			continue
		}
		merged.Core = append(merged.Core, r.Core...)
		merged.Modules = append(merged.Modules, r.Modules...)
		merged.Over = merged.Over && r.Over
	}
	return merged
}
