package artifacts

import (
	"github.com/cubeengine/plugingen/pkg/codegen"
	defaults "github.com/cubeengine/plugingen/pkg/codegen/config"
)

// Filer creates generated files in the build output tree. A Filer serves
// exactly one compilation unit: creating the same file twice is an error.
type Filer interface {
	// Create writes a generated file under the root selected by its location
	Create(file codegen.GeneratedFile) error

	// Created returns the files created so far, in creation order
	Created() []codegen.GeneratedFile
}

// Config holds the output roots of a file system filer
type Config struct {
	SourceRoot string // Root for LocationSourceOutput files
	ClassRoot  string // Root for LocationClassOutput files
	DirMode    uint32
	FileMode   uint32
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		SourceRoot: defaults.DefaultSourceOut,
		ClassRoot:  defaults.DefaultClassOut,
		DirMode:    defaults.DefaultDirMode,
		FileMode:   defaults.DefaultFileMode,
	}
}

// key identifies an output file across both roots
type key struct {
	location codegen.Location
	path     string
}

func keyOf(file codegen.GeneratedFile) key {
	return key{location: file.Location, path: file.Path}
}
