package artifacts

import (
	"github.com/cubeengine/plugingen/pkg/codegen"
)

// MemoryFiler keeps generated files in memory, for dry runs and tests
type MemoryFiler struct {
	created map[key]int
	files   []codegen.GeneratedFile
}

// NewMemoryFiler creates an empty in-memory filer
func NewMemoryFiler() *MemoryFiler {
	return &MemoryFiler{
		created: make(map[key]int),
	}
}

// Create records the file
func (m *MemoryFiler) Create(file codegen.GeneratedFile) error {
	k := keyOf(file)
	if _, exists := m.created[k]; exists {
		return codegen.NewFileAlreadyCreatedError(file.Path)
	}
	m.created[k] = len(m.files)
	m.files = append(m.files, file)
	return nil
}

// Created returns the recorded files in creation order
func (m *MemoryFiler) Created() []codegen.GeneratedFile {
	return m.files
}

// Get returns a recorded file
func (m *MemoryFiler) Get(location codegen.Location, path string) (codegen.GeneratedFile, bool) {
	i, ok := m.created[key{location: location, path: path}]
	if !ok {
		return codegen.GeneratedFile{}, false
	}
	return m.files[i], true
}
