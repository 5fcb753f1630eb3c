package packages

import (
	"testing"

	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/plugins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGenerator is a mock implementation of Generator for testing
type mockGenerator struct {
	name        string
	configFiles []string
}

func (m *mockGenerator) Generate(req *GenerateRequest) ([]codegen.GeneratedFile, error) {
	return []codegen.GeneratedFile{
		codegen.NewGeneratedFile(codegen.LocationClassOutput, "test.txt", []byte("test content")),
	}, nil
}

func (m *mockGenerator) GetName() string {
	return m.name
}

func (m *mockGenerator) GetConfigFiles(desc *plugins.Descriptor) []string {
	return m.configFiles
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()

	require.NotNil(t, registry)
	assert.NotNil(t, registry.generators)
	assert.Empty(t, registry.List())
	assert.Empty(t, registry.Names())
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()
	gen := &mockGenerator{name: "test-gen", configFiles: []string{"config.json"}}

	registry.Register("test", gen)

	require.Len(t, registry.List(), 1)
	assert.Same(t, gen, registry.List()[0])
	assert.Equal(t, []string{"test"}, registry.Names())
}

func TestRegistry_KeepsRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	gen1 := &mockGenerator{name: "gen1"}
	gen2 := &mockGenerator{name: "gen2"}
	gen3 := &mockGenerator{name: "gen3"}

	registry.Register("source", gen1)
	registry.Register("manifest", gen2)
	registry.Register("mf", gen3)

	assert.Equal(t, []string{"source", "manifest", "mf"}, registry.Names())
	list := registry.List()
	require.Len(t, list, 3)
	assert.Same(t, gen1, list[0])
	assert.Same(t, gen2, list[1])
	assert.Same(t, gen3, list[2])
}

func TestRegistry_ReplaceKeepsPosition(t *testing.T) {
	registry := NewRegistry()
	registry.Register("a", &mockGenerator{name: "a"})
	registry.Register("b", &mockGenerator{name: "b"})
	replacement := &mockGenerator{name: "a2"}
	registry.Register("a", replacement)

	assert.Equal(t, []string{"a", "b"}, registry.Names())
	assert.Same(t, replacement, registry.List()[0])
}

func TestRegistry_NamesIsACopy(t *testing.T) {
	registry := NewRegistry()
	registry.Register("a", &mockGenerator{name: "a"})

	names := registry.Names()
	names[0] = "mutated"

	assert.Equal(t, []string{"a"}, registry.Names())
}
