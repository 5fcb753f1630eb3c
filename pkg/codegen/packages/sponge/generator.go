package sponge

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/codegen/packages"
	"github.com/cubeengine/plugingen/pkg/plugins"
)

// ManifestPath is where the Sponge plugin loader looks for plugin metadata
const ManifestPath = plugins.ManifestFile

// Generator renders META-INF/sponge_plugins.json
type Generator struct{}

// NewGenerator creates a new Sponge manifest generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate creates the plugin manifest for the declaration
func (g *Generator) Generate(req *packages.GenerateRequest) ([]codegen.GeneratedFile, error) {
	if err := packages.ValidateRequest(req); err != nil {
		return nil, err
	}

	content, err := g.generateManifestJSON(req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", ManifestPath, err)
	}

	return []codegen.GeneratedFile{
		codegen.NewGeneratedFile(codegen.LocationClassOutput, ManifestPath, content),
	}, nil
}

// GetName returns the name of the generator
func (g *Generator) GetName() string {
	return "sponge"
}

// GetConfigFiles returns the list of files this generator creates
func (g *Generator) GetConfigFiles(desc *plugins.Descriptor) []string {
	return []string{ManifestPath}
}

// PluginEntry builds the manifest entry for a declaration
func PluginEntry(desc *plugins.Descriptor, meta *packages.Metadata) plugins.PluginEntry {
	deps := make([]plugins.Dependency, len(desc.Dependencies))
	copy(deps, desc.Dependencies)

	return plugins.PluginEntry{
		ID:          meta.ID,
		Name:        meta.Name,
		Version:     meta.Version,
		Entrypoint:  desc.PluginQualifiedName(),
		Description: meta.Description,
		Links: plugins.Links{
			Homepage: meta.URL,
		},
		Contributors: []plugins.Contributor{
			{Name: meta.Team},
		},
		Dependencies: deps,
		Properties: map[string]string{
			plugins.SourceVersionProperty: meta.SourceVersion,
		},
	}
}

func (g *Generator) generateManifestJSON(req *packages.GenerateRequest) ([]byte, error) {
	manifest := plugins.NewManifest(PluginEntry(req.Descriptor, req.Metadata))

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(manifest); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
