package manifestmf

import (
	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/codegen/packages"
	"github.com/cubeengine/plugingen/pkg/plugins"
)

const (
	// ManifestPath is the jar manifest location
	ManifestPath = "META-INF/MANIFEST.MF"

	// Header is the only line of the placeholder manifest
	Header = "Manifest-Version: 1.0\n"
)

// Generator writes the placeholder jar manifest
type Generator struct{}

// NewGenerator creates a new MANIFEST.MF generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate creates META-INF/MANIFEST.MF
func (g *Generator) Generate(req *packages.GenerateRequest) ([]codegen.GeneratedFile, error) {
	if err := packages.ValidateRequest(req); err != nil {
		return nil, err
	}
	return []codegen.GeneratedFile{
		codegen.NewGeneratedFile(codegen.LocationClassOutput, ManifestPath, []byte(Header)),
	}, nil
}

// GetName returns the name of the generator
func (g *Generator) GetName() string {
	return "manifestmf"
}

// GetConfigFiles returns the list of files this generator creates
func (g *Generator) GetConfigFiles(desc *plugins.Descriptor) []string {
	return []string{ManifestPath}
}
