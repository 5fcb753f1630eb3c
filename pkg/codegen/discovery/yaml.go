package discovery

import (
	"context"
	"fmt"
	"os"

	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/plugins"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DeclarationsFile is the on-disk format read by YAMLDiscoverer
type DeclarationsFile struct {
	Declarations []Declaration `yaml:"declarations"`
}

// Declaration is one annotated class described without Java sources
type Declaration struct {
	Name         string               `yaml:"name"`
	Package      string               `yaml:"package"`
	Core         bool                 `yaml:"core"`
	Dependencies []plugins.Dependency `yaml:"dependencies"`
}

// Descriptor converts the declaration into a descriptor
func (d Declaration) Descriptor(source string) plugins.Descriptor {
	desc := plugins.Descriptor{
		SimpleName: d.Name,
		Package:    d.Package,
		Core:       d.Core,
		Source:     source,
	}
	if len(d.Dependencies) > 0 {
		desc.Dependencies = append([]plugins.Dependency(nil), d.Dependencies...)
	}
	return desc
}

// YAMLDiscoverer reads declarations from a YAML file
type YAMLDiscoverer struct {
	path string
	log  *logrus.Logger
}

// NewYAMLDiscoverer creates a discoverer for the declarations file at path
func NewYAMLDiscoverer(path string, log *logrus.Logger) *YAMLDiscoverer {
	if log == nil {
		log = logrus.New()
	}
	return &YAMLDiscoverer{
		path: path,
		log:  log,
	}
}

// Discover implements Discoverer
func (d *YAMLDiscoverer) Discover(ctx context.Context) (*codegen.Round, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, NewDiscoveryFailedError(d.path, err)
	}

	file, err := ParseDeclarations(data)
	if err != nil {
		return nil, NewDiscoveryFailedError(d.path, err)
	}

	round := &codegen.Round{}
	for _, decl := range file.Declarations {
		round.Add(decl.Descriptor(d.path))
	}
	d.log.Debugf("Read %d declarations from %s", round.Len(), d.path)

	return round, nil
}

// ParseDeclarations decodes and validates a declarations document.
// Core declarations take no dependencies.
func ParseDeclarations(data []byte) (*DeclarationsFile, error) {
	var file DeclarationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	for i, decl := range file.Declarations {
		if decl.Name == "" {
			return nil, NewInvalidDeclarationError(i, "name is required")
		}
		if decl.Core && len(decl.Dependencies) > 0 {
			return nil, NewInvalidDeclarationError(i, "core declarations cannot declare dependencies")
		}
		for j, dep := range decl.Dependencies {
			if dep.ID == "" {
				return nil, NewInvalidDeclarationError(i, fmt.Sprintf("dependency %d has no id", j))
			}
		}
	}

	return &file, nil
}
