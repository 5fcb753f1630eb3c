package plugins

import (
	"strings"
)

const (
	// IDPrefix is prepended to every generated plugin id
	IDPrefix = "cubeengine_"

	// CoreID is the fixed id of the core plugin
	CoreID = IDPrefix + "core"

	// PlatformAPIID is the id of the Sponge platform API dependency
	PlatformAPIID = "spongeapi"

	// PluginClassPrefix is prepended to the annotated class name to form the generated class name
	PluginClassPrefix = "Plugin"
)

// Dependency is a single plugin dependency as written into the manifest
type Dependency struct {
	ID       string `json:"id" yaml:"id"`
	Version  string `json:"version" yaml:"version"`
	Optional bool   `json:"optional" yaml:"optional"`
}

// NewDependency creates a dependency record
func NewDependency(id, version string, optional bool) Dependency {
	return Dependency{
		ID:       id,
		Version:  version,
		Optional: optional,
	}
}

// Kind distinguishes the two marker annotations
type Kind string

const (
	KindModule Kind = "module"
	KindCore   Kind = "core"
)

// Descriptor summarizes one annotated declaration
type Descriptor struct {
	SimpleName   string       // Annotated class name, e.g. "Teleport"
	Package      string       // Enclosing package, empty for the default package
	Core         bool         // Declaration carries the core marker
	Dependencies []Dependency // Declared dependencies, in declaration order
	Source       string       // Where the declaration was found (file path), informational
}

// Kind returns the marker kind of the declaration
func (d *Descriptor) Kind() Kind {
	if d.Core {
		return KindCore
	}
	return KindModule
}

// QualifiedName returns the fully qualified name of the annotated class
func (d *Descriptor) QualifiedName() string {
	return qualify(d.Package, d.SimpleName)
}

// PluginClassName returns the simple name of the generated class
func (d *Descriptor) PluginClassName() string {
	return PluginClassPrefix + d.SimpleName
}

// PluginQualifiedName returns the fully qualified name of the generated class
func (d *Descriptor) PluginQualifiedName() string {
	return qualify(d.Package, d.PluginClassName())
}

// ConstantPrefix returns the prefix of the generated id and version constants
func (d *Descriptor) ConstantPrefix() string {
	return strings.ToUpper(d.SimpleName)
}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
