package javasource

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/codegen/packages"
	"github.com/cubeengine/plugingen/pkg/plugins"
)

//go:embed plugin.java.tmpl
var pluginJavaTemplate string

const (
	// CoreBaseClass is the superclass of the generated core plugin
	CoreBaseClass = "CorePlugin"

	// ModuleBaseClass is the superclass of every generated module plugin
	ModuleBaseClass = "CubeEnginePlugin"
)

var javaEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Generator renders the Plugin<Name>.java wrapper class
type Generator struct{}

// NewGenerator creates a new Java source generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate creates the wrapper class source for the declaration
func (g *Generator) Generate(req *packages.GenerateRequest) ([]codegen.GeneratedFile, error) {
	if err := packages.ValidateRequest(req); err != nil {
		return nil, err
	}

	file, err := g.generateSource(req)
	if err != nil {
		return nil, err
	}

	return []codegen.GeneratedFile{file}, nil
}

// GetName returns the name of the generator
func (g *Generator) GetName() string {
	return "javasource"
}

// GetConfigFiles returns the source path generated for the declaration
func (g *Generator) GetConfigFiles(desc *plugins.Descriptor) []string {
	return []string{SourcePath(desc)}
}

// SourcePath returns the slash separated path of the generated source file
func SourcePath(desc *plugins.Descriptor) string {
	name := desc.PluginClassName() + ".java"
	if desc.Package == "" {
		return name
	}
	return strings.ReplaceAll(desc.Package, ".", "/") + "/" + name
}

// templateData is the view the Java template renders
type templateData struct {
	Package        string
	QualifiedName  string
	SimpleName     string
	ClassName      string
	BaseClass      string
	ConstantPrefix string
	Core           bool
	ID             string
	Version        string
	SourceVersion  string
}

func (g *Generator) generateSource(req *packages.GenerateRequest) (codegen.GeneratedFile, error) {
	const name = "plugin.java"

	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"javaString": javaString,
	}).Parse(pluginJavaTemplate)
	if err != nil {
		return codegen.GeneratedFile{}, packages.NewInvalidTemplateError(name, err)
	}

	desc := req.Descriptor
	baseClass := ModuleBaseClass
	if desc.Core {
		baseClass = CoreBaseClass
	}

	data := templateData{
		Package:        desc.Package,
		QualifiedName:  desc.QualifiedName(),
		SimpleName:     desc.SimpleName,
		ClassName:      desc.PluginClassName(),
		BaseClass:      baseClass,
		ConstantPrefix: desc.ConstantPrefix(),
		Core:           desc.Core,
		ID:             req.Metadata.ID,
		Version:        req.Metadata.Version,
		SourceVersion:  req.Metadata.SourceVersion,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return codegen.GeneratedFile{}, packages.NewTemplateExecutionFailedError(name, err)
	}

	return codegen.NewGeneratedFile(codegen.LocationSourceOutput, SourcePath(desc), buf.Bytes()), nil
}

// javaString renders s as a Java string literal
func javaString(s string) string {
	return `"` + javaEscaper.Replace(s) + `"`
}
