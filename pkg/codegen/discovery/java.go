package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/codegen/cache"
	"github.com/cubeengine/plugingen/pkg/plugins"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/sirupsen/logrus"
)

// JavaSourceExt is the extension of the files JavaDiscoverer parses
const JavaSourceExt = ".java"

// JavaDiscoverer finds annotated top level classes in a Java source tree
type JavaDiscoverer struct {
	root  string
	log   *logrus.Logger
	cache *cache.ParseCache
}

// NewJavaDiscoverer creates a discoverer for the source tree at root
func NewJavaDiscoverer(root string, log *logrus.Logger) *JavaDiscoverer {
	if log == nil {
		log = logrus.New()
	}
	return &JavaDiscoverer{
		root: root,
		log:  log,
	}
}

// WithCache reuses parse results across calls to Discover for files whose
// content is unchanged
func (d *JavaDiscoverer) WithCache(c *cache.ParseCache) *JavaDiscoverer {
	d.cache = c
	return d
}

// Discover walks the source tree in lexical order. Files that fail to
// parse are skipped with a warning.
func (d *JavaDiscoverer) Discover(ctx context.Context) (*codegen.Round, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	round := &codegen.Round{}
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(path) != JavaSourceExt {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		descs, cached := d.cached(path, content)
		if !cached {
			descs, err = d.ParseSource(ctx, parser, path, content)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			d.log.WithError(err).Warnf("Skipping Java source %s", path)
			return nil
		}
		if !cached && d.cache != nil {
			d.cache.Set(path, content, descs)
		}
		for _, desc := range descs {
			d.log.Debugf("Found %s declaration %s in %s", desc.Kind(), desc.QualifiedName(), path)
			round.Add(desc)
		}
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, NewDiscoveryFailedError(d.root, err)
	}

	return round, nil
}

func (d *JavaDiscoverer) cached(path string, content []byte) ([]plugins.Descriptor, bool) {
	if d.cache == nil {
		return nil, false
	}
	return d.cache.Get(path, content)
}

// ParseSource extracts the annotated declarations of one compilation unit.
// A class carrying both markers yields one descriptor of each kind.
func (d *JavaDiscoverer) ParseSource(ctx context.Context, parser *sitter.Parser, path string, content []byte) ([]plugins.Descriptor, error) {
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, NewSyntaxError(path)
	}

	src := &javaSource{content: content}
	var pkg string
	var descs []plugins.Descriptor

	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		switch node.Type() {
		case "package_declaration":
			pkg = src.packageName(node)

		case "class_declaration":
			nameNode := node.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			name := src.text(nameNode)

			for _, ann := range src.annotations(node) {
				switch src.annotationName(ann) {
				case AnnotationCore:
					descs = append(descs, plugins.Descriptor{
						SimpleName: name,
						Package:    pkg,
						Core:       true,
						Source:     path,
					})
				case AnnotationModule:
					deps, err := src.moduleDependencies(ann)
					if err != nil {
						return nil, fmt.Errorf("class %s: %w", name, err)
					}
					descs = append(descs, plugins.Descriptor{
						SimpleName:   name,
						Package:      pkg,
						Dependencies: deps,
						Source:       path,
					})
				}
			}
		}
	}

	return descs, nil
}

// javaSource reads values out of a parsed Java compilation unit
type javaSource struct {
	content []byte
}

func (s *javaSource) text(n *sitter.Node) string {
	return n.Content(s.content)
}

func (s *javaSource) packageName(n *sitter.Node) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "identifier", "scoped_identifier":
			return s.text(child)
		}
	}
	return ""
}

// annotations returns the annotation nodes of a declaration's modifiers
func (s *javaSource) annotations(decl *sitter.Node) []*sitter.Node {
	var result []*sitter.Node
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		child := decl.NamedChild(i)
		if child.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			mod := child.NamedChild(j)
			switch mod.Type() {
			case "annotation", "marker_annotation":
				result = append(result, mod)
			}
		}
	}
	return result
}

// annotationName returns the simple name of a recognised annotation, or
// the empty string for annotations outside the processor package
func (s *javaSource) annotationName(ann *sitter.Node) string {
	nameNode := ann.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	name := s.text(nameNode)
	if !strings.Contains(name, ".") {
		return name
	}
	if simple, ok := strings.CutPrefix(name, AnnotationPackage); ok && !strings.Contains(simple, ".") {
		return simple
	}
	return ""
}

// moduleDependencies reads the dependencies element of a module marker
func (s *javaSource) moduleDependencies(ann *sitter.Node) ([]plugins.Dependency, error) {
	value := s.element(ann, "dependencies")
	if value == nil {
		return nil, nil
	}

	var items []*sitter.Node
	if value.Type() == "element_value_array_initializer" {
		for i := 0; i < int(value.NamedChildCount()); i++ {
			items = append(items, value.NamedChild(i))
		}
	} else {
		items = []*sitter.Node{value}
	}

	deps := make([]plugins.Dependency, 0, len(items))
	for _, item := range items {
		dep, err := s.dependency(item)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// dependency reads one dependency marker. Omitted elements take the
// annotation defaults: empty version, not optional.
func (s *javaSource) dependency(n *sitter.Node) (plugins.Dependency, error) {
	if n.Type() != "annotation" && n.Type() != "marker_annotation" {
		return plugins.Dependency{}, fmt.Errorf("unsupported dependency value %q", s.text(n))
	}
	if name := s.annotationName(n); name != AnnotationDependency {
		return plugins.Dependency{}, fmt.Errorf("unexpected annotation @%s in dependencies", s.text(n.ChildByFieldName("name")))
	}

	var dep plugins.Dependency
	var err error
	if v := s.element(n, "value"); v != nil {
		if dep.ID, err = s.stringValue(v); err != nil {
			return dep, fmt.Errorf("dependency value: %w", err)
		}
	}
	if v := s.element(n, "version"); v != nil {
		if dep.Version, err = s.stringValue(v); err != nil {
			return dep, fmt.Errorf("dependency version: %w", err)
		}
	}
	if v := s.element(n, "optional"); v != nil {
		switch v.Type() {
		case "true":
			dep.Optional = true
		case "false":
			dep.Optional = false
		default:
			return dep, fmt.Errorf("dependency optional: unsupported value %q", s.text(v))
		}
	}
	if dep.ID == "" {
		return dep, fmt.Errorf("%w: dependency without id", ErrInvalidDeclaration)
	}
	return dep, nil
}

// element returns the value node of the named annotation element. A lone
// value without a key is the "value" element.
func (s *javaSource) element(ann *sitter.Node, key string) *sitter.Node {
	args := ann.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		if child.Type() == "element_value_pair" {
			keyNode := child.ChildByFieldName("key")
			if keyNode != nil && s.text(keyNode) == key {
				return child.ChildByFieldName("value")
			}
			continue
		}
		if key == "value" && child.Type() != "comment" && child.Type() != "block_comment" && child.Type() != "line_comment" {
			return child
		}
	}
	return nil
}

func (s *javaSource) stringValue(n *sitter.Node) (string, error) {
	if n.Type() != "string_literal" {
		return "", fmt.Errorf("expected a string literal, got %q", s.text(n))
	}
	raw := s.text(n)
	if value, err := strconv.Unquote(raw); err == nil {
		return value, nil
	}
	return strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`), nil
}
