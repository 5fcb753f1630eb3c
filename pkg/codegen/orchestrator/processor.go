package orchestrator

import (
	"context"
	"fmt"
	"slices"

	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/codegen/artifacts"
	"github.com/cubeengine/plugingen/pkg/codegen/packages"
	"github.com/cubeengine/plugingen/pkg/config"
	"github.com/cubeengine/plugingen/pkg/plugins"
	"github.com/sirupsen/logrus"
)

// Processor generates plugin glue for the declarations of one compilation
// unit. It generates on the first non-terminal round only; create a new
// Processor (or call Reset) for the next compilation unit.
//
// IMPORTANT: Use NewProcessor() to create instances. The zero value is not usable.
type Processor struct {
	config    *Config
	filer     artifacts.Filer
	log       logrus.FieldLogger
	generated bool
}

// NewProcessor creates a processor writing through the given filer. log may
// be a logger or an entry carrying unit fields.
func NewProcessor(cfg *Config, filer artifacts.Filer, log logrus.FieldLogger) *Processor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry()
	}
	if cfg.Options == nil {
		cfg.Options = config.Options{}
	}
	if log == nil {
		log = logrus.New()
	}

	return &Processor{
		config: cfg,
		filer:  filer,
		log:    log,
	}
}

// Process handles one compilation round. It never claims the annotations,
// so the returned bool is always false. Rounds after the first generating
// round and the terminal round are no-ops.
func (p *Processor) Process(ctx context.Context, round *codegen.Round) (bool, error) {
	if round == nil || round.Over {
		return false, nil
	}
	if p.generated {
		return false, nil
	}
	p.log.WithField("generators", p.config.Registry.Names()).Debugf("Processing round with %d declarations", round.Len())

	if err := p.generateModulePlugins(ctx, round); err != nil {
		return false, err
	}
	if err := p.generateCorePlugins(ctx, round); err != nil {
		return false, err
	}
	p.generated = true

	return false, nil
}

// Generated reports whether this compilation unit has been generated
func (p *Processor) Generated() bool {
	return p.generated
}

// Reset clears the generated flag for a new compilation unit
func (p *Processor) Reset() {
	p.generated = false
}

func (p *Processor) generateModulePlugins(ctx context.Context, round *codegen.Round) error {
	modules := round.ModuleDeclarations()
	if len(modules) > 0 {
		p.log.Infof("Generating %d modules", len(modules))
	}
	for i := range modules {
		if err := p.Emit(ctx, &modules[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) generateCorePlugins(ctx context.Context, round *codegen.Round) error {
	cores := round.CoreDeclarations()
	for i := range cores {
		p.log.Info("Generating core plugin")
		if err := p.Emit(ctx, &cores[i]); err != nil {
			return err
		}
	}
	return nil
}

// SynthesizeDependency builds the non-optional dependency of the given
// kind, versioned from the matching option
func (p *Processor) SynthesizeDependency(kind DependencyKind) (plugins.Dependency, error) {
	rule, ok := synthesized[kind]
	if !ok {
		return plugins.Dependency{}, fmt.Errorf("%w: %d", ErrUnknownDependencyKind, int(kind))
	}
	return plugins.NewDependency(rule.id, p.config.Options.Get(rule.option), false), nil
}

// Emit appends the core and platform API dependencies to the declaration
// (in place) and writes every generated file for it
func (p *Processor) Emit(ctx context.Context, desc *plugins.Descriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if desc == nil || desc.SimpleName == "" {
		return codegen.NewInvalidDescriptorError("", "simple name is empty")
	}

	for _, kind := range []DependencyKind{DependencyCore, DependencyPlatformAPI} {
		dep, err := p.SynthesizeDependency(kind)
		if err != nil {
			return err
		}
		desc.Dependencies = append(desc.Dependencies, dep)
	}

	req := &packages.GenerateRequest{
		Descriptor: desc,
		Metadata:   packages.NewMetadata(desc, p.config.Options),
	}

	p.log.WithFields(logrus.Fields{
		"plugin":       req.Metadata.ID,
		"class":        desc.QualifiedName(),
		"kind":         desc.Kind(),
		"dependencies": len(desc.Dependencies),
	}).Debug("Emitting plugin")

	for _, gen := range p.config.Registry.List() {
		files, err := gen.Generate(req)
		if err != nil {
			return NewGenerationFailedError(gen.GetName(), desc.QualifiedName(), err)
		}
		declared := gen.GetConfigFiles(desc)
		for _, file := range files {
			if !slices.Contains(declared, file.Path) {
				return NewGenerationFailedError(gen.GetName(), desc.QualifiedName(), fmt.Errorf("%w: %s", ErrUndeclaredFile, file.Path))
			}
		}
		for _, file := range files {
			if err := p.filer.Create(file); err != nil {
				return err
			}
		}
	}

	return nil
}
