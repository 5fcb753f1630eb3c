package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/codegen/artifacts"
	"github.com/cubeengine/plugingen/pkg/codegen/cache"
	"github.com/cubeengine/plugingen/pkg/codegen/discovery"
	"github.com/cubeengine/plugingen/pkg/codegen/orchestrator"
	"github.com/cubeengine/plugingen/pkg/config"
	"github.com/cubeengine/plugingen/pkg/observability"
	"github.com/sirupsen/logrus"
)

// UnitRunner runs compilation units for one configuration. Each call to
// Run discovers declarations afresh and writes through a new filer and
// processor.
type UnitRunner struct {
	cfg   *config.Config
	log   *logrus.Logger
	out   io.Writer
	cache *cache.ParseCache
}

// NewUnitRunner creates a runner. Dry run listings are written to out.
func NewUnitRunner(cfg *config.Config, log *logrus.Logger, out io.Writer) *UnitRunner {
	return &UnitRunner{
		cfg:   cfg,
		log:   log,
		out:   out,
		cache: cache.NewParseCache(nil),
	}
}

func (u *UnitRunner) discoverer() discovery.Discoverer {
	var ds discovery.Multi
	if u.cfg.SourceDir != "" {
		ds = append(ds, discovery.NewJavaDiscoverer(u.cfg.SourceDir, u.log).WithCache(u.cache))
	}
	if u.cfg.DeclarationsFile != "" {
		ds = append(ds, discovery.NewYAMLDiscoverer(u.cfg.DeclarationsFile, u.log))
	}
	return ds
}

func (u *UnitRunner) filer() artifacts.Filer {
	if u.cfg.DryRun {
		return artifacts.NewMemoryFiler()
	}
	fsCfg := artifacts.DefaultConfig()
	fsCfg.SourceRoot = u.cfg.SourceOut
	fsCfg.ClassRoot = u.cfg.ClassOut
	return artifacts.NewFileSystemFiler(fsCfg, u.log)
}

// Run generates one compilation unit and returns the files it created.
// Log lines carry the unit number when ctx was tagged with one.
func (u *UnitRunner) Run(ctx context.Context) ([]codegen.GeneratedFile, error) {
	ctx = observability.WithLogger(ctx, u.log)
	log := observability.FromContext(ctx)
	log.WithField("options", u.cfg.Options.Keys()).Debug("Generator options")

	round, err := u.discoverer().Discover(ctx)
	if err != nil {
		return nil, err
	}
	if round.Len() == 0 {
		log.Warn("No @Core or @Module declarations found")
	}

	filer := u.filer()
	proc := orchestrator.NewProcessor(&orchestrator.Config{Options: u.cfg.Options}, filer, log)
	if _, err := proc.Process(ctx, round); err != nil {
		return nil, err
	}
	if _, err := proc.Process(ctx, &codegen.Round{Over: true}); err != nil {
		return nil, err
	}

	files := filer.Created()
	if u.cfg.DryRun {
		if err := printFiles(u.out, files); err != nil {
			return nil, err
		}
	}
	stats := u.cache.Stats()
	log.WithFields(logrus.Fields{
		"parse_cache_hits":   stats.Hits,
		"parse_cache_misses": stats.Misses,
	}).Infof("Generated %d files for %d declarations", len(files), round.Len())

	return files, nil
}

// printFiles lists generated files with a header per file
func printFiles(w io.Writer, files []codegen.GeneratedFile) error {
	for _, file := range files {
		if _, err := fmt.Fprintf(w, "==> %s:%s (%d bytes) <==\n%s\n", file.Location, file.Path, file.Size, file.Content); err != nil {
			return err
		}
	}
	return nil
}
