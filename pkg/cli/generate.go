package cli

import (
	"context"
	"time"

	"github.com/cubeengine/plugingen/pkg/config"
	"github.com/cubeengine/plugingen/pkg/observability"
	"github.com/cubeengine/plugingen/pkg/watch"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	sourceDir    string
	declarations string
	sourceOut    string
	classOut     string
	options      []string
	dryRun       bool
	watch        bool
	watchDelay   time.Duration
}

func newGenerateCommand() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate plugin wrappers and manifests",
		Long: `Generate discovers @Core and @Module declarations in a Java source tree
and/or a YAML declarations file and writes the plugin glue for them.

Generator options are passed javac style and override CUBEENGINE_MODULE_*
environment variables:

  plugingen generate --source-dir src/main/java \
    -A cubeengine.module.version=1.2.0 -A cubeengine.module.id=teleport`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.sourceDir, "source-dir", "", "Java source tree to scan for @Core/@Module classes")
	flags.StringVar(&f.declarations, "declarations", "", "YAML declarations file")
	flags.StringVar(&f.sourceOut, "source-out", "", "Output root for generated sources")
	flags.StringVar(&f.classOut, "class-out", "", "Output root for generated resources")
	flags.StringArrayVarP(&f.options, "option", "A", nil, "Generator option key=value (repeatable)")
	flags.BoolVar(&f.dryRun, "dry-run", false, "Print generated files instead of writing them")
	flags.BoolVar(&f.watch, "watch", false, "Regenerate when Java sources change")
	flags.DurationVar(&f.watchDelay, "watch-delay", 0, "Quiet period before regenerating in watch mode")

	return cmd
}

// resolveConfig layers explicitly set flags over the environment configuration
func resolveConfig(cmd *cobra.Command, f *generateFlags) (*config.Config, error) {
	cfg := config.LoadConfig()
	flags := cmd.Flags()

	if flags.Changed("source-dir") {
		cfg.SourceDir = f.sourceDir
	}
	if flags.Changed("declarations") {
		cfg.DeclarationsFile = f.declarations
	}
	if flags.Changed("source-out") {
		cfg.SourceOut = f.sourceOut
	}
	if flags.Changed("class-out") {
		cfg.ClassOut = f.classOut
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if flags.Changed("watch") {
		cfg.Watch = f.watch
	}
	if flags.Changed("watch-delay") {
		cfg.WatchDelay = f.watchDelay
	}
	if level := cmd.Flag("log-level"); level != nil && level.Changed {
		cfg.LogLevel = logLevel(cmd)
	}

	opts, err := config.ParseOptions(f.options)
	if err != nil {
		return nil, err
	}
	cfg.Options = cfg.Options.Merge(opts)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, cfg *config.Config) error {
	log := observability.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	ctx := cmd.Context()
	runner := NewUnitRunner(cfg, log, cmd.OutOrStdout())

	if !cfg.Watch {
		_, err := runner.Run(ctx)
		return err
	}
	return runWatch(ctx, cfg, runner, log)
}

// runWatch generates once, then regenerates on source changes until
// interrupted
func runWatch(ctx context.Context, cfg *config.Config, runner *UnitRunner, log *logrus.Logger) error {
	ctx, stop := observability.SignalContext(ctx)
	defer stop()

	if _, err := runner.Run(ctx); err != nil {
		log.WithError(err).Error("Initial generation failed")
	}

	w, err := watch.New(watch.Config{Root: cfg.SourceDir, Delay: cfg.WatchDelay},
		func(ctx context.Context, unit int, changed []string) error {
			_, err := runner.Run(ctx)
			return err
		}, log)
	if err != nil {
		return err
	}

	sm := observability.NewShutdownManager(log, 0)
	sm.RegisterShutdownFunc(func(context.Context) error {
		return w.Close()
	})

	if err := w.Run(ctx); err != nil {
		sm.Shutdown()
		return err
	}
	return sm.Shutdown()
}
