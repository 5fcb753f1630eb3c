package cli

import (
	"fmt"
	"os"

	"github.com/cubeengine/plugingen/pkg/observability"
	"github.com/cubeengine/plugingen/pkg/plugins"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <sponge_plugins.json|dir>...",
		Short: "Validate generated Sponge plugin manifests",
		Long: `Check validates sponge_plugins.json files. Directories are searched for
META-INF/sponge_plugins.json. Warnings are reported but only errors fail
the check.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := observability.NewLogger(logLevel(cmd), cmd.ErrOrStderr())

	var manifests []plugins.LoadedManifest
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		if !info.IsDir() {
			manifest, err := plugins.LoadManifest(arg)
			if err != nil {
				return err
			}
			manifests = append(manifests, plugins.LoadedManifest{Path: arg, Manifest: manifest})
			continue
		}

		found, err := plugins.NewManifestLoader([]string{arg}, log).DiscoverManifests(cmd.Context())
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return fmt.Errorf("no %s found below %s", plugins.ManifestFile, arg)
		}
		manifests = append(manifests, found...)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, loaded := range manifests {
		findings := plugins.ValidateManifest(loaded.Manifest)
		if len(findings) == 0 {
			fmt.Fprintf(out, "%s: OK (%d plugins)\n", loaded.Path, len(loaded.Manifest.Plugins))
			continue
		}

		fmt.Fprintf(out, "%s:\n", loaded.Path)
		for _, f := range findings {
			fmt.Fprintf(out, "  %s\n", f.String())
		}
		if plugins.HasErrors(findings) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("manifest validation failed for %d of %d manifests", failed, len(manifests))
	}
	return nil
}

// logLevel reads the global --log-level flag, falling back to the environment
func logLevel(cmd *cobra.Command) logrus.Level {
	if level := cmd.Flag("log-level"); level != nil && level.Changed {
		return observability.ParseLevel(level.Value.String())
	}
	return observability.ParseLevel(os.Getenv("PLUGINGEN_LOG_LEVEL"))
}
