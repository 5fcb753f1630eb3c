package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand creates the plugingen command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plugingen",
		Short: "plugingen - CubeEngine plugin glue generator",
		Long: `plugingen turns classes marked @Core or @Module into Sponge plugins.

For every declaration it writes a Plugin<Name> wrapper class bridging the
class into the Sponge lifecycle, a META-INF/sponge_plugins.json manifest and
a META-INF/MANIFEST.MF stub.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(versionText())
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionText())
		},
	}
}

func versionText() string {
	return fmt.Sprintf("plugingen version %s\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		Version, BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH)
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}
