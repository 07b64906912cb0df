// Package cmd provides Cobra CLI commands for pagecore.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/pagecore/internal/cli"
)

var (
	app       *cli.App
	configDir string
	logLevel  string
	rootCmd   = &cobra.Command{
		Use:   "pagecore",
		Short: "Headless page compositor and session manager",
		Long: `pagecore drives web content pages without a window: it lays out and
paints documents through tiled damage tracking, prints them to PDF or
PostScript and sizes the process caches from a cache model.

Use 'pagecore render' to paint a document to PNG, 'pagecore print' to
export it, or 'pagecore run' to keep a coordinator alive with config
watching and metrics.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigDir: configDir, LogLevel: logLevel})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "read config.toml from this directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the version reported by --version.
func SetBuildInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
