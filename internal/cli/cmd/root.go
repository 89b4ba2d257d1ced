// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/build"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "dockyard",
		Short: "Dockable tabbed panels, dragged around in your terminal",
		Long: `Dockyard - a docking layout engine for tabbed panels.

Docks are tabs living in groups; groups sit in tables that stack them
side by side or on top of each other. Drag a tab to reorder it, drop it
on another tab strip to move it there, or drop it on the margin of a
group to split that group in two.

Use 'dockyard run' to open the interactive view, or 'dockyard layout'
to print the configured tree.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			opts := appOpts
			opts.AllowMissing = cmd == configInitCmd
			var err error
			app, err = cli.NewApp(opts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&appOpts.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/dockyard/config.toml)")
	rootCmd.PersistentFlags().StringVar(&appOpts.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
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

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
