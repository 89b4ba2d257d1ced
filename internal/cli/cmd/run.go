package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

var runNoWatch bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive dock view",
	Long: `Open the configured dock tree in a full-screen terminal view.

Press a tab with the left mouse button and drag it:
  - along its tab strip to reorder it
  - onto another tab strip to move it into that group
  - onto the margin of a group to split the group around it

Logs go to the rotated log file while the view is open. Edits to the
config file are picked up live unless --no-watch is given.`,
	RunE: runDock,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runDock(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	logPath, err := app.EnableFileLogging()
	if err != nil {
		return fmt.Errorf("enable file logging: %w", err)
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	m, err := model.NewDockModel(ctx, app.Config, app.ThemeMgr)
	if err != nil {
		return fmt.Errorf("build dock view: %w", err)
	}

	options := []tea.ProgramOption{tea.WithContext(ctx)}
	if app.Config.Terminal.AltScreen {
		options = append(options, tea.WithAltScreen())
	}
	if app.Config.Terminal.AllMotion {
		options = append(options, tea.WithMouseAllMotion())
	} else {
		options = append(options, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, options...)

	if !runNoWatch && app.ConfigManager.ConfigFile() != "" {
		app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigReloadedMsg{Config: cfg})
		})
		app.ConfigManager.OnReloadError(func(err error) {
			p.Send(model.ConfigReloadFailedMsg{Err: err})
		})
		if err := app.ConfigManager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	log.Info().
		Str("log_file", logPath).
		Str("config_file", app.ConfigManager.ConfigFile()).
		Msg("dock view started")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dock view: %w", err)
	}
	log.Info().Msg("dock view closed")
	return nil
}
