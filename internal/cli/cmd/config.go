package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	configYes    bool
	configDryRun bool
	configForce  bool
	configFormat string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, create, check and migrate the dockyard config file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return errAppNotInitialized
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.ConfigPath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file and DOCKYARD_*
environment variables are merged.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE:  runConfigInit,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the config file path and check whether it differs from the current defaults.`,
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to config file",
	Long: `Compares your config file with available defaults, adds any missing
settings and drops settings dockyard no longer reads.

Existing values are kept. The fixture section is never touched.`,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configInitCmd, configStatusCmd, configMigrateCmd)

	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", string(config.FormatTOML), "output format: toml, yaml, json")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
	configMigrateCmd.Flags().BoolVar(&configDryRun, "dry-run", false, "print the changes as a plain diff and exit")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	data, err := config.Encode(app.Config, config.Format(configFormat))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.ConfigPath()
	if err := config.WriteConfig(config.DefaultConfig(), path, configForce); err != nil {
		return err
	}
	logging.FromContext(app.Ctx()).Debug().Str("path", path).Msg("wrote default config")
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten(path))
	return nil
}

// runConfigStatus shows config file path and migration status.
func runConfigStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.ConfigPath()
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		fmt.Fprintln(out, renderer.RenderNoConfigFile(path))
		return nil
	}
	if app.ConfigErr != nil {
		fmt.Fprintln(out, renderer.RenderError(app.ConfigErr))
	}

	changes, err := config.NewMigrator(path).DetectChanges()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if len(changes) == 0 {
		fmt.Fprintln(out, renderer.RenderUpToDate(path))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(path, len(changes)))
	fmt.Fprintln(out, renderer.RenderMigrateHint())
	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.ConfigPath()
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		fmt.Fprintln(out, renderer.RenderNoConfigFile(path))
		return nil
	}

	migrator := config.NewMigrator(path)
	changes, err := migrator.DetectChanges()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if configDryRun {
		fmt.Fprint(out, config.FormatChangesAsDiff(changes))
		return nil
	}
	if len(changes) == 0 {
		fmt.Fprintln(out, renderer.RenderUpToDate(path))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(path, len(changes)))
	fmt.Fprintln(out, renderer.RenderChanges(changes))

	if configYes {
		applied, err := migrator.Migrate()
		if err != nil {
			fmt.Fprintln(out, renderer.RenderError(err))
			return nil
		}
		logging.FromContext(app.Ctx()).Info().Int("changes", len(applied)).Str("path", path).Msg("config migrated")
		fmt.Fprintln(out, renderer.RenderMigrationSuccess(len(applied), path))
		return nil
	}

	m := newMigrateModel(renderer, app.Theme, migrator, path)
	if _, err := tea.NewProgram(m, tea.WithOutput(out)).Run(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// migrateState represents the current state of the migrate confirmation.
type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel is the bubbletea model for the migrate confirmation.
type migrateModel struct {
	spinner  spinner.Model
	renderer *styles.ConfigRenderer
	confirm  styles.ConfirmModel
	state    migrateState
	migrator *config.Migrator
	path     string

	result   string
	err      error
	quitting bool
}

// migrateResultMsg is sent when the migration completes.
type migrateResultMsg struct {
	applied []config.KeyChange
	err     error
}

func newMigrateModel(renderer *styles.ConfigRenderer, theme *styles.Theme, migrator *config.Migrator, path string) migrateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return migrateModel{
		spinner:  s,
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, "Apply these changes?"),
		state:    migrateStateConfirm,
		migrator: migrator,
		path:     path,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.result = m.renderer.RenderMigrationSuccess(len(msg.applied), m.path)
		return m, tea.Quit
	}

	if m.state != migrateStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Result() {
		m.quitting = true
		return m, tea.Quit
	}
	m.state = migrateStateRunning
	return m, m.runMigration()
}

func (m migrateModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err)
	case m.state == migrateStateDone:
		return m.result
	case m.state == migrateStateRunning:
		return fmt.Sprintf("\n  %s Migrating...\n", m.spinner.View())
	}
	return m.confirm.View()
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		applied, err := m.migrator.Migrate()
		return migrateResultMsg{applied: applied, err: err}
	}
}
