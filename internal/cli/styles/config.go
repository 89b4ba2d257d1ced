package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file info with status.
func (r *ConfigRenderer) RenderConfigInfo(path string, pending int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	var status string
	if pending > 0 {
		countStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
		status = fmt.Sprintf("\n  %s %s settings differ from the defaults' keys",
			iconStyle.Render(IconInfo),
			countStyle.Render(fmt.Sprintf("%d", pending)),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderChanges renders detected key changes.
func (r *ConfigRenderer) RenderChanges(changes []config.KeyChange) string {
	if len(changes) == 0 {
		return ""
	}

	addStyle := r.theme.SuccessStyle
	removeStyle := r.theme.WarningStyle
	valueStyle := r.theme.Subtle

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  Changes (%d):\n", len(changes)))
	for _, c := range changes {
		switch c.Type {
		case config.KeyChangeAdded:
			sb.WriteString(fmt.Sprintf("    %s %s = %s\n", addStyle.Render("+"), r.theme.Highlight.Render(c.Key), valueStyle.Render(c.Value)))
		case config.KeyChangeRemoved:
			sb.WriteString(fmt.Sprintf("    %s %s = %s\n", removeStyle.Render("-"), c.Key, valueStyle.Render(c.Value)))
		}
	}
	return sb.String()
}

// RenderMigrationSuccess renders the success message after migration.
func (r *ConfigRenderer) RenderMigrationSuccess(count int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Applied %s changes to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderUpToDate renders the "config is up to date" message.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is up to date\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconCheck),
	)
}

// RenderWritten renders the message after a config file was created.
func (r *ConfigRenderer) RenderWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Wrote %s\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderMigrateHint renders a hint to run the migrate command.
func (r *ConfigRenderer) RenderMigrateHint() string {
	return fmt.Sprintf(
		"\n  %s\n",
		r.theme.Subtle.Render("Run 'dockyard config migrate' to add missing defaults."),
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("No config file yet. Run 'dockyard config init' to write the defaults."),
	)
}
