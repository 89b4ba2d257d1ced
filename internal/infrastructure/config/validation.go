package config

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// hexColorRegex matches valid hex colors (#RGB, #RRGGBB, #RRGGBBAA).
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateDrag(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateTerminal(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateFixture(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// Validate runs the same checks Load does.
func Validate(config *Config) error {
	return validateConfig(config)
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout
	nonNegative := map[string]int{
		"layout.padding":           l.Padding,
		"layout.tab_inset":         l.TabInset,
		"layout.tab_gap":           l.TabGap,
		"layout.tab_label_padding": l.TabLabelPadding,
		"layout.drop_margin":       l.DropMargin,
		"layout.window_padding":    l.WindowPadding,
	}
	for _, key := range sortedKeys(nonNegative) {
		if nonNegative[key] < 0 {
			validationErrors = append(validationErrors, key+" must be non-negative")
		}
	}
	if l.TabHeight < 1 {
		validationErrors = append(validationErrors, "layout.tab_height must be at least 1")
	}
	return validationErrors
}

func validateDrag(config *Config) []string {
	switch config.Drag.ReleasePolicy {
	case ReleasePolicyRestore, ReleasePolicyDetach:
		return nil
	}
	return []string{fmt.Sprintf("drag.release_policy must be \"restore\" or \"detach\", got %q", config.Drag.ReleasePolicy)}
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	switch config.Appearance.ColorScheme {
	case ColorSchemeDark, ColorSchemeLight:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("appearance.color_scheme must be \"dark\" or \"light\", got %q", config.Appearance.ColorScheme))
	}

	p := config.Appearance.Palette
	colors := map[string]string{
		"background":   p.Background,
		"surface":      p.Surface,
		"tab_active":   p.TabActive,
		"tab_inactive": p.TabInactive,
		"text":         p.Text,
		"accent":       p.Accent,
	}
	for _, key := range sortedKeys(colors) {
		if err := ValidateHexColor(colors[key]); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("appearance.palette.%s: %v", key, err))
		}
	}
	return validationErrors
}

func validateTerminal(config *Config) []string {
	var validationErrors []string
	if config.Terminal.CellWidth < 1 {
		validationErrors = append(validationErrors, "terminal.cell_width must be at least 1")
	}
	if config.Terminal.CellHeight < 1 {
		validationErrors = append(validationErrors, "terminal.cell_height must be at least 1")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	if config.Logging.Format != "json" && config.Logging.Format != "console" {
		validationErrors = append(validationErrors, "logging.format must be \"json\" or \"console\"")
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging rotation limits must be non-negative")
	}
	return validationErrors
}

func validateFixture(config *Config) []string {
	node, err := config.Fixture.LayoutNode()
	if err != nil {
		return []string{err.Error()}
	}
	if err := node.Validate(); err != nil {
		return []string{"fixture shape: " + err.Error()}
	}
	return nil
}

// ValidateHexColor checks if a string is a valid hex color.
func ValidateHexColor(color string) error {
	if color == "" {
		return nil // Empty is valid (will use default)
	}
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid hex color: %s", color)
	}
	return nil
}

// Metrics returns the layout metrics after checking them.
func (c *Config) Metrics() (entity.Metrics, error) {
	if errs := validateLayout(c); len(errs) > 0 {
		return entity.Metrics{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return c.Layout.Metrics(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
