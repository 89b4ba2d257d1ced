package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/fonts"
)

var (
	layoutRects  bool
	layoutWidth  int
	layoutHeight int
	layoutFont   string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the configured dock tree",
	Long: `Build the fixture from the config file, lay it out in a window of the
given size and print the resulting tree.

Examples:
  dockyard layout                         # Print tables, groups and docks
  dockyard layout --rects                 # Include every rectangle
  dockyard layout --rects -W 1280 -H 720  # Lay out a larger window
  dockyard layout --rects --font pixel    # Measure labels with a 7x13 pixel font`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().BoolVarP(&layoutRects, "rects", "r", false, "print the rectangle of every node")
	layoutCmd.Flags().IntVarP(&layoutWidth, "width", "W", 800, "window width in layout units")
	layoutCmd.Flags().IntVarP(&layoutHeight, "height", "H", 600, "window height in layout units")
	layoutCmd.Flags().StringVar(&layoutFont, "font", "cell", "label metrics: cell (terminal columns) or pixel (7x13 bitmap)")
}

func runLayout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	if layoutWidth <= 0 || layoutHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", layoutWidth, layoutHeight)
	}

	var area *usecase.DockArea
	var err error
	switch layoutFont {
	case "cell":
		area, err = model.BuildArea(app.Ctx(), app.Config, app.ThemeMgr)
	case "pixel":
		area, err = model.BuildAreaWithFont(app.Ctx(), app.Config, app.ThemeMgr, fonts.NewBasicFont())
	default:
		return fmt.Errorf("unknown font %q, want cell or pixel", layoutFont)
	}
	if err != nil {
		return err
	}
	area.SetBounds(0, 0, layoutWidth, layoutHeight)
	if err := area.Docks().Validate(); err != nil {
		return fmt.Errorf("layout is not stable: %w", err)
	}

	renderer := styles.NewLayoutRenderer(app.Theme, layoutRects)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(area.Docks()))
	return nil
}
