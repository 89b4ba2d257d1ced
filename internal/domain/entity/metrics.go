package entity

// Metrics holds the fixed spacing constants of the dock layout, in layout units.
type Metrics struct {
	Padding         int // gap between cells of a table
	TabHeight       int // height of a group's tab strip
	TabInset        int // distance from the strip's left edge to the first tab
	TabGap          int // gap between two tabs
	TabLabelPadding int // added to the label width to get the tab width
	DropMargin      int // band along a content edge that triggers split or attach
	WindowPadding   int // inset of the dock area inside its window
}

// DefaultMetrics returns the standard dock spacing.
func DefaultMetrics() Metrics {
	return Metrics{
		Padding:         5,
		TabHeight:       20,
		TabInset:        5,
		TabGap:          8,
		TabLabelPadding: 16,
		DropMargin:      20,
		WindowPadding:   5,
	}
}

// Chrome offsets relative to the tab or content rectangles.
const (
	chromeInset       = 2  // chrome overhangs the rect by this much on the left
	chromeLift        = 1  // chrome starts this far above the rect
	backgroundGrowth  = 4  // background is wider and taller than the content rect
	labelInsetX       = 8  // label starts this far right of the tab edge
	labelBaseline     = 15 // label baseline sits this far below the tab top
	selectedGrowth    = 2  // selected tab chrome is taller than the tab
	deselectedGrowth  = 1
	dockBackgroundL   = 3
	dockBackgroundR   = 3
	dockBackgroundT   = 2
	dockBackgroundB   = 4
	tabChromeBorderLR = 5
)
