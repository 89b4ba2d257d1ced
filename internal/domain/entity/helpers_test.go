package entity_test

import (
	"unicode/utf8"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// monoFont advances every rune by the same width.
type monoFont struct {
	advance int
}

func (f monoFont) MeasureString(s string) int { return utf8.RuneCountInString(s) * f.advance }
func (f monoFont) Ascent() int                { return 15 }

func newTestDocks() *entity.Docks {
	return entity.NewDocks(entity.Visuals{Font: monoFont{advance: 7}}, entity.DefaultMetrics())
}

// groupWith creates a group holding one dock per label.
func groupWith(d *entity.Docks, labels ...string) *entity.DockGroup {
	g := d.CreateGroup()
	for _, l := range labels {
		d.AddDock(g.ID(), d.CreateDock(l).ID())
	}
	return g
}
