package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// newArea lays out [ {A,B} | {C} ] in a 410x310 window. The dock area is
// (5,-5,400,300); the left group spans x 5..202, the right one x 207..404.
// Tab strips cover pointer y 5..25 and content y 25..305. Tabs: A 10..33,
// B 41..64, C 212..235.
func newArea(t *testing.T, policy ReleasePolicy) *DockArea {
	t.Helper()
	d := buildDocks(t, table(entity.Horizontal, group("A", "B"), group("C")))
	area := NewDockArea(d, policy)
	area.SetBounds(0, 0, 410, 310)
	return area
}

func drag(t *testing.T, area *DockArea, from, to entity.Point) {
	t.Helper()
	ctx := context.Background()
	require.True(t, area.HandlePointer(ctx, entity.PressEvent(from.X, from.Y, entity.ButtonLeft)))
	_, dragging := area.Dragging()
	require.True(t, dragging)
	area.HandlePointer(ctx, entity.MoveEvent(to.X, to.Y))
	area.HandlePointer(ctx, entity.ReleaseEvent(to.X, to.Y, entity.ButtonLeft))
	_, dragging = area.Dragging()
	require.False(t, dragging)
}

func TestDockArea_SetBoundsInsetsByWindowPadding(t *testing.T) {
	area := newArea(t, ReleaseRestore)
	assert.Equal(t, entity.NewRect(5, -5, 400, 300), area.Docks().Rect())
}

func TestDockArea_PressOutsideTabsStartsNothing(t *testing.T) {
	ctx := context.Background()
	area := newArea(t, ReleaseRestore)

	assert.False(t, area.HandlePointer(ctx, entity.PressEvent(150, 150, entity.ButtonLeft)))
	assert.False(t, area.HandlePointer(ctx, entity.PressEvent(15, 15, entity.ButtonRight)))
	assert.False(t, area.HandlePointer(ctx, entity.MoveEvent(15, 15)))
	_, dragging := area.Dragging()
	assert.False(t, dragging)
}

func TestMoveDock_HidesTabWhileDragging(t *testing.T) {
	ctx := context.Background()
	area := newArea(t, ReleaseRestore)
	a := dockByLabel(t, area.Docks(), "A")

	area.HandlePointer(ctx, entity.PressEvent(15, 15, entity.ButtonLeft))
	assert.True(t, a.DontDraw())
	session, _ := area.Dragging()
	assert.Equal(t, DragDockedPreview, session.State())

	area.HandlePointer(ctx, entity.ReleaseEvent(15, 15, entity.ButtonLeft))
	assert.False(t, a.DontDraw())
}

func TestMoveDock_ReordersWithinStrip(t *testing.T) {
	area := newArea(t, ReleaseRestore)
	d := area.Docks()

	drag(t, area, entity.Point{X: 15, Y: 15}, entity.Point{X: 60, Y: 15})

	assert.Equal(t,
		[]entity.ID{dockByLabel(t, d, "B").ID(), dockByLabel(t, d, "A").ID()},
		groupOf(t, d, "A").Docks())
}

func TestMoveDock_DropIntoOtherStrip(t *testing.T) {
	area := newArea(t, ReleaseRestore)
	d := area.Docks()

	drag(t, area, entity.Point{X: 220, Y: 15}, entity.Point{X: 100, Y: 15})

	assert.Equal(t, table(entity.Horizontal, group("A", "B", "C")), DescribeLayout(d))
	assert.Equal(t, 1, d.GroupCount())
	assert.NoError(t, d.Validate())
}

func TestMoveDock_DockedPreviewOverlayFollowsStrip(t *testing.T) {
	ctx := context.Background()
	area := newArea(t, ReleaseRestore)

	area.HandlePointer(ctx, entity.PressEvent(220, 15, entity.ButtonLeft))
	area.HandlePointer(ctx, entity.MoveEvent(100, 15))

	session, ok := area.Dragging()
	require.True(t, ok)
	assert.Equal(t, DragDockedPreview, session.State())
	label, chrome := session.Overlay()
	// C's chrome sat at x 210 under a press at 220.
	assert.Equal(t, float32(90), chrome.X)
	assert.Equal(t, float32(-4), chrome.Y)
	assert.Equal(t, float32(100), label.X)
	assert.Equal(t, float32(-20), label.Y)
}

func TestMoveDock_FloatingOverlayTracksPointer(t *testing.T) {
	ctx := context.Background()
	area := newArea(t, ReleaseRestore)

	area.HandlePointer(ctx, entity.PressEvent(15, 15, entity.ButtonLeft))
	area.HandlePointer(ctx, entity.MoveEvent(150, 150))

	session, ok := area.Dragging()
	require.True(t, ok)
	assert.Equal(t, DragFloating, session.State())
	label, chrome := session.Overlay()
	assert.Equal(t, float32(143), chrome.X)
	assert.Equal(t, float32(-139), chrome.Y)
	assert.Equal(t, float32(153), label.X)
	assert.Equal(t, float32(-155), label.Y)
}

func TestMoveDock_ReleaseNearRightEdgeAttachesAfter(t *testing.T) {
	area := newArea(t, ReleaseRestore)
	d := area.Docks()

	drag(t, area, entity.Point{X: 15, Y: 15}, entity.Point{X: 395, Y: 150})

	assert.Equal(t, table(entity.Horizontal, group("B"), group("C"), group("A")), DescribeLayout(d))
	assert.NoError(t, d.Validate())
}

func TestMoveDock_ReleaseNearTopEdgeSplits(t *testing.T) {
	area := newArea(t, ReleaseRestore)
	d := area.Docks()

	drag(t, area, entity.Point{X: 15, Y: 15}, entity.Point{X: 300, Y: 30})

	assert.Equal(t,
		table(entity.Horizontal, group("B"), table(entity.Vertical, group("A"), group("C"))),
		DescribeLayout(d))
	assert.NoError(t, d.Validate())
}

func TestMoveDock_ReleaseOverNothingRestoresOrigin(t *testing.T) {
	area := newArea(t, ReleaseRestore)
	d := area.Docks()

	drag(t, area, entity.Point{X: 15, Y: 15}, entity.Point{X: 150, Y: 150})

	assert.Equal(t, table(entity.Horizontal, group("A", "B"), group("C")), DescribeLayout(d))
	active, _ := groupOf(t, d, "A").Active()
	assert.Equal(t, dockByLabel(t, d, "A").ID(), active)
}

func TestMoveDock_RestoreWithoutOriginAppendsGroup(t *testing.T) {
	area := newArea(t, ReleaseRestore)
	d := area.Docks()

	drag(t, area, entity.Point{X: 220, Y: 15}, entity.Point{X: 300, Y: 150})

	assert.Equal(t, table(entity.Horizontal, group("A", "B"), group("C")), DescribeLayout(d))
	assert.NoError(t, d.Validate())
}

func TestMoveDock_DetachPolicyLeavesDockUnhomed(t *testing.T) {
	area := newArea(t, ReleaseDetach)
	d := area.Docks()
	a := dockByLabel(t, d, "A")

	drag(t, area, entity.Point{X: 15, Y: 15}, entity.Point{X: 150, Y: 150})

	_, inGroup := a.Group()
	assert.False(t, inGroup)
	assert.Equal(t, 3, d.DockCount())
	assert.Equal(t, table(entity.Horizontal, group("B"), group("C")), DescribeLayout(d))
	assert.False(t, a.DontDraw())
}

func TestMoveDock_OnlyLeftReleaseEndsDrag(t *testing.T) {
	ctx := context.Background()
	area := newArea(t, ReleaseRestore)

	area.HandlePointer(ctx, entity.PressEvent(15, 15, entity.ButtonLeft))
	assert.True(t, area.HandlePointer(ctx, entity.ReleaseEvent(15, 15, entity.ButtonRight)))

	_, dragging := area.Dragging()
	assert.True(t, dragging)
}

func TestMoveDock_EndsWhenDockVanishes(t *testing.T) {
	ctx := context.Background()
	area := newArea(t, ReleaseRestore)
	a := dockByLabel(t, area.Docks(), "A")

	area.HandlePointer(ctx, entity.PressEvent(15, 15, entity.ButtonLeft))
	require.True(t, area.Manage().DeleteDock(ctx, a.ID()))
	area.HandlePointer(ctx, entity.MoveEvent(20, 20))

	_, dragging := area.Dragging()
	assert.False(t, dragging)
	assert.NoError(t, area.Docks().Validate())
}

func TestParseReleasePolicy(t *testing.T) {
	p, err := ParseReleasePolicy("")
	require.NoError(t, err)
	assert.Equal(t, ReleaseRestore, p)

	p, err = ParseReleasePolicy("detach")
	require.NoError(t, err)
	assert.Equal(t, ReleaseDetach, p)

	_, err = ParseReleasePolicy("bounce")
	assert.Error(t, err)
}
