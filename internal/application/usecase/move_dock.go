package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// DragState is the phase of a drag session.
type DragState int

const (
	// DragFloating means the dock is in no group and follows the pointer.
	DragFloating DragState = iota
	// DragDockedPreview means the dock sits provisionally in a hovered tab strip.
	DragDockedPreview
)

func (s DragState) String() string {
	if s == DragDockedPreview {
		return "docked-preview"
	}
	return "floating"
}

// ReleasePolicy decides what happens to a floating dock released over no target.
type ReleasePolicy string

const (
	// ReleaseRestore puts the dock back where the drag started.
	ReleaseRestore ReleasePolicy = "restore"
	// ReleaseDetach leaves the dock out of every group.
	ReleaseDetach ReleasePolicy = "detach"
)

// ParseReleasePolicy validates a policy name.
func ParseReleasePolicy(s string) (ReleasePolicy, error) {
	switch ReleasePolicy(s) {
	case ReleaseRestore, ReleaseDetach:
		return ReleasePolicy(s), nil
	case "":
		return ReleaseRestore, nil
	}
	return "", fmt.Errorf("unknown release policy %q", s)
}

// Overlay offsets relative to the pointer-tracked chrome.
const (
	overlayLabelInsetX  = 10
	overlayChromeLift   = 1
	overlayLabelDocked  = 15
	overlayLabelFloated = 16
)

// MoveDock is one drag-and-drop session, from press on a tab to left-button
// release. The dock's own tab is hidden while the session draws a floating copy.
type MoveDock struct {
	manage *ManageDocksUseCase
	policy ReleasePolicy

	dockID   entity.ID
	state    DragState
	strip    entity.Rect
	lastX    int
	lastY    int
	label    entity.Text
	chrome   entity.BorderImage
	offsetX  float32
	offsetY  float32
	origin   entity.ID
	originAt int
	homed    bool
}

// BeginMove starts a drag of dockID with the pointer at (x, y).
func (uc *ManageDocksUseCase) BeginMove(ctx context.Context, dockID entity.ID, x, y int, policy ReleasePolicy) (*MoveDock, bool) {
	dock, ok := uc.docks.Dock(dockID)
	if !ok {
		return nil, false
	}

	s := &MoveDock{
		manage: uc,
		policy: policy,
		dockID: dockID,
		state:  DragFloating,
		lastX:  x,
		lastY:  y,
	}
	if strip, ok := uc.docks.DockTabsRect(dockID); ok {
		s.strip = strip
		s.state = DragDockedPreview
	}
	if groupID, ok := dock.Group(); ok {
		if group, ok := uc.docks.Group(groupID); ok {
			s.origin = groupID
			s.originAt, _ = group.IndexOf(dockID)
			s.homed = true
		}
	}

	dock.SetDontDraw(true)
	s.label, s.chrome = dock.VisualClone()
	s.offsetX = s.chrome.X - float32(x)
	s.offsetY = s.chrome.Y + float32(y)

	logging.FromContext(ctx).Debug().
		Uint32("dock_id", uint32(dockID)).
		Str("state", s.state.String()).
		Int("x", x).
		Int("y", y).
		Msg("drag started")
	return s, true
}

// DockID returns the dragged dock.
func (s *MoveDock) DockID() entity.ID { return s.dockID }

// State returns the current phase.
func (s *MoveDock) State() DragState { return s.state }

// Overlay returns the floating label and chrome to draw in place of the tab.
func (s *MoveDock) Overlay() (entity.Text, entity.BorderImage) {
	return s.label, s.chrome
}

// HandleEvent feeds one pointer event into the session. It returns true once
// the session has ended.
func (s *MoveDock) HandleEvent(ctx context.Context, ev entity.PointerEvent) bool {
	ctx = logging.WithDockID(ctx, uint32(s.dockID))
	docks := s.manage.docks
	if _, ok := docks.Dock(s.dockID); !ok {
		logging.FromContext(ctx).Debug().Msg("dragged dock vanished, ending drag")
		return true
	}

	switch ev.Kind {
	case entity.PointerMoved:
		s.move(ctx, ev.X, ev.Y)
	case entity.PointerReleased:
		if ev.Button != entity.ButtonLeft {
			return false
		}
		s.release(ctx)
		return true
	}
	return false
}

func (s *MoveDock) move(ctx context.Context, x, y int) {
	log := logging.FromContext(ctx)
	docks := s.manage.docks

	if s.state == DragDockedPreview && !s.strip.Contains(x, y) {
		s.manage.RemoveDockFromGroup(ctx, s.dockID)
		s.state = DragFloating
		docks.Layout(docks.Rect())
		log.Debug().Msg("drag left tab strip")
	}

	if s.state == DragFloating {
		if groupID, ok := docks.GroupAt(x, y); ok {
			group, _ := docks.Group(groupID)
			docks.AddDock(groupID, s.dockID)
			s.strip = group.TabsRect()
			s.state = DragDockedPreview
			log.Debug().Uint32("group_id", uint32(groupID)).Msg("drag entered tab strip")
		}
	}

	if s.state == DragDockedPreview {
		s.manage.MoveDockToPosition(ctx, s.dockID, x)
		s.chrome.SetPosition(float32(x)+s.offsetX, float32(s.strip.Y+overlayChromeLift))
		s.label.SetPosition(float32(x)+s.offsetX+overlayLabelInsetX, float32(s.strip.Y-overlayLabelDocked))
	} else {
		top := float32(-y) + s.offsetY
		s.chrome.SetPosition(float32(x)+s.offsetX, top)
		s.label.SetPosition(float32(x)+s.offsetX+overlayLabelInsetX, top-overlayLabelFloated)
	}
	s.lastX, s.lastY = x, y
}

func (s *MoveDock) release(ctx context.Context) {
	log := logging.FromContext(ctx)
	docks := s.manage.docks

	if dock, ok := docks.Dock(s.dockID); ok {
		dock.SetDontDraw(false)
	}
	if s.state == DragDockedPreview {
		log.Debug().Msg("drag released in tab strip")
		return
	}

	if pos, ok := docks.NewCellPositionAt(s.lastX, s.lastY); ok {
		if groupID, ok := s.manage.CreateGroupFromCellPosition(ctx, pos); ok {
			docks.AddDock(groupID, s.dockID)
			log.Debug().Str("position", pos.String()).Msg("drag released into new group")
			return
		}
	}

	switch s.policy {
	case ReleaseDetach:
		log.Debug().Msg("drag released over no target, dock left detached")
	default:
		s.restore(ctx)
	}
}

// restore puts the dock back into its origin group, or into a fresh group at the
// end of the root table when that group is gone.
func (s *MoveDock) restore(ctx context.Context) {
	log := logging.FromContext(ctx)
	docks := s.manage.docks

	if s.homed {
		if _, ok := docks.Group(s.origin); ok {
			docks.InsertDock(s.origin, s.dockID, s.originAt)
			log.Debug().Uint32("group_id", uint32(s.origin)).Msg("drag restored to origin group")
			return
		}
	}
	group := docks.CreateGroup()
	docks.AddCell(docks.RootID(), entity.GroupCell(group.ID()))
	docks.AddDock(group.ID(), s.dockID)
	log.Debug().Uint32("group_id", uint32(group.ID())).Msg("drag restored to new root group")
}
