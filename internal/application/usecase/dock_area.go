package usecase

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// DockArea owns a dock registry inside a window: it insets the registry by the
// window padding, routes pointer events and keeps at most one drag session.
type DockArea struct {
	docks   *entity.Docks
	manage  *ManageDocksUseCase
	policy  ReleasePolicy
	bounds  entity.Rect
	session *MoveDock
}

// NewDockArea wraps docks. policy applies to drops over no target.
func NewDockArea(docks *entity.Docks, policy ReleasePolicy) *DockArea {
	return &DockArea{
		docks:  docks,
		manage: NewManageDocksUseCase(docks),
		policy: policy,
	}
}

// Docks returns the registry.
func (a *DockArea) Docks() *entity.Docks { return a.docks }

// Manage returns the restructuring use case bound to the registry.
func (a *DockArea) Manage() *ManageDocksUseCase { return a.manage }

// Bounds returns the window rectangle.
func (a *DockArea) Bounds() entity.Rect { return a.bounds }

// ReleasePolicy returns the policy the next drag starts with.
func (a *DockArea) ReleasePolicy() ReleasePolicy { return a.policy }

// SetReleasePolicy changes the policy for the next drag.
func (a *DockArea) SetReleasePolicy(policy ReleasePolicy) { a.policy = policy }

// SetBounds moves and resizes the window and lays the tree out again.
func (a *DockArea) SetBounds(x, y, w, h int) {
	a.bounds = entity.NewRect(x, y, w, h)
	a.Layout()
}

// Layout lays the registry out inside the window, inset by the window padding.
func (a *DockArea) Layout() {
	p := a.docks.Metrics().WindowPadding
	b := a.bounds
	a.docks.Layout(entity.NewRect(b.X+p, b.Y-p, b.W-2*p, b.H-2*p))
}

// Dragging returns the active session, if any.
func (a *DockArea) Dragging() (*MoveDock, bool) {
	return a.session, a.session != nil
}

// HandlePointer routes one pointer event and reports whether the tree or the
// drag overlay may have changed.
func (a *DockArea) HandlePointer(ctx context.Context, ev entity.PointerEvent) bool {
	if a.session != nil {
		if a.session.HandleEvent(ctx, ev) {
			logging.FromContext(ctx).Debug().
				Uint32("dock_id", uint32(a.session.DockID())).
				Msg("drag finished")
			a.session = nil
		}
		a.Layout()
		return true
	}

	if ev.Kind != entity.PointerPressed || ev.Button != entity.ButtonLeft {
		return false
	}
	dockID, ok := a.docks.DockAt(ev.X, ev.Y)
	if !ok {
		return false
	}
	a.docks.SelectDock(dockID)
	session, ok := a.manage.BeginMove(ctx, dockID, ev.X, ev.Y, a.policy)
	if !ok {
		return false
	}
	a.session = session
	return true
}
