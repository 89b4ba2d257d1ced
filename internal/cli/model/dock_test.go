package model

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/ui/theme"
)

func twoGroups() entity.LayoutNode {
	return entity.LayoutNode{
		Orientation: entity.Horizontal,
		Children: []entity.LayoutNode{
			{Docks: []string{"Alpha", "Beta"}},
			{Docks: []string{"Gamma"}},
		},
	}
}

func newTestModel(t *testing.T) DockModel {
	t.Helper()
	ctx := context.Background()
	cfg := config.DefaultConfig()
	cfg.Fixture = config.FixtureFromLayout(twoGroups())

	m, err := NewDockModel(ctx, cfg, theme.NewManager(ctx, cfg))
	require.NoError(t, err)
	return send(t, m, tea.WindowSizeMsg{Width: 52, Height: 17})
}

func send(t *testing.T, m DockModel, msg tea.Msg) DockModel {
	t.Helper()
	updated, _ := m.Update(msg)
	out, ok := updated.(DockModel)
	require.True(t, ok)
	return out
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tabOrder(m DockModel) entity.LayoutNode {
	return usecase.DescribeLayout(m.Area().Docks())
}

func TestDockModel_ResizeSetsAreaBounds(t *testing.T) {
	m := newTestModel(t)

	// Two footer rows (status and short help) leave 15 rows of 20 units.
	assert.Equal(t, entity.NewRect(0, 0, 416, 300), m.Area().Bounds())
	assert.Equal(t, entity.NewRect(5, -5, 406, 290), m.Area().Docks().Rect())
}

func TestDockModel_ViewBeforeResizeIsEmpty(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	m, err := NewDockModel(ctx, cfg, theme.NewManager(ctx, cfg))
	require.NoError(t, err)
	assert.Empty(t, m.View())
}

func TestDockModel_ViewShowsTabs(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "Beta")
	assert.Contains(t, view, "Gamma")
	assert.Contains(t, view, "3 docks in 2 groups")
	assert.Contains(t, view, "drop: restore")
}

func TestDockModel_DragReordersTabs(t *testing.T) {
	m := newTestModel(t)

	// Alpha's tab spans x 10..66 on the first row.
	m = send(t, m, mouse(3, 0, tea.MouseActionPress, tea.MouseButtonLeft))
	_, dragging := m.Area().Dragging()
	require.True(t, dragging)
	assert.Contains(t, m.View(), "dragging Alpha")

	m = send(t, m, mouse(14, 0, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = send(t, m, mouse(14, 0, tea.MouseActionRelease, tea.MouseButtonLeft))

	_, dragging = m.Area().Dragging()
	assert.False(t, dragging)
	assert.Equal(t, entity.LayoutNode{
		Orientation: entity.Horizontal,
		Children: []entity.LayoutNode{
			{Docks: []string{"Beta", "Alpha"}},
			{Docks: []string{"Gamma"}},
		},
	}, tabOrder(m))
	assert.NoError(t, m.Area().Docks().Validate())
}

func TestDockModel_ResetRestoresFixture(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, mouse(3, 0, tea.MouseActionPress, tea.MouseButtonLeft))
	m = send(t, m, mouse(14, 0, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = send(t, m, mouse(14, 0, tea.MouseActionRelease, tea.MouseButtonLeft))
	require.NotEqual(t, twoGroups(), tabOrder(m))

	m = send(t, m, keyMsg("r"))
	assert.Equal(t, twoGroups(), tabOrder(m))
	assert.Equal(t, entity.NewRect(0, 0, 416, 300), m.Area().Bounds())
}

func TestDockModel_TogglePolicy(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, usecase.ReleaseRestore, m.Area().ReleasePolicy())

	m = send(t, m, keyMsg("p"))
	assert.Equal(t, usecase.ReleaseDetach, m.Area().ReleasePolicy())
	assert.Contains(t, m.View(), "drop: detach")

	m = send(t, m, keyMsg("p"))
	assert.Equal(t, usecase.ReleaseRestore, m.Area().ReleasePolicy())
}

func TestDockModel_HelpTogglesFooterHeight(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keyMsg("?"))
	assert.Equal(t, 280, m.Area().Bounds().H)
}

func TestDockModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDockModel_ConfigReload(t *testing.T) {
	m := newTestModel(t)
	area := m.Area()

	cfg := config.DefaultConfig()
	cfg.Fixture = config.FixtureFromLayout(twoGroups())
	cfg.Drag.ReleasePolicy = config.ReleasePolicyDetach
	cfg.Appearance.Palette.Accent = "#ff0000"
	m = send(t, m, ConfigReloadedMsg{Config: cfg})

	assert.Same(t, area, m.Area(), "color and policy changes keep the tree")
	assert.Equal(t, usecase.ReleaseDetach, m.Area().ReleasePolicy())

	cfg2 := config.DefaultConfig()
	cfg2.Fixture = config.FixtureFromLayout(entity.LayoutNode{Docks: []string{"Solo"}})
	m = send(t, m, ConfigReloadedMsg{Config: cfg2})

	assert.NotSame(t, area, m.Area())
	assert.Equal(t, 1, m.Area().Docks().DockCount())
	assert.Equal(t, entity.NewRect(0, 0, 416, 300), m.Area().Bounds())
}

func TestDockModel_ConfigReloadFailureShowsInStatusLine(t *testing.T) {
	m := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 200, Height: 17})
	area := m.Area()
	height := lipgloss.Height(m.View())

	err := fmt.Errorf("%w:\n  - %s", config.ErrInvalidConfig, "layout.tab_height must be at least 1")
	m = send(t, m, ConfigReloadFailedMsg{Err: err})

	view := m.View()
	assert.Contains(t, view, "config reload failed: invalid configuration: - layout.tab_height must be at least 1")
	assert.Equal(t, height, lipgloss.Height(view), "the error stays on the status line")
	assert.Same(t, area, m.Area())

	cfg := config.DefaultConfig()
	cfg.Fixture = config.FixtureFromLayout(twoGroups())
	m = send(t, m, ConfigReloadedMsg{Config: cfg})
	assert.NotContains(t, m.View(), "config reload failed")
}

func TestNewDockModel_InvalidFixture(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	cfg.Fixture = config.FixtureNode{Docks: []string{}}

	_, err := NewDockModel(ctx, cfg, theme.NewManager(ctx, cfg))
	assert.Error(t, err)
}
