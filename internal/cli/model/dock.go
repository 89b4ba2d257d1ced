// Package model holds the Bubble Tea models behind the CLI commands.
package model

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/fonts"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/layout"
	"github.com/bnema/dockyard/internal/ui/terminal"
	"github.com/bnema/dockyard/internal/ui/theme"
)

// labelAscent puts a tab label on the terminal row of its tab: labels sit 15
// units below the tab top.
const labelAscent = 15

// ConfigReloadedMsg carries a configuration picked up by the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigReloadFailedMsg reports an edit the file watcher could not apply. The
// view keeps its current configuration.
type ConfigReloadFailedMsg struct {
	Err error
}

// DockModel is the interactive dock view: tabs are dragged with the mouse and
// the tree is redrawn into a terminal canvas after every event.
type DockModel struct {
	ctx      context.Context
	cfg      *config.Config
	themeMgr *theme.Manager
	theme    *styles.Theme

	area     *usecase.DockArea
	renderer *layout.Renderer
	canvas   *terminal.Canvas

	keys styles.DockKeyMap
	help help.Model

	width  int
	height int
	err    error
}

// NewDockModel builds the configured fixture into a fresh dock area.
func NewDockModel(ctx context.Context, cfg *config.Config, themeMgr *theme.Manager) (DockModel, error) {
	ctx = logging.WithComponent(ctx, "dock-view")
	area, err := BuildArea(ctx, cfg, themeMgr)
	if err != nil {
		return DockModel{}, err
	}

	st := styles.NewTheme(cfg)
	return DockModel{
		ctx:      ctx,
		cfg:      cfg,
		themeMgr: themeMgr,
		theme:    st,
		area:     area,
		renderer: layout.NewRenderer(ctx),
		canvas:   terminal.NewCanvas(0, 0, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, themeMgr),
		keys:     styles.DefaultDockKeyMap(),
		help:     styles.NewStyledHelp(st),
	}, nil
}

// BuildArea builds the configured fixture with labels measured in terminal
// cells.
func BuildArea(ctx context.Context, cfg *config.Config, themeMgr *theme.Manager) (*usecase.DockArea, error) {
	return BuildAreaWithFont(ctx, cfg, themeMgr, fonts.NewCellFont(cfg.Terminal.CellWidth, labelAscent))
}

// BuildAreaWithFont builds the configured fixture with labels measured by font.
func BuildAreaWithFont(ctx context.Context, cfg *config.Config, themeMgr *theme.Manager, font entity.Font) (*usecase.DockArea, error) {
	metrics, err := cfg.Metrics()
	if err != nil {
		return nil, err
	}
	node, err := cfg.Fixture.LayoutNode()
	if err != nil {
		return nil, err
	}
	policy, err := usecase.ParseReleasePolicy(string(cfg.Drag.ReleasePolicy))
	if err != nil {
		return nil, err
	}

	docks := entity.NewDocks(themeMgr.Visuals(font), metrics)
	if err := usecase.BuildLayout(ctx, docks, node); err != nil {
		return nil, fmt.Errorf("build fixture: %w", err)
	}
	return usecase.NewDockArea(docks, policy), nil
}

// Area returns the dock area the view drives.
func (m DockModel) Area() *usecase.DockArea { return m.area }

// Init implements tea.Model.
func (DockModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	case tea.MouseMsg:
		if ev, ok := terminal.PointerEvent(msg, m.cfg.Terminal.CellWidth, m.cfg.Terminal.CellHeight); ok {
			m.area.HandlePointer(m.ctx, ev)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config), nil
	case ConfigReloadFailedMsg:
		m.err = fmt.Errorf("config reload failed: %w", msg.Err)
		return m, nil
	}
	return m, nil
}

func (m DockModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Policy):
		policy := usecase.ReleaseDetach
		if m.area.ReleasePolicy() == usecase.ReleaseDetach {
			policy = usecase.ReleaseRestore
		}
		m.area.SetReleasePolicy(policy)
		logging.FromContext(m.ctx).Debug().Str("policy", string(policy)).Msg("release policy changed")
	case key.Matches(msg, m.keys.Reset):
		m.rebuild()
	}
	return m, nil
}

// applyConfig swaps colors and drop policy in place. Layout, fixture and cell
// size changes rebuild the tree unless a drag is in progress.
func (m DockModel) applyConfig(cfg *config.Config) DockModel {
	if cfg == nil {
		return m
	}
	log := logging.FromContext(m.ctx)
	old := m.cfg
	m.cfg = cfg
	m.err = nil

	m.themeMgr.UpdateFromConfig(m.ctx, cfg)
	showAll := m.help.ShowAll
	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.ShowAll = showAll
	m.help.Width = m.width

	if policy, err := usecase.ParseReleasePolicy(string(cfg.Drag.ReleasePolicy)); err == nil {
		m.area.SetReleasePolicy(policy)
	}

	structural := old.Layout != cfg.Layout ||
		old.Terminal != cfg.Terminal ||
		!reflect.DeepEqual(old.Fixture, cfg.Fixture)
	if !structural {
		return m
	}
	if _, dragging := m.area.Dragging(); dragging {
		log.Info().Msg("layout change ignored while dragging; press r to apply")
		return m
	}
	m.canvas = terminal.NewCanvas(0, 0, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, m.themeMgr)
	m.rebuild()
	return m
}

func (m *DockModel) rebuild() {
	if _, dragging := m.area.Dragging(); dragging {
		return
	}
	area, err := BuildArea(m.ctx, m.cfg, m.themeMgr)
	if err != nil {
		m.err = err
		logging.FromContext(m.ctx).Warn().Err(err).Msg("failed to rebuild layout")
		return
	}
	area.SetReleasePolicy(m.area.ReleasePolicy())
	m.area = area
	m.err = nil
	m.resize()
}

func (m *DockModel) areaRows() int {
	return max(m.height-lipgloss.Height(m.footer()), 0)
}

func (m *DockModel) resize() {
	rows := m.areaRows()
	m.area.SetBounds(0, 0, m.width*m.cfg.Terminal.CellWidth, rows*m.cfg.Terminal.CellHeight)
}

// View implements tea.Model.
func (m DockModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	m.canvas.Reset(m.width, m.areaRows())
	m.renderer.SetBackground(m.themeMgr.Colors().Background)
	m.renderer.RenderArea(m.area, m.canvas)

	return lipgloss.JoinVertical(lipgloss.Left, m.canvas.String(), m.footer())
}

func (m DockModel) footer() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.statusLine(), m.help.View(m.keys))
}

func (m DockModel) statusLine() string {
	docks := m.area.Docks()

	var text string
	if session, ok := m.area.Dragging(); ok {
		label := "?"
		if dock, ok := docks.Dock(session.DockID()); ok {
			label = dock.Label().Value
		}
		text = fmt.Sprintf("%s dragging %s (%s)", styles.IconDrag, label, session.State())
	} else {
		text = fmt.Sprintf("%d docks in %d groups", docks.DockCount(), docks.GroupCount())
	}

	line := m.theme.Badge.Render("drop: "+string(m.area.ReleasePolicy())) + " " + m.theme.Normal.Render(text)
	if m.err != nil {
		// Validation errors span several lines; the status line is one.
		line += " " + m.theme.ErrorStyle.Render(strings.Join(strings.Fields(m.err.Error()), " "))
	}
	return lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(line)
}
