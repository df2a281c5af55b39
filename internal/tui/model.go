// Package tui provides the terminal user interface for classgrid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/config"
	"github.com/javiermolinar/classgrid/internal/dateutil"
	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/interact"
	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDrag        // A mouse drag is in progress
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalPicker
	ModalConfirmDelete
	ModalSummary
	ModalHelp
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusNotice
	statusCopied
)

// Position is the keyboard cursor: a day column and a grid line.
type Position struct {
	Day  grid.Day
	Line int
}

// blockCache receives the registry snapshot after every mutation. It is
// shared by all copies of the Model, so the view always draws the latest
// render.
type blockCache struct {
	blocks  []schedule.Block
	renders int
}

// Render implements schedule.Renderer.
func (c *blockCache) Render(blocks []schedule.Block) {
	c.blocks = blocks
	c.renders++
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config  *config.Config
	logger  *zap.Logger
	machine *interact.Machine
	blocks  *blockCache
	now     func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	weekOf time.Time // Monday of the displayed week
	cursor Position
	mode   Mode

	// Modal state
	modalType     ModalType
	picker        pickerModel
	pendingDelete int64

	overlay OverlayModel

	// Terminal dimensions and layout
	width      int
	height     int
	layout     Layout
	styleCache StyleCache

	// Messages
	statusMsg  string
	statusKind statusKind
	statusTime time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow overrides the clock used for the week and the status timers.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithWeekOf sets the week used for date labels and the calendar export.
func WithWeekOf(weekOf time.Time) ModelOption {
	return func(m *Model) {
		m.weekOf = weekOf
	}
}

// New creates a new TUI model with an empty grid.
func New(cfg *config.Config, logger *zap.Logger, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.Fallback)
	}
	styles := NewStyles(t)

	cache := &blockCache{}
	reg := schedule.NewRegistry(logger.Named("registry"))
	machine := interact.New(reg, grid.NewMapper(grid.RowHeight), cache, logger.Named("interact"))

	m := Model{
		config:  cfg,
		logger:  logger,
		machine: machine,
		blocks:  cache,
		now:     time.Now,
		theme:   t,
		styles:  styles,
		cursor:  Position{Day: grid.Monday, Line: 0},
		mode:    ModeNormal,
		overlay: NewOverlayModel(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.weekOf.IsZero() {
		m.weekOf = m.now()
	}
	m.weekOf, _ = dateutil.WeekRange(m.weekOf)
	m.overlay.SetBackground(styles.ModalBackdropColor)
	m.setSize(0, 0)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Machine returns the interaction state machine driven by the model.
func (m Model) Machine() *interact.Machine {
	return m.machine
}

// Blocks returns the last rendered block snapshot.
func (m Model) Blocks() []schedule.Block {
	return m.blocks.blocks
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.layout = NewLayout(width, height)
	m.styleCache = NewStyleCache(m.styles, m.layout.ColWidth)
	m.cursor.Line = clampLine(m.cursor.Line, m.layout.GridLines())
}

// Run starts the TUI. Mouse motion is reported while a button is held so
// drags reach the state machine, and focus reporting turns a lost window
// into an implicit release.
func Run(cfg *config.Config, logger *zap.Logger, opts ...ModelOption) error {
	model := New(cfg, logger, opts...)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
