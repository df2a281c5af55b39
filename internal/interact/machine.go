// Package interact turns pointer gestures and block controls into registry
// mutations. It owns the single active drag session.
package interact

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

var (
	// ErrBeforeFloor is returned when a click on a restricted day lands
	// before the floor. Nothing is created.
	ErrBeforeFloor = schedule.ErrBeforeFloor

	ErrDragInProgress = errors.New("a drag is in progress")
	ErrOutsideColumn  = errors.New("offset is outside the day column")
	ErrInvalidPreset  = errors.New("duration is not a preset for this day")
)

// Confirmer decides whether a destructive action goes ahead.
type Confirmer interface {
	Confirm(b schedule.Block) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(b schedule.Block) bool

// Confirm calls f(b).
func (f ConfirmFunc) Confirm(b schedule.Block) bool {
	return f(b)
}

// AlwaysConfirm approves every request. Hosts that ask the user first
// pass it once the answer is known.
var AlwaysConfirm Confirmer = ConfirmFunc(func(schedule.Block) bool { return true })

// Machine is the interaction state machine. It is either idle or holds one
// DragSession.
type Machine struct {
	reg      *schedule.Registry
	mapper   grid.Mapper
	renderer schedule.Renderer
	logger   *zap.Logger

	session DragSession
}

// New creates an idle machine. A nil renderer or logger disables that side
// effect.
func New(reg *schedule.Registry, mapper grid.Mapper, renderer schedule.Renderer, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if renderer == nil {
		renderer = schedule.RenderFunc(func([]schedule.Block) {})
	}
	return &Machine{
		reg:      reg,
		mapper:   mapper,
		renderer: renderer,
		logger:   logger,
	}
}

// Registry returns the registry driven by the machine.
func (m *Machine) Registry() *schedule.Registry {
	return m.reg
}

// Mapper returns the geometry mapper.
func (m *Machine) Mapper() grid.Mapper {
	return m.mapper
}

// Session returns a copy of the current drag session.
func (m *Machine) Session() DragSession {
	return m.session
}

// Dragging reports whether a drag is in progress.
func (m *Machine) Dragging() bool {
	return m.session.Active
}

// PointerDown starts a drag on a master block. The handle selects the mode.
// It reports whether a drag started; repeats and unknown ids are ignored.
func (m *Machine) PointerDown(blockID int64, handle Handle, offset float64) bool {
	if m.session.Active {
		return false
	}
	b, ok := m.reg.Block(blockID)
	if !ok || !b.IsMaster() {
		return false
	}
	top := m.mapper.MinutesToOffset(float64(b.StartMinute))
	height := m.mapper.MinutesToOffset(float64(b.DurationMinute))
	m.session = DragSession{
		Active:        true,
		Mode:          handle.mode(),
		BlockID:       b.ID,
		Day:           b.Day,
		AnchorPointer: offset,
		AnchorTop:     top,
		AnchorHeight:  height,
		Top:           top,
		Height:        height,
	}
	m.logger.Debug("drag started",
		zap.Int64("id", b.ID),
		zap.Stringer("mode", m.session.Mode),
		zap.Float64("offset", offset))
	return true
}

// PointerMove updates the live geometry of the dragged block and mirrors it
// onto the group. The repeat set is never recomputed here.
func (m *Machine) PointerMove(offset float64) {
	if !m.session.Active {
		return
	}
	m.session = m.session.step(offset, m.mapper.ColumnHeight(), m.minHeight())

	start := grid.Round(m.mapper.OffsetToMinutes(m.session.Top))
	duration := grid.Round(m.mapper.OffsetToMinutes(m.session.Height))
	if err := m.reg.SetGeometry(m.session.BlockID, start, duration); err != nil {
		// The block vanished under the drag.
		m.logger.Debug("drag target lost", zap.Int64("id", m.session.BlockID), zap.Error(err))
		m.session = DragSession{}
		return
	}
	m.render()
}

// PointerUp commits the drag: the geometry is snapped, clamped to the
// restricted floor, synced, and for resizes the repeat set is recomputed.
// It returns the settled block.
func (m *Machine) PointerUp() (schedule.Block, bool) {
	if !m.session.Active {
		return schedule.Block{}, false
	}
	s := m.session
	m.session = DragSession{}

	b, ok := m.reg.Block(s.BlockID)
	if !ok {
		return schedule.Block{}, false
	}

	start := grid.Snap(m.mapper.OffsetToMinutes(s.Top))
	start = grid.ClampToFloor(b.Day, start)
	duration := b.DurationMinute
	if s.Mode != ModeMove {
		duration = max(grid.Snap(m.mapper.OffsetToMinutes(s.Height)), grid.MinDuration)
	}
	if err := m.reg.SetGeometry(b.ID, start, duration); err != nil {
		return schedule.Block{}, false
	}

	if s.Mode != ModeMove {
		m.logger.Debug("resize detected, checking repeat pattern", zap.Int64("id", b.ID))
		m.reg.ReconcileRepeats(b.ID, true)
	} else {
		m.logger.Debug("move detected, only syncing repeats", zap.Int64("id", b.ID))
	}
	m.render()

	settled, _ := m.reg.Block(b.ID)
	return settled, true
}

// PointerLost handles a pointer that disappeared mid-drag, for example when
// it leaves the window. It commits like a release.
func (m *Machine) PointerLost() (schedule.Block, bool) {
	if m.session.Active {
		m.logger.Debug("pointer lost, committing drag", zap.Int64("id", m.session.BlockID))
	}
	return m.PointerUp()
}

// ColumnClick creates a master at the clicked offset of an empty area of a
// day column. Clicks before the floor of a restricted day are rejected.
func (m *Machine) ColumnClick(day grid.Day, offset float64) (schedule.Block, error) {
	if m.session.Active {
		return schedule.Block{}, ErrDragInProgress
	}
	if !day.Valid() {
		return schedule.Block{}, schedule.ErrInvalidDay
	}
	if offset < 0 || offset > m.mapper.ColumnHeight() {
		return schedule.Block{}, ErrOutsideColumn
	}
	minutes := m.mapper.OffsetToMinutes(offset)
	if day.Restricted() && minutes < grid.RestrictedFloor {
		return schedule.Block{}, fmt.Errorf("%w: %s must start at %s or later",
			ErrBeforeFloor, day, grid.FormatClock(grid.RestrictedFloor))
	}
	start := grid.ClampToFloor(day, grid.Snap(minutes))

	b, err := m.reg.CreateMaster(day, start, grid.DefaultDuration)
	if err != nil {
		return schedule.Block{}, err
	}
	m.render()
	return b, nil
}

// PresetDurations returns the preset durations offered on a day.
func PresetDurations(day grid.Day) []int {
	if day == grid.Tuesday {
		return []int{80, 160}
	}
	return []int{50, 80, 160}
}

// PresetDuration sets a master's duration directly and recomputes its
// repeat set.
func (m *Machine) PresetDuration(blockID int64, minutes int) error {
	b, ok := m.reg.Block(blockID)
	if !ok {
		return schedule.ErrBlockNotFound
	}
	if !b.IsMaster() {
		return schedule.ErrNotMaster
	}
	if !slices.Contains(PresetDurations(b.Day), minutes) {
		return fmt.Errorf("%w: %d on %s", ErrInvalidPreset, minutes, b.Day)
	}
	if err := m.reg.SetGeometry(b.ID, b.StartMinute, minutes); err != nil {
		return err
	}
	m.reg.ReconcileRepeats(b.ID, true)
	m.render()
	return nil
}

// Delete removes a master and its repeats once confirm approves. It reports
// whether the group was removed.
func (m *Machine) Delete(blockID int64, confirm Confirmer) bool {
	b, ok := m.reg.Block(blockID)
	if !ok || !b.IsMaster() {
		return false
	}
	if m.session.Active && m.session.BlockID == blockID {
		return false
	}
	if confirm != nil && !confirm.Confirm(b) {
		return false
	}
	if !m.reg.DeleteMaster(b.ID) {
		return false
	}
	m.render()
	return true
}

// Assign sets the professor or class of a master and syncs its repeats.
func (m *Machine) Assign(blockID int64, kind schedule.AssignmentKind, value string) error {
	if err := m.reg.SetAssignment(blockID, kind, value); err != nil {
		return err
	}
	m.render()
	return nil
}

func (m *Machine) minHeight() float64 {
	return m.mapper.MinutesToOffset(grid.MinDuration)
}

func (m *Machine) render() {
	m.renderer.Render(m.reg.Blocks())
}
