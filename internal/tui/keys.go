package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/classgrid/internal/export"
	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/interact"
	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/tui/commands"
)

// presetKeys maps number keys to preset durations.
var presetKeys = map[string]int{
	"5": 50,
	"8": 80,
	"6": 160,
}

// handleKeyMsg routes key presses by mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeModal:
		return m.handleModalKey(msg)
	case ModeDrag:
		// Keys are ignored until the mouse is released.
		if msg.String() == "esc" {
			return m.endDrag("escape")
		}
		return m, nil
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if minutes, ok := presetKeys[key]; ok {
		return m.applyPreset(minutes)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "h", "left":
		if m.cursor.Day > grid.Monday {
			m.cursor.Day--
		}
	case "l", "right":
		if m.cursor.Day < grid.Saturday {
			m.cursor.Day++
		}
	case "k", "up":
		if m.cursor.Line > 0 {
			m.cursor.Line--
		}
	case "j", "down":
		if m.cursor.Line < m.layout.GridLines()-1 {
			m.cursor.Line++
		}
	case "enter", " ":
		return m.clickAtCursor()
	case "K":
		return m.keyGesture(interact.HandleBody, -1)
	case "J":
		return m.keyGesture(interact.HandleBody, 1)
	case "[":
		return m.keyGesture(interact.HandleBottom, -1)
	case "]":
		return m.keyGesture(interact.HandleBottom, 1)
	case "{":
		return m.keyGesture(interact.HandleTop, -1)
	case "}":
		return m.keyGesture(interact.HandleTop, 1)
	case "p":
		return m.openPicker(schedule.KindProfessor)
	case "c":
		return m.openPicker(schedule.KindClass)
	case "x", "delete":
		return m.openConfirmDelete()
	case "t":
		return m.openModal(ModalSummary, "summary")
	case "y":
		return m, commands.CopySummary(m.Blocks())
	case "e":
		return m, commands.CopyCalendar(m.Blocks(), m.exportOptions())
	case "?":
		return m.openModal(ModalHelp, "help")
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.modalType {
	case ModalPicker:
		switch key {
		case "esc":
			return m.closeModal("picker cancelled")
		case "enter":
			return m.confirmPicker()
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case ModalConfirmDelete:
		switch key {
		case "y", "Y", "enter":
			id := m.pendingDelete
			deleted := m.machine.Delete(id, interact.AlwaysConfirm)
			m.pendingDelete = 0
			model, _ := m.closeModal("delete confirmed")
			if deleted {
				return model, commands.Status("Event deleted")
			}
			return model, nil
		case "n", "N", "esc":
			m.pendingDelete = 0
			return m.closeModal("delete declined")
		}

	case ModalSummary:
		switch key {
		case "esc", "t", "q":
			return m.closeModal("summary closed")
		case "y":
			return m, commands.CopySummary(m.Blocks())
		case "e":
			return m, commands.CopyCalendar(m.Blocks(), m.exportOptions())
		}

	case ModalHelp:
		switch key {
		case "esc", "?", "q":
			return m.closeModal("help closed")
		}
	}
	return m, nil
}

// clickAtCursor performs a column click at the cursor when it is on empty
// space.
func (m Model) clickAtCursor() (tea.Model, tea.Cmd) {
	if b, ok := m.blockAtCursor(); ok {
		if b.IsMaster() {
			return m, commands.Status("p/c assign · 5/8/6 presets · K/J move · x delete")
		}
		return m, m.repeatNotice(b)
	}
	offset := m.layout.Offset(m.machine.Mapper(), m.cursor.Line)
	return m.columnClick(m.cursor.Day, offset)
}

func (m Model) columnClick(day grid.Day, offset float64) (tea.Model, tea.Cmd) {
	b, err := m.machine.ColumnClick(day, offset)
	if err != nil {
		m.logError("column click rejected", err)
		if errors.Is(err, interact.ErrBeforeFloor) {
			return m, commands.Notice(err)
		}
		return m, nil
	}
	m.cursor = Position{Day: b.Day, Line: m.layout.LineOf(b.StartMinute)}
	return m, nil
}

// keyGesture runs a full pointer gesture on the master under the cursor,
// moving the handle by quanta snapping steps.
func (m Model) keyGesture(handle interact.Handle, quanta int) (tea.Model, tea.Cmd) {
	b, ok := m.blockAtCursor()
	if !ok {
		return m, nil
	}
	if !b.IsMaster() {
		return m, m.repeatNotice(b)
	}

	mapper := m.machine.Mapper()
	if !m.machine.PointerDown(b.ID, handle, 0) {
		return m, nil
	}
	m.machine.PointerMove(float64(quanta) * mapper.MinutesToOffset(grid.Quantum))
	settled, ok := m.machine.PointerUp()
	if !ok {
		return m, nil
	}

	first, last := m.layout.Span(settled)
	if handle == interact.HandleBottom {
		m.cursor.Line = last
	} else {
		m.cursor.Line = first
	}
	return m, nil
}

func (m Model) applyPreset(minutes int) (tea.Model, tea.Cmd) {
	b, ok := m.blockAtCursor()
	if !ok {
		return m, nil
	}
	if !b.IsMaster() {
		return m, m.repeatNotice(b)
	}
	if err := m.machine.PresetDuration(b.ID, minutes); err != nil {
		m.logError("preset rejected", err)
		if errors.Is(err, interact.ErrInvalidPreset) {
			return m, commands.Notice(fmt.Errorf("%d minute sessions are not offered on %s", minutes, b.Day))
		}
		return m, nil
	}
	return m, nil
}

func (m Model) openPicker(kind schedule.AssignmentKind) (tea.Model, tea.Cmd) {
	b, ok := m.blockAtCursor()
	if !ok {
		return m, nil
	}
	if !b.IsMaster() {
		return m, m.repeatNotice(b)
	}
	items := m.config.Catalog.Professors
	if kind == schedule.KindClass {
		items = m.config.Catalog.Classes
	}
	m.picker = newPicker(b, kind, items, m.styles)
	model, _ := m.openModal(ModalPicker, "picker")
	return model, nil
}

func (m Model) confirmPicker() (tea.Model, tea.Cmd) {
	value, ok := m.picker.Choice()
	if !ok {
		return m, nil
	}
	if err := m.machine.Assign(m.picker.blockID, m.picker.kind, value); err != nil {
		m.logError("assignment rejected", err)
		model, _ := m.closeModal("assignment failed")
		return model, func() tea.Msg { return commands.ErrMsg{Err: err} }
	}
	return m.closeModal("assignment confirmed")
}

func (m Model) openConfirmDelete() (tea.Model, tea.Cmd) {
	b, ok := m.blockAtCursor()
	if !ok {
		return m, nil
	}
	if !b.IsMaster() {
		return m, m.repeatNotice(b)
	}
	m.pendingDelete = b.ID
	return m.openModal(ModalConfirmDelete, "delete requested")
}

func (m Model) openModal(t ModalType, reason string) (tea.Model, tea.Cmd) {
	m.logModeChange(m.mode, ModeModal, reason)
	m.mode = ModeModal
	m.modalType = t
	return m, nil
}

func (m Model) closeModal(reason string) (tea.Model, tea.Cmd) {
	m.logModeChange(m.mode, ModeNormal, reason)
	m.mode = ModeNormal
	m.modalType = ModalNone
	return m, nil
}

func (m Model) blockAtCursor() (schedule.Block, bool) {
	return m.layout.BlockAt(m.Blocks(), m.cursor.Day, m.cursor.Line)
}

func (m Model) repeatNotice(b schedule.Block) tea.Cmd {
	master, _, ok := m.machine.Registry().Group(b.GroupID)
	if !ok {
		return nil
	}
	return commands.Notice(fmt.Errorf("this %s session repeats the %s event; edit it there", b.Day, master.Day))
}

func (m Model) exportOptions() export.Options {
	return export.Options{
		Name:   m.config.Export.CalendarName,
		WeekOf: m.weekOf,
		Now:    m.now,
	}
}
