package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleMouseMsg turns terminal mouse events into pointer events.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeModal || tea.MouseEvent(msg).IsWheel() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.logMouse(msg, "press")
		if m.machine.Dragging() {
			// The release of the previous drag never arrived.
			model, _ := m.endDrag("press during drag")
			m = model.(Model)
		}
		return m.mousePress(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if !m.machine.Dragging() {
			return m, nil
		}
		m.machine.PointerMove(m.pointerOffset(msg.Y))
		if !m.machine.Dragging() {
			// The block vanished mid-drag.
			m.logModeChange(m.mode, ModeNormal, "drag target removed")
			m.mode = ModeNormal
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.machine.Dragging() {
			return m, nil
		}
		m.logMouse(msg, "release")
		m.machine.PointerMove(m.pointerOffset(msg.Y))
		return m.endDrag("release")
	}
	return m, nil
}

func (m Model) mousePress(x, y int) (tea.Model, tea.Cmd) {
	day, ok := m.layout.DayAt(x)
	if !ok {
		return m, nil
	}
	line, ok := m.layout.LineAt(y)
	if !ok {
		return m, nil
	}
	m.cursor = Position{Day: day, Line: line}

	b, hit := m.layout.BlockAt(m.Blocks(), day, line)
	if !hit {
		return m.columnClick(day, m.layout.Offset(m.machine.Mapper(), line))
	}
	if !b.IsMaster() {
		return m, m.repeatNotice(b)
	}

	handle := m.layout.HandleAt(b, line)
	if m.machine.PointerDown(b.ID, handle, m.pointerOffset(y)) {
		m.logModeChange(m.mode, ModeDrag, "pointer down "+m.machine.Session().Mode.String())
		m.mode = ModeDrag
	}
	return m, nil
}

// endDrag settles the drag in progress. Release and loss of focus take the
// same path.
func (m Model) endDrag(reason string) (tea.Model, tea.Cmd) {
	b, ok := m.machine.PointerLost()
	m.logModeChange(m.mode, ModeNormal, reason)
	m.mode = ModeNormal
	if ok {
		m.logger.Debug("drag settled",
			zap.Int64("block_id", b.ID),
			zap.Int("start", b.StartMinute),
			zap.Int("duration", b.DurationMinute),
		)
		m.cursor = Position{Day: b.Day, Line: m.layout.LineOf(b.StartMinute)}
	}
	return m, nil
}

// pointerOffset converts a screen row into a mapper offset. Rows outside the
// grid give offsets outside the column; the drag clamps them.
func (m Model) pointerOffset(y int) float64 {
	return m.layout.Offset(m.machine.Mapper(), y-m.layout.GridTop())
}
