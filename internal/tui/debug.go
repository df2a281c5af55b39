package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDrag:
		return "drag"
	case ModeModal:
		return "modal"
	default:
		return "unknown"
	}
}

func (t ModalType) String() string {
	switch t {
	case ModalPicker:
		return "picker"
	case ModalConfirmDelete:
		return "confirm-delete"
	case ModalSummary:
		return "summary"
	case ModalHelp:
		return "help"
	default:
		return "none"
	}
}

func (m Model) logKeyPress(msg tea.KeyMsg) {
	m.logger.Debug("key press",
		zap.String("key", msg.String()),
		zap.Stringer("mode", m.mode),
		zap.Stringer("modal", m.modalType),
		zap.Int("cursor_day", int(m.cursor.Day)),
		zap.Int("cursor_line", m.cursor.Line),
	)
}

func (m Model) logMouse(msg tea.MouseMsg, event string) {
	m.logger.Debug("mouse "+event,
		zap.Int("x", msg.X),
		zap.Int("y", msg.Y),
		zap.String("event", msg.String()),
		zap.Stringer("mode", m.mode),
	)
}

func (m Model) logModeChange(from, to Mode, reason string) {
	if from == to {
		return
	}
	m.logger.Debug("mode change",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("reason", reason),
	)
}

func (m Model) logError(context string, err error) {
	if err == nil {
		return
	}
	m.logger.Warn(context, zap.Error(err))
}
