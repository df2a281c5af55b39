package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/classgrid/internal/tui/commands"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.BlurMsg:
		if m.machine.Dragging() {
			return m.endDrag("focus lost")
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case commands.ErrMsg:
		m.logError("command failed", msg.Err)
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err), statusNotice, errorDuration)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, statusInfo, statusDuration)

	case commands.NoticeMsg:
		return m.setStatus(msg.Msg, statusNotice, statusDuration)

	case commands.CopiedMsg:
		return m.setStatus(fmt.Sprintf("Copied %s to clipboard", msg.What), statusCopied, statusDuration)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Cursor blink and other input messages for the picker search box.
	if m.mode == ModeModal && m.modalType == ModalPicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) setStatus(text string, kind statusKind, d time.Duration) (tea.Model, tea.Cmd) {
	m.statusMsg = text
	m.statusKind = kind
	m.statusTime = m.now().Add(d)
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
