// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/classgrid/internal/export"
	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/summary"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// NoticeMsg is sent when a user action was rejected by a grid constraint.
type NoticeMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent after text has been written to the clipboard.
type CopiedMsg struct {
	What  string
	Bytes int
}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// Status emits a status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// Notice emits a constraint notice.
func Notice(err error) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Msg: err.Error()}
	}
}

// CopySummary copies the summary table as tab-separated text.
func CopySummary(blocks []schedule.Block) tea.Cmd {
	return func() tea.Msg {
		if len(blocks) == 0 {
			return StatusMsgCmd{Msg: "Nothing to copy"}
		}
		return copyText("summary", summary.Text(summary.Rows(blocks)))
	}
}

// CopyCalendar copies the iCalendar export of blocks.
func CopyCalendar(blocks []schedule.Block, opts export.Options) tea.Cmd {
	return func() tea.Msg {
		if len(blocks) == 0 {
			return StatusMsgCmd{Msg: "Nothing to export"}
		}
		text, err := export.Calendar(blocks, opts)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("exporting calendar: %w", err)}
		}
		return copyText("calendar", text)
	}
}

func copyText(what, text string) tea.Msg {
	if err := writeClipboard(text); err != nil {
		return ErrMsg{Err: fmt.Errorf("copying %s: %w", what, err)}
	}
	return CopiedMsg{What: what, Bytes: len(text)}
}
