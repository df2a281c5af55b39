// Package view provides view composition helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// OverlayRenderer renders modal overlays on top of base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// ViewState contains pre-rendered sections and overlay metadata.
type ViewState struct {
	Width        int
	Height       int
	Title        string
	Header       string
	Grid         string
	Footer       string
	ModalContent string
	ShowModal    bool
	Overlay      OverlayRenderer
	Bg           lipgloss.Color
}

// Render stacks the sections, fills the terminal with the background and
// draws the modal, if any, on top.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		return "Loading..."
	}

	base := lipgloss.JoinVertical(lipgloss.Left, state.Title, state.Header, state.Grid, state.Footer)
	base = PadLinesWithBackground(base, state.Width, state.Height, state.Bg)
	if state.ShowModal && state.Overlay != nil {
		return state.Overlay.Render(base, state.Width, state.Height, state.ModalContent)
	}
	return base
}
