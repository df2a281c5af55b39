package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the strings and styles of the footer section.
type FooterViewState struct {
	InnerW      int
	HourLabel   string // closing hour under the gutter
	StatusText  string
	HelpText    string
	LabelStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders the closing hour label, the status line and the help line.
func RenderFooter(state FooterViewState) string {
	lines := []string{
		footerLine(state.InnerW, state.LabelStyle, state.HourLabel),
		footerLine(state.InnerW, state.StatusStyle, state.StatusText),
		footerLine(state.InnerW, state.HelpStyle, state.HelpText),
	}
	return PlaceBox(state.InnerW, len(lines), lipgloss.Top, strings.Join(lines, "\n"), state.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	if content == "" {
		return ""
	}
	frameW, _ := style.GetFrameSize()
	contentWidth := max(0, width-frameW)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
