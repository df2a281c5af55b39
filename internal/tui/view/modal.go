// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	Header       lipgloss.Style
	Title        lipgloss.Style
	Footer       lipgloss.Style
	Box          lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Body         lipgloss.Style
}

// Button is a key hint in a modal footer, shown as "[Keys] Label".
type Button struct {
	Keys  string
	Label string
}

func (b Button) String() string {
	return "[" + b.Keys + "] " + b.Label
}

// Frame is one modal: a title, a rendered body and its key hints. Buttons[0]
// is the action Enter triggers and is drawn highlighted.
type Frame struct {
	Title   string
	Body    string
	Buttons []Button
}

// RenderFrame renders f inside the modal box.
func RenderFrame(f Frame, styles ModalStyles) string {
	sections := []string{styles.Header.Render(styles.Title.Render(f.Title))}
	if f.Body != "" {
		sections = append(sections, f.Body)
	}
	if len(f.Buttons) > 0 {
		sections = append(sections, styles.Footer.Render(RenderButtons(styles, f.Buttons)))
	}
	return styles.Box.Render(strings.Join(sections, "\n\n"))
}

// RenderButtons renders buttons on one row separated by body-styled spaces.
func RenderButtons(styles ModalStyles, buttons []Button) string {
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		style := styles.Button
		if i == 0 {
			style = styles.ButtonActive
		}
		parts[i] = style.Padding(0, 1).Render(b.String())
	}
	return strings.Join(parts, styles.Body.Render(" "))
}
