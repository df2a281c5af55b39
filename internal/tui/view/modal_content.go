package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmDeleteModel contains the fields needed to render the confirm delete body.
type ConfirmDeleteModel struct {
	DayLabel  string
	TimeRange string
	Professor string
	Class     string
	Repeats   []string // days of the repeats removed with the master
}

// ConfirmDeleteStyles groups styles for the confirm delete body.
type ConfirmDeleteStyles struct {
	BodyStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	HintStyle  lipgloss.Style
}

// RenderConfirmDeleteBody renders the modal body for the delete confirmation.
func RenderConfirmDeleteBody(model ConfirmDeleteModel, styles ConfirmDeleteStyles) string {
	var body strings.Builder

	body.WriteString(styles.LabelStyle.Render(" When") + styles.BodyStyle.Render(model.DayLabel+", "+model.TimeRange) + "\n")
	body.WriteString(styles.LabelStyle.Render(" Professor") + styles.BodyStyle.Render(orDash(model.Professor)) + "\n")
	body.WriteString(styles.LabelStyle.Render(" Class") + styles.BodyStyle.Render(orDash(model.Class)) + "\n\n")
	if len(model.Repeats) > 0 {
		body.WriteString(styles.HintStyle.Render(fmt.Sprintf(" Also removes the repeats on %s.", strings.Join(model.Repeats, ", "))) + "\n")
	}
	body.WriteString(styles.BodyStyle.Render(" Delete this event?"))

	return body.String()
}

// PickerModel contains the fields needed to render the picker body.
type PickerModel struct {
	Target   string // e.g. "Monday, 9:00 AM - 10:20 AM"
	Input    string // rendered search box
	Items    []string
	Selected int
	Current  string
	MaxItems int
}

// PickerStyles groups styles for the picker body.
type PickerStyles struct {
	MetaStyle       lipgloss.Style
	ItemStyle       lipgloss.Style
	ItemActiveStyle lipgloss.Style
	HintStyle       lipgloss.Style
}

// RenderPickerBody renders the search box and the filtered catalog.
func RenderPickerBody(model PickerModel, styles PickerStyles) string {
	var body strings.Builder

	body.WriteString(styles.MetaStyle.Render(" "+model.Target) + "\n\n")
	body.WriteString(" " + model.Input + "\n\n")

	if len(model.Items) == 0 {
		body.WriteString(styles.HintStyle.Render(" No matches"))
		return body.String()
	}

	first, last := visibleWindow(len(model.Items), model.Selected, model.MaxItems)
	for i := first; i < last; i++ {
		label := model.Items[i]
		if label == model.Current {
			label += " ✓"
		}
		style := styles.ItemStyle
		if i == model.Selected {
			style = styles.ItemActiveStyle
		}
		body.WriteString(style.Render(label))
		if i < last-1 {
			body.WriteString("\n")
		}
	}
	if hidden := len(model.Items) - (last - first); hidden > 0 {
		body.WriteString("\n" + styles.HintStyle.Render(fmt.Sprintf(" +%d more", hidden)))
	}
	return body.String()
}

// visibleWindow returns the [first, last) range of n items to show so that
// selected stays visible.
func visibleWindow(n, selected, maxItems int) (int, int) {
	if maxItems <= 0 || n <= maxItems {
		return 0, n
	}
	first := selected - maxItems/2
	first = max(0, min(first, n-maxItems))
	return first, first + maxItems
}

// HelpEntry is one key binding listed in the help modal.
type HelpEntry struct {
	Keys string
	Desc string
}

// RenderHelpBody renders key bindings in two aligned columns.
func RenderHelpBody(entries []HelpEntry, keyStyle, descStyle lipgloss.Style) string {
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Keys))
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, keyStyle.Render(" "+Fit(e.Keys, width)+"  ")+descStyle.Render(e.Desc))
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
