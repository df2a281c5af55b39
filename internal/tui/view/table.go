package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableViewState holds data needed to render the summary table.
type TableViewState struct {
	Width        int
	Headers      []string
	Rows         [][]string
	HeaderStyle  lipgloss.Style
	CellStyle    lipgloss.Style
	RepeatStyle  lipgloss.Style
	RepeatRows   map[int]bool // rows rendered with RepeatStyle
	BorderStyle  lipgloss.Style
	EmptyMessage string
}

// RenderTable renders the summary rows using a lipgloss table.
func RenderTable(state TableViewState) string {
	if len(state.Rows) == 0 {
		return state.CellStyle.Render(state.EmptyMessage)
	}

	t := table.New().
		Headers(state.Headers...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return state.HeaderStyle
			}
			if state.RepeatRows[row] {
				return state.RepeatStyle
			}
			return state.CellStyle
		})
	if state.Width > 0 {
		t = t.Width(state.Width)
	}
	return t.Render()
}
