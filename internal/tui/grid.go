package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/interact"
	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/tui/view"
)

// Line markers drawn in the first cell of every block line.
const (
	markerTopHandle    = "▲"
	markerBottomHandle = "▼"
	markerBody         = "┃"
	markerSingle       = "◆"
	markerRepeat       = "┆"
)

type cell struct {
	text  string
	style lipgloss.Style
}

// renderGrid draws the time gutter and the six day columns from the last
// block snapshot.
func (m Model) renderGrid() string {
	lines := m.layout.GridLines()
	cols := make([][]cell, len(grid.Days))
	for _, d := range grid.Days {
		cols[d] = m.emptyColumn(d)
	}

	blocks := m.blocks.blocks
	alt := alternateShades(blocks)
	session := m.machine.Session()
	for _, b := range blocks {
		if !b.Day.Valid() {
			m.logger.Warn("skipping block on unknown day column")
			continue
		}
		dragging := session.Active && session.BlockID == b.ID
		m.drawBlock(cols[b.Day], b, alt[b.ID], dragging)
	}

	if m.mode != ModeModal && m.cursor.Day.Valid() && m.cursor.Line < lines {
		c := &cols[m.cursor.Day][m.cursor.Line]
		c.style = m.styleCache.Cursor
	}

	sep := m.styles.SeparatorStyle.Render("│")
	rows := make([]string, 0, lines)
	for line := range lines {
		var row strings.Builder
		row.WriteString(m.styles.TimeColumnStyle.Render(m.gutterLabel(line)))
		for _, d := range grid.Days {
			c := cols[d][line]
			row.WriteString(sep)
			row.WriteString(c.style.Render(view.Fit(c.text, m.layout.ColWidth)))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (m Model) emptyColumn(d grid.Day) []cell {
	lines := m.layout.GridLines()
	mpl := m.layout.MinutesPerLine()
	col := make([]cell, lines)
	for line := range col {
		switch {
		case d.Restricted() && line*mpl < grid.RestrictedFloor:
			col[line] = cell{style: m.styleCache.Restricted}
		case line%m.layout.LinesPerHour == 0 && m.layout.LinesPerHour > 1:
			col[line] = cell{text: strings.Repeat("╌", m.layout.ColWidth), style: m.styleCache.HourLine}
		default:
			col[line] = cell{style: m.styleCache.Empty}
		}
	}
	return col
}

func (m Model) drawBlock(col []cell, b schedule.Block, alt, dragging bool) {
	first, last := m.layout.Span(b)
	style := m.styleCache.block(b.IsMaster(), alt, dragging)
	texts := blockText(b)
	for line := first; line <= last; line++ {
		i := line - first
		text := ""
		if i < len(texts) {
			text = texts[i]
		}
		col[line] = cell{text: m.lineMarker(b, line) + " " + text, style: style}
	}
}

func (m Model) lineMarker(b schedule.Block, line int) string {
	if !b.IsMaster() {
		return markerRepeat
	}
	first, last := m.layout.Span(b)
	if first == last {
		return markerSingle
	}
	switch m.layout.HandleAt(b, line) {
	case interact.HandleTop:
		return markerTopHandle
	case interact.HandleBottom:
		return markerBottomHandle
	default:
		return markerBody
	}
}

// blockText returns the lines printed inside a block, most important first.
func blockText(b schedule.Block) []string {
	if b.IsMaster() {
		return []string{
			b.TimeLabel(),
			assignmentLabel(schedule.KindProfessor, b.Professor),
			assignmentLabel(schedule.KindClass, b.Class),
			presetLabel(b.Day),
		}
	}
	return []string{
		string(b.Pattern) + " " + b.TimeLabel(),
		assignmentLabel(schedule.KindProfessor, b.Professor),
		assignmentLabel(schedule.KindClass, b.Class),
	}
}

func assignmentLabel(kind schedule.AssignmentKind, value string) string {
	switch {
	case kind == schedule.KindProfessor && value != "":
		return "Prof: " + value
	case kind == schedule.KindProfessor:
		return "Assign professor"
	case value != "":
		return "Class: " + value
	default:
		return "Assign class"
	}
}

func presetLabel(d grid.Day) string {
	presets := interact.PresetDurations(d)
	parts := make([]string, 0, len(presets))
	for _, p := range presets {
		parts = append(parts, fmt.Sprint(p))
	}
	return "[" + strings.Join(parts, "|") + "]"
}

// alternateShades flags blocks that touch the previous block of their day
// column, alternating so that neighbours stay distinguishable.
func alternateShades(blocks []schedule.Block) map[int64]bool {
	ordered := slices.Clone(blocks)
	slices.SortStableFunc(ordered, func(a, b schedule.Block) int {
		if a.Day != b.Day {
			return int(a.Day) - int(b.Day)
		}
		return a.StartMinute - b.StartMinute
	})

	alt := make(map[int64]bool, len(ordered))
	for i, b := range ordered {
		if i == 0 {
			continue
		}
		prev := ordered[i-1]
		if prev.Day == b.Day && prev.EndMinute() == b.StartMinute {
			alt[b.ID] = !alt[prev.ID]
		}
	}
	return alt
}

func (m Model) gutterLabel(line int) string {
	if line%m.layout.LinesPerHour != 0 {
		return strings.Repeat(" ", gutterWidth)
	}
	return fmt.Sprintf("%*s ", gutterWidth-1, grid.FormatClock(line/m.layout.LinesPerHour*60))
}

// closingLabel is printed below the last grid line.
func (m Model) closingLabel() string {
	return fmt.Sprintf("%*s", gutterWidth-1, grid.FormatClock(grid.ColumnMinutes()))
}
