package tui

import (
	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/interact"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

const (
	// gutterWidth fits "10:00 AM" plus one space.
	gutterWidth = 9
	appPadding  = 1
	minColWidth = 8

	// Rows above the grid: title and day headers.
	headerRows = 2
	// Rows below the grid: closing hour label, status and help.
	footerRows = 3
)

// linesPerHourOptions are tried from the most detailed to the least.
// Each must divide 60.
var linesPerHourOptions = []int{6, 4, 3, 2, 1}

// Layout maps the terminal to grid coordinates.
type Layout struct {
	Width        int
	Height       int
	ColWidth     int
	LinesPerHour int
}

// NewLayout fits the six day columns and the time range into width x height.
func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height, LinesPerHour: 1, ColWidth: defaultColWidth}
	if width > 0 {
		avail := width - 2*appPadding - gutterWidth - len(grid.Days)
		l.ColWidth = max(minColWidth, avail/len(grid.Days))
	}
	hours := grid.EndHour - grid.StartHour
	for _, lph := range linesPerHourOptions {
		if headerRows+hours*lph+footerRows <= height {
			l.LinesPerHour = lph
			break
		}
	}
	return l
}

// GridLines returns the number of terminal lines covering the day.
func (l Layout) GridLines() int {
	return (grid.EndHour - grid.StartHour) * l.LinesPerHour
}

// MinutesPerLine returns the minutes covered by one terminal line.
func (l Layout) MinutesPerLine() int {
	return 60 / l.LinesPerHour
}

// OffsetPerLine returns the mapper offset units per terminal line.
func (l Layout) OffsetPerLine(m grid.Mapper) float64 {
	return m.RowHeight() / float64(l.LinesPerHour)
}

// GridTop returns the screen row of the first grid line.
func (l Layout) GridTop() int {
	return headerRows
}

// ColumnLeft returns the screen column of the first cell of day d.
func (l Layout) ColumnLeft(d grid.Day) int {
	return appPadding + gutterWidth + int(d)*(l.ColWidth+1) + 1
}

// DayAt returns the day column under screen column x.
func (l Layout) DayAt(x int) (grid.Day, bool) {
	rel := x - appPadding - gutterWidth
	if rel < 0 {
		return 0, false
	}
	d := grid.Day(rel / (l.ColWidth + 1))
	if !d.Valid() || rel%(l.ColWidth+1) == 0 {
		// the separator column belongs to no day
		return 0, false
	}
	return d, true
}

// LineAt returns the grid line under screen row y.
func (l Layout) LineAt(y int) (int, bool) {
	line := y - l.GridTop()
	if line < 0 || line >= l.GridLines() {
		return line, false
	}
	return line, true
}

// Offset converts a grid line, possibly outside the grid, to a mapper offset.
func (l Layout) Offset(m grid.Mapper, line int) float64 {
	return float64(line) * l.OffsetPerLine(m)
}

// LineOf returns the grid line containing minute.
func (l Layout) LineOf(minute int) int {
	return clampLine(minute/l.MinutesPerLine(), l.GridLines())
}

// Span returns the first and last grid line covered by b.
func (l Layout) Span(b schedule.Block) (first, last int) {
	mpl := l.MinutesPerLine()
	first = clampLine(b.StartMinute/mpl, l.GridLines())
	last = clampLine((b.EndMinute()+mpl-1)/mpl-1, l.GridLines())
	if last < first {
		last = first
	}
	return first, last
}

// HandleAt returns which part of master b sits on line. Blocks of three or
// more lines expose both resize handles; two-line blocks only the bottom one.
func (l Layout) HandleAt(b schedule.Block, line int) interact.Handle {
	first, last := l.Span(b)
	n := last - first + 1
	switch {
	case n >= 3 && line == first:
		return interact.HandleTop
	case n >= 2 && line == last:
		return interact.HandleBottom
	default:
		return interact.HandleBody
	}
}

// BlockAt returns the topmost block drawn at (day, line). Later blocks are
// drawn over earlier ones, so the search runs backwards.
func (l Layout) BlockAt(blocks []schedule.Block, day grid.Day, line int) (schedule.Block, bool) {
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if b.Day != day {
			continue
		}
		first, last := l.Span(b)
		if line >= first && line <= last {
			return b, true
		}
	}
	return schedule.Block{}, false
}

func clampLine(line, lines int) int {
	if line < 0 {
		return 0
	}
	if line > lines-1 {
		return lines - 1
	}
	return line
}
