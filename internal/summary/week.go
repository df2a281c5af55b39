// Package summary builds the tabular view of the scheduled week.
package summary

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

// Headers are the column titles of the summary table.
var Headers = []string{"Day", "Start", "End", "Duration", "Professor", "Class"}

// Row is one line of the summary table.
type Row struct {
	BlockID   int64
	Role      schedule.Role
	Day       grid.Day
	Label     string // pattern for repeats, weekday for masters
	Start     string
	End       string
	Duration  int
	Professor string
	Class     string
}

// Cells returns the row as table cells in Headers order.
func (r Row) Cells() []string {
	return []string{r.Label, r.Start, r.End, strconv.Itoa(r.Duration), r.Professor, r.Class}
}

// Rows lists blocks column by column, Monday first, keeping insertion order
// within each day.
func Rows(blocks []schedule.Block) []Row {
	ordered := slices.Clone(blocks)
	slices.SortStableFunc(ordered, func(a, b schedule.Block) int {
		return int(a.Day) - int(b.Day)
	})

	rows := make([]Row, 0, len(ordered))
	for _, b := range ordered {
		rows = append(rows, Row{
			BlockID:   b.ID,
			Role:      b.Role,
			Day:       b.Day,
			Label:     b.DayLabel(),
			Start:     grid.FormatClock(b.StartMinute),
			End:       grid.FormatClock(b.EndMinute()),
			Duration:  b.DurationMinute,
			Professor: b.Professor,
			Class:     b.Class,
		})
	}
	return rows
}

// Text renders rows as tab-separated lines with a header, ready to paste
// into a spreadsheet.
func Text(rows []Row) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(Headers, "\t"))
	sb.WriteByte('\n')
	for _, r := range rows {
		sb.WriteString(strings.Join(r.Cells(), "\t"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WeekStats holds aggregated statistics for the week.
type WeekStats struct {
	Sessions     int
	Groups       int
	TotalMinutes int
	Unassigned   int            // sessions missing a professor or a class
	PerDay       [6]int         // minutes per day column
	PerProfessor map[string]int // minutes per assigned professor
}

// Stats aggregates the scheduled week.
func Stats(blocks []schedule.Block) WeekStats {
	stats := WeekStats{PerProfessor: make(map[string]int)}
	for _, b := range blocks {
		stats.Sessions++
		if b.IsMaster() {
			stats.Groups++
		}
		stats.TotalMinutes += b.DurationMinute
		if b.Day.Valid() {
			stats.PerDay[b.Day] += b.DurationMinute
		}
		if b.Professor == "" || b.Class == "" {
			stats.Unassigned++
		}
		if b.Professor != "" {
			stats.PerProfessor[b.Professor] += b.DurationMinute
		}
	}
	return stats
}

// Hours returns total scheduled time in hours.
func (s WeekStats) Hours() float64 {
	return float64(s.TotalMinutes) / 60
}

// FormatMinutes renders a length such as 150 as "2h30m".
func FormatMinutes(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}
