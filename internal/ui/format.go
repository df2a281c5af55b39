package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/summary"
)

// columnWidths returns the widest cell of every column, headers included.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}
	return widths
}

// padRight pads s to width runes. Padding is computed before coloring so
// escape codes do not skew the columns.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// truncate shortens s to width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if width <= 3 || utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// printTable prints a header row, a rule and the rows. colorize styles a
// whole row; it may be nil.
func printTable(w io.Writer, headers []string, rows [][]string, maxWidth int, colorize func(i int, s string) string) {
	widths := columnWidths(headers, rows)
	total := 2 + 2*(len(widths)-1)
	for _, cw := range widths {
		total += cw
	}
	// Shrink the last column, usually the longest free text, to fit.
	if last := len(widths) - 1; maxWidth > 0 && total > maxWidth && last >= 0 {
		widths[last] = max(3, widths[last]-(total-maxWidth))
		total = maxWidth
	}

	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = truncate(cells[i], widths[i])
			}
			parts[i] = padRight(cell, widths[i])
		}
		return "  " + strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	fmt.Fprintln(w, formatHeader(line(headers)))
	fmt.Fprintln(w, formatMuted(strings.Repeat("─", total)))
	for i, row := range rows {
		text := line(row)
		if colorize != nil {
			text = colorize(i, text)
		}
		fmt.Fprintln(w, text)
	}
}

// printSummary prints the summary rows of blocks, masters highlighted.
func printSummary(w io.Writer, blocks []schedule.Block) {
	rows := summary.Rows(blocks)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No events scheduled.")
		return
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cells())
	}
	printTable(w, summary.Headers, cells, termWidth(), func(i int, s string) string {
		if rows[i].Role == schedule.RoleRepeat {
			return formatRepeat(s)
		}
		return formatMaster(s)
	})

	stats := summary.Stats(blocks)
	fmt.Fprintf(w, "\n%s\n", formatStats(fmt.Sprintf("%d sessions | %d groups | %s total",
		stats.Sessions, stats.Groups, summary.FormatMinutes(stats.TotalMinutes))))
	if stats.Unassigned > 0 {
		fmt.Fprintln(w, formatNotice(fmt.Sprintf("%d sessions without a professor or class", stats.Unassigned)))
	}
}
