package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/interact"
	"github.com/javiermolinar/classgrid/internal/recurrence"
)

var rulesHeaders = []string{"Day", "Duration", "Repeats", "Pattern", "Rule"}

func (a *App) rulesCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show which sessions repeat on other days",
		Long: `Print the recurrence table: for every day and preset session length,
the days the session repeats on and the RFC 5545 rule used in exports.

Sessions within 2 minutes of a listed length count as that length.
Wednesday, Thursday and Friday sessions start at 5:00 PM or later.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			printRules(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

// rulesRows lists every day and preset duration with its repeat days.
func rulesRows() [][]string {
	var rows [][]string
	for _, d := range grid.Days {
		for _, minutes := range interact.PresetDurations(d) {
			repeats := recurrence.Expected(d, minutes)
			row := []string{d.String(), strconv.Itoa(minutes), "-", "-", "-"}
			if len(repeats) > 0 {
				days := make([]string, 0, len(repeats))
				for _, r := range repeats {
					days = append(days, r.Day.Short())
				}
				row[2] = strings.Join(days, ", ")
				row[3] = string(repeats[0].Pattern)
				row[4] = recurrence.RuleString(d, minutes)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func printRules(w io.Writer) {
	rows := rulesRows()
	fmt.Fprintf(w, "\n  %s\n\n", formatHeader("RECURRENCE RULES"))
	printTable(w, rulesHeaders, rows, termWidth(), func(i int, s string) string {
		if rows[i][2] != "-" {
			return formatMaster(s)
		}
		return s
	})
	fmt.Fprintf(w, "\n  %s\n", formatNotice(fmt.Sprintf("%s, %s and %s sessions start at %s or later.",
		grid.Wednesday, grid.Thursday, grid.Friday, grid.FormatClock(grid.RestrictedFloor))))
}
