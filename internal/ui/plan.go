package ui

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/dateutil"
	"github.com/javiermolinar/classgrid/internal/export"
	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/interact"
	"github.com/javiermolinar/classgrid/internal/logging"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

// planOptions describes one session placed from the command line.
type planOptions struct {
	Day       string
	Start     string
	Duration  int
	Professor string
	Class     string
}

func (a *App) planCmd() *cobra.Command {
	var opts planOptions
	var week string
	var ics bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Place one session and show the repeats it creates",
		Long: `Place a session on the grid without opening the TUI and print the
resulting schedule. The session goes through the same rules as a click:
the start snaps to 30 minutes, restricted days reject early starts, and
preset lengths (50, 80, 160) set the duration exactly.

Examples:
  classgrid plan --day monday --start 9:00 --duration 50
  classgrid plan --day tue --start 1pm --professor "Dr. Smith" --ics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			logger := logging.Console(a.debug)
			defer func() { _ = logger.Sync() }()

			blocks, err := planBlocks(opts, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !ics {
				printSummary(out, blocks)
				return nil
			}

			weekOf, err := dateutil.ParseWeek(week, time.Now())
			if err != nil {
				return fmt.Errorf("parsing --week: %w", err)
			}
			text, err := export.Calendar(blocks, export.Options{
				Name:   a.config.Export.CalendarName,
				WeekOf: weekOf,
			})
			if err != nil {
				return fmt.Errorf("exporting calendar: %w", err)
			}
			fmt.Fprint(out, text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Day, "day", "d", "monday", "Day of the session (monday-saturday)")
	cmd.Flags().StringVarP(&opts.Start, "start", "s", "", "Start time, e.g. 9:00 or 5pm")
	cmd.Flags().IntVar(&opts.Duration, "duration", grid.DefaultDuration, "Length in minutes")
	cmd.Flags().StringVar(&opts.Professor, "professor", "", "Professor to assign")
	cmd.Flags().StringVar(&opts.Class, "class", "", "Class to assign")
	cmd.Flags().BoolVar(&ics, "ics", false, "Print the iCalendar export instead of the table")
	cmd.Flags().StringVar(&week, "week", "", "Week for --ics: this-week, next-week or YYYY-MM-DD")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// planBlocks runs one session through the interaction machine, the same
// path a click and a resize take in the TUI.
func planBlocks(opts planOptions, logger *zap.Logger) ([]schedule.Block, error) {
	day, err := grid.ParseDay(opts.Day)
	if err != nil {
		return nil, err
	}
	start, err := grid.ParseClock(opts.Start)
	if err != nil {
		return nil, fmt.Errorf("parsing --start: %w", err)
	}
	if opts.Duration < grid.MinDuration {
		return nil, fmt.Errorf("--duration must be at least %d minutes", grid.MinDuration)
	}

	mapper := grid.NewMapper(grid.RowHeight)
	machine := interact.New(schedule.NewRegistry(logger), mapper, nil, logger)

	b, err := machine.ColumnClick(day, mapper.MinutesToOffset(float64(start)))
	if err != nil {
		return nil, err
	}

	switch {
	case b.DurationMinute == opts.Duration:
	case slices.Contains(interact.PresetDurations(day), opts.Duration):
		if err := machine.PresetDuration(b.ID, opts.Duration); err != nil {
			return nil, err
		}
	default:
		// Any other length is a bottom-edge drag, snapped on release.
		machine.PointerDown(b.ID, interact.HandleBottom, 0)
		machine.PointerMove(mapper.MinutesToOffset(float64(opts.Duration - b.DurationMinute)))
		if _, ok := machine.PointerUp(); !ok {
			return nil, fmt.Errorf("resizing session: %w", schedule.ErrBlockNotFound)
		}
	}

	if opts.Professor != "" {
		if err := machine.Assign(b.ID, schedule.KindProfessor, opts.Professor); err != nil {
			return nil, fmt.Errorf("assigning professor: %w", err)
		}
	}
	if opts.Class != "" {
		if err := machine.Assign(b.ID, schedule.KindClass, opts.Class); err != nil {
			return nil, fmt.Errorf("assigning class: %w", err)
		}
	}
	return machine.Registry().Blocks(), nil
}
