// Package grid maps between screen offsets and minutes on the weekly grid.
//
// Minutes are grid-relative: minute 0 is StartHour on every day column.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fixed grid configuration.
const (
	StartHour = 8
	EndHour   = 18

	// RowHeight is the number of offset units drawn per hour.
	RowHeight = 100.0

	// Quantum is the snapping step in minutes.
	Quantum = 30

	DefaultDuration = 80
	MinDuration     = 30

	// RestrictedFloor is the earliest grid-relative start of a master
	// on a restricted day.
	RestrictedFloor = 9 * 60

	// Tolerance is the default slack, in minutes, of ApproxEqual.
	Tolerance = 2
)

// ErrInvalidClock is returned when a clock string cannot be parsed.
var ErrInvalidClock = errors.New("time must be in H:MM, HH:MM or H:MM AM/PM format")

// ColumnMinutes returns the number of minutes covered by one day column.
func ColumnMinutes() int {
	return (EndHour - StartHour) * 60
}

// Mapper converts between offsets and minutes using a linear scale.
type Mapper struct {
	rowHeight float64
}

// NewMapper creates a Mapper with rowHeight offset units per hour.
// A non-positive rowHeight falls back to RowHeight.
func NewMapper(rowHeight float64) Mapper {
	if rowHeight <= 0 {
		rowHeight = RowHeight
	}
	return Mapper{rowHeight: rowHeight}
}

// RowHeight returns the offset units per hour.
func (m Mapper) RowHeight() float64 {
	if m.rowHeight <= 0 {
		return RowHeight
	}
	return m.rowHeight
}

// MinutesToOffset converts minutes to an offset.
func (m Mapper) MinutesToOffset(minutes float64) float64 {
	return minutes * (m.RowHeight() / 60)
}

// OffsetToMinutes converts an offset to minutes.
func (m Mapper) OffsetToMinutes(offset float64) float64 {
	return offset / (m.RowHeight() / 60)
}

// ColumnHeight returns the height of a full day column as an offset.
func (m Mapper) ColumnHeight() float64 {
	return m.MinutesToOffset(float64(ColumnMinutes()))
}

// Round rounds half up, the way live drag geometry is settled into whole minutes.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Snap rounds minutes to the nearest quantum.
func Snap(minutes float64) int {
	return Round(minutes/Quantum) * Quantum
}

// ApproxEqual reports whether a and b are within Tolerance minutes.
func ApproxEqual(a, b int) bool {
	return ApproxEqualWithin(a, b, Tolerance)
}

// ApproxEqualWithin reports whether a and b differ by at most tol.
func ApproxEqualWithin(a, b, tol int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// FormatClock converts grid-relative minutes into a 12-hour clock label
// such as "9:05 AM". Noon and midnight are shown as 12.
func FormatClock(minutes int) string {
	total := StartHour*60 + minutes
	if total < 0 {
		total = 0
	}
	hour, minute := total/60, total%60
	period := "AM"
	if hour%24 >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// FormatRange formats a start/end pair as "9:00 AM - 10:20 AM".
func FormatRange(start, end int) string {
	return FormatClock(start) + " - " + FormatClock(end)
}

// ParseClock parses a wall clock time and returns grid-relative minutes.
// Accepted forms: "9:00", "17:30", "5:00 PM", "5pm".
func ParseClock(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrInvalidClock
	}

	period := ""
	switch {
	case strings.HasSuffix(s, "am"):
		period = "am"
	case strings.HasSuffix(s, "pm"):
		period = "pm"
	}
	if period != "" {
		s = strings.TrimSpace(strings.TrimSuffix(s, period))
	}

	hourStr, minStr, found := strings.Cut(s, ":")
	if !found {
		minStr = "0"
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	switch period {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		hour %= 12
		if period == "pm" {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
	}

	return hour*60 + minute - StartHour*60, nil
}
