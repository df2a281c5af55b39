// Package dateutil anchors the abstract weekly grid to calendar dates.
package dateutil

import (
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/classgrid/internal/grid"
)

// ErrInvalidDateFormat is returned for dates that are neither YYYY-MM-DD
// nor a known keyword.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format, 'this-week' or 'next-week'")

// ParseWeek resolves a week reference relative to now and returns the
// Monday of that week. Accepted inputs (case-insensitive):
//   - "" or "this-week": the week containing now
//   - "next-week": the following week
//   - "YYYY-MM-DD": the week containing that date
func ParseWeek(s string, now time.Time) (time.Time, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	switch input {
	case "", "this-week":
		monday, _ := WeekRange(now)
		return monday, nil
	case "next-week":
		monday, _ := WeekRange(now.AddDate(0, 0, 7))
		return monday, nil
	}

	t, err := time.ParseInLocation("2006-01-02", input, now.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	monday, _ := WeekRange(t)
	return monday, nil
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayDate returns the date of a grid day in the week containing weekOf.
func DayDate(weekOf time.Time, day grid.Day) time.Time {
	monday, _ := WeekRange(weekOf)
	return monday.AddDate(0, 0, int(day))
}

// At returns the wall-clock time of a grid-relative minute on a grid day
// in the week containing weekOf.
func At(weekOf time.Time, day grid.Day, minute int) time.Time {
	d := DayDate(weekOf, day)
	return d.Add(time.Duration(grid.StartHour*60+minute) * time.Minute)
}
