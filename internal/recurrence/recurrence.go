// Package recurrence derives the repeat days implied by a master block.
package recurrence

import (
	"github.com/teambition/rrule-go"

	"github.com/javiermolinar/classgrid/internal/grid"
)

// Pattern labels the weekday family a repeat belongs to.
type Pattern string

const (
	PatternNone Pattern = ""
	PatternMWF  Pattern = "MWF"
	PatternTR   Pattern = "TR"
)

// Class durations that trigger recurrence.
const (
	ShortSession = 50
	LongSession  = 80
)

// Repeat is one derived (day, pattern) pair.
type Repeat struct {
	Day     grid.Day
	Pattern Pattern
}

// Expected returns the repeats implied by a master on day with the given
// duration. The result is a fresh slice on every call and is empty when
// nothing repeats.
//
//	Monday  ~50 -> Wednesday, Friday (MWF)
//	Monday  ~80 -> Wednesday (MWF)
//	Tuesday ~80 -> Thursday (TR)
func Expected(day grid.Day, duration int) []Repeat {
	switch day {
	case grid.Monday:
		if grid.ApproxEqual(duration, ShortSession) {
			return []Repeat{
				{Day: grid.Wednesday, Pattern: PatternMWF},
				{Day: grid.Friday, Pattern: PatternMWF},
			}
		}
		if grid.ApproxEqual(duration, LongSession) {
			return []Repeat{{Day: grid.Wednesday, Pattern: PatternMWF}}
		}
	case grid.Tuesday:
		if grid.ApproxEqual(duration, LongSession) {
			return []Repeat{{Day: grid.Thursday, Pattern: PatternTR}}
		}
	}
	return []Repeat{}
}

// Days returns the repeat days of repeats, in order.
func Days(repeats []Repeat) []grid.Day {
	days := make([]grid.Day, 0, len(repeats))
	for _, r := range repeats {
		days = append(days, r.Day)
	}
	return days
}

// SameDays reports whether current holds exactly the days of expected.
func SameDays(current []grid.Day, expected []Repeat) bool {
	if len(current) != len(expected) {
		return false
	}
	seen := make(map[grid.Day]bool, len(current))
	for _, d := range current {
		seen[d] = true
	}
	for _, e := range expected {
		if !seen[e.Day] {
			return false
		}
	}
	return true
}

// Rule returns the weekly RRULE option covering the master day and its
// repeats, one occurrence per day of the week.
func Rule(day grid.Day, duration int) rrule.ROption {
	repeats := Expected(day, duration)
	weekdays := []rrule.Weekday{weekday(day)}
	for _, r := range repeats {
		weekdays = append(weekdays, weekday(r.Day))
	}
	return rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: weekdays,
		Count:     len(weekdays),
	}
}

// RuleString renders Rule in RFC 5545 form, e.g. "FREQ=WEEKLY;COUNT=3;BYDAY=MO,WE,FR".
func RuleString(day grid.Day, duration int) string {
	opt := Rule(day, duration)
	return opt.RRuleString()
}

func weekday(d grid.Day) rrule.Weekday {
	switch d {
	case grid.Monday:
		return rrule.MO
	case grid.Tuesday:
		return rrule.TU
	case grid.Wednesday:
		return rrule.WE
	case grid.Thursday:
		return rrule.TH
	case grid.Friday:
		return rrule.FR
	default:
		return rrule.SA
	}
}
