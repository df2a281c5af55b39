package grid

import (
	"fmt"
	"strings"
	"time"
)

// Day is one of the six weekday columns of the grid.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Days lists the grid columns in display order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// String returns the full weekday name.
func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Short returns the three-letter weekday name.
func (d Day) Short() string {
	if !d.Valid() {
		return "???"
	}
	return dayNames[d][:3]
}

// Valid reports whether d is one of the grid columns.
func (d Day) Valid() bool {
	return d >= Monday && d <= Saturday
}

// Restricted reports whether masters on d must start at or after RestrictedFloor.
func (d Day) Restricted() bool {
	return d == Wednesday || d == Thursday || d == Friday
}

// RecurrenceEligible reports whether a master on d can own repeats.
func (d Day) RecurrenceEligible() bool {
	return d == Monday || d == Tuesday
}

// Weekday returns the matching time.Weekday.
func (d Day) Weekday() time.Weekday {
	return time.Weekday(int(d) + 1)
}

// ParseDay parses a weekday name ("monday", "Mon", "mo").
func ParseDay(s string) (Day, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 2 {
		for _, d := range Days {
			if strings.HasPrefix(strings.ToLower(d.String()), s) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid day %q (monday-saturday)", s)
}

// ClampToFloor raises start to RestrictedFloor on restricted days.
func ClampToFloor(d Day, start int) int {
	if d.Restricted() && start < RestrictedFloor {
		return RestrictedFloor
	}
	return start
}
