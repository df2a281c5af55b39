// Package export writes the scheduled week as an iCalendar feed.
package export

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/javiermolinar/classgrid/internal/dateutil"
	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/recurrence"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

const productID = "-//classgrid//weekly schedule//EN"

// ErrGroupMismatch is returned when a group's blocks disagree with the
// recurrence rule of its master.
var ErrGroupMismatch = errors.New("group blocks do not match the recurrence rule")

// Options configures Calendar.
type Options struct {
	Name   string
	WeekOf time.Time // any date in the exported week
	Now    func() time.Time
}

// Calendar renders one VEVENT per group. The master provides DTSTART and
// the recurrence rule spans the master day and its repeats.
func Calendar(blocks []schedule.Block, opts Options) (string, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WeekOf.IsZero() {
		opts.WeekOf = opts.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if opts.Name != "" {
		cal.SetName(opts.Name)
		cal.SetXWRCalName(opts.Name)
	}

	stamp := opts.Now().UTC()
	for _, g := range groups(blocks) {
		if err := verifyGroup(g, opts.WeekOf); err != nil {
			return "", err
		}
		m := g.master
		start := dateutil.At(opts.WeekOf, m.Day, m.StartMinute)

		event := cal.AddEvent(m.GroupID.String() + "@classgrid")
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(time.Duration(m.DurationMinute) * time.Minute))
		event.SetSummary(eventTitle(m))
		if m.Professor != "" {
			event.SetDescription("Professor: " + m.Professor)
		}
		if len(g.repeats) > 0 {
			event.AddRrule(recurrence.RuleString(m.Day, m.DurationMinute))
		}
	}
	return cal.Serialize(), nil
}

// Occurrences expands the recurrence rule of a master into the start times
// of every session of its group within the week containing weekOf.
func Occurrences(master schedule.Block, weekOf time.Time) ([]time.Time, error) {
	opt := recurrence.Rule(master.Day, master.DurationMinute)
	opt.Dtstart = dateutil.At(weekOf, master.Day, master.StartMinute)
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("building rule: %w", err)
	}
	return r.All(), nil
}

type group struct {
	master  schedule.Block
	repeats []schedule.Block
}

// groups collects masters with their repeats, in master insertion order.
// Repeats without a master are dropped.
func groups(blocks []schedule.Block) []*group {
	byID := make(map[uuid.UUID]*group)
	var out []*group
	for _, b := range blocks {
		if b.IsMaster() {
			g := &group{master: b}
			byID[b.GroupID] = g
			out = append(out, g)
		}
	}
	for _, b := range blocks {
		if b.IsMaster() {
			continue
		}
		if g, ok := byID[b.GroupID]; ok {
			g.repeats = append(g.repeats, b)
		}
	}
	return out
}

// verifyGroup checks that expanding the master's rule lands exactly on the
// days holding the group's blocks.
func verifyGroup(g *group, weekOf time.Time) error {
	occ, err := Occurrences(g.master, weekOf)
	if err != nil {
		return err
	}
	want := []time.Weekday{g.master.Day.Weekday()}
	for _, r := range g.repeats {
		want = append(want, r.Day.Weekday())
	}
	got := make([]time.Weekday, 0, len(occ))
	for _, t := range occ {
		got = append(got, t.Weekday())
	}
	slices.Sort(want)
	slices.Sort(got)
	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: group %s expands to %v, blocks on %v", ErrGroupMismatch, g.master.GroupID, got, want)
	}
	return nil
}

func eventTitle(b schedule.Block) string {
	var parts []string
	if b.Class != "" {
		parts = append(parts, b.Class)
	}
	if b.Professor != "" {
		parts = append(parts, b.Professor)
	}
	if len(parts) == 0 {
		return "Class session (" + grid.FormatRange(b.StartMinute, b.EndMinute()) + ")"
	}
	return strings.Join(parts, " - ")
}
