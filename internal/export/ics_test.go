package export

import (
	"errors"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

var (
	testWeek = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC) // Wednesday
	testNow  = func() time.Time { return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC) }
)

func parse(t *testing.T, out string) *ical.Calendar {
	t.Helper()
	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar failed: %v", err)
	}
	return cal
}

func prop(ev *ical.VEvent, p ical.ComponentProperty) string {
	if v := ev.GetProperty(p); v != nil {
		return v.Value
	}
	return ""
}

func TestCalendar_OneEventPerGroup(t *testing.T) {
	reg := schedule.NewRegistry(nil)
	mon, _ := reg.CreateMaster(grid.Monday, 60, 50)
	_ = reg.SetAssignment(mon.ID, schedule.KindProfessor, "Dr. Smith")
	_ = reg.SetAssignment(mon.ID, schedule.KindClass, "Math 101")
	if _, err := reg.CreateMaster(grid.Saturday, 0, 80); err != nil {
		t.Fatal(err)
	}

	out, err := Calendar(reg.Blocks(), Options{Name: "Spring", WeekOf: testWeek, Now: testNow})
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	cal := parse(t, out)

	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	first := events[0]
	if got := prop(first, ical.ComponentPropertySummary); got != "Math 101 - Dr. Smith" {
		t.Errorf("summary = %q", got)
	}
	if got := prop(first, ical.ComponentPropertyDtStart); got != "20250113T090000Z" {
		t.Errorf("dtstart = %q", got)
	}
	if got := prop(first, ical.ComponentPropertyDtEnd); got != "20250113T095000Z" {
		t.Errorf("dtend = %q", got)
	}
	rule := prop(first, ical.ComponentPropertyRrule)
	for _, want := range []string{"FREQ=WEEKLY", "COUNT=3", "BYDAY=MO,WE,FR"} {
		if !strings.Contains(rule, want) {
			t.Errorf("rrule %q missing %q", rule, want)
		}
	}
	if !strings.HasPrefix(prop(first, ical.ComponentPropertyUniqueId), mon.GroupID.String()) {
		t.Errorf("uid does not carry the group id")
	}

	second := events[1]
	if rule := prop(second, ical.ComponentPropertyRrule); rule != "" {
		t.Errorf("single session should have no rrule, got %q", rule)
	}
	if got := prop(second, ical.ComponentPropertySummary); !strings.HasPrefix(got, "Class session") {
		t.Errorf("summary = %q", got)
	}
	if !strings.Contains(out, "X-WR-CALNAME:Spring") {
		t.Error("calendar name missing")
	}
}

func TestCalendar_Empty(t *testing.T) {
	out, err := Calendar(nil, Options{WeekOf: testWeek, Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(parse(t, out).Events()); n != 0 {
		t.Errorf("events = %d, want 0", n)
	}
}

func TestCalendar_GroupMismatch(t *testing.T) {
	reg := schedule.NewRegistry(nil)
	mon, _ := reg.CreateMaster(grid.Monday, 0, 80)
	blocks := reg.Blocks()

	// Drop the Wednesday repeat so the rule no longer matches.
	var onlyMaster []schedule.Block
	for _, b := range blocks {
		if b.ID == mon.ID {
			onlyMaster = append(onlyMaster, b)
		}
	}
	_, err := Calendar(onlyMaster, Options{WeekOf: testWeek, Now: testNow})
	if !errors.Is(err, ErrGroupMismatch) {
		t.Fatalf("got %v, want ErrGroupMismatch", err)
	}
}

func TestOccurrences(t *testing.T) {
	tests := []struct {
		name     string
		day      grid.Day
		duration int
		want     []time.Weekday
	}{
		{"monday short", grid.Monday, 50, []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{"monday long", grid.Monday, 80, []time.Weekday{time.Monday, time.Wednesday}},
		{"tuesday long", grid.Tuesday, 80, []time.Weekday{time.Tuesday, time.Thursday}},
		{"friday", grid.Friday, 80, []time.Weekday{time.Friday}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := schedule.Block{Day: tt.day, StartMinute: 540, DurationMinute: tt.duration}
			occ, err := Occurrences(b, testWeek)
			if err != nil {
				t.Fatal(err)
			}
			if len(occ) != len(tt.want) {
				t.Fatalf("occurrences = %v, want %v", occ, tt.want)
			}
			for i, o := range occ {
				if o.Weekday() != tt.want[i] {
					t.Errorf("occurrence %d on %s, want %s", i, o.Weekday(), tt.want[i])
				}
				if o.Hour() != 17 {
					t.Errorf("occurrence %d at hour %d, want 17", i, o.Hour())
				}
			}
		})
	}
}
