package recurrence

import (
	"reflect"
	"strings"
	"testing"

	"github.com/javiermolinar/classgrid/internal/grid"
)

func TestExpected(t *testing.T) {
	mwf2 := []Repeat{{grid.Wednesday, PatternMWF}, {grid.Friday, PatternMWF}}
	mwf1 := []Repeat{{grid.Wednesday, PatternMWF}}
	tr := []Repeat{{grid.Thursday, PatternTR}}

	tests := []struct {
		name     string
		day      grid.Day
		duration int
		want     []Repeat
	}{
		{"monday 50", grid.Monday, 50, mwf2},
		{"monday 48 lower tolerance", grid.Monday, 48, mwf2},
		{"monday 49", grid.Monday, 49, mwf2},
		{"monday 52 upper tolerance", grid.Monday, 52, mwf2},
		{"monday 53 matches nothing", grid.Monday, 53, []Repeat{}},
		{"monday 47 matches nothing", grid.Monday, 47, []Repeat{}},
		{"monday 80", grid.Monday, 80, mwf1},
		{"monday 82", grid.Monday, 82, mwf1},
		{"monday 60", grid.Monday, 60, []Repeat{}},
		{"monday 160", grid.Monday, 160, []Repeat{}},
		{"tuesday 80", grid.Tuesday, 80, tr},
		{"tuesday 78", grid.Tuesday, 78, tr},
		{"tuesday 50", grid.Tuesday, 50, []Repeat{}},
		{"wednesday 80", grid.Wednesday, 80, []Repeat{}},
		{"thursday 50", grid.Thursday, 50, []Repeat{}},
		{"friday 80", grid.Friday, 80, []Repeat{}},
		{"saturday 80", grid.Saturday, 80, []Repeat{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expected(tt.day, tt.duration)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected(%s, %d) = %v, want %v", tt.day, tt.duration, got, tt.want)
			}
		})
	}
}

func TestExpected_Deterministic(t *testing.T) {
	for _, d := range grid.Days {
		for duration := grid.MinDuration; duration <= 200; duration++ {
			a := Expected(d, duration)
			b := Expected(d, duration)
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("Expected(%s, %d) not deterministic: %v vs %v", d, duration, a, b)
			}
		}
	}
}

func TestExpected_ReturnsFreshSlice(t *testing.T) {
	a := Expected(grid.Monday, 50)
	a[0].Day = grid.Saturday
	b := Expected(grid.Monday, 50)
	if b[0].Day != grid.Wednesday {
		t.Errorf("mutating a result leaked into the next call: %v", b)
	}
}

func TestSameDays(t *testing.T) {
	expected := Expected(grid.Monday, 50)

	if !SameDays([]grid.Day{grid.Friday, grid.Wednesday}, expected) {
		t.Error("order should not matter")
	}
	if SameDays([]grid.Day{grid.Wednesday}, expected) {
		t.Error("missing Friday should not match")
	}
	if SameDays([]grid.Day{grid.Wednesday, grid.Thursday}, expected) {
		t.Error("wrong day should not match")
	}
	if !SameDays(nil, Expected(grid.Saturday, 80)) {
		t.Error("empty sets should match")
	}
}

func TestDays(t *testing.T) {
	got := Days(Expected(grid.Monday, 50))
	want := []grid.Day{grid.Wednesday, grid.Friday}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
}

func TestRuleString(t *testing.T) {
	tests := []struct {
		day      grid.Day
		duration int
		byDay    string
		count    string
	}{
		{grid.Monday, 50, "BYDAY=MO,WE,FR", "COUNT=3"},
		{grid.Monday, 80, "BYDAY=MO,WE", "COUNT=2"},
		{grid.Tuesday, 80, "BYDAY=TU,TH", "COUNT=2"},
		{grid.Saturday, 80, "BYDAY=SA", "COUNT=1"},
	}
	for _, tt := range tests {
		got := RuleString(tt.day, tt.duration)
		if !strings.Contains(got, "FREQ=WEEKLY") {
			t.Errorf("RuleString(%s, %d) = %q, missing FREQ", tt.day, tt.duration, got)
		}
		if !strings.Contains(got, tt.byDay) {
			t.Errorf("RuleString(%s, %d) = %q, want %s", tt.day, tt.duration, got, tt.byDay)
		}
		if !strings.Contains(got, tt.count) {
			t.Errorf("RuleString(%s, %d) = %q, want %s", tt.day, tt.duration, got, tt.count)
		}
	}
}
