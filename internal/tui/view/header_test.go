package view

import (
	"testing"
	"time"
)

func TestHeaderLabels(t *testing.T) {
	weekOf := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC) // Thursday

	labels, todayCol := HeaderLabels(weekOf, today)
	want := []string{"Mon 13", "Tue 14", "Wed 15", "*Thu 16*", "Fri 17", "Sat 18"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v", labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
	if todayCol != 3 {
		t.Errorf("todayCol = %d, want 3", todayCol)
	}

	if _, col := HeaderLabels(weekOf, today.AddDate(0, 0, 7)); col != -1 {
		t.Errorf("todayCol outside the week = %d, want -1", col)
	}
}

func TestWeekTitle(t *testing.T) {
	tests := []struct {
		weekOf time.Time
		want   string
	}{
		{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "Jan 13 - 18, 2025"},
		{time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), "Mar 31 - Apr 5, 2025"},
	}
	for _, tt := range tests {
		if got := WeekTitle(tt.weekOf); got != tt.want {
			t.Errorf("WeekTitle(%v) = %q, want %q", tt.weekOf, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Fit(tt.in, tt.width); got != tt.want {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
