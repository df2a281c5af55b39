package summary

import (
	"strings"
	"testing"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

func buildWeek(t *testing.T) *schedule.Registry {
	t.Helper()
	reg := schedule.NewRegistry(nil)
	sat, err := reg.CreateMaster(grid.Saturday, 0, 80)
	if err != nil {
		t.Fatal(err)
	}
	mon, err := reg.CreateMaster(grid.Monday, 60, 80)
	if err != nil {
		t.Fatal(err)
	}
	wed, err := reg.CreateMaster(grid.Wednesday, 540, 50)
	if err != nil {
		t.Fatal(err)
	}
	_ = reg.SetAssignment(mon.ID, schedule.KindProfessor, "Dr. Smith")
	_ = reg.SetAssignment(mon.ID, schedule.KindClass, "Math 101")
	_ = reg.SetAssignment(sat.ID, schedule.KindProfessor, "Prof. Brown")
	_ = wed
	return reg
}

func TestRows_OrderedByDayThenInsertion(t *testing.T) {
	reg := buildWeek(t)

	rows := Rows(reg.Blocks())
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}

	wantLabels := []string{"Monday", "MWF", "Wednesday", "Saturday"}
	for i, want := range wantLabels {
		if rows[i].Label != want {
			t.Errorf("row %d label = %q, want %q", i, rows[i].Label, want)
		}
	}

	// The Wednesday repeat was created before the Wednesday master.
	if rows[1].Role != schedule.RoleRepeat || rows[2].Role != schedule.RoleMaster {
		t.Errorf("Wednesday rows out of insertion order: %+v %+v", rows[1], rows[2])
	}
}

func TestRows_Cells(t *testing.T) {
	reg := buildWeek(t)
	rows := Rows(reg.Blocks())

	got := rows[1].Cells()
	want := []string{"MWF", "9:00 AM", "10:20 AM", "80", "Dr. Smith", "Math 101"}
	if len(got) != len(want) {
		t.Fatalf("cells = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
	if rows[2].Start != "5:00 PM" || rows[2].End != "5:50 PM" {
		t.Errorf("Wednesday master = %s - %s", rows[2].Start, rows[2].End)
	}
}

func TestRows_Empty(t *testing.T) {
	if rows := Rows(nil); len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
}

func TestRows_DoesNotReorderInput(t *testing.T) {
	blocks := []schedule.Block{{ID: 1, Day: grid.Friday}, {ID: 2, Day: grid.Monday}}
	Rows(blocks)
	if blocks[0].ID != 1 {
		t.Error("Rows must not sort the caller's slice")
	}
}

func TestText(t *testing.T) {
	reg := buildWeek(t)
	text := Text(Rows(reg.Blocks()))

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want header plus 4", len(lines))
	}
	if lines[0] != "Day\tStart\tEnd\tDuration\tProfessor\tClass" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[4] != "Saturday\t8:00 AM\t9:20 AM\t80\tProf. Brown\t" {
		t.Errorf("last line = %q", lines[4])
	}
}

func TestStats(t *testing.T) {
	reg := buildWeek(t)
	stats := Stats(reg.Blocks())

	if stats.Sessions != 4 {
		t.Errorf("sessions = %d, want 4", stats.Sessions)
	}
	if stats.Groups != 3 {
		t.Errorf("groups = %d, want 3", stats.Groups)
	}
	if stats.TotalMinutes != 290 {
		t.Errorf("total minutes = %d, want 290", stats.TotalMinutes)
	}
	if stats.Unassigned != 2 {
		t.Errorf("unassigned = %d, want 2", stats.Unassigned)
	}
	if stats.PerDay[grid.Wednesday] != 130 {
		t.Errorf("Wednesday minutes = %d, want 130", stats.PerDay[grid.Wednesday])
	}
	if stats.PerProfessor["Dr. Smith"] != 160 {
		t.Errorf("Dr. Smith minutes = %d, want 160", stats.PerProfessor["Dr. Smith"])
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{50, "50m"},
		{60, "1h"},
		{160, "2h40m"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
