package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTableIncludesHeaderAndRows(t *testing.T) {
	state := TableViewState{
		Headers:     []string{"Day", "Start"},
		Rows:        [][]string{{"Monday", "9:00 AM"}, {"MWF", "9:00 AM"}},
		HeaderStyle: lipgloss.NewStyle(),
		CellStyle:   lipgloss.NewStyle(),
		RepeatStyle: lipgloss.NewStyle(),
		RepeatRows:  map[int]bool{1: true},
		BorderStyle: lipgloss.NewStyle(),
	}

	out := RenderTable(state)
	for _, want := range []string{"Day", "Start", "Monday", "MWF"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %q", want, out)
		}
	}
}

func TestRenderTableEmpty(t *testing.T) {
	out := RenderTable(TableViewState{
		Headers:      []string{"Day"},
		CellStyle:    lipgloss.NewStyle(),
		EmptyMessage: "No events yet",
	})
	if out != "No events yet" {
		t.Fatalf("got %q", out)
	}
}
