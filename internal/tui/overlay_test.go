package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func dottedBase(width, height int) string {
	row := strings.Repeat(".", width)
	return strings.Repeat(row+"\n", height-1) + row
}

func TestOverlaySetActive(t *testing.T) {
	overlay := NewOverlayModel()
	if overlay.Active() {
		t.Fatalf("expected overlay to start inactive")
	}
	overlay.SetActive(true)
	if !overlay.Active() {
		t.Fatalf("expected overlay to be active")
	}
	overlay.SetActive(false)
	if overlay.Active() {
		t.Fatalf("expected overlay to be inactive")
	}
}

func TestOverlayRenderInactiveReturnsBase(t *testing.T) {
	overlay := NewOverlayModel()
	base := "alpha\nbeta"
	if got := overlay.Render(base, 10, 2, "content"); got != base {
		t.Fatalf("expected base content unchanged when inactive")
	}
}

func TestOverlayRenderCentersContent(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#0c0c0c"))
	overlay.SetActive(true)

	width, height := 30, 11
	content := "DELETE EVENT\nMonday"
	got := overlay.Render(dottedBase(width, height), width, height, content)

	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor("#0c0c0c")).String()

	boxH := 2 + 2*overlayMarginY
	top := (height - boxH) / 2
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line %d: expected width %d, got %d", i, width, w)
		}
		hasBg := strings.Contains(line, bgSeq)
		inBox := i >= top && i < top+boxH
		if inBox != hasBg {
			t.Errorf("line %d: backdrop = %v, want %v", i, hasBg, inBox)
		}
	}

	title := ansi.Strip(lines[top+overlayMarginY])
	if !strings.Contains(title, "DELETE EVENT") {
		t.Fatalf("expected title on line %d, got %q", top+overlayMarginY, title)
	}
	if !strings.HasPrefix(title, "...") || !strings.HasSuffix(title, "...") {
		t.Errorf("expected the grid to stay visible around the box, got %q", title)
	}
}

func TestOverlayRenderClampsOversizedContent(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetActive(true)

	width, height := 12, 3
	content := strings.Repeat("x", 40) + "\n" + strings.Repeat("y", 40) + "\nz\nz\nz"
	got := overlay.Render(dottedBase(width, height), width, height, content)

	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Errorf("line %d: expected width %d, got %d", i, width, w)
		}
	}
}

func TestOverlayRenderEmptyContentKeepsBase(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetActive(true)
	got := overlay.Render("ab\ncd", 4, 2, "\n\n")
	if ansi.Strip(got) != "ab  \ncd  " {
		t.Fatalf("expected padded base, got %q", got)
	}
}
