package theme

import (
	"slices"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "frappe", themeName: "frappe", wantName: "frappe"},
		{name: "latte", themeName: "latte", wantName: "latte"},
		{name: "mixed case and spaces", themeName: "  Macchiato ", wantName: "macchiato"},
		{name: "empty name", themeName: "", wantName: Fallback},
		{name: "unknown name", themeName: "nonexistent", wantName: Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if th.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, th.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_FillsModalColors(t *testing.T) {
	for _, name := range Available() {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) unexpected error: %v", name, err)
		}
		colors := map[string]string{
			"Bg":          th.Bg,
			"Fg":          th.Fg,
			"Accent":      th.Accent,
			"Master":      th.Master,
			"Repeat":      th.Repeat,
			"Handle":      th.Handle,
			"Warning":     th.Warning,
			"BaseBg":      th.BaseBg,
			"ModalBorder": th.ModalBorder,
			"TextPrimary": th.TextPrimary,
			"TextMuted":   th.TextMuted,
			"Highlight":   th.Highlight,
		}
		for field, hex := range colors {
			if len(hex) != 7 || hex[0] != '#' {
				t.Errorf("%s.%s = %q, want #rrggbb", name, field, hex)
			}
		}
		if th.Master == th.Repeat {
			t.Errorf("theme %q uses the same color for masters and repeats", name)
		}
	}
}

func TestAvailable(t *testing.T) {
	got := Available()
	want := []string{"frappe", "latte", "light", "macchiato", "mocha"}
	if !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
	if !slices.Contains(got, Fallback) {
		t.Errorf("fallback %q is not embedded", Fallback)
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		theme string
		want  bool
	}{
		{"mocha", true},
		{"Latte", true},
		{"neon", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAvailable(tt.theme); got != tt.want {
			t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.want)
		}
	}
}

func TestColor(t *testing.T) {
	if c := Color("#89b4fa"); string(c) != "#89b4fa" {
		t.Errorf("Color = %q", string(c))
	}
}
