// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// Fallback is used for an empty or unknown theme name.
const Fallback = "mocha"

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // gridlines, alternate hour rows
	BgSelection string `toml:"bg_selection"` // cursor cell
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // gutter labels
	Accent      string `toml:"accent"`
	Master      string `toml:"master"`
	Repeat      string `toml:"repeat"`
	Handle      string `toml:"handle"`  // handles and the block under drag
	Warning     string `toml:"warning"` // constraint notices

	// Optional modal overrides. Empty values are filled from the colors above.
	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads an embedded theme by name. Unknown names load Fallback.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = Fallback
	}

	data, err := embeddedThemes.ReadFile(path.Join("embedded", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.fillModal()
	return &t, nil
}

func (t *Theme) fillModal() {
	t.BaseBg = coalesce(t.BaseBg, t.BgHighlight, t.Bg)
	t.ModalBorder = coalesce(t.ModalBorder, t.Accent)
	t.TextPrimary = coalesce(t.TextPrimary, t.Fg)
	t.TextMuted = coalesce(t.TextMuted, t.FgMuted)
	t.Highlight = coalesce(t.Highlight, t.BgSelection, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the embedded theme names in sorted order.
func Available() []string {
	entries, err := embeddedThemes.ReadDir("embedded")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".toml"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// IsAvailable reports whether a theme name is available, ignoring case.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
