package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/classgrid/internal/schedule"
)

const pickerMaxItems = 8

// pickerModel is the searchable professor/class list.
type pickerModel struct {
	blockID  int64
	kind     schedule.AssignmentKind
	target   string
	current  string
	items    []string
	filtered []string
	selected int
	input    textinput.Model
}

func newPicker(b schedule.Block, kind schedule.AssignmentKind, items []string, styles *Styles) pickerModel {
	input := textinput.New()
	input.Placeholder = "Search..."
	input.CharLimit = 64
	input.Width = 32
	input.Prompt = "/ "
	input.PlaceholderStyle = styles.ModalPlaceholderStyle
	input.TextStyle = styles.ModalInputTextStyle
	input.PromptStyle = styles.ModalInputTextStyle
	input.Cursor.Style = styles.ModalInputCursorStyle
	input.Cursor.TextStyle = styles.ModalInputTextStyle
	input.Focus()

	current := b.Professor
	if kind == schedule.KindClass {
		current = b.Class
	}

	p := pickerModel{
		blockID: b.ID,
		kind:    kind,
		target:  b.Day.String() + ", " + b.TimeLabel(),
		current: current,
		items:   items,
		input:   input,
	}
	p.refilter()
	for i, item := range p.filtered {
		if item == current {
			p.selected = i
		}
	}
	return p
}

// filterItems keeps the items containing query, ignoring case.
func filterItems(items []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	var out []string
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), query) {
			out = append(out, item)
		}
	}
	return out
}

func (p *pickerModel) refilter() {
	p.filtered = filterItems(p.items, p.input.Value())
	if p.selected >= len(p.filtered) {
		p.selected = max(0, len(p.filtered)-1)
	}
}

// Update moves the selection or edits the query.
func (p pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "ctrl+p":
			if p.selected > 0 {
				p.selected--
			}
			return p, nil
		case "down", "ctrl+n":
			if p.selected < len(p.filtered)-1 {
				p.selected++
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	prev := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != prev {
		p.selected = 0
		p.refilter()
	}
	return p, cmd
}

// Choice returns the highlighted entry.
func (p pickerModel) Choice() (string, bool) {
	if len(p.filtered) == 0 {
		return "", false
	}
	return p.filtered[p.selected], true
}

func (p pickerModel) title() string {
	if p.kind == schedule.KindClass {
		return "Assign class"
	}
	return "Assign professor"
}
