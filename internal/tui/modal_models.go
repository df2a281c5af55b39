package tui

import (
	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/summary"
	"github.com/javiermolinar/classgrid/internal/tui/view"
)

type pickerModalViewModel struct {
	Title  string
	Model  view.PickerModel
	Styles view.PickerStyles
}

func (m Model) pickerModalViewModel() pickerModalViewModel {
	p := m.picker
	return pickerModalViewModel{
		Title: p.title(),
		Model: view.PickerModel{
			Target:   p.target,
			Input:    p.input.View(),
			Items:    p.filtered,
			Selected: p.selected,
			Current:  p.current,
			MaxItems: pickerMaxItems,
		},
		Styles: view.PickerStyles{
			MetaStyle:       m.styles.ModalMetaStyle,
			ItemStyle:       m.styles.ModalItemStyle,
			ItemActiveStyle: m.styles.ModalItemActiveStyle,
			HintStyle:       m.styles.ModalHintStyle,
		},
	}
}

type confirmDeleteModalViewModel struct {
	Model  view.ConfirmDeleteModel
	Styles view.ConfirmDeleteStyles
}

func (m Model) confirmDeleteModalViewModel() (confirmDeleteModalViewModel, bool) {
	b, ok := m.machine.Registry().Block(m.pendingDelete)
	if !ok {
		return confirmDeleteModalViewModel{}, false
	}
	_, repeats, _ := m.machine.Registry().Group(b.GroupID)
	days := make([]string, 0, len(repeats))
	for _, r := range repeats {
		days = append(days, r.Day.String())
	}
	return confirmDeleteModalViewModel{
		Model: view.ConfirmDeleteModel{
			DayLabel:  b.Day.String(),
			TimeRange: b.TimeLabel(),
			Professor: b.Professor,
			Class:     b.Class,
			Repeats:   days,
		},
		Styles: view.ConfirmDeleteStyles{
			BodyStyle:  m.styles.ModalBodyStyle,
			LabelStyle: m.styles.ModalLabelStyle,
			HintStyle:  m.styles.ModalHintStyle,
		},
	}, true
}

func (m Model) summaryTableViewState() view.TableViewState {
	rows := summary.Rows(m.Blocks())
	cells := make([][]string, 0, len(rows))
	repeats := make(map[int]bool)
	for i, r := range rows {
		cells = append(cells, r.Cells())
		if r.Role == schedule.RoleRepeat {
			repeats[i] = true
		}
	}
	return view.TableViewState{
		Headers:      summary.Headers,
		Rows:         cells,
		HeaderStyle:  m.styles.TableHeaderStyle,
		CellStyle:    m.styles.TableCellStyle,
		RepeatStyle:  m.styles.TableCellStyle.Foreground(m.styles.colorRepeat),
		RepeatRows:   repeats,
		BorderStyle:  m.styles.TableBorderStyle,
		EmptyMessage: "No events yet. Click a day column to add one.",
	}
}

var helpEntries = []view.HelpEntry{
	{Keys: "mouse", Desc: "click empty space to add, drag body to move, drag ▲/▼ to resize"},
	{Keys: "h j k l", Desc: "move the cursor"},
	{Keys: "enter", Desc: "add an event at the cursor"},
	{Keys: "5 8 6", Desc: "preset 50, 80 or 160 minutes"},
	{Keys: "K J", Desc: "move the event up/down"},
	{Keys: "[ ]", Desc: "move the bottom edge"},
	{Keys: "{ }", Desc: "move the top edge"},
	{Keys: "p c", Desc: "assign professor / class"},
	{Keys: "x", Desc: "delete the event and its repeats"},
	{Keys: "t", Desc: "summary table"},
	{Keys: "y e", Desc: "copy summary / iCalendar"},
	{Keys: "q", Desc: "quit"},
}
