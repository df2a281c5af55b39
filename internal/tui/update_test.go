package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/classgrid/internal/config"
	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/interact"
	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/tui/commands"
)

// Monday of the week of Jan 13, 2025.
var testNow = time.Date(2025, 1, 13, 9, 0, 0, 0, time.Local)

// newTestModel returns a model sized to 140x65: 20-cell columns and six
// lines per hour, so one grid line is ten minutes.
func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(config.Default(), nil, WithNow(func() time.Time { return testNow }))
	return send(t, m, tea.WindowSizeMsg{Width: 140, Height: 65})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return model
}

func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Msg) {
	t.Helper()
	updated, cmd := m.Update(msg)
	var out tea.Msg
	if cmd != nil {
		out = cmd()
	}
	return updated.(Model), out
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func pressKeys(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, keyMsg(k))
	}
	return m
}

func mouseAt(m Model, action tea.MouseAction, day grid.Day, line int) tea.MouseMsg {
	button := tea.MouseButtonLeft
	if action == tea.MouseActionRelease {
		button = tea.MouseButtonNone
	}
	return tea.MouseMsg{
		X:      m.layout.ColumnLeft(day) + 2,
		Y:      m.layout.GridTop() + line,
		Action: action,
		Button: button,
	}
}

func blocksOn(m Model, day grid.Day) []schedule.Block {
	var out []schedule.Block
	for _, b := range m.Blocks() {
		if b.Day == day {
			out = append(out, b)
		}
	}
	return out
}

// clickMonday9am creates the default Monday block at 9:00 AM with its
// Wednesday repeat.
func clickMonday9am(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, mouseAt(m, tea.MouseActionPress, grid.Monday, 6))
	m = send(t, m, mouseAt(m, tea.MouseActionRelease, grid.Monday, 6))
	if len(m.Blocks()) != 2 {
		t.Fatalf("expected master and repeat, got %d blocks", len(m.Blocks()))
	}
	return m
}

func TestMouseClickCreatesBlock(t *testing.T) {
	m := clickMonday9am(t, newTestModel(t))

	mon := blocksOn(m, grid.Monday)
	if len(mon) != 1 || mon[0].StartMinute != 60 || mon[0].DurationMinute != grid.DefaultDuration {
		t.Fatalf("unexpected Monday blocks: %+v", mon)
	}
	wed := blocksOn(m, grid.Wednesday)
	if len(wed) != 1 || wed[0].Role != schedule.RoleRepeat || wed[0].StartMinute != 60 {
		t.Fatalf("unexpected Wednesday blocks: %+v", wed)
	}
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
	if m.cursor != (Position{Day: grid.Monday, Line: 6}) {
		t.Errorf("cursor = %+v", m.cursor)
	}
}

func TestMouseClickBeforeFloorShowsNotice(t *testing.T) {
	m := newTestModel(t)

	m, msg := sendCmd(t, m, mouseAt(m, tea.MouseActionPress, grid.Wednesday, 6))
	notice, ok := msg.(commands.NoticeMsg)
	if !ok {
		t.Fatalf("expected NoticeMsg, got %T", msg)
	}
	if !strings.Contains(notice.Msg, "5:00 PM") {
		t.Errorf("notice = %q, want the floor time", notice.Msg)
	}
	if len(m.Blocks()) != 0 {
		t.Errorf("expected no blocks, got %d", len(m.Blocks()))
	}

	// A click after the floor is accepted.
	m = send(t, m, mouseAt(m, tea.MouseActionPress, grid.Wednesday, 55))
	if len(blocksOn(m, grid.Wednesday)) != 1 {
		t.Errorf("expected a Wednesday block after the floor")
	}
}

func TestMouseResizeBottomRecomputesRepeats(t *testing.T) {
	m := clickMonday9am(t, newTestModel(t))

	m = send(t, m, mouseAt(m, tea.MouseActionPress, grid.Monday, 13))
	if m.mode != ModeDrag {
		t.Fatalf("mode = %v, want drag", m.mode)
	}
	if got := m.machine.Session().Mode; got != interact.ModeResizeBottom {
		t.Fatalf("session mode = %v, want resize-bottom", got)
	}

	m = send(t, m, mouseAt(m, tea.MouseActionMotion, grid.Monday, 16))
	live := blocksOn(m, grid.Monday)[0]
	if live.DurationMinute != 110 {
		t.Errorf("live duration = %d, want 110", live.DurationMinute)
	}
	if len(blocksOn(m, grid.Wednesday)) != 1 {
		t.Error("repeats must not change before release")
	}

	m = send(t, m, mouseAt(m, tea.MouseActionRelease, grid.Monday, 16))
	if m.mode != ModeNormal || m.machine.Dragging() {
		t.Fatal("expected the drag to end on release")
	}
	mon := blocksOn(m, grid.Monday)[0]
	if mon.DurationMinute != 120 {
		t.Errorf("settled duration = %d, want 120", mon.DurationMinute)
	}
	if len(m.Blocks()) != 1 {
		t.Errorf("expected the repeat to be removed, got %d blocks", len(m.Blocks()))
	}
}

func TestMouseMoveSyncsRepeats(t *testing.T) {
	m := clickMonday9am(t, newTestModel(t))

	m = send(t, m, mouseAt(m, tea.MouseActionPress, grid.Monday, 9))
	if got := m.machine.Session().Mode; got != interact.ModeMove {
		t.Fatalf("session mode = %v, want move", got)
	}
	m = send(t, m, mouseAt(m, tea.MouseActionMotion, grid.Monday, 12))
	m = send(t, m, mouseAt(m, tea.MouseActionRelease, grid.Monday, 12))

	mon := blocksOn(m, grid.Monday)[0]
	if mon.StartMinute != 90 || mon.DurationMinute != 80 {
		t.Errorf("Monday = %d+%d, want 90+80", mon.StartMinute, mon.DurationMinute)
	}
	wed := blocksOn(m, grid.Wednesday)
	if len(wed) != 1 || wed[0].StartMinute != 90 {
		t.Errorf("Wednesday repeat did not follow: %+v", wed)
	}
	if m.cursor.Line != 9 {
		t.Errorf("cursor line = %d, want 9", m.cursor.Line)
	}
}

func TestBlurReleasesDrag(t *testing.T) {
	m := clickMonday9am(t, newTestModel(t))

	m = send(t, m, mouseAt(m, tea.MouseActionPress, grid.Monday, 13))
	m = send(t, m, mouseAt(m, tea.MouseActionMotion, grid.Monday, 16))
	m = send(t, m, tea.BlurMsg{})

	if m.mode != ModeNormal || m.machine.Dragging() {
		t.Fatal("expected focus loss to end the drag")
	}
	if got := blocksOn(m, grid.Monday)[0].DurationMinute; got != 120 {
		t.Errorf("duration = %d, want 120", got)
	}
}

func TestMousePressOnRepeatShowsNotice(t *testing.T) {
	m := clickMonday9am(t, newTestModel(t))

	m, msg := sendCmd(t, m, mouseAt(m, tea.MouseActionPress, grid.Wednesday, 8))
	if m.machine.Dragging() {
		t.Fatal("repeats must not start a drag")
	}
	notice, ok := msg.(commands.NoticeMsg)
	if !ok || !strings.Contains(notice.Msg, "Monday") {
		t.Errorf("expected notice pointing at Monday, got %#v", msg)
	}
}

func TestKeyEnterCreatesAtCursor(t *testing.T) {
	m := newTestModel(t)
	m = pressKeys(t, m, "j", "j", "j", "j", "j", "j", "enter")

	mon := blocksOn(m, grid.Monday)
	if len(mon) != 1 || mon[0].StartMinute != 60 {
		t.Fatalf("unexpected Monday blocks: %+v", mon)
	}
}

func TestKeyGestures(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		wantStart     int
		wantDuration  int
		wantRepeats   int
		wantCursorRow int
	}{
		{name: "move_down", key: "J", wantStart: 30, wantDuration: 80, wantRepeats: 1, wantCursorRow: 3},
		{name: "grow_bottom", key: "]", wantStart: 0, wantDuration: 120, wantRepeats: 0, wantCursorRow: 11},
		{name: "shrink_bottom", key: "[", wantStart: 0, wantDuration: 60, wantRepeats: 0, wantCursorRow: 5},
		{name: "shrink_top", key: "}", wantStart: 30, wantDuration: 60, wantRepeats: 0, wantCursorRow: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressKeys(t, newTestModel(t), "enter", tt.key)

			mon := blocksOn(m, grid.Monday)
			if len(mon) != 1 {
				t.Fatalf("expected one Monday block, got %d", len(mon))
			}
			if mon[0].StartMinute != tt.wantStart || mon[0].DurationMinute != tt.wantDuration {
				t.Errorf("Monday = %d+%d, want %d+%d", mon[0].StartMinute, mon[0].DurationMinute, tt.wantStart, tt.wantDuration)
			}
			if got := len(m.Blocks()) - 1; got != tt.wantRepeats {
				t.Errorf("repeats = %d, want %d", got, tt.wantRepeats)
			}
			if m.cursor.Line != tt.wantCursorRow {
				t.Errorf("cursor line = %d, want %d", m.cursor.Line, tt.wantCursorRow)
			}
			if m.machine.Dragging() {
				t.Error("keyboard gestures must leave no drag open")
			}
		})
	}
}

func TestKeyPresets(t *testing.T) {
	m := pressKeys(t, newTestModel(t), "l", "enter")
	if len(blocksOn(m, grid.Thursday)) != 1 {
		t.Fatal("expected a Thursday repeat for the default Tuesday block")
	}

	m, msg := sendCmd(t, m, keyMsg("5"))
	notice, ok := msg.(commands.NoticeMsg)
	if !ok || notice.Msg != "50 minute sessions are not offered on Tuesday" {
		t.Fatalf("unexpected message %#v", msg)
	}
	if got := blocksOn(m, grid.Tuesday)[0].DurationMinute; got != 80 {
		t.Errorf("duration = %d, want 80", got)
	}

	m = pressKeys(t, m, "6")
	if got := blocksOn(m, grid.Tuesday)[0].DurationMinute; got != 160 {
		t.Errorf("duration = %d, want 160", got)
	}
	if len(m.Blocks()) != 1 {
		t.Errorf("160 minute sessions do not repeat, got %d blocks", len(m.Blocks()))
	}
}

func TestConfirmDeleteFlow(t *testing.T) {
	m := clickMonday9am(t, newTestModel(t))

	m = pressKeys(t, m, "x")
	if m.mode != ModeModal || m.modalType != ModalConfirmDelete {
		t.Fatalf("expected the delete confirmation, got %v/%v", m.mode, m.modalType)
	}
	m = pressKeys(t, m, "n")
	if m.mode != ModeNormal || len(m.Blocks()) != 2 {
		t.Fatal("declining must keep the group")
	}

	m = pressKeys(t, m, "x")
	m, msg := sendCmd(t, m, keyMsg("y"))
	if len(m.Blocks()) != 0 {
		t.Errorf("expected the group to be deleted, got %d blocks", len(m.Blocks()))
	}
	if status, ok := msg.(commands.StatusMsgCmd); !ok || status.Msg != "Event deleted" {
		t.Errorf("unexpected message %#v", msg)
	}
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
}

func TestPickerAssignsToGroup(t *testing.T) {
	m := clickMonday9am(t, newTestModel(t))

	m = pressKeys(t, m, "p")
	if m.modalType != ModalPicker {
		t.Fatalf("expected the picker, got %v", m.modalType)
	}
	m = pressKeys(t, m, "john", "enter")
	if m.mode != ModeNormal {
		t.Fatalf("mode = %v, want normal", m.mode)
	}
	for _, b := range m.Blocks() {
		if b.Professor != "Prof. Johnson" {
			t.Errorf("%s block professor = %q", b.Day, b.Professor)
		}
	}

	m = pressKeys(t, m, "c", "esc")
	if m.mode != ModeNormal {
		t.Fatal("esc must close the picker")
	}
	if got := blocksOn(m, grid.Monday)[0].Class; got != "" {
		t.Errorf("cancelled picker assigned %q", got)
	}
}

func TestStatusClears(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, commands.StatusMsgCmd{Msg: "hello"})
	if m.statusMsg != "hello" {
		t.Fatalf("statusMsg = %q", m.statusMsg)
	}

	m = send(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "hello" {
		t.Error("status cleared before its deadline")
	}
	m.now = func() time.Time { return testNow.Add(time.Minute) }
	m = send(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "" {
		t.Errorf("statusMsg = %q, want cleared", m.statusMsg)
	}
}
