package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/summary"
	"github.com/javiermolinar/classgrid/internal/tui/view"
)

const helpText = "click add · drag move/resize · 5/8/6 presets · p/c assign · x delete · t table · ? help · q quit"

// View renders the title bar, the day grid and the footer, with the modal
// on top when one is open.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	overlay := m.overlay
	overlay.SetActive(showModal)
	modal := ""
	if showModal {
		modal = m.renderModal()
	}

	innerW := max(0, m.width-2*appPadding)
	indent := func(s string) string {
		return m.styles.AppStyle.Render(s)
	}

	return view.ViewState{
		Width:        m.width,
		Height:       m.height,
		Title:        indent(m.renderTitle(innerW)),
		Header:       indent(m.renderDayHeaders()),
		Grid:         indent(m.renderGrid()),
		Footer:       indent(m.renderFooter(innerW)),
		ModalContent: modal,
		ShowModal:    showModal,
		Overlay:      overlay,
		Bg:           m.styles.colorBg,
	}
}

func (m Model) renderTitle(width int) string {
	title := m.styles.TitleStyle.Render("classgrid  " + view.WeekTitle(m.weekOf))
	stats := m.styles.StatsBarStyle.Render(statsLine(summary.Stats(m.Blocks())))
	gap := width - lipgloss.Width(title) - lipgloss.Width(stats)
	if gap < 1 {
		return title
	}
	return title + m.styles.StatsBarStyle.Render(strings.Repeat(" ", gap)) + stats
}

func statsLine(s summary.WeekStats) string {
	if s.Sessions == 0 {
		return "no events"
	}
	line := fmt.Sprintf("%d sessions · %d groups · %s", s.Sessions, s.Groups, summary.FormatMinutes(s.TotalMinutes))
	if s.Unassigned > 0 {
		line += fmt.Sprintf(" · %d unassigned", s.Unassigned)
	}
	return line
}

func (m Model) renderDayHeaders() string {
	labels, todayCol := view.HeaderLabels(m.weekOf, m.now())
	var row strings.Builder
	row.WriteString(m.styles.TimeColumnStyle.Render(strings.Repeat(" ", gutterWidth)))
	sep := m.styles.SeparatorStyle.Render(" ")
	for _, d := range grid.Days {
		style := m.styleCache.DayHeader
		if int(d) == todayCol {
			style = m.styleCache.DayHeaderToday
		}
		row.WriteString(sep)
		row.WriteString(style.Render(view.Fit(labels[d], m.layout.ColWidth)))
	}
	return row.String()
}

func (m Model) renderFooter(width int) string {
	statusStyle := m.styles.HelpStyle
	status := ""
	if m.statusMsg != "" {
		status = m.statusMsg
		switch m.statusKind {
		case statusNotice:
			statusStyle = m.styles.ErrorNoticeStyle()
		case statusCopied:
			statusStyle = m.styles.CopiedNoticeStyle()
		default:
			statusStyle = m.styles.StatusStyle
		}
	} else if m.mode == ModeDrag {
		s := m.machine.Session()
		status = fmt.Sprintf("%s %s", s.Mode, m.dragLabel())
	}

	return view.RenderFooter(view.FooterViewState{
		InnerW:      width,
		HourLabel:   m.closingLabel(),
		StatusText:  status,
		HelpText:    helpText,
		LabelStyle:  m.styles.TimeColumnStyle.UnsetWidth(),
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.StatsBarStyle,
		Bg:          m.styles.colorBg,
	})
}

// dragLabel shows the live geometry of the dragged block.
func (m Model) dragLabel() string {
	s := m.machine.Session()
	b, ok := m.machine.Registry().Block(s.BlockID)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %s (%d min)", b.Day, b.TimeLabel(), b.DurationMinute)
}
