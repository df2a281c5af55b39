// Package tui provides the terminal user interface for classgrid.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/classgrid/internal/tui/theme"
)

// Default column width - will be recalculated dynamically.
const defaultColWidth = 16

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorMaster      lipgloss.Color
	colorRepeat      lipgloss.Color
	colorHandle      lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent  lipgloss.Color
	colorTextOnHandle  lipgloss.Color
	colorTextOnMaster  lipgloss.Color
	colorTextOnRepeat  lipgloss.Color
	colorTextOnWarning lipgloss.Color

	TitleStyle lipgloss.Style

	// Header styles
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time gutter
	TimeColumnStyle lipgloss.Style

	// Block cell styles
	BlockCellStyle      lipgloss.Style
	MasterStyle         lipgloss.Style
	MasterAltStyle      lipgloss.Style // adjacent masters in one column
	RepeatStyle         lipgloss.Style
	RepeatAltStyle      lipgloss.Style
	DraggingStyle       lipgloss.Style // master under an active drag
	HandleStyle         lipgloss.Style // resize handle marker
	RepeatMarkerStyle   lipgloss.Style
	EmptyCellStyle      lipgloss.Style
	HourLineStyle       lipgloss.Style // empty cell on an hour boundary
	RestrictedCellStyle lipgloss.Style // empty cell before the restricted floor
	CursorStyle         lipgloss.Style

	// Footer
	StatsBarStyle lipgloss.Style
	StatusStyle   lipgloss.Style
	HelpStyle     lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalItemStyle         lipgloss.Style
	ModalItemActiveStyle   lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style

	// Summary table
	TableHeaderStyle lipgloss.Style
	TableCellStyle   lipgloss.Style
	TableBorderStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Separator style
	SeparatorStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorMaster = palette.Master
	s.colorRepeat = palette.Repeat
	s.colorHandle = palette.Handle
	s.colorWarning = palette.Warning

	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnHandle = palette.TextOnHandle
	s.colorTextOnMaster = palette.TextOnMaster
	s.colorTextOnRepeat = palette.TextOnRepeat
	s.colorTextOnWarning = palette.TextOnWarning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(defaultColWidth)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(s.colorAccent)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(gutterWidth)

	s.BlockCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Left)

	s.MasterStyle = s.BlockCellStyle.
		Background(palette.MasterBg).
		Foreground(s.colorTextOnMaster).
		Bold(true)

	s.MasterAltStyle = s.BlockCellStyle.
		Background(palette.MasterBgAlt).
		Foreground(s.colorTextOnMaster).
		Bold(true)

	// Repeats are read-only; keep them visibly quieter than masters.
	s.RepeatStyle = s.BlockCellStyle.
		Background(palette.RepeatBg).
		Foreground(s.colorTextOnRepeat).
		Italic(true)

	s.RepeatAltStyle = s.BlockCellStyle.
		Background(palette.RepeatBgAlt).
		Foreground(s.colorTextOnRepeat).
		Italic(true)

	s.DraggingStyle = s.BlockCellStyle.
		Background(palette.DraggingBg).
		Foreground(s.colorFg).
		Bold(true)

	s.HandleStyle = lipgloss.NewStyle().
		Foreground(s.colorHandle).
		Bold(true)

	s.RepeatMarkerStyle = lipgloss.NewStyle().
		Foreground(s.colorRepeat)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.HourLineStyle = s.EmptyCellStyle.
		Foreground(s.colorBgSelection)

	s.RestrictedCellStyle = s.EmptyCellStyle.
		Background(s.colorBgHighlight)

	s.CursorStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.StatsBarStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 1).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Width(12).
		Background(modalBg)

	s.ModalItemStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1)

	s.ModalItemActiveStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight).
		Bold(true).
		Padding(0, 1)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 3).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(modalBg).
		Padding(0, 1)

	s.TableCellStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1)

	s.TableBorderStyle = lipgloss.NewStyle().
		Foreground(modal.Border).
		Background(modalBg)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingLeft(1).
		PaddingRight(1)

	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	return s
}

// ErrorNoticeStyle returns the footer style used for constraint notices.
func (s *Styles) ErrorNoticeStyle() lipgloss.Style {
	return s.StatusStyle.
		Background(s.colorWarning).
		Foreground(s.colorTextOnWarning)
}

// CopiedNoticeStyle returns the footer style used for clipboard confirmations.
func (s *Styles) CopiedNoticeStyle() lipgloss.Style {
	return s.StatusStyle.
		Background(s.colorAccent).
		Foreground(s.colorTextOnAccent)
}
