package tui

import "github.com/charmbracelet/lipgloss"

// StyleCache stores width-specific styles to avoid per-cell mutations.
type StyleCache struct {
	DayHeader      lipgloss.Style
	DayHeaderToday lipgloss.Style
	Empty          lipgloss.Style
	HourLine       lipgloss.Style
	Restricted     lipgloss.Style
	Cursor         lipgloss.Style
	Master         lipgloss.Style
	MasterAlt      lipgloss.Style
	Repeat         lipgloss.Style
	RepeatAlt      lipgloss.Style
	Dragging       lipgloss.Style
}

// NewStyleCache precomputes all width-dependent styles for the grid.
func NewStyleCache(styles *Styles, width int) StyleCache {
	width = max(1, width)
	return StyleCache{
		DayHeader:      styles.DayHeaderStyle.Width(width),
		DayHeaderToday: styles.DayHeaderTodayStyle.Width(width),
		Empty:          styles.EmptyCellStyle.Width(width),
		HourLine:       styles.HourLineStyle.Width(width),
		Restricted:     styles.RestrictedCellStyle.Width(width),
		Cursor:         styles.CursorStyle.Width(width),
		Master:         styles.MasterStyle.Width(width),
		MasterAlt:      styles.MasterAltStyle.Width(width),
		Repeat:         styles.RepeatStyle.Width(width),
		RepeatAlt:      styles.RepeatAltStyle.Width(width),
		Dragging:       styles.DraggingStyle.Width(width),
	}
}

// block returns the cell style for a block with the given shading.
func (c StyleCache) block(master, alt, dragging bool) lipgloss.Style {
	switch {
	case dragging:
		return c.Dragging
	case master && alt:
		return c.MasterAlt
	case master:
		return c.Master
	case alt:
		return c.RepeatAlt
	default:
		return c.Repeat
	}
}
