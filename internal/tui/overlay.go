package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Margin of backdrop kept around a modal box.
const (
	overlayMarginX = 2
	overlayMarginY = 1
)

// OverlayModel splices a modal box into the middle of the rendered grid.
// The box sits on a backdrop rectangle slightly larger than the content so
// the block colors underneath do not bleed into the modal border.
type OverlayModel struct {
	active   bool
	backdrop lipgloss.Color
}

// NewOverlayModel returns an inactive overlay with no backdrop color.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground sets the backdrop color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.backdrop = color
}

// Render draws content centered over base. Base lines are cut or padded to
// width and the result always has height lines.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	rows := fitLines(base, width, height)
	box := trimTrailingEmpty(strings.Split(content, "\n"))
	if len(box) == 0 {
		return strings.Join(rows, "\n")
	}

	contentW := 0
	for _, l := range box {
		contentW = max(contentW, lipgloss.Width(l))
	}
	boxW := min(width, contentW+2*overlayMarginX)
	boxH := min(height, len(box)+2*overlayMarginY)
	top := (height - boxH) / 2
	left := (width - boxW) / 2

	for i := 0; i < boxH; i++ {
		line := o.fill(boxW)
		if c := i - overlayMarginY; c >= 0 && c < len(box) {
			line = o.boxLine(box[c], boxW, contentW)
		}
		row := rows[top+i]
		rows[top+i] = ansi.Cut(row, 0, left) + line + ansi.Cut(row, left+boxW, width)
	}
	return strings.Join(rows, "\n")
}

func (o OverlayModel) bgSeq() string {
	if o.backdrop == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.backdrop))).String()
}

func (o OverlayModel) fill(w int) string {
	return o.bgSeq() + strings.Repeat(" ", w) + ansi.ResetStyle
}

// boxLine pads one content line to contentW and centers it in boxW cells of
// backdrop. Resets inside the content re-open the backdrop.
func (o OverlayModel) boxLine(line string, boxW, contentW int) string {
	w := lipgloss.Width(line)
	if w > boxW {
		line = ansi.Truncate(line, boxW, "")
		w = boxW
	}
	contentW = min(contentW, boxW)
	if w < contentW {
		line += strings.Repeat(" ", contentW-w)
	}
	bg := o.bgSeq()
	if bg != "" {
		line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bg)
		line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bg)
	}
	leftPad := (boxW - contentW) / 2
	rightPad := max(0, boxW-contentW-leftPad)
	return bg + strings.Repeat(" ", leftPad) + line + bg + strings.Repeat(" ", rightPad) + ansi.ResetStyle
}

// fitLines splits s into exactly height lines of exactly width cells.
func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		w := lipgloss.Width(l)
		switch {
		case w > width:
			lines[i] = ansi.Cut(l, 0, width)
		case w < width:
			lines[i] = l + strings.Repeat(" ", width-w)
		}
	}
	return lines
}

func trimTrailingEmpty(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
