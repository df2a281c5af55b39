package interact

import "github.com/javiermolinar/classgrid/internal/grid"

// Mode is the kind of drag in progress.
type Mode int

const (
	ModeMove Mode = iota
	ModeResizeTop
	ModeResizeBottom
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeResizeTop:
		return "resize-top"
	case ModeResizeBottom:
		return "resize-bottom"
	default:
		return "move"
	}
}

// Handle is the part of a block that received a pointer-down.
type Handle int

const (
	HandleBody Handle = iota
	HandleTop
	HandleBottom
)

func (h Handle) mode() Mode {
	switch h {
	case HandleTop:
		return ModeResizeTop
	case HandleBottom:
		return ModeResizeBottom
	default:
		return ModeMove
	}
}

// DragSession is the state of one in-progress drag. The zero value is an
// idle session.
//
// Geometry is kept in offset units so that pointer deltas accumulate without
// rounding drift; it is settled into minutes on release.
type DragSession struct {
	Active  bool
	Mode    Mode
	BlockID int64
	Day     grid.Day

	// Pointer offset and block geometry captured at pointer-down.
	AnchorPointer float64
	AnchorTop     float64
	AnchorHeight  float64

	// Live geometry.
	Top    float64
	Height float64
}

// Bottom returns the live bottom edge of the dragged block.
func (s DragSession) Bottom() float64 {
	return s.Top + s.Height
}

// step recomputes the live geometry for a pointer at offset. The column is
// columnHeight tall and a block may not be shorter than minHeight.
func (s DragSession) step(offset, columnHeight, minHeight float64) DragSession {
	delta := offset - s.AnchorPointer
	switch s.Mode {
	case ModeMove:
		top := min(s.AnchorTop+delta, columnHeight-s.AnchorHeight)
		s.Top = max(0, top)
		s.Height = s.AnchorHeight
	case ModeResizeTop:
		bottom := s.AnchorTop + s.AnchorHeight
		top := min(s.AnchorTop+delta, bottom-minHeight)
		s.Top = max(0, top)
		s.Height = bottom - s.Top
	case ModeResizeBottom:
		s.Top = s.AnchorTop
		height := min(s.AnchorHeight+delta, columnHeight-s.AnchorTop)
		s.Height = max(minHeight, height)
	}
	return s
}
