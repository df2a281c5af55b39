// Package schedule owns the blocks placed on the weekly grid and keeps
// every recurrence group consistent with its master.
package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/recurrence"
)

// Registry errors.
var (
	ErrBlockNotFound     = errors.New("block not found")
	ErrNotMaster         = errors.New("block is a repeat and cannot be changed directly")
	ErrInvalidDay        = errors.New("day must be Monday through Saturday")
	ErrDurationTooShort  = errors.New("duration is below the minimum")
	ErrBeforeFloor       = errors.New("start is before the restricted-day floor")
	ErrInvalidAssignment = errors.New("assignment kind must be 'professor' or 'class'")
)

// Role tells masters and repeats apart.
type Role int

const (
	RoleMaster Role = iota
	RoleRepeat
)

// String returns "master" or "repeat".
func (r Role) String() string {
	if r == RoleRepeat {
		return "repeat"
	}
	return "master"
}

// AssignmentKind selects the assignment field of a block.
type AssignmentKind string

const (
	KindProfessor AssignmentKind = "professor"
	KindClass     AssignmentKind = "class"
)

// ParseAssignmentKind parses "professor" or "class".
func ParseAssignmentKind(s string) (AssignmentKind, error) {
	switch AssignmentKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindProfessor:
		return KindProfessor, nil
	case KindClass:
		return KindClass, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAssignment, s)
	}
}

// Block is a session placed on one day column.
type Block struct {
	ID             int64
	Day            grid.Day
	StartMinute    int
	DurationMinute int
	Role           Role
	GroupID        uuid.UUID
	Pattern        recurrence.Pattern // repeats only
	Professor      string
	Class          string
}

// EndMinute returns the grid-relative end of the block.
func (b Block) EndMinute() int {
	return b.StartMinute + b.DurationMinute
}

// IsMaster reports whether b owns its group.
func (b Block) IsMaster() bool {
	return b.Role == RoleMaster
}

// TimeLabel formats the block's clock range.
func (b Block) TimeLabel() string {
	return grid.FormatRange(b.StartMinute, b.EndMinute())
}

// DayLabel returns the pattern for repeats and the weekday for masters.
func (b Block) DayLabel() string {
	if b.Role == RoleRepeat && b.Pattern != recurrence.PatternNone {
		return string(b.Pattern)
	}
	return b.Day.String()
}

// Renderer draws the grid from block records. It is called after every
// mutation that changes visible state.
type Renderer interface {
	Render(blocks []Block)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(blocks []Block)

// Render calls f(blocks).
func (f RenderFunc) Render(blocks []Block) {
	f(blocks)
}
