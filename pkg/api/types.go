package api

import (
	"fmt"
	"sync/atomic"
)

// Phase represents the lifecycle state of a tour session.
type Phase string

const (
	PhaseIdle       Phase = "IDLE"
	PhaseStarting   Phase = "STARTING"
	PhaseReady      Phase = "READY"
	PhaseCompleting Phase = "COMPLETING"
)

// Side identifies which side of a target a tooltip prefers.
//
// The declaration order doubles as the fallback scan order used by the
// placement engine when the preferred side has no room: Bottom, Top,
// Right, Left. Ties on available space resolve to the earlier side.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideRight
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide converts a lowercase side name ("top", "bottom", "left",
// "right") into a Side. Used by the YAML tour loader.
func ParseSide(name string) (Side, error) {
	switch name {
	case "bottom":
		return SideBottom, nil
	case "top":
		return SideTop, nil
	case "right":
		return SideRight, nil
	case "left":
		return SideLeft, nil
	default:
		return SideBottom, fmt.Errorf("unknown side: %q", name)
	}
}

// Rect is an axis-aligned bounding box in absolute viewport coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// IsZero reports whether the rect is the zero value, i.e. no layout pass
// has reported geometry for the target yet.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

type targetKind uint8

const (
	targetSymbolic targetKind = iota + 1
	targetString
)

var symbolicSeq atomic.Uint64

// TargetID identifies a highlightable UI element. It is a small tagged
// value with structural equality: two string targets with the same text
// are the same target, while every symbolic target is distinct from all
// others. TargetID is comparable and can be used as a map key.
//
// The zero TargetID identifies nothing; use IsZero to detect it.
type TargetID struct {
	kind targetKind
	sym  uint64
	name string
}

// NewSymbolicTarget returns a fresh target identifier that is distinct
// from every other TargetID in the process. Hosts typically store these
// in package-level variables, one per highlightable widget.
func NewSymbolicTarget() TargetID {
	return TargetID{kind: targetSymbolic, sym: symbolicSeq.Add(1)}
}

// StringTarget returns a target identifier keyed by text. Useful when
// tours are loaded from configuration files and targets are referenced
// by name.
func StringTarget(name string) TargetID {
	return TargetID{kind: targetString, name: name}
}

// IsZero reports whether the id identifies nothing.
func (t TargetID) IsZero() bool {
	return t.kind == 0
}

func (t TargetID) String() string {
	switch t.kind {
	case targetSymbolic:
		return fmt.Sprintf("target#%d", t.sym)
	case targetString:
		return t.name
	default:
		return "<no target>"
	}
}

// TourStep is one highlight + tooltip unit within a tour. Steps are
// immutable once constructed; tooltip dimensions are fixed per step, not
// content-driven.
type TourStep struct {
	Target        TargetID
	Title         string
	Description   string
	PreferredSide Side

	TooltipWidth  float64
	TooltipHeight float64
}

// Predicate decides whether a tour currently applies, e.g. "the settings
// screen is visible". A nil predicate means always applicable.
type Predicate func() bool

// TourDefinition describes a tour as an ordered sequence of steps.
//
// Definitions are immutable once registered. The set of registered
// definitions is mutable and can be replaced wholesale via SetTours.
// Duplicate ids are tolerated; lookups return the first match.
type TourDefinition struct {
	// ID names the tour. Uniqueness is caller discipline, not enforced.
	ID string

	Steps []TourStep

	// Enabled gates the tour without unregistering it.
	Enabled bool

	// Applicable, if non-nil, additionally gates the tour on the current
	// screen/context. Evaluated on every ActiveTour query; it must be
	// cheap and must not block.
	Applicable Predicate
}

// SessionState is an immutable snapshot of the controller's session.
type SessionState struct {
	// SessionID distinguishes runs of the state machine; empty when idle.
	SessionID string

	// TourID is the current tour id, or empty when no session is active.
	TourID string

	// StepIndex is the 0-based index into the active tour's steps.
	StepIndex int

	Ready      bool
	Completing bool

	Phase Phase
}
