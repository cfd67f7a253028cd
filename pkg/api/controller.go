package api

import (
	"context"
	"time"
)

// Timing policy defaults. One "time unit" of the tour progression model is
// one millisecond. These are configuration points, not magic numbers; see
// ControllerConfig.
const (
	// DefaultPollInterval is the delay between polls of the rect registry
	// while Start waits for the first step's target to report geometry.
	DefaultPollInterval = 50 * time.Millisecond

	// DefaultMaxPolls bounds the polling in Start; after this many polls
	// the session becomes ready anyway (~3s with the default interval).
	DefaultMaxPolls = 60

	// DefaultMissingTourWait is the grace period Start waits when the
	// named tour is unknown or has no steps, instead of polling.
	DefaultMissingTourWait = 100 * time.Millisecond

	// DefaultExitWait is the grace period Next waits before resetting a
	// finished session, so the host can play an exit animation.
	DefaultExitWait = 300 * time.Millisecond
)

// ControllerConfig describes how to construct a Controller.
// Zero values fall back to the Default* constants above.
type ControllerConfig struct {
	PollInterval    time.Duration
	MaxPolls        int
	MissingTourWait time.Duration
	ExitWait        time.Duration

	// Observer receives session lifecycle callbacks. Nil means NoopObserver.
	Observer Observer
}

// Controller owns one tour session: the registered tour definitions, the
// target-rectangle registry, and the session pointer (current tour, step
// index, readiness/completing flags).
//
// Exactly one session is active per Controller. Hosts that run several
// independent UI containers create one Controller each; there is no
// process-wide shared state.
//
// No operation returns a user-visible error for missing data: starting an
// unknown tour id yields a session with no matching active tour, a target
// that never reports a rectangle simply times out the readiness wait. The
// only errors surfaced are context cancellations from the two blocking
// methods, Start and Next.
type Controller interface {
	// RegisterTour appends a definition to the registry. Duplicate ids
	// are tolerated; lookups return the first match.
	RegisterTour(def TourDefinition)

	// SetTours replaces the registry wholesale. The in-flight session and
	// the rect registry are untouched.
	SetTours(defs []TourDefinition)

	// ClearTours empties the registry without touching the in-flight
	// session or the rect registry.
	ClearTours()

	// UpdateTargetRect upserts the last observed bounding box for a
	// target. It is called from layout callbacks on every layout pass:
	// O(1), never blocks, never logs. Latest write wins.
	UpdateTargetRect(id TargetID, r Rect)

	// TargetRect returns the last observed rect for id, if any.
	TargetRect(id TargetID) (Rect, bool)

	// TargetRects returns a defensive snapshot of the rect registry.
	TargetRects() map[TargetID]Rect

	// ActiveTour returns the first registered definition whose id equals
	// the session's tour id, is enabled, and whose predicate (if any)
	// evaluates true. A false predicate hides the tour without mutating
	// the stored step index.
	ActiveTour() (TourDefinition, bool)

	// CurrentStep returns the step at the session's step index of the
	// active tour, or false when out of range or no tour is active.
	CurrentStep() (TourStep, bool)

	// Progress returns the 0-based step index and the active tour's step
	// count, for "3/7" style indicators. Total is 0 when no tour is
	// active.
	Progress() (index, total int)

	// ShouldShow reports whether the host should render the overlay:
	// a session exists, it is ready, and it is not completing.
	ShouldShow() bool

	// Session returns a snapshot of the session state.
	Session() SessionState

	// Start begins a session for the named tour: step index 0, not ready,
	// not completing. It then blocks polling the rect registry for the
	// tour's first-step target (or, if the tour is unknown or empty, for
	// a fixed grace period) and marks the session ready on success and
	// timeout alike. This keeps the spotlight from framing (0,0,0,0)
	// geometry before the first paint.
	//
	// Start returns only ctx.Err: cancelling mid-wait rolls the pending
	// session back to idle.
	Start(ctx context.Context, tourID string) error

	// Next advances the session. If more steps remain the index is
	// incremented without waiting. On the last step it marks the session
	// completing, blocks for the exit grace period, resets, and then
	// invokes onComplete (may be nil) with the finished tour id. Internal
	// state is clean before the callback runs, so onComplete may start
	// another tour synchronously.
	//
	// Next returns only ctx.Err: cancelling mid-wait clears the
	// completing flag again.
	Next(ctx context.Context, onComplete func(tourID string)) error

	// Reset clears the session. Registered tours and target rects are
	// kept: the UI tree, and therefore its geometry, usually survives a
	// tour reset.
	Reset()

	// ResetAll is Reset plus clearing the tour and rect registries.
	ResetAll()
}
