package spotlight

import (
	"github.com/petrijr/spotlight/internal/engine"
	"github.com/petrijr/spotlight/internal/layout"
	"github.com/petrijr/spotlight/pkg/api"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Controller           = api.Controller
	ControllerConfig     = api.ControllerConfig
	TourDefinition       = api.TourDefinition
	TourStep             = api.TourStep
	TargetID             = api.TargetID
	Rect                 = api.Rect
	Side                 = api.Side
	Phase                = api.Phase
	Predicate            = api.Predicate
	SessionState         = api.SessionState
	Observer             = api.Observer
	LoggingObserver      = api.LoggingObserver
	BasicMetrics         = api.BasicMetrics
	BasicMetricsSnapshot = api.BasicMetricsSnapshot
	CompositeObserver    = api.CompositeObserver
	NoopObserver         = api.NoopObserver
	EventLog             = api.EventLog
	SessionEvent         = api.SessionEvent
)

// Re-export common constructors and helpers.

var (
	NewSymbolicTarget    = api.NewSymbolicTarget
	StringTarget         = api.StringTarget
	ParseSide            = api.ParseSide
	NewLoggingObserver   = api.NewLoggingObserver
	NewCompositeObserver = api.NewCompositeObserver
	NewEventLog          = api.NewEventLog
)

// Re-export side and phase values for convenience.

const (
	SideBottom = api.SideBottom
	SideTop    = api.SideTop
	SideRight  = api.SideRight
	SideLeft   = api.SideLeft

	PhaseIdle       = api.PhaseIdle
	PhaseStarting   = api.PhaseStarting
	PhaseReady      = api.PhaseReady
	PhaseCompleting = api.PhaseCompleting

	EventTourStarted   = api.EventTourStarted
	EventTourReady     = api.EventTourReady
	EventStepChanged   = api.EventStepChanged
	EventTourCompleted = api.EventTourCompleted
	EventTourReset     = api.EventTourReset
)

// Controller constructors
// These wrap the internal/engine package so external callers
// never need to import internal packages.

// NewController returns a Controller with the default timing policy
// (50ms readiness polls, 60 polls max, 100ms missing-tour grace, 300ms
// exit grace) and no observer.
func NewController() Controller {
	return engine.NewController()
}

// NewControllerWithConfig returns a Controller using the given
// configuration. Zero-valued fields keep their defaults.
func NewControllerWithConfig(cfg ControllerConfig) Controller {
	return engine.NewControllerWithConfig(cfg)
}

// NewControllerWithObserver returns a default-policy Controller with the
// given Observer.
func NewControllerWithObserver(obs Observer) Controller {
	return engine.NewControllerWithConfig(ControllerConfig{Observer: obs})
}

// Placement
// These wrap internal/layout; both are pure functions.

// TooltipOffset computes the top-left corner for a step's tooltip next
// to the target rectangle, inside the viewport. See the package
// documentation for the side-selection and clamping rules.
func TooltipOffset(target Rect, preferred Side, tooltipWidth, tooltipHeight, viewportWidth, viewportHeight, margin, edgePadding float64) (x, y float64) {
	return layout.TooltipOffset(target, preferred, tooltipWidth, tooltipHeight, viewportWidth, viewportHeight, margin, edgePadding)
}

// ChooseTooltipSide returns only the side TooltipOffset would place the
// tooltip on, for hosts that orient pointer arrows toward the target.
func ChooseTooltipSide(target Rect, preferred Side, tooltipWidth, tooltipHeight, viewportWidth, viewportHeight, margin float64) Side {
	return layout.ChooseSide(target, preferred, tooltipWidth, tooltipHeight, viewportWidth, viewportHeight, margin)
}

// StepOffset is a convenience that places a step's tooltip using the
// step's own preferred side and dimensions.
func StepOffset(step TourStep, target Rect, viewportWidth, viewportHeight, margin, edgePadding float64) (x, y float64) {
	return layout.TooltipOffset(target, step.PreferredSide, step.TooltipWidth, step.TooltipHeight, viewportWidth, viewportHeight, margin, edgePadding)
}
