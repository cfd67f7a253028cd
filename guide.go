package spotlight

import (
	"context"
)

// Guide binds a Controller to a host application: it owns the tour set,
// auto-starts tours when the set changes, and funnels completions into a
// single callback.
//
// Typical usage:
//
//	guide := spotlight.NewGuide(spotlight.NewController(), spotlight.GuideConfig{
//	    OnComplete: func(tourID string) { prefs.MarkSeen(tourID) },
//	})
//
//	// Whenever the host's tour configuration changes:
//	_ = guide.SetTours(ctx, tours)
//
//	// From the "next" button:
//	_ = guide.Advance(ctx)
//
// Persisting which tours a user has completed is the host's business;
// Guide only reports completions.
type Guide struct {
	// Controller is the underlying session state machine; its full API
	// is promoted, so per-frame queries go straight through.
	Controller

	disableAutoStart bool
	onComplete       func(tourID string)
}

// GuideConfig describes how to construct a Guide.
type GuideConfig struct {
	// DisableAutoStart stops SetTours from starting the first enabled,
	// applicable tour automatically.
	DisableAutoStart bool

	// OnComplete is invoked with the tour id after every completed tour,
	// once internal state is clean. It may start another tour
	// synchronously. Nil is allowed.
	OnComplete func(tourID string)
}

// NewGuide constructs a Guide around ctrl.
func NewGuide(ctrl Controller, cfg GuideConfig) *Guide {
	return &Guide{
		Controller:       ctrl,
		disableAutoStart: cfg.DisableAutoStart,
		onComplete:       cfg.OnComplete,
	}
}

// SetTours replaces the registered tour set wholesale. Unless auto-start
// is disabled, it then starts the first tour in defs that is enabled and
// currently applicable; if none qualifies, no session is started.
//
// The error is the context cancellation of the underlying Start wait,
// if any.
func (g *Guide) SetTours(ctx context.Context, defs []TourDefinition) error {
	g.Controller.SetTours(defs)

	if g.disableAutoStart {
		return nil
	}

	for _, def := range defs {
		if !def.Enabled {
			continue
		}
		if def.Applicable != nil && !def.Applicable() {
			continue
		}
		return g.Controller.Start(ctx, def.ID)
	}
	return nil
}

// Advance moves the active tour one step forward, routing the terminal
// transition into the configured completion callback.
func (g *Guide) Advance(ctx context.Context) error {
	return g.Controller.Next(ctx, g.onComplete)
}
