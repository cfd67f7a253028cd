package api

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Observer receives callbacks from the tour controller for logging and
// metrics, and lets rendering layers react to session mutations without
// polling every frame.
//
// Implementations should be fast and non-blocking; heavy work should be
// done asynchronously so as not to delay tour progression.
type Observer interface {
	// OnTourStarted is called when Start begins a session, before the
	// readiness wait.
	OnTourStarted(ctx context.Context, sessionID, tourID string)

	// OnTourReady is called when the session becomes ready, either
	// because the first step's target reported geometry or because the
	// bounded wait elapsed (timedOut == true).
	OnTourReady(ctx context.Context, sessionID, tourID string, timedOut bool)

	// OnStepChanged is called after Next advances to a new step.
	// stepIndex is the new 0-based index.
	OnStepChanged(ctx context.Context, sessionID, tourID string, stepIndex int)

	// OnTourCompleted is called after the terminal Next has reset the
	// session, just before the host completion callback.
	OnTourCompleted(ctx context.Context, sessionID, tourID string)

	// OnTourReset is called when the host resets a session explicitly
	// via Reset or ResetAll. tourID is empty if no session was active.
	OnTourReset(sessionID, tourID string)
}

// NoopObserver is an Observer that does nothing.
// It is used as the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnTourStarted(ctx context.Context, sessionID, tourID string)              {}
func (NoopObserver) OnTourReady(ctx context.Context, sessionID, tourID string, timedOut bool) {}
func (NoopObserver) OnStepChanged(ctx context.Context, sessionID, tourID string, stepIndex int) {
}
func (NoopObserver) OnTourCompleted(ctx context.Context, sessionID, tourID string) {}
func (NoopObserver) OnTourReset(sessionID, tourID string)                          {}

// CompositeObserver fans out events to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards events to each
// non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnTourStarted(ctx context.Context, sessionID, tourID string) {
	for _, o := range c.observers {
		o.OnTourStarted(ctx, sessionID, tourID)
	}
}

func (c *CompositeObserver) OnTourReady(ctx context.Context, sessionID, tourID string, timedOut bool) {
	for _, o := range c.observers {
		o.OnTourReady(ctx, sessionID, tourID, timedOut)
	}
}

func (c *CompositeObserver) OnStepChanged(ctx context.Context, sessionID, tourID string, stepIndex int) {
	for _, o := range c.observers {
		o.OnStepChanged(ctx, sessionID, tourID, stepIndex)
	}
}

func (c *CompositeObserver) OnTourCompleted(ctx context.Context, sessionID, tourID string) {
	for _, o := range c.observers {
		o.OnTourCompleted(ctx, sessionID, tourID)
	}
}

func (c *CompositeObserver) OnTourReset(sessionID, tourID string) {
	for _, o := range c.observers {
		o.OnTourReset(sessionID, tourID)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs session lifecycle
// events using the provided slog.Logger. If logger is nil, slog.Default()
// is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnTourStarted(ctx context.Context, sessionID, tourID string) {
	o.Logger.InfoContext(ctx, "tour_started",
		slog.String("session_id", sessionID),
		slog.String("tour", tourID),
	)
}

func (o *LoggingObserver) OnTourReady(ctx context.Context, sessionID, tourID string, timedOut bool) {
	o.Logger.InfoContext(ctx, "tour_ready",
		slog.String("session_id", sessionID),
		slog.String("tour", tourID),
		slog.Bool("timed_out", timedOut),
	)
}

func (o *LoggingObserver) OnStepChanged(ctx context.Context, sessionID, tourID string, stepIndex int) {
	o.Logger.DebugContext(ctx, "step_changed",
		slog.String("session_id", sessionID),
		slog.String("tour", tourID),
		slog.Int("step_index", stepIndex),
	)
}

func (o *LoggingObserver) OnTourCompleted(ctx context.Context, sessionID, tourID string) {
	o.Logger.InfoContext(ctx, "tour_completed",
		slog.String("session_id", sessionID),
		slog.String("tour", tourID),
	)
}

func (o *LoggingObserver) OnTourReset(sessionID, tourID string) {
	o.Logger.Debug("tour_reset",
		slog.String("session_id", sessionID),
		slog.String("tour", tourID),
	)
}

// BasicMetrics collects simple counters for tour sessions.
// It implements Observer, and can be combined with LoggingObserver via
// NewCompositeObserver.
type BasicMetrics struct {
	NoopObserver

	toursStarted   atomic.Int64
	toursReady     atomic.Int64
	readyTimeouts  atomic.Int64
	stepsAdvanced  atomic.Int64
	toursCompleted atomic.Int64
	toursReset     atomic.Int64
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	ToursStarted   int64
	ToursReady     int64
	ReadyTimeouts  int64
	StepsAdvanced  int64
	ToursCompleted int64
	ToursReset     int64

	// AbandonedTours counts sessions that started but neither completed
	// nor were reset explicitly.
	AbandonedTours int64
}

func (m *BasicMetrics) OnTourStarted(ctx context.Context, sessionID, tourID string) {
	m.toursStarted.Add(1)
}

func (m *BasicMetrics) OnTourReady(ctx context.Context, sessionID, tourID string, timedOut bool) {
	m.toursReady.Add(1)
	if timedOut {
		m.readyTimeouts.Add(1)
	}
}

func (m *BasicMetrics) OnStepChanged(ctx context.Context, sessionID, tourID string, stepIndex int) {
	m.stepsAdvanced.Add(1)
}

func (m *BasicMetrics) OnTourCompleted(ctx context.Context, sessionID, tourID string) {
	m.toursCompleted.Add(1)
}

func (m *BasicMetrics) OnTourReset(sessionID, tourID string) {
	m.toursReset.Add(1)
}

// Snapshot returns a snapshot of the current metrics.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	started := m.toursStarted.Load()
	completed := m.toursCompleted.Load()
	reset := m.toursReset.Load()

	return BasicMetricsSnapshot{
		ToursStarted:   started,
		ToursReady:     m.toursReady.Load(),
		ReadyTimeouts:  m.readyTimeouts.Load(),
		StepsAdvanced:  m.stepsAdvanced.Load(),
		ToursCompleted: completed,
		ToursReset:     reset,
		AbandonedTours: started - completed - reset,
	}
}
