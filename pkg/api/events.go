package api

import (
	"context"
	"sync"
	"time"
)

// EventType identifies a session history event.
type EventType string

const (
	EventTourStarted   EventType = "tour.started"
	EventTourReady     EventType = "tour.ready"
	EventStepChanged   EventType = "step.changed"
	EventTourCompleted EventType = "tour.completed"
	EventTourReset     EventType = "tour.reset"
)

// SessionEvent is a minimal append-only history record for audit/debugging.
// It is intentionally small and stable; richer history can be layered later.
type SessionEvent struct {
	SessionID string
	At        time.Time
	Type      EventType

	// Optional context.
	TourID string
	Step   int

	// Small, human-oriented details (e.g. "ready after timeout").
	// Keep this low-volume: do NOT dump large payloads here.
	Detail string
}

// EventLog is an Observer that records session events in memory, bounded
// to the most recent maxEvents. Useful for debugging overlays and tests.
type EventLog struct {
	mu     sync.Mutex
	events []SessionEvent
	max    int
}

// NewEventLog creates an EventLog keeping at most maxEvents records.
// maxEvents <= 0 means unbounded.
func NewEventLog(maxEvents int) *EventLog {
	return &EventLog{max: maxEvents}
}

// Events returns a copy of the recorded events in append order.
func (l *EventLog) Events() []SessionEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]SessionEvent, len(l.events))
	copy(out, l.events)
	return out
}

func (l *EventLog) append(ev SessionEvent) {
	ev.At = time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, ev)
	if l.max > 0 && len(l.events) > l.max {
		l.events = l.events[len(l.events)-l.max:]
	}
}

func (l *EventLog) OnTourStarted(ctx context.Context, sessionID, tourID string) {
	l.append(SessionEvent{SessionID: sessionID, Type: EventTourStarted, TourID: tourID})
}

func (l *EventLog) OnTourReady(ctx context.Context, sessionID, tourID string, timedOut bool) {
	detail := ""
	if timedOut {
		detail = "ready after timeout"
	}
	l.append(SessionEvent{SessionID: sessionID, Type: EventTourReady, TourID: tourID, Detail: detail})
}

func (l *EventLog) OnStepChanged(ctx context.Context, sessionID, tourID string, stepIndex int) {
	l.append(SessionEvent{SessionID: sessionID, Type: EventStepChanged, TourID: tourID, Step: stepIndex})
}

func (l *EventLog) OnTourCompleted(ctx context.Context, sessionID, tourID string) {
	l.append(SessionEvent{SessionID: sessionID, Type: EventTourCompleted, TourID: tourID})
}

func (l *EventLog) OnTourReset(sessionID, tourID string) {
	l.append(SessionEvent{SessionID: sessionID, Type: EventTourReset, TourID: tourID})
}
