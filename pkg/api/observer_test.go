package api

import (
	"context"
	"sync"
	"testing"
)

//
// Helpers
//

// testObserver is a simple Observer implementation used to verify fan-out
// behavior.
type testObserver struct {
	mu sync.Mutex

	starts    int
	readies   int
	steps     int
	completes int
	resets    int

	lastTimedOut  bool
	lastStepIndex int
}

func (o *testObserver) OnTourStarted(ctx context.Context, sessionID, tourID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.starts++
}

func (o *testObserver) OnTourReady(ctx context.Context, sessionID, tourID string, timedOut bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.readies++
	o.lastTimedOut = timedOut
}

func (o *testObserver) OnStepChanged(ctx context.Context, sessionID, tourID string, stepIndex int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.steps++
	o.lastStepIndex = stepIndex
}

func (o *testObserver) OnTourCompleted(ctx context.Context, sessionID, tourID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.completes++
}

func (o *testObserver) OnTourReset(sessionID, tourID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resets++
}

//
// Tests
//

func TestCompositeObserverFansOut(t *testing.T) {
	ctx := context.Background()

	a := &testObserver{}
	b := &testObserver{}

	obs := NewCompositeObserver(a, nil, b)

	obs.OnTourStarted(ctx, "s1", "tour")
	obs.OnTourReady(ctx, "s1", "tour", true)
	obs.OnStepChanged(ctx, "s1", "tour", 2)
	obs.OnTourCompleted(ctx, "s1", "tour")
	obs.OnTourReset("s1", "tour")

	for _, o := range []*testObserver{a, b} {
		if o.starts != 1 || o.readies != 1 || o.steps != 1 || o.completes != 1 || o.resets != 1 {
			t.Fatalf("observer missed events: %+v", o)
		}
		if !o.lastTimedOut {
			t.Fatalf("timedOut flag was not forwarded")
		}
		if o.lastStepIndex != 2 {
			t.Fatalf("step index was not forwarded, got %d", o.lastStepIndex)
		}
	}
}

func TestCompositeObserverCollapsesDegenerateCases(t *testing.T) {
	if _, ok := NewCompositeObserver().(NoopObserver); !ok {
		t.Fatalf("empty composite should collapse to NoopObserver")
	}
	if _, ok := NewCompositeObserver(nil, nil).(NoopObserver); !ok {
		t.Fatalf("all-nil composite should collapse to NoopObserver")
	}

	single := &testObserver{}
	if got := NewCompositeObserver(single); got != single {
		t.Fatalf("single-observer composite should return the observer itself")
	}
}

func TestBasicMetricsCounts(t *testing.T) {
	ctx := context.Background()

	m := &BasicMetrics{}

	// Two sessions: one completes, one is abandoned after a timed-out
	// readiness wait.
	m.OnTourStarted(ctx, "s1", "a")
	m.OnTourReady(ctx, "s1", "a", false)
	m.OnStepChanged(ctx, "s1", "a", 1)
	m.OnStepChanged(ctx, "s1", "a", 2)
	m.OnTourCompleted(ctx, "s1", "a")

	m.OnTourStarted(ctx, "s2", "b")
	m.OnTourReady(ctx, "s2", "b", true)

	snap := m.Snapshot()

	if snap.ToursStarted != 2 {
		t.Fatalf("expected 2 started, got %d", snap.ToursStarted)
	}
	if snap.ToursReady != 2 || snap.ReadyTimeouts != 1 {
		t.Fatalf("unexpected readiness counts: %+v", snap)
	}
	if snap.StepsAdvanced != 2 {
		t.Fatalf("expected 2 steps, got %d", snap.StepsAdvanced)
	}
	if snap.ToursCompleted != 1 || snap.ToursReset != 0 {
		t.Fatalf("unexpected terminal counts: %+v", snap)
	}
	if snap.AbandonedTours != 1 {
		t.Fatalf("expected 1 abandoned tour, got %d", snap.AbandonedTours)
	}
}

func TestTargetIDEquality(t *testing.T) {
	if StringTarget("save-button") != StringTarget("save-button") {
		t.Fatalf("string targets with the same name must be equal")
	}
	if StringTarget("a") == StringTarget("b") {
		t.Fatalf("string targets with different names must differ")
	}
	if NewSymbolicTarget() == NewSymbolicTarget() {
		t.Fatalf("every symbolic target must be distinct")
	}

	var zero TargetID
	if !zero.IsZero() {
		t.Fatalf("zero TargetID must report IsZero")
	}
	if StringTarget("x").IsZero() || NewSymbolicTarget().IsZero() {
		t.Fatalf("real targets must not report IsZero")
	}

	// Comparable: usable as a map key.
	rects := map[TargetID]Rect{
		StringTarget("x"): {Width: 1},
	}
	if rects[StringTarget("x")].Width != 1 {
		t.Fatalf("string target lookup by value failed")
	}
}

func TestParseSideRoundTrip(t *testing.T) {
	for _, side := range []Side{SideBottom, SideTop, SideRight, SideLeft} {
		got, err := ParseSide(side.String())
		if err != nil {
			t.Fatalf("ParseSide(%q) failed: %v", side.String(), err)
		}
		if got != side {
			t.Fatalf("round trip mismatch: %v != %v", got, side)
		}
	}

	if _, err := ParseSide("diagonal"); err == nil {
		t.Fatalf("expected error for unknown side")
	}
}
