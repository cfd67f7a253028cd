package spotlight

import (
	"context"
	"testing"
	"time"
)

func testConfig() ControllerConfig {
	return ControllerConfig{
		PollInterval:    2 * time.Millisecond,
		MaxPolls:        10,
		MissingTourWait: 5 * time.Millisecond,
		ExitWait:        5 * time.Millisecond,
	}
}

func TestTourBuilder_BuildAndRegister(t *testing.T) {
	sidebar := NewSymbolicTarget()
	search := NewSymbolicTarget()

	tour := New("onboarding").
		Step(sidebar, "Navigation", "Everything starts here.", SideRight).
		StepSized(search, "Search", "Find anything instantly.", SideBottom, 320, 160).
		When(func() bool { return true })

	if tour.ID() != "onboarding" {
		t.Fatalf("unexpected id: %s", tour.ID())
	}

	def := tour.Definition()
	if !def.Enabled {
		t.Fatalf("tours must start enabled")
	}
	if len(def.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(def.Steps))
	}
	if def.Steps[0].TooltipWidth != DefaultTooltipWidth || def.Steps[0].TooltipHeight != DefaultTooltipHeight {
		t.Fatalf("Step must apply default tooltip dimensions, got %vx%v",
			def.Steps[0].TooltipWidth, def.Steps[0].TooltipHeight)
	}
	if def.Steps[1].TooltipWidth != 320 || def.Steps[1].TooltipHeight != 160 {
		t.Fatalf("StepSized must keep explicit dimensions, got %vx%v",
			def.Steps[1].TooltipWidth, def.Steps[1].TooltipHeight)
	}
	if def.Applicable == nil || !def.Applicable() {
		t.Fatalf("When must install the predicate")
	}

	ctrl := NewControllerWithConfig(testConfig())
	tour.Register(ctrl)

	ctrl.UpdateTargetRect(sidebar, Rect{X: 0, Y: 0, Width: 200, Height: 600})
	if err := ctrl.Start(context.Background(), "onboarding"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if got, ok := ctrl.ActiveTour(); !ok || got.ID != "onboarding" {
		t.Fatalf("registered tour should be active, got %+v ok=%v", got, ok)
	}
}

func TestTourBuilder_Disabled(t *testing.T) {
	tour := New("off").
		Step(NewSymbolicTarget(), "a", "", SideBottom).
		Disabled()

	if tour.Definition().Enabled {
		t.Fatalf("Disabled must clear the enabled flag")
	}
}

func TestTourBuilder_PanicsOnZeroTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a step without a target")
		}
	}()

	New("bad").Step(TargetID{}, "oops", "", SideBottom)
}

func TestTourBuilder_PanicsOnNonPositiveDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-positive tooltip dimensions")
		}
	}()

	New("bad").StepSized(NewSymbolicTarget(), "oops", "", SideBottom, 0, 100)
}
