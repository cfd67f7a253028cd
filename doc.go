// Package spotlight provides an embeddable, step-by-step guided-tour
// engine for Go UIs.
//
// Spotlight is designed for hosts that render their own chrome (games,
// TUIs, immediate-mode frameworks) and want to overlay "highlight this
// widget, show this tooltip, then advance" tours without the library ever
// touching the UI tree. It runs fully in-process, keeps no global state,
// and integrates cleanly into existing render loops.
//
// # Core Concepts
//
// The spotlight programming model is intentionally small:
//
//  1. Controller
//  2. TourBuilder
//  3. Guide
//  4. Placement
//
// # Controller
//
// The Controller is the tour session state machine. It owns the
// registered tour definitions, the registry of last observed target
// rectangles, and the session pointer (current tour, step index,
// readiness and completing flags). Hosts drive it with three kinds of
// calls:
//
//   - Geometry: UpdateTargetRect from layout callbacks, every layout pass.
//   - Progression: Start and Next, the only blocking operations. Start
//     waits (bounded) for the first step's target to report geometry so
//     the spotlight never frames unpainted (0,0,0,0) coordinates; Next
//     advances, and on the final step waits out an exit grace period
//     before resetting and invoking the completion callback.
//   - Queries per frame: ShouldShow, ActiveTour, CurrentStep, Progress,
//     TargetRect.
//
// Each UI container gets its own Controller; nothing is shared between
// instances.
//
// # TourBuilder
//
// TourBuilder provides the ergonomic, declarative API used to define
// tours in code:
//
//	tour := spotlight.New("onboarding").
//	    Step(sidebarTarget, "Navigation", "Everything starts here.", spotlight.SideRight).
//	    Step(searchTarget, "Search", "Find anything instantly.", spotlight.SideBottom)
//	tour.Register(ctrl)
//
// Tours can also be loaded from YAML files with ParseTours / LoadTours,
// referencing targets by string.
//
// # Guide
//
// Guide binds a Controller to a host: it replaces the registered tour set
// when the host's configuration changes, auto-starts the first enabled
// and applicable tour (unless disabled), and funnels completions into a
// single callback.
//
// # Placement
//
// TooltipOffset is the pure placement engine: given a target rectangle,
// a preferred side, fixed tooltip dimensions, and the viewport, it picks
// the side with room (falling back deterministically), centers along the
// other axis, and clamps the result fully on-screen. ChooseSide exposes
// just the side decision for hosts that draw pointer arrows.
//
// # Summary
//
// Spotlight's goal is tour logic that feels like Go: easy to embed, easy
// to test, deterministic, and free of rendering opinions. Controllers own
// session state, TourBuilder defines tours, Guide wires them to the host,
// and the placement functions decide where tooltips go. Painting them is
// entirely up to you.
//
// For examples, see the /examples directory or the project README.
package spotlight
