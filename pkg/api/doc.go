// Package api contains the core building blocks used by the spotlight
// tour engine. It provides the low-level primitives for describing tours,
// identifying highlight targets, and observing session behavior.
//
// Most users interact with the higher-level spotlight package, which
// re-exports selected types and helpers from this package. The api package
// is intended for advanced use cases, custom integrations, or contributors
// extending the engine itself.
//
// # Concepts
//
// The api package centers around a small set of concepts:
//
//   - Tour definitions and steps
//   - Target identifiers and rectangles
//   - The session Controller
//   - Observability
//
// # Tour Definitions
//
// A TourDefinition describes a tour: its id, an ordered sequence of
// TourSteps, an enabled flag, and an optional applicability predicate.
// Definitions are immutable once constructed and are registered with a
// Controller before they can be started. Duplicate ids are tolerated;
// lookups return the first match.
//
// # Targets and Rectangles
//
// A TargetID names a highlightable UI element, either symbolically (a
// process-unique token) or by string. The host's layout callbacks report
// each target's last observed bounding Rect to the Controller; that
// registry is the only channel by which the engine learns geometry; it
// never inspects the UI tree itself.
//
// # The Controller
//
// The Controller owns one tour session at a time: which tour is current,
// the 0-based step index, and the readiness/completing flags. Its two
// blocking operations, Start and Next, implement bounded waits (readiness
// polling and the exit grace period) and are cancellable via context.
// All query operations report absent data as an explicit "no value"
// result rather than an error.
//
// # Observability
//
// The api package defines the Observer interface, which the Controller
// uses to report session lifecycle events. Ready-made implementations
// include structured logging (log/slog), basic in-memory metrics, an
// append-only EventLog, and a composite that fans out to several
// observers. Renderers subscribe via an Observer instead of polling the
// session every frame.
//
// # Usage
//
// Most applications should start from the spotlight package, using the
// TourBuilder, Guide, and Controller constructors provided there. The api
// package is useful when you need lower-level access or when contributing
// changes to the core engine.
package api
