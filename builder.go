package spotlight

import (
	"fmt"

	"github.com/petrijr/spotlight/pkg/api"
)

// Default tooltip dimensions used by Step and by the YAML loader when a
// step does not specify its own.
const (
	DefaultTooltipWidth  = 280.0
	DefaultTooltipHeight = 200.0
)

// TourBuilder provides a fluent API for defining tours:
//
//	tour := spotlight.New("onboarding").
//	    Step(sidebarTarget, "Navigation", "Everything starts here.", spotlight.SideRight).
//	    Step(searchTarget, "Search", "Find anything instantly.", spotlight.SideBottom).
//	    When(func() bool { return app.OnDashboard() })
//
//	tour.Register(ctrl)
type TourBuilder struct {
	def api.TourDefinition
}

// New creates a new tour builder with the given id. Tours start enabled.
func New(id string) *TourBuilder {
	return &TourBuilder{
		def: api.TourDefinition{
			ID:      id,
			Enabled: true,
			Steps:   make([]api.TourStep, 0),
		},
	}
}

// ID returns the tour id.
func (b *TourBuilder) ID() string {
	return b.def.ID
}

// Definition returns the underlying TourDefinition.
// Typically used when interacting with lower-level APIs.
func (b *TourBuilder) Definition() TourDefinition {
	return b.def
}

// Step appends a step with the default tooltip dimensions.
func (b *TourBuilder) Step(target TargetID, title, description string, side Side) *TourBuilder {
	return b.StepSized(target, title, description, side, DefaultTooltipWidth, DefaultTooltipHeight)
}

// StepSized appends a step with explicit tooltip dimensions.
func (b *TourBuilder) StepSized(target TargetID, title, description string, side Side, tooltipWidth, tooltipHeight float64) *TourBuilder {
	if target.IsZero() {
		panic(fmt.Sprintf("spotlight: step %q has no target", title))
	}
	if tooltipWidth <= 0 || tooltipHeight <= 0 {
		panic(fmt.Sprintf("spotlight: step %q has non-positive tooltip dimensions", title))
	}

	b.def.Steps = append(b.def.Steps, api.TourStep{
		Target:        target,
		Title:         title,
		Description:   description,
		PreferredSide: side,
		TooltipWidth:  tooltipWidth,
		TooltipHeight: tooltipHeight,
	})
	return b
}

// Disabled marks the tour as disabled; it stays registered but can never
// become active until re-registered enabled.
func (b *TourBuilder) Disabled() *TourBuilder {
	b.def.Enabled = false
	return b
}

// When sets the applicability predicate, e.g. "the settings screen is
// visible". The predicate is evaluated on every active-tour query and
// must be cheap.
func (b *TourBuilder) When(pred Predicate) *TourBuilder {
	b.def.Applicable = pred
	return b
}

// Register registers the built tour with the given controller.
func (b *TourBuilder) Register(ctrl Controller) {
	ctrl.RegisterTour(b.def)
}
