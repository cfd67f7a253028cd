package engine

import (
	"sync"

	"github.com/petrijr/spotlight/pkg/api"
)

// tourRegistry holds the registered tour definitions in registration
// order. Duplicate ids are tolerated; FirstByID returns the first match.
type tourRegistry struct {
	mu   sync.RWMutex
	defs []api.TourDefinition
}

func newTourRegistry() *tourRegistry {
	return &tourRegistry{}
}

func (r *tourRegistry) Add(def api.TourDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs = append(r.defs, def)
}

// Replace swaps the whole registry for defs (copied).
func (r *tourRegistry) Replace(defs []api.TourDefinition) {
	copied := make([]api.TourDefinition, len(defs))
	copy(copied, defs)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs = copied
}

func (r *tourRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs = nil
}

// FirstByID returns the first registered definition with the given id,
// regardless of its enabled flag or predicate.
func (r *tourRegistry) FirstByID(id string) (api.TourDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, def := range r.defs {
		if def.ID == id {
			return def, true
		}
	}
	return api.TourDefinition{}, false
}

// Snapshot returns a copy of the registration-ordered definitions, so
// callers can evaluate predicates without holding the registry lock.
func (r *tourRegistry) Snapshot() []api.TourDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]api.TourDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// rectRegistry is the goroutine-safe map of last observed target
// rectangles. Writes arrive from layout callbacks on every layout pass
// and race freely with reads; latest write wins.
type rectRegistry struct {
	mu    sync.RWMutex
	rects map[api.TargetID]api.Rect
}

func newRectRegistry() *rectRegistry {
	return &rectRegistry{
		rects: make(map[api.TargetID]api.Rect),
	}
}

func (r *rectRegistry) Put(id api.TargetID, rect api.Rect) {
	if id.IsZero() {
		return
	}

	r.mu.Lock()
	r.rects[id] = rect
	r.mu.Unlock()
}

func (r *rectRegistry) Get(id api.TargetID) (api.Rect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rect, ok := r.rects[id]
	return rect, ok
}

// Snapshot returns a defensive copy of the registry.
func (r *rectRegistry) Snapshot() map[api.TargetID]api.Rect {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[api.TargetID]api.Rect, len(r.rects))
	for id, rect := range r.rects {
		out[id] = rect
	}
	return out
}

func (r *rectRegistry) Clear() {
	r.mu.Lock()
	r.rects = make(map[api.TargetID]api.Rect)
	r.mu.Unlock()
}
