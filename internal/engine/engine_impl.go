package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/petrijr/spotlight/pkg/api"
)

// controllerImpl is a simple, in-process tour session state machine.
//
// The two registries have their own locks so that high-frequency rect
// updates never contend with session transitions. The session fields are
// guarded by mu; the blocking parts of Start and Next run outside the
// lock and re-validate the session id afterwards, so a wait that was
// superseded by a newer Start (or an explicit Reset) cannot clobber the
// fresh session.
type controllerImpl struct {
	cfg      api.ControllerConfig
	observer api.Observer

	tours *tourRegistry
	rects *rectRegistry

	mu         sync.RWMutex
	sessionID  string
	tourID     string
	stepIndex  int
	ready      bool
	completing bool
}

// NewController returns a Controller with default timing policy and no
// observer. External users access this via spotlight.NewController.
func NewController() api.Controller {
	return NewControllerWithConfig(api.ControllerConfig{})
}

// NewControllerWithConfig returns a Controller using the given
// configuration. Zero-valued fields fall back to the api.Default*
// constants.
func NewControllerWithConfig(cfg api.ControllerConfig) api.Controller {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = api.DefaultPollInterval
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = api.DefaultMaxPolls
	}
	if cfg.MissingTourWait <= 0 {
		cfg.MissingTourWait = api.DefaultMissingTourWait
	}
	if cfg.ExitWait <= 0 {
		cfg.ExitWait = api.DefaultExitWait
	}

	obs := cfg.Observer
	if obs == nil {
		obs = api.NoopObserver{}
	}

	return &controllerImpl{
		cfg:      cfg,
		observer: obs,
		tours:    newTourRegistry(),
		rects:    newRectRegistry(),
	}
}

func (c *controllerImpl) RegisterTour(def api.TourDefinition) {
	c.tours.Add(def)
}

func (c *controllerImpl) SetTours(defs []api.TourDefinition) {
	c.tours.Replace(defs)
}

func (c *controllerImpl) ClearTours() {
	c.tours.Clear()
}

func (c *controllerImpl) UpdateTargetRect(id api.TargetID, r api.Rect) {
	c.rects.Put(id, r)
}

func (c *controllerImpl) TargetRect(id api.TargetID) (api.Rect, bool) {
	return c.rects.Get(id)
}

func (c *controllerImpl) TargetRects() map[api.TargetID]api.Rect {
	return c.rects.Snapshot()
}

// ActiveTour scans the registration order for the first definition that
// matches the session's tour id, is enabled, and whose predicate holds.
// Predicates are host callbacks and may query the controller, so they
// are evaluated on a snapshot, outside any lock.
func (c *controllerImpl) ActiveTour() (api.TourDefinition, bool) {
	c.mu.RLock()
	id := c.tourID
	c.mu.RUnlock()

	if id == "" {
		return api.TourDefinition{}, false
	}

	for _, def := range c.tours.Snapshot() {
		if def.ID != id || !def.Enabled {
			continue
		}
		if def.Applicable != nil && !def.Applicable() {
			continue
		}
		return def, true
	}
	return api.TourDefinition{}, false
}

func (c *controllerImpl) CurrentStep() (api.TourStep, bool) {
	def, ok := c.ActiveTour()
	if !ok {
		return api.TourStep{}, false
	}

	c.mu.RLock()
	idx := c.stepIndex
	c.mu.RUnlock()

	if idx < 0 || idx >= len(def.Steps) {
		return api.TourStep{}, false
	}
	return def.Steps[idx], true
}

func (c *controllerImpl) Progress() (index, total int) {
	def, ok := c.ActiveTour()
	if !ok {
		return 0, 0
	}

	c.mu.RLock()
	idx := c.stepIndex
	c.mu.RUnlock()

	return idx, len(def.Steps)
}

func (c *controllerImpl) ShouldShow() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tourID != "" && c.ready && !c.completing
}

func (c *controllerImpl) Session() api.SessionState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return api.SessionState{
		SessionID:  c.sessionID,
		TourID:     c.tourID,
		StepIndex:  c.stepIndex,
		Ready:      c.ready,
		Completing: c.completing,
		Phase:      c.phaseLocked(),
	}
}

func (c *controllerImpl) phaseLocked() api.Phase {
	switch {
	case c.tourID == "":
		return api.PhaseIdle
	case c.completing:
		return api.PhaseCompleting
	case c.ready:
		return api.PhaseReady
	default:
		return api.PhaseStarting
	}
}

func (c *controllerImpl) Start(ctx context.Context, tourID string) error {
	c.mu.Lock()
	c.sessionID = uuid.NewString()
	c.tourID = tourID
	c.stepIndex = 0
	c.ready = false
	c.completing = false
	sid := c.sessionID
	c.mu.Unlock()

	c.observer.OnTourStarted(ctx, sid, tourID)

	target, hasTarget := c.firstStepTarget(tourID)
	if !hasTarget {
		// Unknown tour or no steps: skip polling, wait a short grace
		// period so transient registration races settle.
		if err := sleep(ctx, c.cfg.MissingTourWait); err != nil {
			c.rollbackStart(sid)
			return err
		}
		return c.markReady(ctx, sid, tourID, false)
	}

	for poll := 0; poll < c.cfg.MaxPolls; poll++ {
		if _, ok := c.rects.Get(target); ok {
			return c.markReady(ctx, sid, tourID, false)
		}
		if err := sleep(ctx, c.cfg.PollInterval); err != nil {
			c.rollbackStart(sid)
			return err
		}
	}

	// Give up waiting and proceed anyway; the spotlight simply does not
	// render until a rectangle appears.
	return c.markReady(ctx, sid, tourID, true)
}

// firstStepTarget resolves the target of the first step of the named
// tour, by first id match and ignoring the enabled flag and predicate.
func (c *controllerImpl) firstStepTarget(tourID string) (api.TargetID, bool) {
	def, ok := c.tours.FirstByID(tourID)
	if !ok || len(def.Steps) == 0 {
		return api.TargetID{}, false
	}
	return def.Steps[0].Target, true
}

// markReady flips the readiness flag, unless the session has been
// superseded or reset while we were waiting.
func (c *controllerImpl) markReady(ctx context.Context, sid, tourID string, timedOut bool) error {
	c.mu.Lock()
	if c.sessionID != sid {
		c.mu.Unlock()
		return nil
	}
	c.ready = true
	c.mu.Unlock()

	c.observer.OnTourReady(ctx, sid, tourID, timedOut)
	return nil
}

// rollbackStart undoes a cancelled Start, leaving the controller idle if
// the pending session is still ours.
func (c *controllerImpl) rollbackStart(sid string) {
	c.mu.Lock()
	if c.sessionID == sid {
		c.resetLocked()
	}
	c.mu.Unlock()
}

func (c *controllerImpl) Next(ctx context.Context, onComplete func(tourID string)) error {
	c.mu.Lock()
	if c.tourID == "" || c.completing {
		// No session, or the terminal transition is already underway.
		c.mu.Unlock()
		return nil
	}

	sid := c.sessionID
	tid := c.tourID

	def, known := c.tours.FirstByID(tid)
	if known && c.stepIndex+1 < len(def.Steps) {
		c.stepIndex++
		idx := c.stepIndex
		c.mu.Unlock()

		c.observer.OnStepChanged(ctx, sid, tid, idx)
		return nil
	}

	// Last step (or the tour vanished from the registry): enter the
	// terminal transition window. No further advancement until reset.
	c.completing = true
	c.mu.Unlock()

	if err := sleep(ctx, c.cfg.ExitWait); err != nil {
		c.mu.Lock()
		if c.sessionID == sid {
			c.completing = false
		}
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	if c.sessionID == sid {
		c.resetLocked()
	}
	c.mu.Unlock()

	// State is clean before the callbacks run, so a completion handler
	// may start another tour synchronously.
	c.observer.OnTourCompleted(ctx, sid, tid)
	if onComplete != nil {
		onComplete(tid)
	}
	return nil
}

func (c *controllerImpl) Reset() {
	c.mu.Lock()
	sid := c.sessionID
	tid := c.tourID
	c.resetLocked()
	c.mu.Unlock()

	c.observer.OnTourReset(sid, tid)
}

func (c *controllerImpl) ResetAll() {
	c.mu.Lock()
	sid := c.sessionID
	tid := c.tourID
	c.resetLocked()
	c.mu.Unlock()

	c.tours.Clear()
	c.rects.Clear()

	c.observer.OnTourReset(sid, tid)
}

func (c *controllerImpl) resetLocked() {
	c.sessionID = ""
	c.tourID = ""
	c.stepIndex = 0
	c.ready = false
	c.completing = false
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
