package nav

import "sync"

// Phase is the pager controller's lifecycle state.
type Phase int

const (
	// PhaseSettled: the window is mounted and the current slot is on screen.
	PhaseSettled Phase = iota
	// PhaseSwiping: a gesture is in progress, no domain event yet.
	PhaseSwiping
	// PhaseResolving: a raw page index arrived and is being classified.
	PhaseResolving
	// PhaseRecentering: a non-animated snap back to the center slot was issued.
	PhaseRecentering
)

// PagerHandle is the imperative surface of the rendering pager. The
// controller treats a nil handle as a no-op: the pager may unmount
// mid-gesture and ref calls must never propagate a panic.
type PagerHandle interface {
	// SetPage animates to the given window slot.
	SetPage(index int)
	// SetPageWithoutAnimation snaps to the given window slot silently.
	SetPageWithoutAnimation(index int)
}

// Router receives position changes for URL/route synchronization.
// Replace is the silent, debounced update used for swipe-driven
// changes; Push records explicit user jumps and is issued by the
// controller the moment a jump lands.
type Router interface {
	Replace(path string)
	Push(path string)
}

// Haptics fires a feedback pulse on real position changes.
type Haptics interface {
	Pulse()
}

// Logger is the debug logging capability injected into the controller.
type Logger interface {
	Debugf(format string, args ...any)
}

// ControllerConfig wires a controller to its domain. BuildWindow,
// Next and Prev carry the domain policy (linear chapters or circular
// topics); RoutePath and DisplayName render positions for the router
// and the state store.
type ControllerConfig[P comparable] struct {
	Store       *Store[P]
	WindowSize  int
	BuildWindow func(center P, windowSize int) (slots []P, centerIdx int)
	Next        func(P) (P, bool)
	Prev        func(P) (P, bool)
	RoutePath   func(P) string
	DisplayName func(P) string
	Router      Router
	Haptics     Haptics
	Logger      Logger
}

// Controller orchestrates one pager instance: it owns the mounted
// window, translates raw page indices into domain positions, writes
// the state store synchronously on settle, debounces route syncs, and
// issues edge-snap / re-center commands against the pager handle.
// All dedup markers are instance fields so a Bible controller and a
// topic controller can run side by side without cross-talk.
type Controller[P comparable] struct {
	cfg ControllerConfig[P]

	mu            sync.Mutex
	pager         PagerHandle
	window        []P
	currentIdx    int
	phase         Phase
	lastProcessed P
	hasProcessed  bool

	debounce *Debouncer
}

// NewController builds a controller with its window centered on the
// store's current position and registers itself as the store's jump
// handler.
func NewController[P comparable](cfg ControllerConfig[P]) *Controller[P] {
	c := &Controller[P]{
		cfg:      cfg,
		debounce: NewDebouncer(RouteSyncDelay),
	}
	cur, _ := cfg.Store.Current()
	c.window, c.currentIdx = cfg.BuildWindow(cur, cfg.WindowSize)
	if c.currentIdx >= 0 {
		c.lastProcessed = cur
		c.hasProcessed = true
	}
	cfg.Store.OnJump(c.handleJump)
	return c
}

// AttachPager hands the controller the pager's imperative handle.
// Passing nil detaches it; subsequent pager calls become no-ops.
func (c *Controller[P]) AttachPager(h PagerHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pager = h
}

// Window returns a copy of the mounted slots and the index of the
// slot currently on screen.
func (c *Controller[P]) Window() ([]P, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]P, len(c.window))
	copy(out, c.window)
	return out, c.currentIdx
}

// Current returns the domain position of the slot on screen. ok is
// false when the window is empty (invalid seed position).
func (c *Controller[P]) Current() (pos P, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentIdx < 0 || c.currentIdx >= len(c.window) {
		return pos, false
	}
	return c.window[c.currentIdx], true
}

// Phase returns the controller's current lifecycle phase.
func (c *Controller[P]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// CanGoNext reports whether a next position exists.
func (c *Controller[P]) CanGoNext() bool {
	if cur, ok := c.Current(); ok {
		_, can := c.cfg.Next(cur)
		return can
	}
	return false
}

// CanGoPrevious reports whether a previous position exists.
func (c *Controller[P]) CanGoPrevious() bool {
	if cur, ok := c.Current(); ok {
		_, can := c.cfg.Prev(cur)
		return can
	}
	return false
}

// BeginSwipe marks a gesture in progress. External jumps arriving
// before the matching PageSettled are dropped.
func (c *Controller[P]) BeginSwipe() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseSwiping
}

// PageSettled resolves a raw page index after a gesture completes.
// The state store is updated synchronously within this call; the
// route sync is debounced on a side channel; edge slots trigger a
// non-animated re-center unless the slot is a true domain boundary.
func (c *Controller[P]) PageSettled(raw int) {
	c.mu.Lock()
	c.phase = PhaseResolving

	if raw < 0 || raw >= len(c.window) {
		// No slot exists in that direction (truncated window at a
		// hard boundary). Not a state change.
		c.logf("page index %d outside window of %d slots, ignoring", raw, len(c.window))
		c.phase = PhaseSettled
		c.mu.Unlock()
		return
	}

	if raw == c.currentIdx {
		// Settled back onto the current slot: no domain event, no haptic.
		c.phase = PhaseSettled
		c.mu.Unlock()
		return
	}

	pos := c.window[raw]
	snapTo := -1

	if raw == 0 || raw == len(c.window)-1 {
		atBoundary := false
		if raw == 0 {
			_, ok := c.cfg.Prev(pos)
			atBoundary = !ok
		} else {
			_, ok := c.cfg.Next(pos)
			atBoundary = !ok
		}
		if atBoundary {
			// True boundary: the window cannot move further. Stay put;
			// the floating buttons disable via CanGoNext/CanGoPrevious.
			c.currentIdx = raw
		} else if slots, ci := c.cfg.BuildWindow(pos, c.cfg.WindowSize); ci >= 0 {
			// Edge slot with more content beyond it: shift the window
			// and snap the pager back to the new center, silently.
			c.window = slots
			c.currentIdx = ci
			snapTo = ci
		} else {
			c.currentIdx = raw
		}
	} else {
		c.currentIdx = raw
	}

	c.lastProcessed = pos
	c.hasProcessed = true
	if snapTo >= 0 {
		c.phase = PhaseRecentering
	}
	pager := c.pager
	c.mu.Unlock()

	// Synchronous store write first: header and content must agree
	// with the rendered page before anything else observes the change.
	c.cfg.Store.SetCurrent(pos, c.cfg.DisplayName(pos))
	if c.cfg.Haptics != nil {
		c.cfg.Haptics.Pulse()
	}
	c.scheduleRouteSync(pos)

	if snapTo >= 0 && pager != nil {
		pager.SetPageWithoutAnimation(snapTo)
	}

	c.mu.Lock()
	c.phase = PhaseSettled
	c.mu.Unlock()
}

// GoNext jumps to the next position through the store's external-jump
// path. No-op at a true boundary.
func (c *Controller[P]) GoNext() {
	cur, ok := c.Current()
	if !ok {
		return
	}
	next, ok := c.cfg.Next(cur)
	if !ok {
		return
	}
	c.cfg.Store.Jump(next, c.cfg.DisplayName(next))
}

// GoPrevious jumps to the previous position through the store's
// external-jump path. No-op at a true boundary.
func (c *Controller[P]) GoPrevious() {
	cur, ok := c.Current()
	if !ok {
		return
	}
	prev, ok := c.cfg.Prev(cur)
	if !ok {
		return
	}
	c.cfg.Store.Jump(prev, c.cfg.DisplayName(prev))
}

// SetPage animates the pager to a window slot and resolves it as if
// the user had swiped there.
func (c *Controller[P]) SetPage(index int) {
	c.mu.Lock()
	pager := c.pager
	inRange := index >= 0 && index < len(c.window)
	c.mu.Unlock()
	if !inRange {
		return
	}
	if pager != nil {
		pager.SetPage(index)
	}
	c.PageSettled(index)
}

// Close cancels any pending route sync.
func (c *Controller[P]) Close() {
	c.debounce.Stop()
}

// handleJump is registered on the store and runs synchronously inside
// Store.Jump, before the store commits. It rebuilds the window around
// the target, re-centers the pager without animation and pushes the
// new route. Returning false rejects the jump and the store keeps the
// mounted position.
func (c *Controller[P]) handleJump(pos P) bool {
	c.mu.Lock()

	if c.phase == PhaseSwiping || c.phase == PhaseResolving {
		// A swipe is mid-resolution; replaying a stale modal selection
		// on top of it would reorder updates. Drop it.
		c.logf("external jump dropped: swipe in flight")
		c.mu.Unlock()
		return false
	}

	if c.hasProcessed && c.lastProcessed == pos {
		// Redundant jump, e.g. a parent re-render with unchanged route
		// params. Re-centering again would visibly stutter.
		c.mu.Unlock()
		return false
	}

	slots, ci := c.cfg.BuildWindow(pos, c.cfg.WindowSize)
	if ci < 0 {
		c.logf("external jump to invalid position ignored")
		c.mu.Unlock()
		return false
	}

	c.window = slots
	c.currentIdx = ci
	c.lastProcessed = pos
	c.hasProcessed = true
	c.phase = PhaseRecentering
	pager := c.pager
	c.mu.Unlock()

	if pager != nil {
		pager.SetPageWithoutAnimation(ci)
	}
	c.pushRoute(pos)

	c.mu.Lock()
	c.phase = PhaseSettled
	c.mu.Unlock()
	return true
}

// pushRoute records an explicit jump in the route history. Any
// pending swipe replacement is cancelled first; a stale path applying
// after the jump would undo it.
func (c *Controller[P]) pushRoute(pos P) {
	c.debounce.Stop()
	if c.cfg.Router == nil {
		return
	}
	c.cfg.Router.Push(c.cfg.RoutePath(pos))
}

// scheduleRouteSync queues a silent route replacement. The pending
// sync is replaced, never stacked, so rapid swipes coalesce and stale
// routes cannot apply out of order.
func (c *Controller[P]) scheduleRouteSync(pos P) {
	if c.cfg.Router == nil {
		return
	}
	path := c.cfg.RoutePath(pos)
	c.debounce.Call(func() {
		c.cfg.Router.Replace(path)
	})
}

func (c *Controller[P]) logf(format string, args ...any) {
	if c.cfg.Logger != nil {
		c.cfg.Logger.Debugf(format, args...)
	}
}
