package drawer

import (
	"sync"
)

// Observer receives every committed frame.
type Observer func(Frame)

// Option configures a Controller.
type Option func(*Controller)

// WithPlatform sets the platform services driven around drags.
func WithPlatform(p Platform) Option {
	return func(c *Controller) {
		if p != nil {
			c.platform = p
		}
	}
}

// WithMailbox sets the queue settle events are posted to.
func WithMailbox(m *Mailbox) Option {
	return func(c *Controller) {
		if m != nil {
			c.mailbox = m
		}
	}
}

// WithLogf sets the debug logger.
func WithLogf(logf func(string, ...any)) Option {
	return func(c *Controller) {
		if logf != nil {
			c.logf = logf
		}
	}
}

// Controller owns the drawer offset. Exactly one driver moves the offset
// at a time: the settle spring, an active drag, or nothing.
type Controller struct {
	mu sync.Mutex

	cfg    Config
	motion MotionState
	intent bool
	settle settle
	// generation identifies the current animation; frame callbacks
	// carrying an older generation are stale.
	generation uint64

	dragging    bool
	interaction InteractionHandle
	locked      bool

	lastSettled bool

	platform  Platform
	mailbox   *Mailbox
	observers []observerEntry
	nextObsID int
	logf      func(string, ...any)
	closed    bool
}

type observerEntry struct {
	id int
	fn Observer
}

// NewController creates a controller resting at the target of open.
func NewController(cfg Config, open bool, opts ...Option) *Controller {
	c := &Controller{
		cfg:         cfg,
		intent:      open,
		platform:    NopPlatform{},
		mailbox:     NewMailbox(),
		logf:        func(string, ...any) {},
		lastSettled: open,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.settle = newSettle(cfg.Spring)
	c.motion.Offset = Target(cfg, open)
	if cfg.Type == TypePermanent {
		c.motion.Offset = OpenTarget(cfg)
		c.lastSettled = true
	}
	return c
}

// Mailbox returns the queue settle events are posted to.
func (c *Controller) Mailbox() *Mailbox {
	return c.mailbox
}

// Subscribe registers fn for every committed frame and returns a function
// that removes it.
func (c *Controller) Subscribe(fn Observer) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextObsID++
	id := c.nextObsID
	c.observers = append(c.observers, observerEntry{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Config returns the current configuration snapshot.
func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Intent returns the most recently requested openness.
func (c *Controller) Intent() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.intent
}

// Motion returns a copy of the motion state.
func (c *Controller) Motion() MotionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.motion
}

// Frame returns the current derived frame.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return newFrame(c.cfg, c.motion, c.settle.running)
}

// Generation identifies the running animation.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Animating reports whether the settle spring is running.
func (c *Controller) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settle.running
}

// Dragging reports whether a drag currently drives the offset.
func (c *Controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}

// GesturesAttached reports whether drags are accepted.
func (c *Controller) GesturesAttached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.GesturesAttached()
}

// Configure stores a new configuration. A change of width, position,
// viewport width or permanence keeps the current progress and retargets the
// drawer to the current intent; any other change leaves a running
// animation alone.
func (c *Controller) Configure(cfg Config) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	prev := c.cfg
	c.cfg = cfg
	if cfg.Spring != prev.Spring {
		running, target := c.settle.running, c.settle.target
		c.settle = newSettle(cfg.Spring)
		c.settle.target, c.settle.running = target, running
	}

	permanenceChanged := (prev.Type == TypePermanent) != (cfg.Type == TypePermanent)
	switch {
	case cfg.Type == TypePermanent:
		if c.dragging {
			c.endDragLocked()
		}
		c.settle.stop()
		c.generation++
		c.motion.Offset = OpenTarget(cfg)
		c.motion.Velocity = 0
	case c.dragging && !permanenceChanged:
		// The drag keeps its captured start offset; the release retargets
		// against the new geometry.
		c.motion.Offset = Clamp(cfg, c.motion.Offset)
	case cfg.geometryChanged(prev) || permanenceChanged:
		c.logf("drawer: geometry changed (width %.1f -> %.1f, viewport %.1f -> %.1f), retargeting open=%v",
			prev.Width, cfg.Width, prev.ViewportWidth, cfg.ViewportWidth, c.intent)
		c.motion.Offset = remapOffset(prev, cfg, c.motion.Offset)
		c.requestOpenLocked(c.intent, 0)
	}
	c.commitAndNotify()
}

// RequestOpen drives the drawer toward the open or closed target.
// velocity, when given, seeds the spring. It supersedes any running
// animation or drag and returns immediately; call Tick every frame until
// Animating reports false.
func (c *Controller) RequestOpen(open bool, velocity ...float64) {
	var v float64
	if len(velocity) > 0 && finite(velocity[0]) {
		v = velocity[0]
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.dragging {
		c.endDragLocked()
	}
	c.requestOpenLocked(open, v)
	c.commitAndNotify()
}

func (c *Controller) requestOpenLocked(open bool, velocity float64) {
	c.intent = open
	c.generation++
	if c.cfg.HideStatusBarOnOpen {
		c.platform.SetStatusBarHidden(open, c.cfg.StatusBarAnimation)
	}
	if c.cfg.Type == TypePermanent {
		c.settle.stop()
		c.motion.Offset = OpenTarget(c.cfg)
		c.motion.Velocity = 0
		return
	}
	c.motion.Offset = Clamp(c.cfg, c.motion.Offset)
	c.motion.Velocity = velocity
	c.settle.start(Target(c.cfg, open))
	c.logf("drawer: settle toward open=%v target=%.1f from=%.1f velocity=%.1f gen=%d",
		open, c.settle.target, c.motion.Offset, velocity, c.generation)
}

// Tick advances the animation of generation gen by one frame. Stale
// generations are ignored. It reports whether more frames are needed.
func (c *Controller) Tick(gen uint64) bool {
	c.mu.Lock()
	if c.closed || gen != c.generation || !c.settle.running {
		c.mu.Unlock()
		return false
	}
	return c.stepLocked()
}

// Step advances the current animation by one frame.
func (c *Controller) Step() bool {
	c.mu.Lock()
	if c.closed || !c.settle.running {
		c.mu.Unlock()
		return false
	}
	return c.stepLocked()
}

// stepLocked is entered with c.mu held and releases it.
func (c *Controller) stepLocked() bool {
	pos, vel, done := c.settle.step(c.motion.Offset, c.motion.Velocity)
	c.motion.Offset, c.motion.Velocity = pos, vel
	c.commitAndNotify()
	return !done
}

// OnGestureStart begins a drag at touchX. The running animation stops and
// the offset at this moment becomes the anchor for translations.
func (c *Controller) OnGestureStart(touchX float64) {
	c.mu.Lock()
	if c.closed || !c.cfg.GesturesAttached() {
		c.mu.Unlock()
		return
	}
	if c.dragging {
		c.endDragLocked()
	}
	c.settle.stop()
	c.generation++
	c.dragging = true
	c.motion.Velocity = 0
	c.motion.StartOffset = Clamp(c.cfg, c.motion.Offset)
	c.motion.TouchStartX = touchX
	c.motion.Phase = PhaseActive

	c.interaction = c.platform.BeginInteraction()
	c.locked = true
	if c.cfg.KeyboardDismissMode == KeyboardDismissOnDrag {
		c.platform.DismissKeyboard()
	}
	if c.cfg.HideStatusBarOnOpen {
		c.platform.SetStatusBarHidden(true, c.cfg.StatusBarAnimation)
	}
	c.logf("drawer: drag start touchX=%.1f offset=%.1f", touchX, c.motion.StartOffset)
	c.commitAndNotify()
}

// OnGestureUpdate applies one drag sample. Samples without a preceding
// OnGestureStart are ignored.
func (c *Controller) OnGestureUpdate(s GestureSample) {
	c.mu.Lock()
	if c.closed || !c.dragging || !finite(s.TranslationX) {
		c.mu.Unlock()
		return
	}
	if s.Phase == PhaseIdle {
		s.Phase = PhaseActive
	}
	c.motion.Phase = s.Phase
	c.motion.Offset = gestureOffset(c.cfg, c.motion, s)
	c.commitAndNotify()
}

// OnGestureEnd releases the drag and settles toward the decided target.
func (c *Controller) OnGestureEnd(s GestureSample) {
	c.mu.Lock()
	if c.closed || !c.dragging {
		c.mu.Unlock()
		return
	}
	if !finite(s.TranslationX) {
		s.TranslationX = 0
	}
	if !finite(s.VelocityX) {
		s.VelocityX = 0
	}
	open := decideOpen(c.cfg, s, c.intent)
	c.logf("drawer: drag end translation=%.1f velocity=%.1f intent=%v -> open=%v",
		s.TranslationX, s.VelocityX, c.intent, open)
	c.endDragLocked()
	c.requestOpenLocked(open, s.VelocityX)
	c.commitAndNotify()
}

// TapOverlay closes the drawer when the overlay is above the content and
// gestures are enabled. It reports whether the tap was consumed.
func (c *Controller) TapOverlay() bool {
	c.mu.Lock()
	if c.closed || !c.cfg.GestureEnabled || c.cfg.Type == TypePermanent {
		c.mu.Unlock()
		return false
	}
	f := newFrame(c.cfg, c.motion, c.settle.running)
	if !f.Overlay.CapturesInput() {
		c.mu.Unlock()
		return false
	}
	if c.dragging {
		c.endDragLocked()
	}
	c.requestOpenLocked(false, 0)
	c.commitAndNotify()
	return true
}

// Close tears the controller down: the animation stops, a held
// interaction lock is released and the mailbox closes.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.dragging {
		c.endDragLocked()
	}
	c.settle.stop()
	c.generation++
	c.closed = true
	c.observers = nil
	c.mailbox.Close()
}

func (c *Controller) endDragLocked() {
	c.dragging = false
	c.motion.Phase = PhaseEnded
	if c.locked {
		c.platform.EndInteraction(c.interaction)
		c.locked = false
	}
}

// commitAndNotify is entered with c.mu held and releases it. It posts a
// settle event when the settled openness changed and then notifies
// observers outside the lock.
func (c *Controller) commitAndNotify() {
	f := newFrame(c.cfg, c.motion, c.settle.running)
	if f.Settled && f.Open != c.lastSettled {
		c.lastSettled = f.Open
		c.mailbox.Post(SettleEvent{Open: f.Open})
		c.logf("drawer: settled open=%v offset=%.1f", f.Open, f.Clamped)
	}
	observers := make([]Observer, 0, len(c.observers))
	for _, o := range c.observers {
		observers = append(observers, o.fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(f)
	}
}
