// Package gesture turns terminal mouse events into drag gestures for the
// drawer.
package gesture

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazydrawer/internal/drawer"
)

// Recognizer defaults, in pixels.
const (
	DefaultActivationSlop = 5.0
	DefaultFailSlop       = 20.0
	// velocitySmoothing weighs the newest instantaneous velocity.
	velocitySmoothing = 0.6
	// stillWindow is how long the pointer may rest before the release
	// velocity is considered zero.
	stillWindow = 100 * time.Millisecond
)

// Kind is the kind of event produced by the recognizer.
type Kind int

// Event kinds.
const (
	KindNone Kind = iota
	KindStart
	KindUpdate
	KindEnd
	KindTap
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindUpdate:
		return "update"
	case KindEnd:
		return "end"
	case KindTap:
		return "tap"
	default:
		return "none"
	}
}

// Event is one recognized gesture step. For KindStart, TouchX is where the
// press began; for KindTap, CellX and CellY hold the terminal cell that
// was tapped.
type Event struct {
	Kind   Kind
	TouchX float64
	Sample drawer.GestureSample
	CellX  int
	CellY  int
}

// Geometry is the drawer snapshot the recognizer evaluates hits against.
type Geometry struct {
	// Scale is the number of pixels per terminal column.
	Scale  float64
	Config drawer.Config
	// Open is the requested openness; closed drawers are only grabbed
	// from the edge strip.
	Open bool
}

// ToPixels converts a terminal column to the pixel at its center.
func (g Geometry) ToPixels(col int) float64 {
	s := g.Scale
	if s <= 0 {
		s = 1
	}
	return (float64(col) + 0.5) * s
}

// InHitArea reports whether a press at x pixels may start a drag.
func (g Geometry) InHitArea(x float64) bool {
	cfg := g.Config
	if !cfg.GesturesAttached() {
		return false
	}
	if g.Open {
		return true
	}
	if cfg.Position == drawer.PositionRight {
		return x >= cfg.ViewportWidth-cfg.EdgeHitWidth
	}
	return x <= cfg.EdgeHitWidth
}

type state int

const (
	stateIdle state = iota
	statePending
	stateActive
	stateFailed
)

// Recognizer is a horizontal pan recognizer. It is not safe for
// concurrent use; feed it events in arrival order.
type Recognizer struct {
	ActivationSlop float64
	FailSlop       float64

	state    state
	pannable bool
	startX   float64
	startY   float64
	startCol int
	startRow int
	lastX    float64
	lastAt   time.Time
	velocity float64
}

// New creates a recognizer with default slops.
func New() *Recognizer {
	return &Recognizer{
		ActivationSlop: DefaultActivationSlop,
		FailSlop:       DefaultFailSlop,
	}
}

// Active reports whether a drag is in progress.
func (r *Recognizer) Active() bool {
	return r.state == stateActive
}

// Reset abandons any tracked press. An active drag is reported as ended so
// the caller can release what it holds.
func (r *Recognizer) Reset() Event {
	ev := Event{}
	if r.state == stateActive {
		ev = Event{Kind: KindEnd, Sample: drawer.GestureSample{
			TouchX:       r.lastX,
			TranslationX: r.lastX - r.startX,
			Phase:        drawer.PhaseEnded,
		}}
	}
	r.state = stateIdle
	r.velocity = 0
	return ev
}

// Handle feeds one mouse event observed at now.
func (r *Recognizer) Handle(msg tea.MouseMsg, now time.Time, g Geometry) Event {
	scale := g.Scale
	if scale <= 0 {
		scale = 1
	}
	x := g.ToPixels(msg.X)
	y := (float64(msg.Y) + 0.5) * scale

	switch msg.Action {
	case tea.MouseActionPress:
		// A press during a drag means the release was lost, typically
		// outside the terminal window. The drag ends here.
		ended := r.Reset()
		if msg.Button != tea.MouseButtonLeft {
			return ended
		}
		r.state = statePending
		r.pannable = g.InHitArea(x)
		r.startX, r.startY = x, y
		r.startCol, r.startRow = msg.X, msg.Y
		r.lastX, r.lastAt = x, now
		r.velocity = 0
		return ended

	case tea.MouseActionMotion:
		return r.motion(x, y, now)

	case tea.MouseActionRelease:
		return r.release(x, now)
	}
	return Event{}
}

func (r *Recognizer) motion(x, y float64, now time.Time) Event {
	switch r.state {
	case statePending:
		dx, dy := math.Abs(x-r.startX), math.Abs(y-r.startY)
		if !r.pannable {
			if dx > r.ActivationSlop || dy > r.FailSlop {
				r.state = stateFailed
			}
			return Event{}
		}
		if dy > r.FailSlop && dx <= r.ActivationSlop {
			r.state = stateFailed
			return Event{}
		}
		if dx <= r.ActivationSlop {
			return Event{}
		}
		r.state = stateActive
		r.track(x, now)
		return Event{
			Kind:   KindStart,
			TouchX: r.startX,
			Sample: drawer.GestureSample{
				TouchX:       x,
				TranslationX: x - r.startX,
				VelocityX:    r.velocity,
				Phase:        drawer.PhaseActive,
			},
		}

	case stateActive:
		r.track(x, now)
		return Event{Kind: KindUpdate, Sample: drawer.GestureSample{
			TouchX:       x,
			TranslationX: x - r.startX,
			VelocityX:    r.velocity,
			Phase:        drawer.PhaseActive,
		}}
	}
	return Event{}
}

func (r *Recognizer) release(x float64, now time.Time) Event {
	prev := r.state
	r.state = stateIdle
	switch prev {
	case stateActive:
		if x != r.lastX {
			r.track(x, now)
		}
		velocity := r.velocity
		if now.Sub(r.lastAt) > stillWindow {
			velocity = 0
		}
		r.velocity = 0
		return Event{Kind: KindEnd, Sample: drawer.GestureSample{
			TouchX:       x,
			TranslationX: x - r.startX,
			VelocityX:    velocity,
			Phase:        drawer.PhaseEnded,
		}}
	case statePending:
		return Event{Kind: KindTap, TouchX: r.startX, CellX: r.startCol, CellY: r.startRow}
	}
	return Event{}
}

func (r *Recognizer) track(x float64, now time.Time) {
	dt := now.Sub(r.lastAt).Seconds()
	if dt > 0 {
		v := (x - r.lastX) / dt
		r.velocity = velocitySmoothing*v + (1-velocitySmoothing)*r.velocity
	}
	r.lastX, r.lastAt = x, now
}
