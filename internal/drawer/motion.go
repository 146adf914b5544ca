package drawer

// Phase is the lifecycle phase of a drag.
type Phase int

// Gesture phases.
const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "idle"
	}
}

// GestureSample is one input frame of a drag. TranslationX is cumulative
// since the gesture started; VelocityX is in pixels per second.
type GestureSample struct {
	TouchX       float64
	TranslationX float64
	VelocityX    float64
	Phase        Phase
}

// MotionState is the authoritative position of the drawer.
type MotionState struct {
	Offset      float64
	Velocity    float64
	StartOffset float64
	TouchStartX float64
	Phase       Phase
}

// Frame is a committed snapshot of the drawer, handed to observers and
// renderers.
type Frame struct {
	Config       Config
	Offset       float64
	Clamped      float64
	Progress     float64
	DrawerOffset float64
	SceneOffset  float64
	Overlay      OverlayState
	Phase        Phase
	Animating    bool
	// Settled is true when the offset sits exactly on a target; Open is
	// then the target's openness.
	Settled bool
	Open    bool
}

func newFrame(cfg Config, m MotionState, animating bool) Frame {
	clamped := Clamp(cfg, m.Offset)
	progress := Progress(cfg, clamped)
	f := Frame{
		Config:       cfg,
		Offset:       m.Offset,
		Clamped:      clamped,
		Progress:     progress,
		DrawerOffset: DrawerVisualOffset(cfg, clamped),
		SceneOffset:  SceneVisualOffset(cfg, clamped),
		Overlay:      Overlay(progress),
		Phase:        m.Phase,
		Animating:    animating,
	}
	if cfg.Type == TypePermanent {
		// Laid out beside the scene, nothing to dim.
		f.Overlay = Overlay(0)
	}
	switch {
	case IsOpenSettled(cfg, clamped):
		f.Settled, f.Open = true, true
	case isClosedSettled(cfg, clamped):
		f.Settled = true
	}
	return f
}
