package drawer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settle integrates the offset toward a target one frame at a time.
// Overshoot is clamped: crossing the target snaps onto it.
type settle struct {
	spring  harmonica.Spring
	cfg     SpringConfig
	target  float64
	running bool
}

func newSettle(cfg SpringConfig) settle {
	return settle{
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		cfg:    cfg,
	}
}

func (s *settle) start(target float64) {
	s.target = target
	s.running = true
}

func (s *settle) stop() {
	s.running = false
}

// step advances pos and vel by one frame. done is true once the motion is
// at rest, in which case pos is exactly the target and vel is 0.
func (s *settle) step(pos, vel float64) (newPos, newVel float64, done bool) {
	if !s.running {
		return pos, vel, true
	}
	newPos, newVel = s.spring.Update(pos, vel, s.target)

	before := pos - s.target
	after := newPos - s.target
	crossed := before != 0 && (after == 0 || math.Signbit(before) != math.Signbit(after))
	resting := math.Abs(after) < s.cfg.RestDisplacement && math.Abs(newVel) < s.cfg.RestSpeed
	if crossed || resting || !finite(newPos) {
		s.running = false
		return s.target, 0, true
	}
	return newPos, newVel, false
}
