package drawer

import "math"

// OpenTarget is the offset of a fully open drawer.
func OpenTarget(cfg Config) float64 {
	if cfg.Position == PositionRight {
		return cfg.ViewportWidth - cfg.Width
	}
	return 0
}

// ClosedTarget is the offset of a fully closed drawer.
func ClosedTarget(cfg Config) float64 {
	if cfg.Position == PositionRight {
		return cfg.ViewportWidth
	}
	return -cfg.Width
}

// Target returns OpenTarget or ClosedTarget.
func Target(cfg Config, open bool) float64 {
	if open {
		return OpenTarget(cfg)
	}
	return ClosedTarget(cfg)
}

// Clamp limits x to the legal travel range of the drawer.
func Clamp(cfg Config, x float64) float64 {
	lo, hi := travel(cfg)
	if math.IsNaN(x) {
		return ClosedTarget(cfg)
	}
	return math.Max(lo, math.Min(hi, x))
}

func travel(cfg Config) (lo, hi float64) {
	if cfg.Position == PositionRight {
		return cfg.ViewportWidth - cfg.Width, cfg.ViewportWidth
	}
	return -cfg.Width, 0
}

// Progress is the normalized openness for offset x: 1 when open, 0 when
// closed.
func Progress(cfg Config, x float64) float64 {
	if cfg.Width <= 0 {
		return 0
	}
	return (cfg.Width - math.Abs(Clamp(cfg, x)-OpenTarget(cfg))) / cfg.Width
}

// remapOffset moves x from prev's geometry to cfg's, keeping its progress.
func remapOffset(prev, cfg Config, x float64) float64 {
	p := Progress(prev, x)
	return OpenTarget(cfg) + (1-p)*(ClosedTarget(cfg)-OpenTarget(cfg))
}

// IsOpenSettled reports whether x sits exactly on the open target.
// Permanent drawers are always open.
func IsOpenSettled(cfg Config, x float64) bool {
	if cfg.Type == TypePermanent {
		return true
	}
	return Clamp(cfg, x) == OpenTarget(cfg)
}

// isClosedSettled reports whether x sits exactly on the closed target.
func isClosedSettled(cfg Config, x float64) bool {
	if cfg.Type == TypePermanent {
		return false
	}
	return Clamp(cfg, x) == ClosedTarget(cfg)
}

// DrawerVisualOffset is the translation applied to the drawer panel,
// relative to its open resting place. Back drawers stay put.
func DrawerVisualOffset(cfg Config, x float64) float64 {
	switch cfg.Type {
	case TypeBack, TypePermanent:
		return 0
	}
	return Clamp(cfg, x) - OpenTarget(cfg)
}

// SceneVisualOffset is the translation applied to the scene, relative to
// its resting place. The scene stays put for front and permanent drawers.
func SceneVisualOffset(cfg Config, x float64) float64 {
	switch cfg.Type {
	case TypeFront, TypePermanent:
		return 0
	}
	return Clamp(cfg, x) - ClosedTarget(cfg)
}

// touchDeadZone is how far a front drawer drag must travel before the
// drawer follows, when the touch began beyond the open drawer's edge.
func touchDeadZone(cfg Config, touchStartX float64) float64 {
	var d float64
	if cfg.Position == PositionRight {
		d = cfg.ViewportWidth - cfg.Width - touchStartX
	} else {
		d = touchStartX - cfg.Width
	}
	return math.Max(0, math.Min(cfg.ViewportWidth, d))
}

// gestureOffset maps a drag sample to a clamped offset.
func gestureOffset(cfg Config, m MotionState, s GestureSample) float64 {
	tx := s.TranslationX
	if cfg.Type == TypeFront && s.Phase == PhaseActive {
		d := touchDeadZone(cfg, m.TouchStartX)
		switch {
		case tx > d:
			tx -= d
		case tx < -d:
			tx += d
		default:
			tx = 0
		}
	}
	return Clamp(cfg, m.StartOffset+tx)
}

// decideOpen picks the target openness when a drag is released.
func decideOpen(cfg Config, s GestureSample, intent bool) bool {
	dist := math.Abs(s.TranslationX)
	if dist <= cfg.MinimumSwipeDistance {
		return intent
	}
	if dist <= cfg.SwipeVelocityThreshold && dist <= cfg.SwipeDistanceThreshold {
		return intent
	}
	speed := s.VelocityX
	if speed == 0 {
		speed = s.TranslationX
	}
	if cfg.Position == PositionRight {
		return speed < 0
	}
	return speed > 0
}
