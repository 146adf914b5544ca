// Package drawer implements the slide-out panel state machine: the
// animated horizontal offset, gesture handling, spring settle and the
// overlay derived from it.
package drawer

import "math"

// Position is the screen edge the drawer is attached to.
type Position int

// Drawer positions.
const (
	PositionLeft Position = iota
	PositionRight
)

// String returns the config name of the position.
func (p Position) String() string {
	if p == PositionRight {
		return "right"
	}
	return "left"
}

// Type controls which of the drawer and the scene moves.
type Type int

// Drawer types.
const (
	TypeFront Type = iota
	TypeBack
	TypeSlide
	TypePermanent
)

// String returns the config name of the type.
func (t Type) String() string {
	switch t {
	case TypeBack:
		return "back"
	case TypeSlide:
		return "slide"
	case TypePermanent:
		return "permanent"
	default:
		return "front"
	}
}

// KeyboardDismissMode controls whether a drag dismisses the soft keyboard.
type KeyboardDismissMode int

// Keyboard dismiss modes.
const (
	KeyboardDismissNone KeyboardDismissMode = iota
	KeyboardDismissOnDrag
)

// StatusBarAnimation is passed through to the platform when the status bar
// is hidden or shown.
type StatusBarAnimation int

// Status bar animations.
const (
	StatusBarAnimationSlide StatusBarAnimation = iota
	StatusBarAnimationFade
	StatusBarAnimationNone
)

// Defaults applied by Resolve.
const (
	DefaultWidthPercent           = 80.0
	DefaultEdgeHitWidth           = 32.0
	DefaultSwipeDistanceThreshold = 60.0
	DefaultSwipeVelocityThreshold = 500.0
	DefaultMinimumSwipeDistance   = 5.0
)

// WidthSpec is either an absolute pixel width or a percentage of the
// viewport width. The zero value is unset.
type WidthSpec struct {
	pixels  float64
	percent float64
	kind    widthKind
}

type widthKind int

const (
	widthUnset widthKind = iota
	widthPixels
	widthPercent
)

// Pixels returns an absolute width.
func Pixels(px float64) WidthSpec {
	return WidthSpec{pixels: px, kind: widthPixels}
}

// Percent returns a width proportional to the viewport width.
func Percent(p float64) WidthSpec {
	return WidthSpec{percent: p, kind: widthPercent}
}

// IsSet reports whether a width was given.
func (w WidthSpec) IsSet() bool {
	return w.kind != widthUnset
}

// Resolve returns the width in pixels for a viewport. Unset widths use
// DefaultWidthPercent; non-finite or negative values resolve to 0.
func (w WidthSpec) Resolve(viewportWidth float64) float64 {
	var px float64
	switch w.kind {
	case widthPixels:
		px = w.pixels
	case widthPercent:
		if !finite(w.percent) {
			return 0
		}
		px = viewportWidth * w.percent / 100
	default:
		px = viewportWidth * DefaultWidthPercent / 100
	}
	if !finite(px) || px < 0 {
		return 0
	}
	return px
}

// SpringConfig parameterises the settle animation.
type SpringConfig struct {
	FPS              int
	Frequency        float64
	Damping          float64
	RestDisplacement float64
	RestSpeed        float64
}

// DefaultSpring returns a critically damped spring at 60 frames per second.
func DefaultSpring() SpringConfig {
	return SpringConfig{
		FPS:              60,
		Frequency:        18,
		Damping:          1,
		RestDisplacement: 0.05,
		RestSpeed:        0.5,
	}
}

// Config is the resolved per-render drawer configuration.
type Config struct {
	Position               Position
	Type                   Type
	Width                  float64
	ViewportWidth          float64
	ViewportHeight         float64
	SwipeDistanceThreshold float64
	SwipeVelocityThreshold float64
	MinimumSwipeDistance   float64
	EdgeHitWidth           float64
	GestureEnabled         bool
	SwipeEnabled           bool
	KeyboardDismissMode    KeyboardDismissMode
	HideStatusBarOnOpen    bool
	StatusBarAnimation     StatusBarAnimation
	Spring                 SpringConfig
}

// Options are the raw host inputs Resolve turns into a Config. Zero
// thresholds select the defaults.
type Options struct {
	Position               Position
	Type                   Type
	Width                  WidthSpec
	ViewportWidth          float64
	ViewportHeight         float64
	SwipeDistanceThreshold float64
	SwipeVelocityThreshold float64
	EdgeHitWidth           float64
	GestureEnabled         bool
	SwipeEnabled           bool
	KeyboardDismissMode    KeyboardDismissMode
	HideStatusBarOnOpen    bool
	StatusBarAnimation     StatusBarAnimation
	Spring                 SpringConfig
}

// Resolve builds a Config from host inputs.
func Resolve(o Options) Config {
	vw := nonNegative(o.ViewportWidth)
	cfg := Config{
		Position:               o.Position,
		Type:                   o.Type,
		Width:                  o.Width.Resolve(vw),
		ViewportWidth:          vw,
		ViewportHeight:         nonNegative(o.ViewportHeight),
		SwipeDistanceThreshold: orDefault(o.SwipeDistanceThreshold, DefaultSwipeDistanceThreshold),
		SwipeVelocityThreshold: orDefault(o.SwipeVelocityThreshold, DefaultSwipeVelocityThreshold),
		MinimumSwipeDistance:   DefaultMinimumSwipeDistance,
		EdgeHitWidth:           orDefault(o.EdgeHitWidth, DefaultEdgeHitWidth),
		GestureEnabled:         o.GestureEnabled,
		SwipeEnabled:           o.SwipeEnabled,
		KeyboardDismissMode:    o.KeyboardDismissMode,
		HideStatusBarOnOpen:    o.HideStatusBarOnOpen,
		StatusBarAnimation:     o.StatusBarAnimation,
		Spring:                 o.Spring,
	}
	if cfg.Width > vw {
		cfg.Width = vw
	}
	def := DefaultSpring()
	if cfg.Spring.FPS <= 0 {
		cfg.Spring.FPS = def.FPS
	}
	if cfg.Spring.Frequency <= 0 {
		cfg.Spring.Frequency = def.Frequency
	}
	if cfg.Spring.Damping <= 0 {
		cfg.Spring.Damping = def.Damping
	}
	if cfg.Spring.RestDisplacement <= 0 {
		cfg.Spring.RestDisplacement = def.RestDisplacement
	}
	if cfg.Spring.RestSpeed <= 0 {
		cfg.Spring.RestSpeed = def.RestSpeed
	}
	return cfg
}

// GesturesAttached reports whether a pan recognizer should be attached.
func (c Config) GesturesAttached() bool {
	return c.Type != TypePermanent && c.GestureEnabled && c.SwipeEnabled
}

func (c Config) geometryChanged(prev Config) bool {
	return c.Width != prev.Width || c.Position != prev.Position || c.ViewportWidth != prev.ViewportWidth
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func nonNegative(f float64) float64 {
	if !finite(f) || f < 0 {
		return 0
	}
	return f
}

func orDefault(v, def float64) float64 {
	if !finite(v) || v <= 0 {
		return def
	}
	return v
}
