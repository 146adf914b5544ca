package drawer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig(pos Position, typ Type) Config {
	return Resolve(Options{
		Position:       pos,
		Type:           typ,
		Width:          Pixels(300),
		ViewportWidth:  400,
		ViewportHeight: 800,
		GestureEnabled: true,
		SwipeEnabled:   true,
	})
}

func TestTargets(t *testing.T) {
	left := testConfig(PositionLeft, TypeFront)
	assert.Equal(t, 0.0, OpenTarget(left))
	assert.Equal(t, -300.0, ClosedTarget(left))

	right := testConfig(PositionRight, TypeFront)
	assert.Equal(t, 100.0, OpenTarget(right))
	assert.Equal(t, 400.0, ClosedTarget(right))
}

func TestClampBounds(t *testing.T) {
	inputs := []float64{-1e9, -5000, -301, -300, -150, 0, 1, 99, 100, 250, 400, 401, 5000, 1e9, math.Inf(1), math.Inf(-1)}

	for _, pos := range []Position{PositionLeft, PositionRight} {
		cfg := testConfig(pos, TypeFront)
		lo, hi := -300.0, 0.0
		if pos == PositionRight {
			lo, hi = 100.0, 400.0
		}
		for _, x := range inputs {
			got := Clamp(cfg, x)
			assert.GreaterOrEqual(t, got, lo, "position %s input %v", pos, x)
			assert.LessOrEqual(t, got, hi, "position %s input %v", pos, x)
		}
		assert.Equal(t, ClosedTarget(cfg), Clamp(cfg, math.NaN()))
	}
}

func TestProgress(t *testing.T) {
	left := testConfig(PositionLeft, TypeFront)
	assert.InDelta(t, 1.0, Progress(left, 0), 1e-9)
	assert.InDelta(t, 0.0, Progress(left, -300), 1e-9)
	assert.InDelta(t, 0.5, Progress(left, -150), 1e-9)
	assert.InDelta(t, 0.0, Progress(left, -900), 1e-9)

	right := testConfig(PositionRight, TypeFront)
	assert.InDelta(t, 1.0, Progress(right, 100), 1e-9)
	assert.InDelta(t, 0.0, Progress(right, 400), 1e-9)
	assert.InDelta(t, 0.5, Progress(right, 250), 1e-9)

	zero := Resolve(Options{Width: Pixels(0), ViewportWidth: 400})
	assert.Equal(t, 0.0, Progress(zero, 0))
}

func TestVisualOffsetsByType(t *testing.T) {
	tests := []struct {
		typ        Type
		wantDrawer float64
		wantScene  float64
	}{
		{typ: TypeFront, wantDrawer: -100, wantScene: 0},
		{typ: TypeBack, wantDrawer: 0, wantScene: 200},
		{typ: TypeSlide, wantDrawer: -100, wantScene: 200},
		{typ: TypePermanent, wantDrawer: 0, wantScene: 0},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			cfg := testConfig(PositionLeft, tt.typ)
			assert.Equal(t, tt.wantDrawer, DrawerVisualOffset(cfg, -100))
			assert.Equal(t, tt.wantScene, SceneVisualOffset(cfg, -100))
		})
	}
}

func TestDecideOpen(t *testing.T) {
	cfg := testConfig(PositionLeft, TypeFront)

	tests := []struct {
		name   string
		tx     float64
		vx     float64
		intent bool
		want   bool
	}{
		{name: "distance opens", tx: 80, want: true},
		{name: "distance closes", tx: -80, intent: true, want: false},
		{name: "short drag keeps closed", tx: 10, want: false},
		{name: "short drag keeps open", tx: 10, intent: true, want: true},
		{name: "zero keeps open", tx: 0, intent: true, want: true},
		{name: "zero keeps closed", tx: 0, want: false},
		{name: "velocity wins over translation", tx: 80, vx: -200, want: false},
		{name: "below minimum ignores velocity", tx: 4, vx: 2000, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GestureSample{TranslationX: tt.tx, VelocityX: tt.vx, Phase: PhaseEnded}
			assert.Equal(t, tt.want, decideOpen(cfg, s, tt.intent))
		})
	}

	right := testConfig(PositionRight, TypeFront)
	assert.True(t, decideOpen(right, GestureSample{TranslationX: -80}, false))
	assert.False(t, decideOpen(right, GestureSample{TranslationX: 80}, true))
}

func TestFrontTouchDeadZone(t *testing.T) {
	cfg := testConfig(PositionLeft, TypeFront)
	m := MotionState{Offset: -300, StartOffset: -300, TouchStartX: 350}

	for _, tx := range []float64{0, 10, 30, 49, 50} {
		got := gestureOffset(cfg, m, GestureSample{TouchX: 350 + tx, TranslationX: tx, Phase: PhaseActive})
		assert.Equal(t, -300.0, got, "translation %v", tx)
	}
	assert.Equal(t, -290.0, gestureOffset(cfg, m, GestureSample{TranslationX: 60, Phase: PhaseActive}))
	assert.Equal(t, -200.0, gestureOffset(cfg, m, GestureSample{TranslationX: 150, Phase: PhaseActive}))

	slide := testConfig(PositionLeft, TypeSlide)
	assert.Equal(t, -270.0, gestureOffset(slide, m, GestureSample{TranslationX: 30, Phase: PhaseActive}))
}

func TestFrontTouchDeadZoneClosingFromOverlay(t *testing.T) {
	cfg := testConfig(PositionLeft, TypeFront)
	m := MotionState{Offset: 0, StartOffset: 0, TouchStartX: 350}

	assert.Equal(t, 0.0, gestureOffset(cfg, m, GestureSample{TranslationX: -40, Phase: PhaseActive}))
	assert.Equal(t, -30.0, gestureOffset(cfg, m, GestureSample{TranslationX: -80, Phase: PhaseActive}))

	right := testConfig(PositionRight, TypeFront)
	rm := MotionState{Offset: 100, StartOffset: 100, TouchStartX: 60}
	assert.Equal(t, 100.0, gestureOffset(right, rm, GestureSample{TranslationX: 30, Phase: PhaseActive}))
	assert.Equal(t, 120.0, gestureOffset(right, rm, GestureSample{TranslationX: 60, Phase: PhaseActive}))
}

func TestRemapOffsetKeepsProgress(t *testing.T) {
	left := testConfig(PositionLeft, TypeFront)
	right := testConfig(PositionRight, TypeFront)

	assert.Equal(t, 400.0, remapOffset(left, right, -300), "closed stays closed")
	assert.Equal(t, 100.0, remapOffset(left, right, 0), "open stays open")
	assert.Equal(t, 250.0, remapOffset(left, right, -150))

	wider := left
	wider.ViewportWidth = 600
	wider.Width = 450
	assert.Equal(t, -225.0, remapOffset(left, wider, -150))
}
