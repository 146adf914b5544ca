package gesture

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazydrawer/internal/drawer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry(pos drawer.Position, open bool) Geometry {
	cfg := drawer.Resolve(drawer.Options{
		Position:       pos,
		Width:          drawer.Pixels(240),
		ViewportWidth:  640,
		ViewportHeight: 192,
		GestureEnabled: true,
		SwipeEnabled:   true,
	})
	return Geometry{Scale: 8, Config: cfg, Open: open}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestHitArea(t *testing.T) {
	closedLeft := testGeometry(drawer.PositionLeft, false)
	assert.True(t, closedLeft.InHitArea(closedLeft.ToPixels(0)))
	assert.True(t, closedLeft.InHitArea(closedLeft.ToPixels(3)))
	assert.False(t, closedLeft.InHitArea(closedLeft.ToPixels(4)))

	closedRight := testGeometry(drawer.PositionRight, false)
	assert.True(t, closedRight.InHitArea(closedRight.ToPixels(79)))
	assert.False(t, closedRight.InHitArea(closedRight.ToPixels(40)))

	open := testGeometry(drawer.PositionLeft, true)
	assert.True(t, open.InHitArea(open.ToPixels(60)))

	disabled := testGeometry(drawer.PositionLeft, true)
	disabled.Config.SwipeEnabled = false
	assert.False(t, disabled.InHitArea(disabled.ToPixels(0)))
}

func TestDragFromEdge(t *testing.T) {
	g := testGeometry(drawer.PositionLeft, false)
	r := New()
	now := time.Unix(0, 0)

	assert.Equal(t, KindNone, r.Handle(press(1, 5), now, g).Kind)

	now = now.Add(16 * time.Millisecond)
	ev := r.Handle(motion(3, 5), now, g)
	require.Equal(t, KindStart, ev.Kind)
	assert.Equal(t, 12.0, ev.TouchX)
	assert.Equal(t, 16.0, ev.Sample.TranslationX)
	assert.Equal(t, drawer.PhaseActive, ev.Sample.Phase)
	assert.Positive(t, ev.Sample.VelocityX)
	assert.True(t, r.Active())

	now = now.Add(16 * time.Millisecond)
	ev = r.Handle(motion(13, 6), now, g)
	require.Equal(t, KindUpdate, ev.Kind)
	assert.Equal(t, 96.0, ev.Sample.TranslationX)

	now = now.Add(16 * time.Millisecond)
	ev = r.Handle(release(14, 6), now, g)
	require.Equal(t, KindEnd, ev.Kind)
	assert.Equal(t, 104.0, ev.Sample.TranslationX)
	assert.Equal(t, drawer.PhaseEnded, ev.Sample.Phase)
	assert.Positive(t, ev.Sample.VelocityX)
	assert.False(t, r.Active())
}

func TestReleaseAfterRestHasNoVelocity(t *testing.T) {
	g := testGeometry(drawer.PositionLeft, false)
	r := New()
	now := time.Unix(0, 0)

	r.Handle(press(0, 0), now, g)
	now = now.Add(10 * time.Millisecond)
	r.Handle(motion(10, 0), now, g)
	now = now.Add(time.Second)
	ev := r.Handle(release(10, 0), now, g)

	require.Equal(t, KindEnd, ev.Kind)
	assert.Equal(t, 0.0, ev.Sample.VelocityX)
}

func TestPressOutsideEdgeIsTap(t *testing.T) {
	g := testGeometry(drawer.PositionLeft, false)
	r := New()
	now := time.Unix(0, 0)

	r.Handle(press(50, 2), now, g)
	assert.Equal(t, KindNone, r.Handle(motion(60, 2), now, g).Kind)
	assert.Equal(t, KindNone, r.Handle(release(60, 2), now, g).Kind, "moved too far to be a tap")

	r.Handle(press(50, 2), now, g)
	ev := r.Handle(release(50, 2), now, g)
	require.Equal(t, KindTap, ev.Kind)
	assert.Equal(t, 50, ev.CellX)
	assert.Equal(t, 2, ev.CellY)
}

func TestVerticalMotionFails(t *testing.T) {
	g := testGeometry(drawer.PositionLeft, true)
	r := New()
	now := time.Unix(0, 0)

	r.Handle(press(20, 2), now, g)
	assert.Equal(t, KindNone, r.Handle(motion(20, 6), now, g).Kind)
	assert.Equal(t, KindNone, r.Handle(motion(40, 6), now, g).Kind)
	assert.Equal(t, KindNone, r.Handle(release(40, 6), now, g).Kind)
}

func TestMotionWithoutPressIgnored(t *testing.T) {
	g := testGeometry(drawer.PositionLeft, true)
	r := New()

	assert.Equal(t, KindNone, r.Handle(motion(20, 2), time.Now(), g).Kind)
	assert.Equal(t, KindNone, r.Handle(release(20, 2), time.Now(), g).Kind)
}

func TestResetEndsActiveDrag(t *testing.T) {
	g := testGeometry(drawer.PositionLeft, true)
	r := New()
	now := time.Unix(0, 0)

	r.Handle(press(20, 2), now, g)
	r.Handle(motion(10, 2), now.Add(time.Millisecond), g)
	require.True(t, r.Active())

	ev := r.Reset()
	assert.Equal(t, KindEnd, ev.Kind)
	assert.Equal(t, -80.0, ev.Sample.TranslationX)
	assert.False(t, r.Active())
	assert.Equal(t, KindNone, r.Reset().Kind)
}

func TestPressDuringDragEndsIt(t *testing.T) {
	g := testGeometry(drawer.PositionLeft, true)
	r := New()
	now := time.Unix(0, 0)

	r.Handle(press(20, 2), now, g)
	r.Handle(motion(10, 2), now.Add(time.Millisecond), g)
	require.True(t, r.Active())

	ev := r.Handle(press(50, 8), now.Add(time.Second), g)
	assert.Equal(t, KindEnd, ev.Kind)
	assert.Equal(t, drawer.PhaseEnded, ev.Sample.Phase)
	assert.Equal(t, -80.0, ev.Sample.TranslationX)
	assert.Zero(t, ev.Sample.VelocityX)
	assert.False(t, r.Active())

	// The new press is tracked from scratch.
	tapEv := r.Handle(release(50, 8), now.Add(time.Second), g)
	assert.Equal(t, KindTap, tapEv.Kind)
	assert.Equal(t, 50, tapEv.CellX)
	assert.Equal(t, 8, tapEv.CellY)
}

func TestRightButtonIgnored(t *testing.T) {
	g := testGeometry(drawer.PositionLeft, false)
	r := New()
	msg := press(0, 0)
	msg.Button = tea.MouseButtonRight

	r.Handle(msg, time.Now(), g)
	assert.Equal(t, KindNone, r.Handle(motion(10, 0), time.Now(), g).Kind)
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNone, "none"},
		{KindStart, "start"},
		{KindUpdate, "update"},
		{KindEnd, "end"},
		{KindTap, "tap"},
		{Kind(42), "none"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}
