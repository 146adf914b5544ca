package app

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/chmouel/lazydrawer/internal/config"
	"github.com/chmouel/lazydrawer/internal/drawer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// integrationConfig keeps the status bar visible: a right drawer only
// covers the right side of the screen.
func integrationConfig() *config.AppConfig {
	cfg := config.DefaultConfig()
	cfg.Position = drawer.PositionRight
	cfg.Width = drawer.Percent(30)
	cfg.SwipeEnabled = true
	return cfg
}

func waitForOutput(t *testing.T, tm *teatest.TestModel, text string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte(text))
	}, teatest.WithDuration(5*time.Second), teatest.WithCheckInterval(20*time.Millisecond))
}

func finalModel(t *testing.T, tm *teatest.TestModel) *Model {
	t.Helper()
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
	fm, ok := tm.FinalModel(t).(*Model)
	require.True(t, ok, "final model is not *Model")
	return fm
}

func TestIntegrationToggleSettles(t *testing.T) {
	tm := teatest.NewTestModel(t, NewModel(integrationConfig()), teatest.WithInitialTermSize(100, 30))

	waitForOutput(t, tm, "drawer: closed")
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	waitForOutput(t, tm, "drawer: open")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m := finalModel(t, tm)

	assert.True(t, m.quitting)
	assert.True(t, m.open)
	assert.False(t, m.ctrl.Animating())
}

func TestIntegrationDragFromEdge(t *testing.T) {
	tm := teatest.NewTestModel(t, NewModel(integrationConfig()), teatest.WithInitialTermSize(100, 30))
	waitForOutput(t, tm, "drawer: closed")

	tm.Send(tea.MouseMsg{X: 99, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for _, x := range []int{96, 90, 80, 70} {
		time.Sleep(10 * time.Millisecond)
		tm.Send(tea.MouseMsg{X: x, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	}
	tm.Send(tea.MouseMsg{X: 70, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	waitForOutput(t, tm, "drawer: open")

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	waitForOutput(t, tm, "drawer: closed")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	m := finalModel(t, tm)
	assert.False(t, m.open)
}

func TestIntegrationCycleTypeToPermanent(t *testing.T) {
	tm := teatest.NewTestModel(t, NewModel(integrationConfig()), teatest.WithInitialTermSize(100, 30))
	waitForOutput(t, tm, "drawer: closed")

	for range 3 {
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	}
	waitForOutput(t, tm, "permanent right drawer: open")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m := finalModel(t, tm)
	assert.Equal(t, drawer.TypePermanent, m.ctrl.Config().Type)
	assert.True(t, m.open)
}
