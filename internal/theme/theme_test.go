package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	for _, name := range AvailableThemes() {
		th := GetTheme(name)
		assert.NotNil(t, th, name)
		assert.NotEmpty(t, th.Scrim, name)
		assert.NotEmpty(t, th.Surface, name)
	}
	assert.Equal(t, Dracula(), GetTheme("unknown"))
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(DraculaLightName))
	assert.False(t, IsLight(NordName))
}

func TestNext(t *testing.T) {
	names := AvailableThemes()
	assert.Equal(t, names[1], Next(names[0]))
	assert.Equal(t, names[0], Next(names[len(names)-1]))
	assert.Equal(t, names[0], Next("missing"))
}

func TestBlend(t *testing.T) {
	black := lipgloss.Color("#000000")
	white := lipgloss.Color("#ffffff")

	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))
	assert.Equal(t, lipgloss.Color("212"), Blend("212", white, 0.5), "ANSI colours are left alone")

	mid := Blend(black, white, 0.5)
	assert.True(t, strings.HasPrefix(string(mid), "#"))
	assert.NotEqual(t, black, mid)
	assert.NotEqual(t, white, mid)
}

func TestDimmed(t *testing.T) {
	th := Nord()
	assert.Same(t, th, th.Dimmed(0))

	d := th.Dimmed(0.5)
	assert.NotEqual(t, th.TextFg, d.TextFg)
	assert.Equal(t, th.Surface, d.Surface, "drawer surface is not dimmed")
	assert.Equal(t, Nord().TextFg, th.TextFg, "original untouched")
}

func TestFaded(t *testing.T) {
	th := Dracula()
	assert.Same(t, th, th.Faded(0))

	gone := th.Faded(1)
	assert.True(t, strings.EqualFold(string(th.Background), string(gone.TextFg)))
	assert.True(t, strings.EqualFold(string(th.Background), string(gone.SuccessFg)))
	assert.Equal(t, th.Background, gone.Background)

	half := th.Faded(0.5)
	assert.NotEqual(t, th.WarnFg, half.WarnFg)
	assert.Equal(t, th.Surface, half.Surface)
}
