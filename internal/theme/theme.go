// Package theme provides theme definitions and colour helpers for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme defines all colors used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color // Drawer panel background
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Foreground color for text on Accent background
	Border     lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	SuccessFg  lipgloss.Color
	WarnFg     lipgloss.Color
	Scrim      lipgloss.Color // Colour the scene fades towards behind the overlay
}

// Theme names.
const (
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	GruvboxDarkName     = "gruvbox-dark"
	NordName            = "nord"
	CatppuccinMochaName = "catppuccin-mocha"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"),
		Surface:    lipgloss.Color("#343746"),
		Accent:     lipgloss.Color("#BD93F9"), // Purple
		AccentFg:   lipgloss.Color("#282A36"),
		Border:     lipgloss.Color("#6272A4"),
		MutedFg:    lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		SuccessFg:  lipgloss.Color("#50FA7B"),
		WarnFg:     lipgloss.Color("#FFB86C"),
		Scrim:      lipgloss.Color("#000000"),
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"),
		Surface:    lipgloss.Color("#F3E8FF"),
		Accent:     lipgloss.Color("#7C3AED"),
		AccentFg:   lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#D0D7DE"),
		MutedFg:    lipgloss.Color("#6E7781"),
		TextFg:     lipgloss.Color("#24292F"),
		SuccessFg:  lipgloss.Color("#059669"),
		WarnFg:     lipgloss.Color("#D97706"),
		Scrim:      lipgloss.Color("#24292F"),
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3C3836"),
		Accent:     lipgloss.Color("#FABD2F"),
		AccentFg:   lipgloss.Color("#282828"),
		Border:     lipgloss.Color("#504945"),
		MutedFg:    lipgloss.Color("#928374"),
		TextFg:     lipgloss.Color("#EBDBB2"),
		SuccessFg:  lipgloss.Color("#B8BB26"),
		WarnFg:     lipgloss.Color("#FE8019"),
		Scrim:      lipgloss.Color("#1D2021"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Background: lipgloss.Color("#2E3440"),
		Surface:    lipgloss.Color("#3B4252"),
		Accent:     lipgloss.Color("#88C0D0"),
		AccentFg:   lipgloss.Color("#2E3440"),
		Border:     lipgloss.Color("#4C566A"),
		MutedFg:    lipgloss.Color("#81A1C1"),
		TextFg:     lipgloss.Color("#E5E9F0"),
		SuccessFg:  lipgloss.Color("#A3BE8C"),
		WarnFg:     lipgloss.Color("#EBCB8B"),
		Scrim:      lipgloss.Color("#000000"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Background: lipgloss.Color("#1E1E2E"),
		Surface:    lipgloss.Color("#313244"),
		Accent:     lipgloss.Color("#B4BEFE"), // Lavender
		AccentFg:   lipgloss.Color("#1E1E2E"),
		Border:     lipgloss.Color("#45475A"),
		MutedFg:    lipgloss.Color("#6C7086"),
		TextFg:     lipgloss.Color("#CDD6F4"),
		SuccessFg:  lipgloss.Color("#A6E3A1"),
		WarnFg:     lipgloss.Color("#F9E2AF"),
		Scrim:      lipgloss.Color("#11111B"), // Crust
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaLightName:
		return DraculaLight()
	case GruvboxDarkName:
		return GruvboxDark()
	case NordName:
		return Nord()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	default:
		return Dracula()
	}
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	return name == DraculaLightName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		DraculaLightName,
		GruvboxDarkName,
		NordName,
		CatppuccinMochaName,
	}
}

// Next returns the theme that follows name in AvailableThemes.
func Next(name string) string {
	names := AvailableThemes()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Blend mixes from towards to by t in [0, 1] in Lab space. Colours that
// do not parse as hex are returned unchanged.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t <= 0 {
		return from
	}
	a, err := colorful.Hex(string(from))
	if err != nil {
		return from
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return from
	}
	if t >= 1 {
		return lipgloss.Color(b.Hex())
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

// Dimmed returns t with its scene colours faded towards the scrim by amount.
// Used for the overlay behind an open drawer.
func (t *Theme) Dimmed(amount float64) *Theme {
	if amount <= 0 {
		return t
	}
	d := *t
	d.Background = Blend(t.Background, t.Scrim, amount)
	d.TextFg = Blend(t.TextFg, t.Scrim, amount)
	d.MutedFg = Blend(t.MutedFg, t.Scrim, amount)
	d.Border = Blend(t.Border, t.Scrim, amount)
	d.Accent = Blend(t.Accent, t.Scrim, amount)
	d.SuccessFg = Blend(t.SuccessFg, t.Scrim, amount)
	d.WarnFg = Blend(t.WarnFg, t.Scrim, amount)
	return &d
}

// Faded returns t with the colours of foreground elements faded towards
// the background by amount, so they disappear at 1.
func (t *Theme) Faded(amount float64) *Theme {
	if amount <= 0 {
		return t
	}
	d := *t
	d.Accent = Blend(t.Accent, t.Background, amount)
	d.AccentFg = Blend(t.AccentFg, t.Background, amount)
	d.TextFg = Blend(t.TextFg, t.Background, amount)
	d.MutedFg = Blend(t.MutedFg, t.Background, amount)
	d.SuccessFg = Blend(t.SuccessFg, t.Background, amount)
	d.WarnFg = Blend(t.WarnFg, t.Background, amount)
	return &d
}
