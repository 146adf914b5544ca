package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/lazydrawer/internal/drawer"
	"github.com/chmouel/lazydrawer/internal/theme"
	"github.com/muesli/reflow/truncate"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	f := m.frame
	p := m.placement(f)

	scene := fitLines(m.sceneZones.Scan(m.renderScene(f, p.sceneW, m.theme.Dimmed(p.dim))), p.sceneW, m.height)
	panel := fitLines(m.drawerZones.Scan(m.renderDrawer(p.drawerW)), p.drawerW, m.height)

	canvas := blankLines(m.width, m.height)
	if p.drawerOnTop {
		overlayAt(canvas, scene, p.sceneX, m.width)
		overlayAt(canvas, panel, p.drawerX, m.width)
	} else {
		overlayAt(canvas, panel, p.drawerX, m.width)
		overlayAt(canvas, scene, p.sceneX, m.width)
	}
	return strings.Join(canvas, "\n")
}

func (m *Model) renderScene(f drawer.Frame, width int, th *theme.Theme) string {
	if width <= 0 || m.height <= 0 {
		return ""
	}
	base := lipgloss.NewStyle().Background(th.Background).Foreground(th.TextFg)
	row := func(s string) string {
		return base.Width(width).MaxWidth(width).Render(s)
	}

	button := m.sceneZones.Mark(menuZoneID, lipgloss.NewStyle().
		Background(th.Accent).
		Foreground(th.AccentFg).
		Bold(true).
		Render(" ☰ "))
	title := base.Bold(true).Render(" " + m.sectionTitle())

	body := base.Width(width).Height(m.viewport.Height).MaxWidth(width).Render(m.viewport.View())

	status := m.renderStatusBar(f, width, th)

	return strings.Join([]string{
		row(button + title),
		body,
		row(m.search.View()),
		row(status),
	}, "\n")
}

func (m *Model) renderStatus(f drawer.Frame, width int, th *theme.Theme) string {
	left := lipgloss.NewStyle().
		Background(th.Accent).
		Foreground(th.AccentFg).
		Render(fmt.Sprintf(" %s %s drawer: %s ", f.Config.Type, f.Config.Position, m.drawerState(f)))

	rightText, fg := m.statusMsg, th.MutedFg
	switch {
	case rightText == "":
		rightText = m.help.ShortHelpView(m.keys.ShortHelp())
	case m.statusKind == statusOK:
		fg = th.SuccessFg
	case m.statusKind == statusWarn:
		fg = th.WarnFg
	}
	right := lipgloss.NewStyle().Background(th.Background).Foreground(fg).Render(" " + rightText)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// statusVisibility is how much of the status bar shows, from 0 to 1.
// While the drawer settles with an animated status bar, it follows the
// drawer: fully shown when closed and gone when open.
func (m *Model) statusVisibility(f drawer.Frame) float64 {
	animated := f.Config.HideStatusBarOnOpen &&
		m.platform.statusAnim != drawer.StatusBarAnimationNone &&
		f.Animating && !m.ctrl.Dragging()
	switch {
	case animated:
		return min(1, max(0, 1-f.Progress))
	case m.platform.statusHidden:
		return 0
	default:
		return 1
	}
}

func (m *Model) renderStatusBar(f drawer.Frame, width int, th *theme.Theme) string {
	visible := m.statusVisibility(f)
	switch {
	case visible <= 0:
		return ""
	case visible >= 1:
		return m.renderStatus(f, width, th)
	case m.platform.statusAnim == drawer.StatusBarAnimationFade:
		return m.renderStatus(f, width, th.Faded(1-visible))
	default:
		// Slide: the bar moves out towards the right edge.
		shift := int(math.Round((1 - visible) * float64(width)))
		full := m.renderStatus(f, width, th)
		return strings.Repeat(" ", shift) + ansi.Truncate(full, max(0, width-shift), "")
	}
}

func (m *Model) drawerState(f drawer.Frame) string {
	switch {
	case m.ctrl.Dragging():
		return "dragging"
	case f.Animating:
		return "settling"
	case m.open:
		return "open"
	default:
		return "closed"
	}
}

func (m *Model) sectionTitle() string {
	if m.selected >= 0 && m.selected < len(m.config.Sections) {
		return m.config.Sections[m.selected].Title
	}
	return "lazydrawer"
}

func (m *Model) renderDrawer(width int) string {
	if width <= 0 || m.height <= 0 {
		return ""
	}
	th := m.theme
	panel := lipgloss.NewStyle().Background(th.Surface).Foreground(th.TextFg)

	lines := []string{
		panel.Bold(true).Foreground(th.Accent).Render(" Menu"),
		panel.Foreground(th.Border).Render(strings.Repeat("─", width)),
	}

	labelWidth := max(1, width-3)
	visible := m.visibleSections()
	for _, i := range visible {
		label := truncate.StringWithTail(m.config.Sections[i].Title, uint(labelWidth), "…") //nolint:gosec
		style, marker := panel, "  "
		if i == m.selected {
			style = panel.Background(th.Accent).Foreground(th.AccentFg).Bold(true)
			marker = "› "
		}
		lines = append(lines, m.drawerZones.Mark(sectionZoneID(i), style.Width(width).MaxWidth(width).Render(marker+label)))
	}
	if len(visible) == 0 {
		lines = append(lines, panel.Foreground(th.MutedFg).Render("  no match"))
	}

	return panel.
		Width(width).
		Height(m.height).
		MaxWidth(width).
		MaxHeight(m.height).
		Render(strings.Join(lines, "\n"))
}
