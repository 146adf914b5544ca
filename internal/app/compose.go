package app

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/lazydrawer/internal/drawer"
)

// overlayDim is the share of the scrim colour at full overlay opacity.
const overlayDim = 0.5

// placement is where the scene and the drawer land on screen, in cells.
type placement struct {
	drawerX     int
	drawerW     int
	sceneX      int
	sceneW      int
	drawerOnTop bool
	dim         float64
}

// drawerHit reports whether column x shows the drawer.
func (p placement) drawerHit(x, width int) bool {
	if p.drawerW <= 0 || x < 0 || x >= width {
		return false
	}
	if x < p.drawerX || x >= p.drawerX+p.drawerW {
		return false
	}
	if !p.drawerOnTop && x >= p.sceneX && x < p.sceneX+p.sceneW {
		return false
	}
	return true
}

func (m *Model) placement(f drawer.Frame) placement {
	s := m.scale()
	dw := min(m.width, toCells(f.Config.Width, s))
	p := placement{drawerW: dw, sceneW: m.width}

	if f.Config.Type == drawer.TypePermanent {
		p.sceneW = max(0, m.width-dw)
		if f.Config.Position == drawer.PositionLeft {
			p.sceneX = dw
		} else {
			p.drawerX = m.width - dw
		}
		return p
	}

	p.drawerX = toCells(drawer.OpenTarget(f.Config)+f.DrawerOffset, s)
	p.sceneX = toCells(f.SceneOffset, s)
	p.drawerOnTop = f.Config.Type == drawer.TypeFront
	if f.Overlay.Above {
		p.dim = f.Overlay.Opacity * overlayDim
	}
	return p
}

func toCells(px, scale float64) int {
	if scale <= 0 {
		scale = 1
	}
	return int(math.Round(px / scale))
}

func blankLines(width, height int) []string {
	line := strings.Repeat(" ", max(0, width))
	out := make([]string, max(0, height))
	for i := range out {
		out[i] = line
	}
	return out
}

// fitLines splits s into exactly height lines of exactly width cells.
func fitLines(s string, width, height int) []string {
	width = max(0, width)
	lines := strings.Split(s, "\n")
	out := make([]string, 0, max(0, height))
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		out = append(out, line)
	}
	return out
}

// overlayAt draws layer over base with the layer's first column at x,
// clipped to width. Cells of base outside the layer are kept.
func overlayAt(base, layer []string, x, width int) {
	for row, line := range layer {
		if row >= len(base) {
			break
		}
		lw := ansi.StringWidth(line)
		left, right := max(0, x), min(width, x+lw)
		if right <= left {
			continue
		}

		visible := line
		if left > x || right < x+lw {
			visible = ansi.Cut(line, left-x, right-x)
		}
		leftPart := ansi.Truncate(base[row], left, "")
		if w := ansi.StringWidth(leftPart); w < left {
			leftPart += strings.Repeat(" ", left-w)
		}
		rightPart := ansi.TruncateLeft(base[row], right, "")

		base[row] = leftPart + visible + rightPart
	}
}
