package drawer

// OverlayEpsilon guards the resting overlay against float noise: at or
// below it the overlay is stacked behind the content.
const OverlayEpsilon = 0.05

// OverlayState is the visual state of the dimming layer.
type OverlayState struct {
	Opacity float64
	Above   bool
	ZIndex  int
}

// Overlay derives the dimming layer from progress. Opacity is not clamped.
func Overlay(progress float64) OverlayState {
	if progress > OverlayEpsilon {
		return OverlayState{Opacity: progress, Above: true, ZIndex: 1}
	}
	return OverlayState{Opacity: progress, ZIndex: -1}
}

// CapturesInput reports whether the overlay sits above the content and
// therefore receives taps.
func (o OverlayState) CapturesInput() bool {
	return o.Above
}
