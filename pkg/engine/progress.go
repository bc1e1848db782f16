package engine

// VerticalActivation is the fraction of the viewport height at which a
// vertically oriented timeline starts filling: progress begins once the
// area's top edge rises above 30% of the viewport.
const VerticalActivation = 0.3

// HorizontalFraction maps the sticky area's scroll position to a progress
// fraction in [0,1].
//
// stickyTop is the distance from the sticky area's top edge to the viewport
// top; it goes negative once the viewer has scrolled past. scrollHeight is
// the total scrollable distance from Dimensions; contentHeight is the sticky
// content's own height.
//
// A non-positive scroll range means single-screen content; the fraction is
// defined as 0 in that case.
func HorizontalFraction(stickyTop, scrollHeight, contentHeight float64) float64 {
	scrollStart := -stickyTop
	scrollRange := scrollHeight - contentHeight
	if scrollRange <= 0 {
		return 0
	}
	return clamp01(scrollStart / scrollRange)
}

// VerticalFraction maps the timeline area's viewport position to a progress
// fraction in [0,1] for vertical orientation.
//
// areaTop is the area's top edge relative to the viewport top, areaHeight
// the area's full height. The activation threshold sits at
// VerticalActivation × viewportHeight: progress is 0 until the area top
// crosses it and 1 once the area bottom passes it.
//
// The same degenerate-range rule applies: a non-positive range yields 0.
func VerticalFraction(areaTop, areaHeight, viewportHeight float64) float64 {
	threshold := VerticalActivation * viewportHeight
	scrollStart := threshold - areaTop
	scrollRange := areaHeight - threshold
	if scrollRange <= 0 {
		return 0
	}
	return clamp01(scrollStart / scrollRange)
}

// clamp01 clamps v into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp clamps v into [lo,hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
