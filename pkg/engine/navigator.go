package engine

import "github.com/tracklinehq/trackline/pkg/timeline"

// NavGeometry is the slice of a measurement the navigator needs: item and
// dot positions plus the track, container, and progress-indicator lengths.
type NavGeometry struct {
	Items           []timeline.ItemGeometry
	Dots            []timeline.DotGeometry
	TrackLength     float64
	ContainerLength float64
	ProgressLength  float64
}

// NavResult is the derived output of one navigation command: the values the
// layout owner applies. The same translation goes to the item and label
// tracks.
type NavResult struct {
	Index        int
	Translate    float64
	FillPercent  float64
	Dots         []bool
	PrevDisabled bool
	NextDisabled bool
}

// Navigator is the discrete state machine behind arrow navigation. Its only
// state is the current index; everything else is recomputed from geometry on
// each command, so commands are idempotent.
//
// An item count of zero disables navigation: every command is a no-op that
// reports both buttons disabled. The machine has no terminal state; it
// simply stops receiving commands when the engine is destroyed.
type Navigator struct {
	current int
	count   int
}

// NewNavigator creates a navigator over count items, positioned at index 0.
// The initial centering computation is meaningful only after the first
// layout measurement, so callers apply GoTo(0, geo) once geometry exists.
func NewNavigator(count int) *Navigator {
	return &Navigator{count: count}
}

// Enabled reports whether navigation is possible at all.
func (n *Navigator) Enabled() bool { return n.count > 0 }

// Current returns the current index.
func (n *Navigator) Current() int { return n.current }

// GoTo clamps i into range, makes it current, and computes the target
// translation that centers the item in the visible container, the indicator
// fill, per-dot fill, and button states.
//
// The fill percent is the target dot's center after translation, as a
// percentage of the progress-track length, except at the last index, which
// always reports 100% regardless of the geometric result.
func (n *Navigator) GoTo(i int, geo NavGeometry) NavResult {
	if !n.Enabled() {
		return disabledResult()
	}

	if i < 0 {
		i = 0
	}
	if i > n.count-1 {
		i = n.count - 1
	}
	n.current = i

	res := NavResult{
		Index:        i,
		Dots:         SyncDotsByIndex(i, n.count),
		PrevDisabled: i == 0,
		NextDisabled: i == n.count-1,
	}

	if i >= len(geo.Items) {
		// Geometry not yet measured for this item; keep state, report the
		// index-derived values only.
		return res
	}

	item := geo.Items[i]
	maxTranslate := geo.TrackLength - geo.ContainerLength
	if maxTranslate < 0 {
		maxTranslate = 0
	}
	res.Translate = clamp(item.Offset-geo.ContainerLength/2+item.Length/2, 0, maxTranslate)

	switch {
	case i == n.count-1:
		// Terminal override: the last item always reads as complete.
		res.FillPercent = 100
	case i < len(geo.Dots) && geo.ProgressLength > 0:
		res.FillPercent = clamp((geo.Dots[i].Center-res.Translate)/geo.ProgressLength*100, 0, 100)
	}

	return res
}

// Next advances to the following item. At the last index it is a no-op and
// returns the current state unchanged.
func (n *Navigator) Next(geo NavGeometry) NavResult {
	if !n.Enabled() {
		return disabledResult()
	}
	if n.current >= n.count-1 {
		return n.GoTo(n.current, geo)
	}
	return n.GoTo(n.current+1, geo)
}

// Prev moves to the preceding item. At index 0 it is a no-op and returns the
// current state unchanged.
func (n *Navigator) Prev(geo NavGeometry) NavResult {
	if !n.Enabled() {
		return disabledResult()
	}
	if n.current <= 0 {
		return n.GoTo(n.current, geo)
	}
	return n.GoTo(n.current-1, geo)
}

// Apply recomputes the result for the current index against fresh geometry.
// Used after resize and content-size changes.
func (n *Navigator) Apply(geo NavGeometry) NavResult {
	if !n.Enabled() {
		return disabledResult()
	}
	return n.GoTo(n.current, geo)
}

func disabledResult() NavResult {
	return NavResult{Index: -1, PrevDisabled: true, NextDisabled: true}
}
