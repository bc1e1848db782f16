package engine

import "github.com/tracklinehq/trackline/pkg/timeline"

// SyncDots computes the filled state of every marker dot from the current
// fill edge: a dot is filled iff the fill edge has reached its center along
// the primary axis. The comparison is left-to-right in horizontal
// orientation and top-to-bottom in vertical, but both reduce to the same
// scalar test.
//
// The result is purely derived. fillEdge may move backwards across resizes,
// so dots can transition filled→unfilled; callers must not assume
// monotonicity over time.
func SyncDots(fillEdge float64, dots []timeline.DotGeometry) []bool {
	filled := make([]bool, len(dots))
	for i, dot := range dots {
		filled[i] = fillEdge >= dot.Center
	}
	return filled
}

// SyncDotsByIndex computes dot fill for arrow navigation: dot i is filled
// iff i <= current. This is an index rule, not a geometry rule: arrow mode
// fills whole items, never partial positions.
func SyncDotsByIndex(current, count int) []bool {
	filled := make([]bool, count)
	for i := range filled {
		filled[i] = i <= current
	}
	return filled
}
