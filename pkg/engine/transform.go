package engine

// TrackTransform is the pixel-level result of applying a progress fraction
// to the track geometry. Translate applies identically to the item track and
// the label track; the two are locked together by construction.
type TrackTransform struct {
	// Translate is the leftward translation of both tracks in pixels.
	// Always in [0, MaxTranslate].
	Translate float64

	// MaxTranslate is the largest useful translation: the overhang of the
	// track beyond its visible container, never negative.
	MaxTranslate float64

	// FillPercent is the progress indicator's fill as a percentage of its
	// own length. Always in [0,100].
	FillPercent float64
}

// Transform converts a progress fraction into the horizontal track
// translation and indicator fill. trackLength is the full track size along
// the primary axis, containerLength the visible window onto it.
func Transform(fraction, trackLength, containerLength float64) TrackTransform {
	fraction = clamp01(fraction)
	maxTranslate := trackLength - containerLength
	if maxTranslate < 0 {
		maxTranslate = 0
	}
	return TrackTransform{
		Translate:    fraction * maxTranslate,
		MaxTranslate: maxTranslate,
		FillPercent:  fraction * 100,
	}
}

// VerticalFill converts a progress fraction into the indicator fill height
// for vertical orientation. Vertical mode never translates the track; the
// fill is the only moving part.
func VerticalFill(fraction float64) float64 {
	return clamp01(fraction) * 100
}
