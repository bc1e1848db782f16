package timeline

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Navigation types.
const (
	NavScroll = "scroll"
	NavArrows = "arrows"
)

// Layout orientations.
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

// =============================================================================
// Mode - Active Mode Axes
// =============================================================================

// Mode captures the two mode axes every downstream stage dispatches on:
// how the viewer navigates (continuous scroll vs. discrete arrows) and how
// the track is laid out (horizontal vs. vertical).
//
// Mode is derived, never configured directly: Config plus the current
// viewport width determine it (see engine.Dimensions). Orientation is only
// ever vertical in scroll navigation below the mobile breakpoint.
type Mode struct {
	Orientation    string `json:"orientation"`
	NavigationType string `json:"navigation_type"`
}

// IsArrows reports whether navigation is command-driven.
func (m Mode) IsArrows() bool { return m.NavigationType == NavArrows }

// IsVertical reports whether the track is laid out vertically.
func (m Mode) IsVertical() bool { return m.Orientation == OrientationVertical }

// =============================================================================
// Measured Geometry
// =============================================================================

// Viewport is the current visible window size in pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ItemGeometry is the position and size of one timeline item along the
// track's primary axis. Index is the item's position in the sequence.
type ItemGeometry struct {
	Index  int     `json:"index"`
	Offset float64 `json:"offset"`
	Length float64 `json:"length"`
}

// Center returns the midpoint of the item along the primary axis.
func (g ItemGeometry) Center() float64 { return g.Offset + g.Length/2 }

// DotGeometry is the midpoint of a marker dot along the primary axis.
// Dots align 1:1 with items by index.
type DotGeometry struct {
	Index  int     `json:"index"`
	Center float64 `json:"center"`
}

// =============================================================================
// Content
// =============================================================================

// Item is one entry in the timeline sequence. The engine only cares about
// ordering and count; the remaining fields pass through to the layout owner.
type Item struct {
	Title       string `json:"title" toml:"title" yaml:"title"`
	Description string `json:"description,omitempty" toml:"description" yaml:"description"`
	Media       string `json:"media,omitempty" toml:"media" yaml:"media"`
	Link        string `json:"link,omitempty" toml:"link" yaml:"link"`
}

// =============================================================================
// Frame - Pipeline Output
// =============================================================================

// Frame is the derived output of one pipeline pass. The engine never touches
// layout structure itself; it reports these values for the layout owner to
// apply.
//
// SpacerAuto is true when the layout needs no extra scroll spacer (arrow
// navigation and vertical orientation); SpacerHeight is only meaningful when
// SpacerAuto is false.
type Frame struct {
	Mode         Mode    `json:"mode"`
	Fraction     float64 `json:"fraction"`
	SpacerHeight float64 `json:"spacer_height"`
	SpacerAuto   bool    `json:"spacer_auto"`

	// Translate applies identically to the item track and the label track.
	// The two tracks are locked together; a frame never carries separate
	// values for them.
	Translate   float64 `json:"translate"`
	FillPercent float64 `json:"fill_percent"`

	Dots []bool `json:"dots"`

	// Arrow-mode button states. Both false in scroll mode.
	PrevDisabled bool `json:"prev_disabled"`
	NextDisabled bool `json:"next_disabled"`

	// CurrentIndex is the navigator position in arrow mode, -1 otherwise.
	CurrentIndex int `json:"current_index"`
}

// FilledCount returns the number of filled dots.
func (f Frame) FilledCount() int {
	n := 0
	for _, filled := range f.Dots {
		if filled {
			n++
		}
	}
	return n
}
