package engine

import "github.com/tracklinehq/trackline/pkg/timeline"

// DimensionResult is the output of the dimension calculator: the active mode
// plus the scroll-spacer height the layout owner should apply.
type DimensionResult struct {
	Mode timeline.Mode

	// ScrollHeight is the total scrollable distance in horizontal scroll
	// mode. Meaningless when SpacerAuto is true.
	ScrollHeight float64

	// SpacerAuto is true when the layout needs no scroll spacer: arrow
	// navigation has intrinsic height, and vertical orientation scrolls by
	// its own content height.
	SpacerAuto bool
}

// Dimensions derives the active mode and scroll height from configuration
// and the current viewport. The rules are evaluated in order, first match
// wins:
//
//  1. Arrow navigation: orientation stays horizontal, no spacer.
//  2. Viewport at or below the mobile breakpoint with a vertical mobile
//     layout: vertical orientation, no spacer.
//  3. Otherwise: horizontal scroll mode with
//     scrollHeight = contentHeight + itemCount × scrollPerItem.
//
// Dimensions is pure; callers apply the resulting spacer height themselves.
func Dimensions(cfg timeline.Config, viewport timeline.Viewport, contentHeight float64, itemCount int) DimensionResult {
	if cfg.NavigationType == timeline.NavArrows {
		return DimensionResult{
			Mode: timeline.Mode{
				Orientation:    timeline.OrientationHorizontal,
				NavigationType: timeline.NavArrows,
			},
			SpacerAuto: true,
		}
	}

	if viewport.Width <= cfg.MobileBreakpoint && cfg.MobileLayout == timeline.OrientationVertical {
		return DimensionResult{
			Mode: timeline.Mode{
				Orientation:    timeline.OrientationVertical,
				NavigationType: timeline.NavScroll,
			},
			SpacerAuto: true,
		}
	}

	return DimensionResult{
		Mode: timeline.Mode{
			Orientation:    timeline.OrientationHorizontal,
			NavigationType: timeline.NavScroll,
		},
		ScrollHeight: contentHeight + float64(itemCount)*cfg.ScrollPerItem,
	}
}
