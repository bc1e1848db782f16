package engine

import (
	"testing"

	"github.com/tracklinehq/trackline/pkg/timeline"
)

func TestDimensions(t *testing.T) {
	base := timeline.DefaultConfig()

	tests := []struct {
		name          string
		mutate        func(*timeline.Config)
		viewport      timeline.Viewport
		contentHeight float64
		itemCount     int
		wantMode      timeline.Mode
		wantHeight    float64
		wantAuto      bool
	}{
		{
			name:          "horizontal scroll desktop",
			mutate:        func(c *timeline.Config) {},
			viewport:      timeline.Viewport{Width: 1440, Height: 900},
			contentHeight: 800,
			itemCount:     5,
			wantMode:      timeline.Mode{Orientation: timeline.OrientationHorizontal, NavigationType: timeline.NavScroll},
			wantHeight:    800 + 5*300, // 2300
		},
		{
			name:          "arrows skip scroll height",
			mutate:        func(c *timeline.Config) { c.NavigationType = timeline.NavArrows },
			viewport:      timeline.Viewport{Width: 1440, Height: 900},
			contentHeight: 800,
			itemCount:     5,
			wantMode:      timeline.Mode{Orientation: timeline.OrientationHorizontal, NavigationType: timeline.NavArrows},
			wantAuto:      true,
		},
		{
			name: "arrows win over mobile vertical",
			mutate: func(c *timeline.Config) {
				c.NavigationType = timeline.NavArrows
				c.MobileLayout = timeline.OrientationVertical
			},
			viewport:  timeline.Viewport{Width: 400, Height: 800},
			itemCount: 5,
			wantMode:  timeline.Mode{Orientation: timeline.OrientationHorizontal, NavigationType: timeline.NavArrows},
			wantAuto:  true,
		},
		{
			name:      "mobile vertical below breakpoint",
			mutate:    func(c *timeline.Config) { c.MobileLayout = timeline.OrientationVertical },
			viewport:  timeline.Viewport{Width: 400, Height: 800},
			itemCount: 5,
			wantMode:  timeline.Mode{Orientation: timeline.OrientationVertical, NavigationType: timeline.NavScroll},
			wantAuto:  true,
		},
		{
			name:          "mobile width but horizontal layout stays horizontal",
			mutate:        func(c *timeline.Config) {},
			viewport:      timeline.Viewport{Width: 400, Height: 800},
			contentHeight: 600,
			itemCount:     3,
			wantMode:      timeline.Mode{Orientation: timeline.OrientationHorizontal, NavigationType: timeline.NavScroll},
			wantHeight:    600 + 3*300,
		},
		{
			name:          "breakpoint is inclusive",
			mutate:        func(c *timeline.Config) { c.MobileLayout = timeline.OrientationVertical },
			viewport:      timeline.Viewport{Width: 767, Height: 800},
			contentHeight: 600,
			itemCount:     3,
			wantMode:      timeline.Mode{Orientation: timeline.OrientationVertical, NavigationType: timeline.NavScroll},
			wantAuto:      true,
		},
		{
			name:          "just above breakpoint is desktop",
			mutate:        func(c *timeline.Config) { c.MobileLayout = timeline.OrientationVertical },
			viewport:      timeline.Viewport{Width: 768, Height: 800},
			contentHeight: 600,
			itemCount:     3,
			wantMode:      timeline.Mode{Orientation: timeline.OrientationHorizontal, NavigationType: timeline.NavScroll},
			wantHeight:    600 + 3*300,
		},
		{
			name:          "zero items",
			mutate:        func(c *timeline.Config) {},
			viewport:      timeline.Viewport{Width: 1440, Height: 900},
			contentHeight: 800,
			itemCount:     0,
			wantMode:      timeline.Mode{Orientation: timeline.OrientationHorizontal, NavigationType: timeline.NavScroll},
			wantHeight:    800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			got := Dimensions(cfg, tt.viewport, tt.contentHeight, tt.itemCount)

			if got.Mode != tt.wantMode {
				t.Errorf("Mode = %+v, want %+v", got.Mode, tt.wantMode)
			}
			if got.SpacerAuto != tt.wantAuto {
				t.Errorf("SpacerAuto = %v, want %v", got.SpacerAuto, tt.wantAuto)
			}
			if !tt.wantAuto && got.ScrollHeight != tt.wantHeight {
				t.Errorf("ScrollHeight = %v, want %v", got.ScrollHeight, tt.wantHeight)
			}
		})
	}
}

func TestDimensionsScrollHeightFormula(t *testing.T) {
	// 5 items at 300 scroll each on 800px of content: 800 + 5×300 = 2300.
	cfg := timeline.DefaultConfig()
	got := Dimensions(cfg, timeline.Viewport{Width: 1200, Height: 900}, 800, 5)
	if got.ScrollHeight != 2300 {
		t.Errorf("ScrollHeight = %v, want 2300", got.ScrollHeight)
	}
}

func TestDimensionsCustomScrollPerItem(t *testing.T) {
	cfg := timeline.DefaultConfig()
	cfg.ScrollPerItem = 150
	got := Dimensions(cfg, timeline.Viewport{Width: 1200, Height: 900}, 500, 4)
	if got.ScrollHeight != 500+4*150 {
		t.Errorf("ScrollHeight = %v, want %v", got.ScrollHeight, 500+4*150.0)
	}
}
