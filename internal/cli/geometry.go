package cli

import (
	"sync"

	"github.com/tracklinehq/trackline/pkg/engine"
	"github.com/tracklinehq/trackline/pkg/timeline"
)

// =============================================================================
// SimGeometry - Synthesized Layout Measurements
// =============================================================================

// simGeometry synthesizes layout measurements for an engine with no real
// layout behind it. Items are fixed-length cards laid out end to end; dots
// sit at item centers; the scroll position is a simulated page offset the
// CLI moves directly.
//
// Safe for concurrent use: the engine measures from scheduler goroutines
// while commands mutate the scroll position.
type simGeometry struct {
	mu sync.Mutex

	cfg      timeline.Config
	count    int
	viewport timeline.Viewport

	// scrollTop is the simulated page scroll offset, >= 0.
	scrollTop float64

	// contentHeight is the sticky content's own height.
	contentHeight float64

	itemLength float64
	closed     bool
}

// newSimGeometry creates a simulated layout for count items.
func newSimGeometry(cfg timeline.Config, count int, viewport timeline.Viewport) *simGeometry {
	contentHeight := viewport.Height * 0.8
	if contentHeight <= 0 {
		contentHeight = 600
	}
	return &simGeometry{
		cfg:           cfg,
		count:         count,
		viewport:      viewport,
		contentHeight: contentHeight,
		itemLength:    defaultItemLength,
	}
}

// Measure implements engine.GeometryProvider.
func (g *simGeometry) Measure() (engine.Measurement, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return engine.Measurement{}, false
	}

	trackLength := float64(g.count) * g.itemLength
	items := make([]timeline.ItemGeometry, g.count)
	dots := make([]timeline.DotGeometry, g.count)
	for i := 0; i < g.count; i++ {
		offset := float64(i) * g.itemLength
		items[i] = timeline.ItemGeometry{Index: i, Offset: offset, Length: g.itemLength}
		dots[i] = timeline.DotGeometry{Index: i, Center: offset + g.itemLength/2}
	}

	return engine.Measurement{
		Viewport:        g.viewport,
		ContentHeight:   g.contentHeight,
		StickyTop:       -g.scrollTop,
		AreaTop:         g.viewport.Height - g.scrollTop,
		AreaHeight:      float64(g.count) * g.itemLength / 2,
		TrackLength:     trackLength,
		ContainerLength: g.viewport.Width,
		ProgressLength:  trackLength,
		Items:           items,
		Dots:            dots,
	}, true
}

// ScrollBy moves the simulated scroll position by delta, clamped to the
// scrollable range, and returns the new offset.
func (g *simGeometry) ScrollBy(delta float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.scrollTop += delta
	max := g.maxScrollLocked()
	if g.scrollTop < 0 {
		g.scrollTop = 0
	}
	if g.scrollTop > max {
		g.scrollTop = max
	}
	return g.scrollTop
}

// SetScroll sets the absolute scroll position without clamping. Replay uses
// raw recorded offsets.
func (g *simGeometry) SetScroll(offset float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scrollTop = offset
}

// Scroll returns the current simulated scroll position.
func (g *simGeometry) Scroll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scrollTop
}

// SetViewport updates the simulated viewport dimensions.
func (g *simGeometry) SetViewport(v timeline.Viewport) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.viewport = v
	contentHeight := v.Height * 0.8
	if contentHeight > 0 {
		g.contentHeight = contentHeight
	}
}

// Viewport returns the current simulated viewport.
func (g *simGeometry) Viewport() timeline.Viewport {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewport
}

// MaxScroll returns the scrollable range of the simulated page.
func (g *simGeometry) MaxScroll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.maxScrollLocked()
}

func (g *simGeometry) maxScrollLocked() float64 {
	return float64(g.count) * g.cfg.ScrollPerItem
}

// Close makes subsequent Measure calls report a missing layout.
func (g *simGeometry) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}
