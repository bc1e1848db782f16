package cli

import (
	"testing"

	"github.com/tracklinehq/trackline/pkg/timeline"
)

func TestSimGeometryMeasure(t *testing.T) {
	cfg := timeline.DefaultConfig()
	geo := newSimGeometry(cfg, 5, timeline.Viewport{Width: 1280, Height: 800})

	m, ok := geo.Measure()
	if !ok {
		t.Fatal("Measure() not ok for open geometry")
	}

	if len(m.Items) != 5 || len(m.Dots) != 5 {
		t.Fatalf("items/dots = %d/%d, want 5/5", len(m.Items), len(m.Dots))
	}
	if m.TrackLength != 5*defaultItemLength {
		t.Errorf("TrackLength = %v, want %v", m.TrackLength, 5*defaultItemLength)
	}
	if m.ContainerLength != 1280 {
		t.Errorf("ContainerLength = %v, want viewport width", m.ContainerLength)
	}
	if m.StickyTop != 0 {
		t.Errorf("StickyTop = %v, want 0 before scrolling", m.StickyTop)
	}

	for i, item := range m.Items {
		wantOffset := float64(i) * defaultItemLength
		if item.Offset != wantOffset {
			t.Errorf("item %d offset = %v, want %v", i, item.Offset, wantOffset)
		}
		if m.Dots[i].Center != item.Center() {
			t.Errorf("dot %d center = %v, want item center %v", i, m.Dots[i].Center, item.Center())
		}
	}
}

func TestSimGeometryScroll(t *testing.T) {
	cfg := timeline.DefaultConfig()
	geo := newSimGeometry(cfg, 4, timeline.Viewport{Width: 1280, Height: 800})

	t.Run("scroll moves sticky top negative", func(t *testing.T) {
		geo.SetScroll(500)
		m, _ := geo.Measure()
		if m.StickyTop != -500 {
			t.Errorf("StickyTop = %v, want -500", m.StickyTop)
		}
	})

	t.Run("scroll by clamps to range", func(t *testing.T) {
		max := geo.MaxScroll()
		if got := geo.ScrollBy(max * 10); got != max {
			t.Errorf("ScrollBy past end = %v, want %v", got, max)
		}
		if got := geo.ScrollBy(-max * 10); got != 0 {
			t.Errorf("ScrollBy past start = %v, want 0", got)
		}
	})

	t.Run("max scroll follows scroll per item", func(t *testing.T) {
		want := 4 * cfg.ScrollPerItem
		if got := geo.MaxScroll(); got != want {
			t.Errorf("MaxScroll() = %v, want %v", got, want)
		}
	})
}

func TestSimGeometryResize(t *testing.T) {
	geo := newSimGeometry(timeline.DefaultConfig(), 3, timeline.Viewport{Width: 1280, Height: 800})

	geo.SetViewport(timeline.Viewport{Width: 375, Height: 700})
	m, _ := geo.Measure()
	if m.Viewport.Width != 375 {
		t.Errorf("viewport width = %v, want 375", m.Viewport.Width)
	}
	if m.ContainerLength != 375 {
		t.Errorf("ContainerLength = %v, want 375 after resize", m.ContainerLength)
	}
}

func TestSimGeometryClosed(t *testing.T) {
	geo := newSimGeometry(timeline.DefaultConfig(), 3, timeline.Viewport{Width: 1280, Height: 800})

	geo.Close()
	if _, ok := geo.Measure(); ok {
		t.Error("Measure() ok after Close, want not ok")
	}
}
