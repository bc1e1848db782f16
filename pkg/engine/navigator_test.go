package engine

import (
	"reflect"
	"testing"

	"github.com/tracklinehq/trackline/pkg/timeline"
)

// testNavGeometry builds a track of n items, each 200px long, in a 1000px
// container with dots spaced every 200px.
func testNavGeometry(n int) NavGeometry {
	items := make([]timeline.ItemGeometry, n)
	dots := make([]timeline.DotGeometry, n)
	for i := 0; i < n; i++ {
		items[i] = timeline.ItemGeometry{Index: i, Offset: float64(i) * 200, Length: 200}
		dots[i] = timeline.DotGeometry{Index: i, Center: float64(i)*200 + 100}
	}
	return NavGeometry{
		Items:           items,
		Dots:            dots,
		TrackLength:     float64(n) * 200,
		ContainerLength: 1000,
		ProgressLength:  float64(n) * 200,
	}
}

func TestNavigatorGoToCentersItem(t *testing.T) {
	geo := testNavGeometry(10) // track 2000, container 1000, maxTranslate 1000
	nav := NewNavigator(10)

	tests := []struct {
		name          string
		index         int
		wantIndex     int
		wantTranslate float64
	}{
		{
			name:  "first item pins to start",
			index: 0,
			// 0 - 500 + 100 = -400, clamped to 0
			wantIndex:     0,
			wantTranslate: 0,
		},
		{
			name:  "middle item centers",
			index: 4,
			// 800 - 500 + 100 = 400
			wantIndex:     4,
			wantTranslate: 400,
		},
		{
			name:  "last item pins to end",
			index: 9,
			// 1800 - 500 + 100 = 1400, clamped to maxTranslate 1000
			wantIndex:     9,
			wantTranslate: 1000,
		},
		{
			name:          "out of range clamps high",
			index:         99,
			wantIndex:     9,
			wantTranslate: 1000,
		},
		{
			name:          "out of range clamps low",
			index:         -5,
			wantIndex:     0,
			wantTranslate: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := nav.GoTo(tt.index, geo)
			if res.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", res.Index, tt.wantIndex)
			}
			if !almostEqual(res.Translate, tt.wantTranslate) {
				t.Errorf("Translate = %v, want %v", res.Translate, tt.wantTranslate)
			}
		})
	}
}

func TestNavigatorFillPercent(t *testing.T) {
	geo := testNavGeometry(5) // track 1000, container 1000, maxTranslate 0
	nav := NewNavigator(5)

	// With no translation the fill percent is the dot center over the
	// progress length.
	res := nav.GoTo(2, geo)
	if !almostEqual(res.FillPercent, 50) { // center 500 / length 1000
		t.Errorf("FillPercent = %v, want 50", res.FillPercent)
	}

	// Terminal override: last index is always 100 even though its dot
	// center (900/1000 = 90%) would compute less.
	res = nav.GoTo(4, geo)
	if res.FillPercent != 100 {
		t.Errorf("FillPercent at last index = %v, want 100", res.FillPercent)
	}
}

func TestNavigatorGoToIdempotent(t *testing.T) {
	geo := testNavGeometry(6)
	nav := NewNavigator(6)

	first := nav.GoTo(3, geo)
	second := nav.GoTo(3, geo)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("GoTo twice with same index differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestNavigatorDots(t *testing.T) {
	geo := testNavGeometry(4)
	nav := NewNavigator(4)

	res := nav.GoTo(2, geo)
	want := []bool{true, true, true, false}
	if !reflect.DeepEqual(res.Dots, want) {
		t.Errorf("Dots = %v, want %v", res.Dots, want)
	}
}

func TestNavigatorButtonStates(t *testing.T) {
	geo := testNavGeometry(3)
	nav := NewNavigator(3)

	res := nav.GoTo(0, geo)
	if !res.PrevDisabled || res.NextDisabled {
		t.Errorf("at index 0: PrevDisabled=%v NextDisabled=%v, want true/false", res.PrevDisabled, res.NextDisabled)
	}

	res = nav.GoTo(1, geo)
	if res.PrevDisabled || res.NextDisabled {
		t.Errorf("at index 1: PrevDisabled=%v NextDisabled=%v, want false/false", res.PrevDisabled, res.NextDisabled)
	}

	res = nav.GoTo(2, geo)
	if res.PrevDisabled || !res.NextDisabled {
		t.Errorf("at index 2: PrevDisabled=%v NextDisabled=%v, want false/true", res.PrevDisabled, res.NextDisabled)
	}
}

func TestNavigatorBoundaries(t *testing.T) {
	geo := testNavGeometry(4)
	nav := NewNavigator(4)

	// Prev at 0 leaves state unchanged.
	before := nav.GoTo(0, geo)
	after := nav.Prev(geo)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Prev at index 0 changed state:\nbefore = %+v\nafter  = %+v", before, after)
	}

	// Next at the last index leaves state unchanged.
	before = nav.GoTo(3, geo)
	after = nav.Next(geo)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Next at last index changed state:\nbefore = %+v\nafter  = %+v", before, after)
	}

	// Normal stepping works both ways.
	nav.GoTo(1, geo)
	if res := nav.Next(geo); res.Index != 2 {
		t.Errorf("Next from 1: Index = %d, want 2", res.Index)
	}
	if res := nav.Prev(geo); res.Index != 1 {
		t.Errorf("Prev from 2: Index = %d, want 1", res.Index)
	}
}

func TestNavigatorSingleItem(t *testing.T) {
	geo := testNavGeometry(1)
	nav := NewNavigator(1)

	res := nav.GoTo(0, geo)
	if res.FillPercent != 100 {
		t.Errorf("FillPercent = %v, want 100 (single item is also the last)", res.FillPercent)
	}
	if !res.PrevDisabled || !res.NextDisabled {
		t.Errorf("PrevDisabled=%v NextDisabled=%v, want both true", res.PrevDisabled, res.NextDisabled)
	}

	// Next and Prev are both no-ops.
	if got := nav.Next(geo); !reflect.DeepEqual(got, res) {
		t.Errorf("Next changed state: %+v", got)
	}
	if got := nav.Prev(geo); !reflect.DeepEqual(got, res) {
		t.Errorf("Prev changed state: %+v", got)
	}
}

func TestNavigatorDisabledAtZeroItems(t *testing.T) {
	nav := NewNavigator(0)
	geo := testNavGeometry(0)

	if nav.Enabled() {
		t.Error("Enabled() = true with zero items")
	}

	for name, res := range map[string]NavResult{
		"GoTo": nav.GoTo(0, geo),
		"Next": nav.Next(geo),
		"Prev": nav.Prev(geo),
	} {
		if res.Index != -1 {
			t.Errorf("%s: Index = %d, want -1", name, res.Index)
		}
		if !res.PrevDisabled || !res.NextDisabled {
			t.Errorf("%s: buttons not both disabled", name)
		}
	}
}

func TestNavigatorApplyRecomputesAtCurrent(t *testing.T) {
	nav := NewNavigator(10)
	geo := testNavGeometry(10)
	nav.GoTo(4, geo)

	// Container shrinks; Apply at the same index reflects the new geometry.
	smaller := geo
	smaller.ContainerLength = 600
	res := nav.Apply(smaller)

	if res.Index != 4 {
		t.Errorf("Index = %d, want 4", res.Index)
	}
	// 800 - 300 + 100 = 600, maxTranslate = 2000-600 = 1400
	if !almostEqual(res.Translate, 600) {
		t.Errorf("Translate = %v, want 600", res.Translate)
	}
}

func TestNavigatorMissingItemGeometry(t *testing.T) {
	// Geometry measured for fewer items than the sequence has: state still
	// advances, geometric outputs stay zero.
	nav := NewNavigator(5)
	geo := testNavGeometry(2)

	res := nav.GoTo(4, geo)
	if res.Index != 4 {
		t.Errorf("Index = %d, want 4", res.Index)
	}
	if res.Translate != 0 || res.FillPercent != 0 {
		t.Errorf("Translate=%v FillPercent=%v, want zeros without geometry", res.Translate, res.FillPercent)
	}
	if len(res.Dots) != 5 {
		t.Errorf("len(Dots) = %d, want 5 (index rule needs no geometry)", len(res.Dots))
	}
}
