package engine

import "testing"

func TestTransform(t *testing.T) {
	tests := []struct {
		name            string
		fraction        float64
		trackLength     float64
		containerLength float64
		wantTranslate   float64
		wantMax         float64
		wantFill        float64
	}{
		{
			name:            "at rest",
			fraction:        0,
			trackLength:     3000,
			containerLength: 1200,
			wantTranslate:   0,
			wantMax:         1800,
			wantFill:        0,
		},
		{
			name:            "halfway",
			fraction:        0.5,
			trackLength:     3000,
			containerLength: 1200,
			wantTranslate:   900,
			wantMax:         1800,
			wantFill:        50,
		},
		{
			name:            "complete",
			fraction:        1,
			trackLength:     3000,
			containerLength: 1200,
			wantTranslate:   1800,
			wantMax:         1800,
			wantFill:        100,
		},
		{
			name:            "track fits container",
			fraction:        0.7,
			trackLength:     800,
			containerLength: 1200,
			wantTranslate:   0,
			wantMax:         0,
			wantFill:        70,
		},
		{
			name:            "fraction above 1 clamps",
			fraction:        1.8,
			trackLength:     3000,
			containerLength: 1200,
			wantTranslate:   1800,
			wantMax:         1800,
			wantFill:        100,
		},
		{
			name:            "negative fraction clamps",
			fraction:        -0.4,
			trackLength:     3000,
			containerLength: 1200,
			wantTranslate:   0,
			wantMax:         1800,
			wantFill:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.fraction, tt.trackLength, tt.containerLength)

			if !almostEqual(got.Translate, tt.wantTranslate) {
				t.Errorf("Translate = %v, want %v", got.Translate, tt.wantTranslate)
			}
			if !almostEqual(got.MaxTranslate, tt.wantMax) {
				t.Errorf("MaxTranslate = %v, want %v", got.MaxTranslate, tt.wantMax)
			}
			if !almostEqual(got.FillPercent, tt.wantFill) {
				t.Errorf("FillPercent = %v, want %v", got.FillPercent, tt.wantFill)
			}
		})
	}
}

func TestTransformBounds(t *testing.T) {
	// Whatever the inputs, translation stays in [0, MaxTranslate] and fill
	// in [0, 100].
	fractions := []float64{-10, -1, -0.01, 0, 0.25, 0.999, 1, 1.01, 5}
	geometries := [][2]float64{{3000, 1200}, {1200, 3000}, {0, 0}, {500, 500}}

	for _, f := range fractions {
		for _, g := range geometries {
			got := Transform(f, g[0], g[1])
			if got.Translate < 0 || got.Translate > got.MaxTranslate {
				t.Errorf("Transform(%v, %v, %v).Translate = %v outside [0, %v]", f, g[0], g[1], got.Translate, got.MaxTranslate)
			}
			if got.FillPercent < 0 || got.FillPercent > 100 {
				t.Errorf("Transform(%v, %v, %v).FillPercent = %v outside [0, 100]", f, g[0], g[1], got.FillPercent)
			}
		}
	}
}

func TestVerticalFill(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     float64
	}{
		{name: "zero", fraction: 0, want: 0},
		{name: "partial", fraction: 0.42, want: 42},
		{name: "full", fraction: 1, want: 100},
		{name: "clamped high", fraction: 2, want: 100},
		{name: "clamped low", fraction: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerticalFill(tt.fraction); !almostEqual(got, tt.want) {
				t.Errorf("VerticalFill(%v) = %v, want %v", tt.fraction, got, tt.want)
			}
		})
	}
}
