package gauge

import (
	"image/color"
	"testing"
)

var (
	testLow    = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	testNormal = color.RGBA{R: 40, G: 200, B: 40, A: 255}
	testHigh   = color.RGBA{R: 40, G: 40, B: 200, A: 255}
)

func TestColorAtStops(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     color.RGBA
	}{
		{"empty is low color", 0, testLow},
		{"low threshold is normal color", 0.25, testNormal},
		{"mid band is normal color", 0.5, testNormal},
		{"high threshold is normal color", 0.75, testNormal},
		{"full is high color", 1, testHigh},
		{"half way up the low band", 0.125, color.RGBA{R: 120, G: 120, B: 40, A: 255}},
		{"half way up the high band", 0.875, color.RGBA{R: 40, G: 120, B: 120, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorAt(tt.fraction, 0.25, 0.75, testLow, testNormal, testHigh)
			if got != tt.want {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.fraction, got, tt.want)
			}
		})
	}
}

func TestColorAtContinuousAtThresholds(t *testing.T) {
	thresholds := []struct {
		low  float64
		high float64
	}{
		{0.1, 0.9},
		{0.25, 0.75},
		{0.4, 0.6},
		{0.5, 0.95},
	}

	const delta = 1e-9
	for _, th := range thresholds {
		for _, at := range []float64{th.low, th.high} {
			before := ColorAt(at-delta, th.low, th.high, testLow, testNormal, testHigh)
			exact := ColorAt(at, th.low, th.high, testLow, testNormal, testHigh)
			after := ColorAt(at+delta, th.low, th.high, testLow, testNormal, testHigh)
			if !nearRGBA(before, exact) || !nearRGBA(exact, after) {
				t.Errorf("thresholds (%v, %v): seam at %v: %v / %v / %v",
					th.low, th.high, at, before, exact, after)
			}
			if exact != testNormal {
				t.Errorf("thresholds (%v, %v): ColorAt(%v) = %v, want %v",
					th.low, th.high, at, exact, testNormal)
			}
		}
	}
}

// nearRGBA tolerates the off-by-one a float channel truncates to.
func nearRGBA(a, b color.RGBA) bool {
	near := func(x, y uint8) bool {
		if x > y {
			x, y = y, x
		}
		return y-x <= 1
	}
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

func TestColorAtClampsFraction(t *testing.T) {
	over := ColorAt(1.5, 0.25, 0.75, testLow, testNormal, testHigh)
	if want := ColorAt(1, 0.25, 0.75, testLow, testNormal, testHigh); over != want {
		t.Errorf("ColorAt(1.5) = %v, want %v", over, want)
	}
	under := ColorAt(-0.5, 0.25, 0.75, testLow, testNormal, testHigh)
	if want := ColorAt(0, 0.25, 0.75, testLow, testNormal, testHigh); under != want {
		t.Errorf("ColorAt(-0.5) = %v, want %v", under, want)
	}
}

func TestColorAtDegenerateThresholds(t *testing.T) {
	// A threshold at 0 or 1 shrinks its band to a single point; the epsilon
	// guard keeps the division finite and the point keeps its end color.
	if got := ColorAt(0, 0, 0.75, testLow, testNormal, testHigh); got != testLow {
		t.Errorf("ColorAt(0) with low threshold 0 = %v, want %v", got, testLow)
	}
	if got := ColorAt(0.001, 0, 0.75, testLow, testNormal, testHigh); got != testNormal {
		t.Errorf("ColorAt(0.001) with low threshold 0 = %v, want %v", got, testNormal)
	}
	if got := ColorAt(0.999, 0.25, 1, testLow, testNormal, testHigh); got != testNormal {
		t.Errorf("ColorAt(0.999) with high threshold 1 = %v, want %v", got, testNormal)
	}
}

func TestLerpRGBA(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"start", 0, testLow},
		{"end", 1, testNormal},
		{"middle", 0.5, color.RGBA{R: 120, G: 120, B: 40, A: 255}},
		{"clamped below", -2, testLow},
		{"clamped above", 3, testNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpRGBA(testLow, testNormal, tt.t); got != tt.want {
				t.Errorf("LerpRGBA(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}
