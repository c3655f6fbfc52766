package gauge

import (
	"image/color"
	"math"

	"github.com/milk9111/hud/common"
)

// epsilon guards the band-width divisions in ColorAt when a threshold sits
// at 0 or 1.
const epsilon = 1e-4

// LerpRGBA interpolates per channel, alpha included. t is clamped to [0, 1].
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = common.Clamp01(t)
	return color.RGBA{
		R: uint8(common.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(common.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(common.Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(common.Lerp(float64(a.A), float64(b.A), t)),
	}
}

// ColorAt maps a gauge fraction onto a three-stop ramp. Below low the color
// blends from lowC up to normalC, above high it blends from normalC up to
// highC, and the band in between is solid normalC. At fraction == low and
// fraction == high the adjoining branches agree, so the ramp has no seams.
func ColorAt(fraction, low, high float64, lowC, normalC, highC color.RGBA) color.RGBA {
	fraction = common.Clamp01(fraction)
	switch {
	case fraction <= low:
		return LerpRGBA(lowC, normalC, fraction/math.Max(epsilon, low))
	case fraction >= high:
		return LerpRGBA(normalC, highC, (fraction-high)/math.Max(epsilon, 1-high))
	default:
		return normalC
	}
}
