package gauge

import "math"

// Curve shapes a transition's progress. Input and output are both in [0, 1];
// a curve must map 0 to 0 and 1 to 1 but may overshoot in between.
type Curve func(t float64) float64

func Linear(t float64) float64 {
	return t
}

func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

var curvesByName = map[string]Curve{
	"linear":           Linear,
	"ease_out_quad":    EaseOutQuad,
	"ease_in_out_quad": EaseInOutQuad,
	"ease_out_cubic":   EaseOutCubic,
}

// CurveByName resolves a curve from its spec name. The empty string resolves
// to EaseOutQuad, the default transition curve.
func CurveByName(name string) (Curve, bool) {
	if name == "" {
		return EaseOutQuad, true
	}
	c, ok := curvesByName[name]
	return c, ok
}
