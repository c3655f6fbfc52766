package gauge

import "image/color"

// Binding is the mutable visual sink a gauge writes into. Implementations are
// owned by the caller (typically a HUD bar); the animator only writes through
// the interface and never manages its lifetime.
type Binding interface {
	SetValue(v float64)
	SetMaxValue(max float64)
	SetFillColor(c color.RGBA)
	SetOpacity(alpha float64)
}

// valueReader is an optional extension of Binding. When the bound visual can
// report what it currently displays, Register seeds the gauge's starting
// value from it instead of from zero.
type valueReader interface {
	DisplayedValue() float64
}

// bindingValue returns the value the binding currently displays, if it can
// tell us. Missing or nil bindings report 0.
func bindingValue(b Binding) float64 {
	if b == nil {
		return 0
	}
	if r, ok := b.(valueReader); ok {
		return r.DisplayedValue()
	}
	return 0
}
