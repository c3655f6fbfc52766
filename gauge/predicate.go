package gauge

// Predicate reports whether a gauge showing the given fraction should pulse.
// low and high are the gauge's configured thresholds. A nil Predicate never
// pulses.
type Predicate func(fraction, low, high float64) bool

// BelowLowThreshold pulses a gauge whose fraction has dropped into the low
// band. The usual choice for health-style gauges.
func BelowLowThreshold(fraction, low, high float64) bool {
	return fraction <= low
}

// AboveHighThreshold pulses a gauge whose fraction has climbed into the high
// band, for heat or rage style gauges that alarm when full.
func AboveHighThreshold(fraction, low, high float64) bool {
	return fraction >= high
}

var predicatesByName = map[string]Predicate{
	"low":  BelowLowThreshold,
	"high": AboveHighThreshold,
	"none": nil,
}

// PredicateByName resolves a pulse predicate from its spec name. The empty
// string and "none" both resolve to nil.
func PredicateByName(name string) (Predicate, bool) {
	if name == "" {
		return nil, true
	}
	p, ok := predicatesByName[name]
	return p, ok
}
