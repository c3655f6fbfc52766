package prefabs

import (
	"fmt"
	"image/color"
	"time"

	"github.com/milk9111/hud/gauge"
)

// Fallback ramp for gauges whose spec omits colors.
var (
	defaultLowColor    = color.RGBA{R: 0xc8, G: 0x32, B: 0x32, A: 0xff}
	defaultNormalColor = color.RGBA{R: 0x32, G: 0xc8, B: 0x32, A: 0xff}
	defaultHighColor   = color.RGBA{R: 0x32, G: 0x64, B: 0xc8, A: 0xff}
)

// BuildAnimator constructs the animator described by the spec's transition
// block. Zero duration and an empty curve name keep the animator defaults.
func BuildAnimator(spec *HUDSpec) (*gauge.Animator, error) {
	if spec == nil {
		return nil, fmt.Errorf("prefabs: build animator: nil hud spec")
	}
	curve, ok := gauge.CurveByName(spec.Transition.Curve)
	if !ok {
		return nil, fmt.Errorf("prefabs: build animator: unknown curve %q", spec.Transition.Curve)
	}
	return gauge.NewAnimator(time.Duration(spec.Transition.DurationMS)*time.Millisecond, curve), nil
}

// GaugeConfig resolves one gauge spec into an animator config, compiling its
// critical script when it names one.
func GaugeConfig(gs GaugeSpec) (gauge.Config, error) {
	cfg := gauge.Config{
		Normal:        gs.NormalColor.AsRGBA(defaultNormalColor),
		Low:           gs.LowColor.AsRGBA(defaultLowColor),
		High:          gs.HighColor.AsRGBA(defaultHighColor),
		LowThreshold:  gs.LowThreshold,
		HighThreshold: gs.HighThreshold,
		StaticColor:   gs.StaticColor,
	}

	if gs.CriticalScript != "" {
		p, err := CompileCriticalScript(gs.CriticalScript)
		if err != nil {
			return cfg, fmt.Errorf("prefabs: gauge %s: %w", gs.Key, err)
		}
		cfg.Critical = p
		return cfg, nil
	}

	p, ok := gauge.PredicateByName(gs.Critical)
	if !ok {
		return cfg, fmt.Errorf("prefabs: gauge %s: unknown critical predicate %q", gs.Key, gs.Critical)
	}
	cfg.Critical = p
	return cfg, nil
}

// RegisterGauges registers every gauge in the spec on the animator and eases
// each toward its starting value. bind supplies the visual for a gauge and
// may be nil (or return nil) to register detached gauges, which tests and
// headless tools rely on.
func RegisterGauges(a *gauge.Animator, spec *HUDSpec, bind func(GaugeSpec) gauge.Binding) error {
	if a == nil || spec == nil {
		return fmt.Errorf("prefabs: register gauges: nil animator or spec")
	}
	for _, gs := range spec.Gauges {
		if gs.Key == "" {
			return fmt.Errorf("prefabs: register gauges: gauge with empty key")
		}
		cfg, err := GaugeConfig(gs)
		if err != nil {
			return err
		}
		var b gauge.Binding
		if bind != nil {
			b = bind(gs)
		}
		a.Register(gs.Key, b, cfg)
		a.SetTarget(gs.Key, gs.Value, gs.Max)
	}
	return nil
}
