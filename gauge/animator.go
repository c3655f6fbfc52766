// Package gauge animates bounded stat indicators. An Animator owns a set of
// keyed gauges, eases each displayed value toward its target over a fixed
// transition window, maps value fractions onto a three-stop color ramp and
// pulses the opacity of gauges sitting in a critical band. Everything moves
// from a single Advance call per frame; the package does no locking and no
// drawing of its own.
package gauge

import (
	"image/color"
	"sort"
	"time"

	"github.com/milk9111/hud/common"
)

const (
	DefaultTransition    = 600 * time.Millisecond
	DefaultMax           = 100.0
	DefaultLowThreshold  = 0.25
	DefaultHighThreshold = 0.75
)

// Config describes one gauge's look and alarm behavior at registration time.
// The zero value is usable: thresholds normalize to the defaults and a nil
// Critical never pulses.
type Config struct {
	Normal color.RGBA
	Low    color.RGBA
	High   color.RGBA

	// LowThreshold and HighThreshold split [0, 1] into the low, normal and
	// high color bands. Out-of-range or inverted pairs fall back to
	// DefaultLowThreshold and DefaultHighThreshold.
	LowThreshold  float64
	HighThreshold float64

	// StaticColor leaves the binding's fill color alone; transitions write
	// value and max only.
	StaticColor bool

	// Critical marks the band in which the gauge pulses.
	Critical Predicate
}

func (c Config) normalized() Config {
	c.LowThreshold = common.Clamp01(c.LowThreshold)
	c.HighThreshold = common.Clamp01(c.HighThreshold)
	if c.LowThreshold >= c.HighThreshold {
		c.LowThreshold = DefaultLowThreshold
		c.HighThreshold = DefaultHighThreshold
	}
	return c
}

// transition eases one gauge from the value it showed when the task started
// toward its target. A cancelled task never touches the gauge again; the
// replacement picks up from whatever value is already on screen.
type transition struct {
	start     float64
	target    float64
	duration  float64 // seconds
	elapsed   float64
	cancelled bool
}

func (t *transition) cancel() {
	t.cancelled = true
}

// step advances the task by dt seconds and reports the eased value plus
// whether the task finished this tick. The final tick reports the target
// exactly, never a lerp of it.
func (t *transition) step(dt float64, curve Curve) (float64, bool) {
	t.elapsed += dt
	progress := common.Clamp01(t.elapsed / t.duration)
	if progress >= 1 || t.start == t.target {
		return t.target, true
	}
	return common.Lerp(t.start, t.target, curve(progress)), false
}

// state is one keyed gauge: its binding, its config and whatever transition
// is in flight.
type state struct {
	binding Binding
	cfg     Config
	current float64
	target  float64
	max     float64
	task    *transition
}

func (s *state) fraction() float64 {
	return s.current / s.max
}

// write pushes the current transition frame into the binding.
func (s *state) write() {
	if s.binding == nil {
		return
	}
	s.binding.SetValue(s.current)
	s.binding.SetMaxValue(s.max)
	if !s.cfg.StaticColor {
		s.binding.SetFillColor(ColorAt(s.fraction(), s.cfg.LowThreshold, s.cfg.HighThreshold, s.cfg.Low, s.cfg.Normal, s.cfg.High))
	}
}

// Animator drives every registered gauge from one frame clock. All methods
// must be called from the goroutine that calls Advance; the usual home is a
// game's Update loop, so the Animator takes no locks.
type Animator struct {
	transition time.Duration
	curve      Curve
	gauges     map[string]*state
	pulse      pulse
}

// NewAnimator builds an Animator whose transitions take d and ease along
// curve. Non-positive d falls back to DefaultTransition, nil curve to
// EaseOutQuad.
func NewAnimator(d time.Duration, curve Curve) *Animator {
	if d <= 0 {
		d = DefaultTransition
	}
	if curve == nil {
		curve = EaseOutQuad
	}
	return &Animator{
		transition: d,
		curve:      curve,
		gauges:     make(map[string]*state),
	}
}

// Register binds key to b and configures its colors, thresholds and critical
// band. Registering an existing key replaces it and cancels any transition
// in flight. The starting value is seeded from the binding when it reports
// one, otherwise zero. Registration starts no transition; the first Register
// also wakes the shared critical pulse. An empty key is ignored and a nil
// binding registers a detached gauge whose writes are skipped.
func (a *Animator) Register(key string, b Binding, cfg Config) {
	if key == "" {
		return
	}
	if old, ok := a.gauges[key]; ok && old.task != nil {
		old.task.cancel()
	}
	cur := common.Clamp(bindingValue(b), 0, DefaultMax)
	a.gauges[key] = &state{
		binding: b,
		cfg:     cfg.normalized(),
		current: cur,
		target:  cur,
		max:     DefaultMax,
	}
	a.pulse.start()
}

// SetTarget eases key's gauge toward value out of max. value is clamped to
// [0, max] and max floors at 1. A transition already in flight is cancelled
// first and the new task resumes from the value on screen, so rapid-fire
// calls glide instead of snapping. An unknown key is registered detached and
// already showing value, which keeps early writers harmless until the real
// Register arrives. Every call starts a task, even when value is already
// displayed; its terminal tick re-syncs the binding.
func (a *Animator) SetTarget(key string, value, max float64) {
	if key == "" {
		return
	}
	if max < 1 {
		max = 1
	}
	value = common.Clamp(value, 0, max)
	s, ok := a.gauges[key]
	if !ok {
		s = &state{
			cfg:     Config{}.normalized(),
			current: value,
			target:  value,
			max:     max,
		}
		a.gauges[key] = s
		a.pulse.start()
	}
	if s.task != nil {
		s.task.cancel()
	}
	s.max = max
	s.target = value
	s.task = &transition{
		start:    s.current,
		target:   value,
		duration: a.transition.Seconds(),
	}
}

// Advance moves every in-flight transition and the critical pulse forward by
// dt. Call it exactly once per frame from the owning loop. Negative dt is
// treated as zero, so a stalled clock re-writes the current frame instead of
// rewinding it.
func (a *Animator) Advance(dt time.Duration) {
	sec := dt.Seconds()
	if sec < 0 {
		sec = 0
	}
	for _, s := range a.gauges {
		t := s.task
		if t == nil || t.cancelled {
			continue
		}
		v, done := t.step(sec, a.curve)
		s.current = v
		s.write()
		if done && s.task == t {
			s.task = nil
		}
	}
	if !a.pulse.running {
		return
	}
	alpha := a.pulse.advance(sec)
	for _, s := range a.gauges {
		if s.binding == nil {
			continue
		}
		if s.cfg.Critical != nil && s.cfg.Critical(s.fraction(), s.cfg.LowThreshold, s.cfg.HighThreshold) {
			s.binding.SetOpacity(alpha)
		} else {
			s.binding.SetOpacity(1)
		}
	}
}

// Unregister cancels key's transition and forgets the gauge. The binding is
// left exactly as last written. Unknown keys are a no-op.
func (a *Animator) Unregister(key string) {
	s, ok := a.gauges[key]
	if !ok {
		return
	}
	if s.task != nil {
		s.task.cancel()
	}
	delete(a.gauges, key)
}

// Shutdown cancels every transition, stops the pulse and forgets all
// gauges. Safe to call twice; the animator is reusable afterward and the
// next Register wakes it again.
func (a *Animator) Shutdown() {
	for _, s := range a.gauges {
		if s.task != nil {
			s.task.cancel()
		}
	}
	a.gauges = make(map[string]*state)
	a.pulse.stop()
}

// Value reports the value key's gauge currently displays.
func (a *Animator) Value(key string) (float64, bool) {
	s, ok := a.gauges[key]
	if !ok {
		return 0, false
	}
	return s.current, true
}

// Target reports the value key's gauge is headed toward.
func (a *Animator) Target(key string) (float64, bool) {
	s, ok := a.gauges[key]
	if !ok {
		return 0, false
	}
	return s.target, true
}

// Max reports key's current maximum.
func (a *Animator) Max(key string) (float64, bool) {
	s, ok := a.gauges[key]
	if !ok {
		return 0, false
	}
	return s.max, true
}

// IsAnimating reports whether key has a transition in flight.
func (a *Animator) IsAnimating(key string) bool {
	s, ok := a.gauges[key]
	return ok && s.task != nil
}

// Keys returns every registered gauge key in sorted order.
func (a *Animator) Keys() []string {
	keys := make([]string, 0, len(a.gauges))
	for k := range a.gauges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
