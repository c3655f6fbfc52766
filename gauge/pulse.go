package gauge

import "math"

// The critical pulse is a slow breath over opacity: 0.85 + 0.15*sin(2t),
// bounded to [0.70, 1.00] so a flashing gauge never blinks out entirely.
const (
	pulseBase  = 0.85
	pulseDepth = 0.15
	pulseRate  = 2.0
)

// pulse is the shared opacity oscillator. One lives inside each Animator; it
// wakes with the first registered gauge and keeps a single elapsed clock so
// every critical gauge breathes in phase.
type pulse struct {
	running bool
	elapsed float64
}

func (p *pulse) start() {
	p.running = true
}

func (p *pulse) stop() {
	p.running = false
	p.elapsed = 0
}

// advance accumulates dt seconds and returns the opacity critical gauges
// show this frame.
func (p *pulse) advance(dt float64) float64 {
	p.elapsed += dt
	return pulseBase + pulseDepth*math.Sin(pulseRate*p.elapsed)
}
