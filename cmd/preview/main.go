// Command preview sweeps every gauge in the HUD spec through its full range,
// for eyeballing color ramps and critical bands while editing gauges.yaml.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/hud/gauge"
	"github.com/milk9111/hud/prefabs"
	"github.com/milk9111/hud/widgets"
)

const (
	previewWidth  = 640
	previewHeight = 360
)

type sweep struct {
	key string
	max float64
}

type previewGame struct {
	last    time.Time
	elapsed float64
	period  float64

	animator *gauge.Animator
	panel    *widgets.Panel
	sweeps   []sweep
}

func (g *previewGame) Update() error {
	now := time.Now()
	dt := now.Sub(g.last)
	g.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > 250*time.Millisecond {
		dt = 250 * time.Millisecond
	}

	g.elapsed += dt.Seconds()
	phase := 0.5 * (1 - math.Cos(2*math.Pi*g.elapsed/g.period))
	for _, s := range g.sweeps {
		g.animator.SetTarget(s.key, s.max*phase, s.max)
	}
	g.animator.Advance(dt)

	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1e, G: 0x23, B: 0x28, A: 0xff})
	g.panel.Draw(screen)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("sweep %5.1f%%", 100*0.5*(1-math.Cos(2*math.Pi*g.elapsed/g.period))),
		8, previewHeight-20)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewWidth, previewHeight
}

func main() {
	period := flag.Float64("period", 8, "seconds per full sweep")
	flag.Parse()

	spec, err := prefabs.LoadHUDSpec()
	if err != nil {
		log.Fatalf("load gauges spec: %v", err)
	}

	animator, err := prefabs.BuildAnimator(spec)
	if err != nil {
		log.Fatalf("build animator: %v", err)
	}

	panel := widgets.NewPanel(spec.Panel.X, spec.Panel.Y, spec.Panel.Spacing)
	if err := prefabs.RegisterGauges(animator, spec, func(gs prefabs.GaugeSpec) gauge.Binding {
		label := gs.Label
		if label == "" {
			label = gs.Key
		}
		return panel.AddBar(label, spec.Panel.BarWidth, spec.Panel.BarHeight)
	}); err != nil {
		log.Fatalf("register gauges: %v", err)
	}

	sweeps := make([]sweep, 0, len(spec.Gauges))
	for _, gs := range spec.Gauges {
		max := gs.Max
		if max <= 0 {
			max = 100
		}
		sweeps = append(sweeps, sweep{key: gs.Key, max: max})
	}

	g := &previewGame{
		last:     time.Now(),
		period:   math.Max(1, *period),
		animator: animator,
		panel:    panel,
		sweeps:   sweeps,
	}

	ebiten.SetWindowSize(previewWidth*2, previewHeight*2)
	ebiten.SetWindowTitle("gauge preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
