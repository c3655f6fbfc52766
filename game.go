package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/hud/common"
	"github.com/milk9111/hud/component"
	"github.com/milk9111/hud/gauge"
	"github.com/milk9111/hud/prefabs"
	"github.com/milk9111/hud/widgets"
)

var backgroundColor = color.RGBA{R: 0x1e, G: 0x23, B: 0x28, A: 0xff}

// Game is the interactive gauge demo: a stat panel driven by the animator,
// plus keys and buttons that knock the stats around.
type Game struct {
	frames   int
	last     time.Time
	specNote string

	animator *gauge.Animator
	panel    *widgets.Panel
	stats    map[string]*component.Stat
	ui       *ebitenui.UI
	watcher  *prefabs.Watcher
}

func NewGame(watch bool) *Game {
	g := &Game{
		stats: map[string]*component.Stat{},
		last:  time.Now(),
	}

	spec, err := prefabs.LoadHUDSpec()
	if err != nil {
		log.Printf("failed to load gauges spec: %v, using built-in defaults", err)
		spec = fallbackSpec()
	}
	g.buildHUD(spec)
	if g.animator == nil {
		log.Printf("spec unusable, using built-in defaults")
		g.buildHUD(fallbackSpec())
	}
	g.noteSpecSource()
	g.ui = NewDemoUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("spec watching disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

// buildHUD swaps in the gauge set described by spec. Stats survive a
// rebuild and the new bars are reseeded from them, so a reload never resets
// the player's values.
func (g *Game) buildHUD(spec *prefabs.HUDSpec) {
	animator, err := prefabs.BuildAnimator(spec)
	if err != nil {
		log.Printf("failed to build animator: %v", err)
		return
	}

	if g.animator != nil {
		g.animator.Shutdown()
	}
	g.animator = animator
	g.panel = widgets.NewPanel(spec.Panel.X, spec.Panel.Y, spec.Panel.Spacing)

	for _, gs := range spec.Gauges {
		if gs.Key == "" {
			log.Printf("skipping gauge with empty key")
			continue
		}
		cfg, err := prefabs.GaugeConfig(gs)
		if err != nil {
			log.Printf("skipping gauge %s: %v", gs.Key, err)
			continue
		}

		stat, ok := g.stats[gs.Key]
		if !ok {
			max := gs.Max
			if max <= 0 {
				max = 100
			}
			stat = component.NewStat(max)
			stat.SetCurrent(gs.Value)
			g.stats[gs.Key] = stat
		}

		label := gs.Label
		if label == "" {
			label = gs.Key
		}
		bar := g.panel.AddBar(label, spec.Panel.BarWidth, spec.Panel.BarHeight)
		bar.SetValue(stat.Current)

		g.animator.Register(gs.Key, bar, cfg)
		g.animator.SetTarget(gs.Key, stat.Current, stat.Max)

		key := gs.Key
		stat.OnChange = func(s *component.Stat) {
			g.animator.SetTarget(key, s.Current, s.Max)
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	now := time.Now()
	dt := now.Sub(g.last)
	g.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > 250*time.Millisecond {
		dt = 250 * time.Millisecond
	}

	g.pollReload()
	g.handleKeys()
	g.ui.Update()
	g.animator.Advance(dt)

	return nil
}

// pollReload checks for a settled spec change without blocking the frame.
// The watcher coalesces save bursts, so one receive per frame is enough. A
// failed reload keeps the gauges already on screen.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case name := <-g.watcher.Reloads:
		log.Printf("spec changed: %s", name)
		g.reload()
	case err := <-g.watcher.Errors:
		if err != nil {
			log.Printf("spec watcher: %v", err)
		}
	default:
	}
}

func (g *Game) reload() {
	spec, err := prefabs.LoadHUDSpec()
	if err != nil {
		log.Printf("reload failed, keeping current gauges: %v", err)
		return
	}
	g.buildHUD(spec)
	g.noteSpecSource()
}

// noteSpecSource records where the live spec came from for the debug line.
func (g *Game) noteSpecSource() {
	if t, ok := prefabs.ModTime("gauges.yaml"); ok {
		g.specNote = "spec: disk " + t.Format("15:04:05")
		return
	}
	g.specNote = "spec: embedded"
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.stats["health"].Spend(18)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		g.stats["health"].Restore(12)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.stats["energy"].Spend(15)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.stats["energy"].Restore(20)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.stats["magic"].Spend(10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stats["magic"].Restore(8)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.stats["heat"].Restore(20)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.stats["heat"].Spend(25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Visible = !g.panel.Visible
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.panel.Draw(screen)
	g.ui.Draw(screen)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Frames: %d    FPS: %.2f    %s", g.frames, ebiten.ActualFPS(), g.specNote),
		8, common.BaseHeight-20)
}

// Close tears the demo down in order: transitions cancelled before bindings
// are dropped, then the watcher goroutine stopped.
func (g *Game) Close() {
	if g.animator != nil {
		g.animator.Shutdown()
	}
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// fallbackSpec keeps the demo alive when gauges.yaml is missing or broken.
func fallbackSpec() *prefabs.HUDSpec {
	return &prefabs.HUDSpec{
		Transition: prefabs.TransitionSpec{DurationMS: 600, Curve: "ease_out_quad"},
		Panel:      prefabs.PanelSpec{X: 24, Y: 24},
		Gauges: []prefabs.GaugeSpec{
			{Key: "health", Label: "HP", Value: 100, Max: 100, LowThreshold: 0.25, HighThreshold: 0.75, Critical: "low"},
		},
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
