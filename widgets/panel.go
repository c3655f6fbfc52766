package widgets

import "github.com/hajimehoshi/ebiten/v2"

const (
	defaultBarWidth  = 280
	defaultBarHeight = 18
	defaultSpacing   = 34

	// Room above each bar for its label row.
	labelGap = 16
)

// Panel stacks bars vertically and draws them as one HUD block.
type Panel struct {
	X, Y    float64
	Spacing float64
	Visible bool

	bars []*Bar
}

func NewPanel(x, y, spacing float64) *Panel {
	if spacing <= 0 {
		spacing = defaultSpacing
	}
	return &Panel{X: x, Y: y, Spacing: spacing, Visible: true}
}

// AddBar appends a bar at the panel's next slot and returns it so the caller
// can register it as a gauge binding. Non-positive sizes keep the defaults.
func (p *Panel) AddBar(label string, w, h float64) *Bar {
	if w <= 0 {
		w = defaultBarWidth
	}
	if h <= 0 {
		h = defaultBarHeight
	}
	y := p.Y + labelGap + float64(len(p.bars))*p.Spacing
	bar := NewBar(p.X, y, w, h, label)
	p.bars = append(p.bars, bar)
	return bar
}

func (p *Panel) Bars() []*Bar {
	return p.bars
}

func (p *Panel) Draw(screen *ebiten.Image) {
	if p == nil || !p.Visible {
		return
	}
	for _, b := range p.bars {
		b.Draw(screen)
	}
}
