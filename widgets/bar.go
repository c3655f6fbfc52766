// Package widgets holds the ebiten-drawn HUD visuals the gauge animator
// writes into.
package widgets

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/hud/common"
)

var (
	trackColor  = color.RGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xdc}
	borderColor = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	labelColor  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

	labelFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
)

// Bar is a horizontal gauge drawn with vector rects. It satisfies
// gauge.Binding so an animator can drive it, and reports its displayed value
// back so re-registration picks up where the bar left off.
type Bar struct {
	X, Y   float64
	Width  float64
	Height float64
	Label  string

	value   float64
	max     float64
	fill    color.RGBA
	opacity float64
}

func NewBar(x, y, w, h float64, label string) *Bar {
	if w <= 0 {
		w = defaultBarWidth
	}
	if h <= 0 {
		h = defaultBarHeight
	}
	return &Bar{
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Label:   label,
		max:     100,
		fill:    color.RGBA{R: 0x5a, G: 0x5a, B: 0x5a, A: 0xff},
		opacity: 1,
	}
}

func (b *Bar) SetValue(v float64) {
	b.value = v
}

func (b *Bar) SetMaxValue(max float64) {
	if max < 1 {
		max = 1
	}
	b.max = max
}

func (b *Bar) SetFillColor(c color.RGBA) {
	b.fill = c
}

func (b *Bar) SetOpacity(alpha float64) {
	b.opacity = common.Clamp01(alpha)
}

// DisplayedValue reports what the bar currently shows.
func (b *Bar) DisplayedValue() float64 {
	return b.value
}

// Ratio is the displayed fill fraction, clamped to [0, 1].
func (b *Bar) Ratio() float64 {
	return common.Clamp01(b.value / b.max)
}

// Draw renders the track, the fill and the label with a numeric readout.
func (b *Bar) Draw(screen *ebiten.Image) {
	if b == nil || screen == nil {
		return
	}
	x, y := float32(b.X), float32(b.Y)
	w, h := float32(b.Width), float32(b.Height)

	vector.DrawFilledRect(screen, x, y, w, h, trackColor, false)
	if fw := float32(b.Width * b.Ratio()); fw > 0 {
		vector.DrawFilledRect(screen, x, y, fw, h, scaleRGBA(b.fill, b.opacity), false)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, scaleRGBA(borderColor, b.opacity), false)

	if b.Label != "" {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(b.X, b.Y-16)
		op.ColorScale.ScaleWithColor(labelColor)
		ebtext.Draw(screen, b.Label, labelFace, op)
	}

	readout := fmt.Sprintf("%.0f/%.0f", b.value, b.max)
	rw, _ := ebtext.Measure(readout, labelFace, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(b.X+b.Width-rw, b.Y-16)
	op.ColorScale.ScaleWithColor(labelColor)
	ebtext.Draw(screen, readout, labelFace, op)
}

// scaleRGBA fades premultiplied channels uniformly so a pulsing bar dims
// without shifting hue.
func scaleRGBA(c color.RGBA, alpha float64) color.RGBA {
	a := common.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
