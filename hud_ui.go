package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewDemoUI builds the button strip along the bottom of the demo: one button
// per stat mutation plus a panel toggle. Buttons use colored nine-slices and
// the built-in basic font, so no theme assets need loading.
func NewDemoUI(g *Game) *ebitenui.UI {
	stripImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb4})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	strip := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(stripImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	strip.AddChild(button("Hit", func() { g.stats["health"].Spend(18) }))
	strip.AddChild(button("Heal", func() { g.stats["health"].Restore(12) }))
	strip.AddChild(button("Sprint", func() { g.stats["energy"].Spend(15) }))
	strip.AddChild(button("Rest", func() { g.stats["energy"].Restore(20) }))
	strip.AddChild(button("Cast", func() { g.stats["magic"].Spend(10) }))
	strip.AddChild(button("Focus", func() { g.stats["magic"].Restore(8) }))
	strip.AddChild(button("Stoke", func() { g.stats["heat"].Restore(20) }))
	strip.AddChild(button("Vent", func() { g.stats["heat"].Spend(25) }))
	strip.AddChild(button("Panel", func() { g.panel.Visible = !g.panel.Visible }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Bottom: 40}),
		)),
	)
	root.AddChild(strip)

	return &ebitenui.UI{Container: root}
}
