package main

import (
	"image/color"

	"github.com/milk9111/relicrun/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	white        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelColor   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	pressedColor = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

type menuButton struct {
	label   string
	onClick func()
}

// newMenu builds a centred panel with a title, an optional message and a
// column of buttons.
func newMenu(title, message string, buttons ...menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Pressed: imageui.NewNineSliceColor(pressedColor),
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, white),
		widget.TextOpts.WidgetOpts(center),
	))
	if message != "" {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(message, &face, white),
			widget.TextOpts.WidgetOpts(center),
		))
	}

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// NewPauseUI builds the pause menu with Resume and Quit buttons.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenu("Paused", "",
		menuButton{"Resume", func() { g.paused = false }},
		menuButton{"Quit", func() { g.quit = true }},
	)
}

// NewQuizUI asks the players for the outcome of the boss quiz, which is
// played outside the game.
func NewQuizUI(g *Game) *ebitenui.UI {
	return newMenu("The guardian has fallen", "Did you answer the riddle correctly?",
		menuButton{"Passed", func() { g.world.ResolveQuiz(true) }},
		menuButton{"Failed", func() { g.world.ResolveQuiz(false) }},
	)
}
