package gui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// gameOverUI is the window's restart control: a centered panel with the
// final score and a Restart button, hidden while a session runs.
type gameOverUI struct {
	ui        *ebitenui.UI
	panel     *widget.Container
	score     *widget.Text
	requested bool // Restart clicked, consumed by the next tick
}

func newGameOverUI(canvasW, canvasH int) *gameOverUI {
	o := &gameOverUI{}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x2f, G: 0x6f, B: 0x2a, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x3f, G: 0x8f, B: 0x38, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Game Over!", &face, color.NRGBA{R: 0xff, G: 0xe0, B: 0x60, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)
	o.score = widget.NewText(
		widget.TextOpts.Text("Score: 0", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	restart := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnIdle}),
		widget.ButtonOpts.Text("Restart", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			o.requested = true
		}),
	)
	hint := widget.NewText(
		widget.TextOpts.Text("R restart  |  Q quit", &face, color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)

	o.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(canvasW*2/3, canvasH/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	o.panel.AddChild(title)
	o.panel.AddChild(o.score)
	o.panel.AddChild(restart)
	o.panel.AddChild(hint)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(o.panel)
	o.ui = &ebitenui.UI{Container: root}

	o.SetRestartVisible(false)
	return o
}

// SetRestartVisible shows or hides the panel.
func (o *gameOverUI) SetRestartVisible(visible bool) {
	if visible {
		o.panel.GetWidget().Visibility = widget.Visibility_Show
		return
	}
	o.panel.GetWidget().Visibility = widget.Visibility_Hide
	o.requested = false
}

// SetScoreText updates the final score line.
func (o *gameOverUI) SetScoreText(text string) {
	o.score.Label = "Score: " + text
}

// takeRestart reports and clears a pending button click.
func (o *gameOverUI) takeRestart() bool {
	r := o.requested
	o.requested = false
	return r
}
