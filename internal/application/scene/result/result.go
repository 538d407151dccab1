// Package result provides the scene shown when a session is won or lost.
package result

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/hopper/internal/application/scene"
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/application/system"
)

var (
	colorBG     = color.RGBA{26, 26, 46, 255}
	colorPanel  = color.NRGBA{A: 200}
	colorButton = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	colorText   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorWin    = color.NRGBA{R: 0x7c, G: 0xfc, B: 0x00, A: 0xff}
	colorLoss   = color.NRGBA{R: 0xff, G: 0x45, B: 0x45, A: 0xff}
)

// Result shows the session outcome until the player restarts or quits
type Result struct {
	outcome state.Outcome
	restart func() scene.Scene
	ui      *ebitenui.UI

	restartRequested bool
	gamepadIDs       []ebiten.GamepadID
}

// New creates a result scene. restart builds the scene for a new session.
func New(outcome state.Outcome, screenW, screenH int, restart func() scene.Scene) *Result {
	r := &Result{
		outcome: outcome,
		restart: restart,
	}
	r.ui = r.buildUI(screenW, screenH)
	return r
}

// Message returns the notification text for the outcome
func Message(outcome state.Outcome) string {
	switch outcome {
	case state.OutcomeWin:
		return "You win!"
	case state.OutcomeLoss:
		return "Game Over"
	default:
		return ""
	}
}

func (r *Result) buildUI(screenW, screenH int) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	titleColor := colorWin
	if r.outcome == state.OutcomeLoss {
		titleColor = colorLoss
	}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text(Message(r.outcome), &face, titleColor),
		widget.TextOpts.WidgetOpts(center),
	)
	hint := widget.NewText(
		widget.TextOpts.Text("Enter / Space / (A): play again    Esc: quit", &face, colorText),
		widget.TextOpts.WidgetOpts(center),
	)

	btnImg := imageui.NewNineSliceColor(colorButton)
	again := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Play again", &face, &widget.ButtonTextColor{Idle: colorText}),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			r.requestRestart()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(colorPanel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenW/2, screenH/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(again)
	panel.AddChild(hint)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (r *Result) requestRestart() {
	r.restartRequested = true
}

// Update waits for a confirm or quit (implements scene.Scene)
func (r *Result) Update(_ float64) (scene.Scene, error) {
	if r.restartRequested {
		return r.next(), nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, scene.ErrQuit
	}
	if r.confirmPressed() {
		return r.next(), nil
	}

	r.ui.Update()
	return nil, nil
}

func (r *Result) next() scene.Scene {
	r.restartRequested = false
	if r.restart == nil {
		return nil
	}
	return r.restart()
}

func (r *Result) confirmPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	r.gamepadIDs = ebiten.AppendGamepadIDs(r.gamepadIDs[:0])
	for _, id := range r.gamepadIDs {
		if inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton(system.GamepadJumpButton)) {
			return true
		}
	}
	return false
}

// Draw renders the notification
func (r *Result) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	r.ui.Draw(screen)
}

// OnEnter is called when entering this scene
func (r *Result) OnEnter() {}

// OnExit is called when leaving this scene
func (r *Result) OnExit() {}

// Outcome returns the outcome being shown
func (r *Result) Outcome() state.Outcome {
	return r.outcome
}
