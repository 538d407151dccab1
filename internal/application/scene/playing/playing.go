// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/hopper/internal/application/replay"
	"github.com/younwookim/hopper/internal/application/scene"
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/ecs"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorPlatform    = colornames.Slategray
	colorCollectible = colornames.Gold
	colorJumpboost   = colornames.Deepskyblue
	colorPower       = colornames.Mediumpurple
	colorEnemy       = colornames.Crimson
	colorPlayer      = colornames.Limegreen
	colorBlink       = color.RGBA{255, 255, 255, 200}
	colorOverlay     = color.RGBA{0, 0, 0, 128}
)

// blinkFrames is how many frames each half of the invulnerability blink lasts
const blinkFrames = 6

// Options configures a play session
type Options struct {
	// RecordPath saves every frame's input there when the session ends
	RecordPath string
	// Replay drives the session from recorded input instead of the devices
	Replay *replay.Replayer
	// Tuning delivers hot-reloaded tuning between frames
	Tuning <-chan *config.TuningConfig
	// Next builds the scene shown after a win or a loss.
	// Without it play simply continues with the fresh session.
	Next func(outcome state.Outcome) scene.Scene
}

// Playing is the main gameplay scene
type Playing struct {
	config     *config.GameConfig
	world      *ecs.World
	controller *system.PlayerController
	state      state.GameState

	inputSystem *system.InputSystem
	replayer    *replay.Replayer
	tuning      <-chan *config.TuningConfig
	next        func(outcome state.Outcome) scene.Scene

	screenW int
	screenH int
	stageW  float64
	camX    float64
	frame   int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene for the loaded stage
func New(cfg *config.GameConfig, opts Options) *Playing {
	world := system.LoadStage(cfg.Stage, cfg.Tuning)

	stageW, _ := system.StageExtent(cfg.Stage, cfg.Tuning)
	log.Printf("Stage %q loaded: %d platforms, %d collectibles, %d enemies",
		cfg.Stage.ID, world.Count(ecs.KindPlatform), world.Count(ecs.KindCollectible), world.Count(ecs.KindEnemy))

	p := &Playing{
		config:         cfg,
		world:          world,
		controller:     system.NewPlayerController(cfg.Tuning, world),
		state:          state.StatePlaying,
		inputSystem:    system.NewInputSystem(),
		replayer:       opts.Replay,
		tuning:         opts.Tuning,
		next:           opts.Next,
		screenW:        cfg.Tuning.Display.ScreenWidth,
		screenH:        cfg.Tuning.Display.ScreenHeight,
		stageW:         float64(stageW),
		recordFilename: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(cfg.Stage.ID, cfg.Tuning.Display.Framerate)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}
	if opts.Replay != nil {
		log.Printf("Replaying %d frames on stage %q", opts.Replay.TotalFrames(), opts.Replay.Stage())
	}

	p.updateCamera()
	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.drainTuning()

	switch p.state {
	case state.StatePlaying:
		return p.updatePlaying(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			p.state = state.StatePlaying
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.state = state.StatePaused
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input, ok := p.readInput()
	if !ok {
		log.Printf("Replay finished after %d frames", p.frame)
		return nil, scene.ErrQuit
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.controller.SetInput(input)
	p.controller.Update(dt)
	ecs.UpdateEffects(p.world, dt)
	p.frame++
	p.updateCamera()

	outcome := p.controller.Outcome()
	if !outcome.Terminal() {
		return nil, nil
	}

	log.Printf("Session ended: %s after %d frames", outcome, p.frame)
	p.saveRecording()
	if p.next == nil {
		return nil, nil
	}
	if p.recorder != nil {
		p.recorder.Stop()
	}
	p.state = outcome.State()
	return p.next(outcome), nil
}

// readInput returns this frame's input; false once a replay runs out
func (p *Playing) readInput() (system.InputState, bool) {
	if p.replayer == nil {
		return p.inputSystem.GetInput(), true
	}
	in, ok := p.replayer.GetInput()
	if !ok {
		return system.InputState{}, false
	}
	return system.InputState{
		Left:             in.Left,
		Right:            in.Right,
		Up:               in.Up,
		GamepadConnected: in.GamepadConnected,
		Pad: system.GamepadState{
			AxisX:   in.AxisX,
			AxisY:   in.AxisY,
			Buttons: in.Buttons,
		},
	}, true
}

// drainTuning applies the newest hot-reloaded tuning, if any.
// Display settings only take effect on restart.
func (p *Playing) drainTuning() {
	if p.tuning == nil {
		return
	}
	select {
	case cfg, ok := <-p.tuning:
		if !ok {
			p.tuning = nil
			return
		}
		cfg.Display = p.config.Tuning.Display
		p.config.Tuning = cfg
		p.controller.SetConfig(cfg)
		log.Printf("Tuning reloaded (gravity %.0f, jump %.0f)", cfg.Physics.Gravity, cfg.Jump.Force)
	default:
	}
}

// updateCamera follows the player horizontally within the stage
func (p *Playing) updateCamera() {
	body := p.world.GetPlayerBody()
	camX := body.X + body.W/2 - float64(p.screenW)/2

	maxCamX := p.stageW - float64(p.screenW)
	if camX > maxCamX {
		camX = maxCamX
	}
	if camX < 0 {
		camX = 0
	}
	p.camX = camX
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawKind(screen, ecs.KindPlatform, colorPlatform)
	p.drawKind(screen, ecs.KindCollectible, colorCollectible)
	p.drawKind(screen, ecs.KindJumpboost, colorJumpboost)
	p.drawKind(screen, ecs.KindPower, colorPower)
	p.drawKind(screen, ecs.KindEnemy, colorEnemy)
	p.drawPlayer(screen)
	p.drawEffects(screen)

	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawKind(screen *ebiten.Image, kind ecs.Kind, c color.Color) {
	for _, id := range p.world.ByKind(kind) {
		b := p.world.Body[id]
		if b.Right() < p.camX || b.Left() > p.camX+float64(p.screenW) {
			continue
		}
		ebitenutil.DrawRect(screen, b.X-p.camX, b.Y, b.W, b.H, c)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	if !p.world.Exists(p.world.PlayerID) {
		return
	}
	b := p.world.GetPlayerBody()

	// Blink while invulnerable
	c := color.Color(colorPlayer)
	if p.controller.Player().Invulnerable && (p.frame/blinkFrames)%2 == 0 {
		c = colorBlink
	}
	ebitenutil.DrawRect(screen, b.X-p.camX, b.Y, b.W, b.H, c)

	// Facing marker
	eyeX := b.X + b.W*0.7
	if p.controller.Player().Direction < 0 {
		eyeX = b.X + b.W*0.3
	}
	ebitenutil.DrawRect(screen, eyeX-3-p.camX, b.Y+b.H*0.25, 6, 6, colorBG)
}

func (p *Playing) drawEffects(screen *ebiten.Image) {
	for _, id := range p.world.ByKind(ecs.KindEffect) {
		fx, ok := p.world.Effect[id]
		if !ok {
			continue
		}
		origin := p.world.Body[id]
		c := fade(fx.Preset.Color, fx.Alpha)
		for _, pt := range fx.Particles() {
			x := origin.X + pt.DX - p.camX
			y := origin.Y + pt.DY
			ebitenutil.DrawRect(screen, x-pt.Size/2, y-pt.Size/2, pt.Size, pt.Size, c)
		}
	}
}

// fade scales a color by alpha (pre-multiplied)
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	player := p.controller.Player()

	hud := fmt.Sprintf("Lives: %d  Score: %d/%d  Power: %d",
		player.Lives, player.Score, p.config.Tuning.Player.WinScore, player.Power)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	if p.controller.Boosted() {
		ebitenutil.DebugPrintAt(screen, "JUMP BOOST", 10, 26)
		ebitenutil.DrawRect(screen, 80, 30, 8, 8, colorJumpboost)
	}

	controls := "Arrows/WASD: Move | Up: Jump | P: Pause"
	if p.replayer != nil {
		controls = fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, controls, 10, p.screenH-20)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := "PAUSED\n\nPress P to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves any pending recording
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// Controller returns the session's player controller
func (p *Playing) Controller() *system.PlayerController {
	return p.controller
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Frame returns the number of frames simulated so far
func (p *Playing) Frame() int {
	return p.frame
}

// CameraX returns the camera's left edge in world units
func (p *Playing) CameraX() float64 {
	return p.camX
}
