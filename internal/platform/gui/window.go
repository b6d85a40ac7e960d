// Package gui runs Virus Dodge in a desktop window with Ebitengine, on the
// full-size canvas and with real key-held input.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/virus-dodge/internal/config"
	"github.com/vovakirdan/virus-dodge/internal/core"
	"github.com/vovakirdan/virus-dodge/internal/games/dodge"
	"github.com/vovakirdan/virus-dodge/internal/storage"
)

var (
	colorBackground = color.RGBA{R: 18, G: 22, B: 30, A: 255}
	colorFloor      = color.RGBA{R: 70, G: 76, B: 88, A: 255}
	colorVirusCore  = color.RGBA{R: 96, G: 200, B: 80, A: 255}
	colorVirusSpike = color.RGBA{R: 60, G: 150, B: 50, A: 255}
	colorSkin       = color.RGBA{R: 240, G: 200, B: 160, A: 255}
	colorHair       = color.RGBA{R: 110, G: 70, B: 30, A: 255}
	colorShirt      = color.RGBA{R: 60, G: 110, B: 220, A: 255}
	colorShade      = color.RGBA{A: 160}
)

// Options configures the window.
type Options struct {
	Store    *storage.Store  // nil disables saving runs
	Seed     int64           // 0 picks one from the clock
	TickRate int             // Simulation ticks per second
	Scale    float64         // Window pixels per canvas unit
	Debug    bool            // Entity assertions
	Watcher  *config.Watcher // nil disables hot reload
	Logger   *log.Logger     // nil discards
}

// Window implements ebiten.Game on top of dodge.Game.
type Window struct {
	game       *dodge.Game
	opts       Options
	canvasW    int
	canvasH    int
	overlay    *gameOverUI
	scoreSaved bool
	status     string
}

// New builds a window around a fresh game.
func New(opts Options) *Window {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := dodge.New()
	g.Reset(core.RuntimeConfig{TickRate: opts.TickRate, Seed: opts.Seed, Debug: opts.Debug})

	w := &Window{game: g, opts: opts}
	w.resize()
	return w
}

// resize tracks the canvas of the running controller; a reloaded config
// may change it on restart.
func (w *Window) resize() {
	canvas := w.game.Controller().Config().Canvas
	w.canvasW, w.canvasH = int(canvas.Width), int(canvas.Height)
	w.overlay = newGameOverUI(w.canvasW, w.canvasH)
	ebiten.SetWindowSize(int(float64(w.canvasW)*w.opts.Scale), int(float64(w.canvasH)*w.opts.Scale))
}

// Update samples the keyboard and advances the game one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	w.pollConfig()
	w.overlay.ui.Update()

	in := sampleInput()
	if w.overlay.takeRestart() {
		in.Set(core.ActionRestart)
	}

	wasOver := w.game.State().GameOver
	res := w.game.Step(in)
	if wasOver && !res.State.GameOver {
		w.scoreSaved = false
		w.status = ""
		w.resize()
	}
	if res.State.GameOver && !w.scoreSaved {
		w.saveRun(res.State)
		w.scoreSaved = true
	}

	hud := w.game.HUD()
	w.overlay.SetScoreText(hud.ScoreText)
	w.overlay.SetRestartVisible(hud.RestartVisible)
	return nil
}

// sampleInput reads held directions and one-shot commands for this tick.
func sampleInput() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionRestart)
	}
	return in
}

func (w *Window) pollConfig() {
	if w.opts.Watcher == nil {
		return
	}
	select {
	case cfg, ok := <-w.opts.Watcher.Updates:
		if ok {
			w.game.ApplyConfig(cfg)
			w.status = "config reloaded, applies on restart"
			w.opts.Logger.Info("config reloaded", "path", w.opts.Watcher.Path())
		}
	case err, ok := <-w.opts.Watcher.Errors:
		if ok {
			w.status = "config rejected"
			w.opts.Logger.Warn("config rejected", "error", err)
		}
	default:
	}
}

func (w *Window) saveRun(st core.GameState) {
	if w.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := w.opts.Store.SaveRun(storage.Run{
		GameID: w.game.ID(),
		Score:  st.Score,
		Ticks:  st.Ticks,
		Seed:   w.opts.Seed,
		Source: storage.SourceWindow,
	})
	if err != nil {
		w.opts.Logger.Warn("could not save run", "error", err)
	}
}

// Draw renders the last frame the controller pushed.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	f := w.game.Frame()
	hud := w.game.HUD()

	for _, h := range f.Hazards {
		drawHazard(screen, h)
	}
	drawPlayer(screen, f.Player)
	vector.StrokeLine(screen, 0, float32(f.CanvasH)-1, float32(f.CanvasW), float32(f.CanvasH)-1, 2, colorFloor, false)

	ebitenutil.DebugPrintAt(screen, "Score: "+hud.ScoreText, 8, 6)
	if w.status != "" {
		ebitenutil.DebugPrintAt(screen, w.status, 8, 22)
	}

	switch {
	case f.GameOver:
		w.overlay.ui.Draw(screen)
	case hud.Paused:
		w.drawOverlay(screen, []string{"PAUSED", "Press P to resume"})
	}
}

// Layout keeps the canvas in its own units; Ebitengine scales to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.canvasW, w.canvasH
}

func drawHazard(screen *ebiten.Image, h dodge.Hazard) {
	x, y, r := float32(h.X), float32(h.Y), float32(h.Radius)
	spin := h.Phase * dodge.HazardSpin
	inner := h.Radius * dodge.HazardCoreRatio

	for i := 0; i < dodge.HazardSpikes; i++ {
		a := spin + float64(i)*2*math.Pi/dodge.HazardSpikes
		sin, cos := math.Sincos(a)
		x0, y0 := x+float32(cos*inner), y+float32(sin*inner)
		x1, y1 := x+float32(cos*h.Radius), y+float32(sin*h.Radius)
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, colorVirusSpike, true)
		vector.DrawFilledCircle(screen, x1, y1, 3, colorVirusSpike, true)
	}
	vector.DrawFilledCircle(screen, x, y, float32(inner), colorVirusCore, true)
	vector.StrokeCircle(screen, x, y, r*0.3, 2, colorVirusSpike, true)
}

func drawPlayer(screen *ebiten.Image, p dodge.Player) {
	vector.DrawFilledRect(screen,
		float32(p.X+dodge.ShirtInset), float32(p.Y+dodge.ShirtTop),
		float32(p.Width-2*dodge.ShirtInset), dodge.ShirtHeight,
		colorShirt, false)

	head := p.HitCircle()
	cx, cy, r := float32(head.Center.X), float32(head.Center.Y), float32(head.R)
	vector.DrawFilledCircle(screen, cx, cy, r, colorHair, true)
	vector.DrawFilledCircle(screen, cx, cy+dodge.HairLift/2, r-dodge.HairLift/2, colorSkin, true)
}

func (w *Window) drawOverlay(screen *ebiten.Image, lines []string) {
	const lineH = 16
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l)*6) // Debug font glyphs are 6px wide
	}
	boxW += 32
	boxH := len(lines)*lineH + 24
	x := (w.canvasW - boxW) / 2
	y := (w.canvasH - boxH) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), colorShade, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 2, colorFloor, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+(boxW-len(l)*6)/2, y+12+i*lineH)
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w := New(opts)

	ebiten.SetWindowTitle(dodge.GameTitle)
	ebiten.SetTPS(w.opts.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
