// Package dodge implements Virus Dodge: the player slides along the bottom
// of the canvas while spiky viruses fall from the top. One touch ends the run.
//
// The simulation (entities, spawner, motion, collision, controller) works in
// canvas units and knows nothing about terminals; Game adapts it to the
// arcade platform.
package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/virus-dodge/internal/config"
	"github.com/vovakirdan/virus-dodge/internal/core"
	"github.com/vovakirdan/virus-dodge/internal/registry"
)

const (
	GameID    = "dodge"
	GameTitle = "Virus Dodge"
)

// configPath stores the custom config path set via CLI
var configPath string

// assertions enables fail-fast entity checks for every new game
var assertions bool

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetAssertions turns on entity assertions for games created afterwards.
func SetAssertions(on bool) {
	assertions = on
}

// Game adapts the Controller to registry.Game. It is also the controller's
// renderer, score display and restart control: it keeps whatever the
// controller last pushed and draws it when the platform asks.
type Game struct {
	cfg            config.DodgeConfig
	pending        *config.DodgeConfig // Reloaded config, applied on next restart
	runtime        core.RuntimeConfig
	rng            *rand.Rand
	ctrl           *Controller
	frame          Frame
	scoreText      string
	restartVisible bool
	paused         bool
	renderer       ScreenRenderer
}

// New creates a new Virus Dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset builds a fresh controller from the current tuning and starts it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	switch {
	case g.pending != nil:
		g.cfg = *g.pending
		g.pending = nil
	default:
		cfg, err := config.LoadDodge(configPath)
		if err != nil {
			cfg = config.DefaultDodgeConfig()
		}
		g.cfg = cfg
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.paused = false
	g.build()
}

// build replaces the controller, keeping the RNG stream.
func (g *Game) build() {
	g.ctrl = NewController(g.cfg, g.rng,
		WithRenderer(g),
		WithScoreDisplay(g),
		WithRestartControl(g),
		WithAssertions(assertions || g.runtime.Debug),
	)
	g.ctrl.Start()
	g.frame = g.ctrl.Snapshot()
}

// ApplyConfig queues new tuning; it takes effect on the next restart.
func (g *Game) ApplyConfig(cfg config.DodgeConfig) {
	g.pending = &cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) && g.restartVisible {
		g.restart()
		return core.StepResult{State: g.State(), Continue: true}
	}

	if g.ctrl.Phase() != PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Continue: true}
	}

	res := g.ctrl.Tick(Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	})
	return core.StepResult{State: g.State(), Continue: res.Continue}
}

func (g *Game) restart() {
	g.paused = false
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.build()
		return
	}
	g.ctrl.Restart()
	g.frame = g.ctrl.Snapshot()
}

// Render draws the last frame the controller pushed.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Draw(dst, g.frame, g.HUD())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ctrl.Score(),
		GameOver: g.ctrl.Phase() == PhaseGameOver,
		Paused:   g.paused,
		Ticks:    g.ctrl.session.SpawnTimer,
	}
}

// Frame returns the last frame the controller pushed.
func (g *Game) Frame() Frame {
	return g.frame
}

// HUD returns the presentation state kept next to the frame.
func (g *Game) HUD() HUD {
	return HUD{
		ScoreText:      g.scoreText,
		RestartVisible: g.restartVisible,
		Paused:         g.paused,
	}
}

// Controller exposes the running simulation to other front ends.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// DrawFrame implements Renderer.
func (g *Game) DrawFrame(f Frame) {
	g.frame = f
}

// SetScoreText implements ScoreDisplay.
func (g *Game) SetScoreText(text string) {
	g.scoreText = text
}

// SetRestartVisible implements RestartControl.
func (g *Game) SetRestartVisible(visible bool) {
	g.restartVisible = visible
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
