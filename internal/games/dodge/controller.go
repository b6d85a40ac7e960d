package dodge

import (
	"strconv"

	"github.com/vovakirdan/virus-dodge/internal/config"
)

// Renderer draws a frame. Called once per surviving tick and once more,
// with GameOver set, on the tick the session ends.
type Renderer interface {
	DrawFrame(f Frame)
}

// ScoreDisplay receives the score as plain decimal text.
type ScoreDisplay interface {
	SetScoreText(text string)
}

// RestartControl is shown when a session ends and hidden when one starts.
type RestartControl interface {
	SetRestartVisible(visible bool)
}

type nopCollaborator struct{}

func (nopCollaborator) DrawFrame(Frame)        {}
func (nopCollaborator) SetScoreText(string)    {}
func (nopCollaborator) SetRestartVisible(bool) {}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the frame sink.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithScoreDisplay sets the score text sink.
func WithScoreDisplay(d ScoreDisplay) Option {
	return func(c *Controller) {
		if d != nil {
			c.scoreDisplay = d
		}
	}
}

// WithRestartControl sets the restart control.
func WithRestartControl(rc RestartControl) Option {
	return func(c *Controller) {
		if rc != nil {
			c.restart = rc
		}
	}
}

// WithAssertions makes the controller panic when a tick leaves a malformed
// entity (NaN position, negative radius) in the world.
func WithAssertions(on bool) Option {
	return func(c *Controller) {
		c.assertions = on
	}
}

// TickResult reports what a tick did.
type TickResult struct {
	Continue bool // Schedule another tick
	GameOver bool // The session is over (this tick or earlier)
	Score    int
}

// Controller runs the simulation: it owns the session, orders each tick's
// steps and drives the collaborators. It is not safe for concurrent use;
// the harness calls Tick from a single loop.
type Controller struct {
	cfg          config.DodgeConfig
	spawner      *Spawner
	session      *Session
	phase        Phase
	renderer     Renderer
	scoreDisplay ScoreDisplay
	restart      RestartControl
	assertions   bool
}

// NewController builds a controller in the Ready phase.
func NewController(cfg config.DodgeConfig, rng RandSource, opts ...Option) *Controller {
	c := &Controller{
		cfg:          cfg,
		spawner:      NewSpawner(rng, cfg.Hazards),
		session:      NewSession(cfg),
		phase:        PhaseReady,
		renderer:     nopCollaborator{},
		scoreDisplay: nopCollaborator{},
		restart:      nopCollaborator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a fresh session from any phase.
func (c *Controller) Start() {
	c.session = NewSession(c.cfg)
	c.phase = PhaseRunning
	c.restart.SetRestartVisible(false)
	c.scoreDisplay.SetScoreText("0")
}

// Restart is the restart command; identical to Start.
func (c *Controller) Restart() {
	c.Start()
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the current session score.
func (c *Controller) Score() int {
	return c.session.Score
}

// Session returns a copy of the current world state.
func (c *Controller) Session() Session {
	return c.session.clone()
}

// Config returns the tuning the controller runs with.
func (c *Controller) Config() config.DodgeConfig {
	return c.cfg
}

// Tick advances the world one step. Outside the Running phase it does nothing.
//
// Order: move player, count the tick, maybe spawn, move hazards, drop the
// ones that left the canvas, then test collisions. Pruning before the
// collision test keeps hazards that just fell out of view from hitting.
func (c *Controller) Tick(in Input) TickResult {
	if c.phase != PhaseRunning {
		return TickResult{GameOver: c.phase == PhaseGameOver, Score: c.session.Score}
	}

	s := c.session
	AdvancePlayer(&s.Player, in, c.cfg.Player.Speed, c.cfg.Canvas.Width)

	s.SpawnTimer++
	if h, ok := c.spawner.MaybeSpawn(s.SpawnTimer, c.cfg.Canvas.Width); ok {
		s.Hazards = append(s.Hazards, h)
	}

	for i := range s.Hazards {
		AdvanceHazard(&s.Hazards[i])
	}
	s.Hazards = pruneOffscreen(s.Hazards, c.cfg.Canvas.Height)

	c.assertWorld()

	if _, hit := FirstHit(s.Player, s.Hazards); hit {
		c.endSession()
		return TickResult{GameOver: true, Score: s.Score}
	}

	s.Score++
	c.renderer.DrawFrame(c.Snapshot())
	c.scoreDisplay.SetScoreText(strconv.Itoa(s.Score))

	return TickResult{Continue: true, Score: s.Score}
}

// endSession freezes the score, draws the final frame and offers a restart.
func (c *Controller) endSession() {
	c.session.GameOver = true
	c.phase = PhaseGameOver
	c.renderer.DrawFrame(c.Snapshot())
	c.scoreDisplay.SetScoreText(strconv.Itoa(c.session.Score))
	c.restart.SetRestartVisible(true)
}

func (c *Controller) assertWorld() {
	if !c.assertions {
		return
	}
	if err := c.session.validate(); err != nil {
		panic(err)
	}
}
