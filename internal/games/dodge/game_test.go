package dodge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/virus-dodge/internal/config"
	"github.com/vovakirdan/virus-dodge/internal/core"
	"github.com/vovakirdan/virus-dodge/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.ApplyConfig(config.DefaultDodgeConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// endGame drops a hazard on the player's head and ticks once.
func endGame(t *testing.T, g *Game) {
	t.Helper()
	head := g.ctrl.session.Player.HitCircle()
	g.ctrl.session.Hazards = append(g.ctrl.session.Hazards, Hazard{X: head.Center.X, Y: head.Center.Y, Radius: 25})
	res := g.Step(press())
	if res.Continue || !res.State.GameOver {
		t.Fatalf("Step() = %+v, expected game over", res)
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("%q should be registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != GameID || g.Title() != GameTitle {
		t.Errorf("got %s/%s", g.ID(), g.Title())
	}
}

func TestGameStepMovesPlayer(t *testing.T) {
	g := newTestGame(t)
	x0 := g.Controller().Session().Player.X

	res := g.Step(press(core.ActionRight))
	if !res.Continue {
		t.Fatal("first tick should continue")
	}
	if x := g.Controller().Session().Player.X; x != x0+5 {
		t.Errorf("x = %v, expected %v", x, x0+5)
	}

	g.Step(press(core.ActionLeft, core.ActionRight))
	if x := g.Controller().Session().Player.X; x != x0+5 {
		t.Errorf("left+right should cancel out, x = %v", x)
	}

	if st := g.State(); st.Score != 2 || st.Ticks != 2 {
		t.Errorf("State() = %+v, expected score 2 after 2 ticks", st)
	}
}

func TestGameRestartOnlyAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 10; i++ {
		g.Step(press())
	}

	// Restart is hidden while running; the action is ignored and the tick runs
	g.Step(press(core.ActionRestart))
	if g.State().Score != 11 {
		t.Fatalf("score = %d, restart should be ignored while running", g.State().Score)
	}

	endGame(t, g)
	if !g.restartVisible {
		t.Fatal("restart should be visible after game over")
	}

	// Ticking after game over changes nothing
	res := g.Step(press(core.ActionRight))
	if res.Continue || res.State.Score != 11 {
		t.Errorf("Step() after game over = %+v", res)
	}

	res = g.Step(press(core.ActionRestart))
	if !res.Continue || res.State.GameOver || res.State.Score != 0 {
		t.Errorf("Step(restart) = %+v, expected a fresh running game", res)
	}
	if g.restartVisible {
		t.Error("restart should hide again")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)
	g.Step(press())

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 5; i++ {
		g.Step(press(core.ActionRight))
	}
	if g.State().Score != 1 {
		t.Errorf("score moved while paused: %d", g.State().Score)
	}

	// Unpausing runs the tick straight away
	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
	if g.State().Score != 2 {
		t.Errorf("score = %d, expected 2", g.State().Score)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.ContainsRune(scr.String(), HeadChar) {
		t.Error("player head should be drawn")
	}

	endGame(t, g)
	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"Game Over!", "Score: 0", "R restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(t)
	g.Step(press())

	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		scr := core.NewScreen(size[0], size[1])
		g.Render(scr) // must not panic
	}
}

func TestGameApplyConfigOnRestart(t *testing.T) {
	g := newTestGame(t)

	cfg := config.DefaultDodgeConfig()
	cfg.Player.Speed = 9
	g.ApplyConfig(cfg)

	if got := g.Controller().Config().Player.Speed; got != 5 {
		t.Fatalf("config applied mid-game, speed = %v", got)
	}

	endGame(t, g)
	g.Step(press(core.ActionRestart))

	if got := g.Controller().Config().Player.Speed; got != 9 {
		t.Errorf("speed after restart = %v, expected 9", got)
	}
	x0 := g.Controller().Session().Player.X
	g.Step(press(core.ActionLeft))
	if x := g.Controller().Session().Player.X; x != x0-9 {
		t.Errorf("x = %v, expected %v", x, x0-9)
	}
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New()
	if st := g.State(); st != (core.GameState{}) {
		t.Errorf("State() before Reset = %+v", st)
	}
	if res := g.Step(press()); !res.Continue {
		t.Error("Step() should lazily start a game")
	}
}
