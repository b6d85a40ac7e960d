package core

// RuntimeConfig is handed to a game on every Reset by the platform layer.
// Screen dimensions are in terminal cells; games with their own world units
// scale into them at render time.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
	Debug    bool  // Enables fail-fast entity assertions inside the simulation
}

// DefaultConfig returns the 80x24 / 60 Hz baseline used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a running game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the platform has paused ticking
	Ticks    int  // Simulation ticks since the last (re)start
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Continue is false once the game stopped scheduling ticks on its own
	// (game over); the platform keeps polling for a restart.
	Continue bool
}
