package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the play area and seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 30, ~33ms)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status the game reports to the platform after each event.
type GameState struct {
	Score     int  // Targets destroyed by typing
	HitPoints int  // Remaining hit points
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Reached int  // Targets that reached the center this tick
	Ended   bool // The game ended on this tick
}
