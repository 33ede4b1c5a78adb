package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to convert durations to ticks.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score1   int    // First side's score (Black in reversi)
	Score2   int    // Second side's score (White in reversi)
	Moves    int    // Moves played in the current game
	Mode     string // Active play mode, e.g. "friend" or "cpu"
	GameOver bool   // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
