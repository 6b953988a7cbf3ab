package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform layer fills in the surface size it can display.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in pixels
	ScreenH  int   // Surface height in pixels
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  640,
		ScreenH:  480,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TimeScale converts one tick at the configured rate into the 30 ticks per
// second the gameplay constants are tuned for.
func (c RuntimeConfig) TimeScale() float64 {
	if c.TickRate <= 0 {
		return 1
	}
	return 30.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int  // Player kills
	OpponentScore int  // Opponent kills
	GameOver      bool // Whether the match has ended
	Paused        bool // Whether the game is paused
	Won           bool // Valid when GameOver: the player reached the win score
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
