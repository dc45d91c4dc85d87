package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends use this to size their output and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Output width in characters (terminal) or pixels
	ScreenH  int   // Output height in characters (terminal) or pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the game-state machine position.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState is a read-only summary of the game returned after every tick.
type GameState struct {
	Phase     Phase
	Score     int
	HighScore int
	Tick      uint64 // Frames advanced since the world was created
}

// GameOver reports whether the game is in the game-over phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	// Started is true when this tick entered the playing phase.
	Started bool
	// Ended is true when this tick entered the game-over phase.
	Ended bool
	// NewHighScore is true when the run that just ended beat the stored high score.
	NewHighScore bool
}
