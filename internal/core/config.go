package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// Phase identifies the top-level game state machine position.
// Transitions: Start -> Playing -> GameOver -> (restart) -> Playing,
// with Paused reachable from Playing.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the externally visible state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current score
	Lives int   // Remaining lives
	Level int   // Current difficulty level (1-based)
	Phase Phase // Current state machine phase
}

// GameOver reports whether the game has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Event identifies something that happened during a simulation tick.
// The platform reacts to events (sound effects, score persistence)
// without the simulation knowing about audio or storage.
type Event int

const (
	EventShoot     Event = iota // A bullet was fired
	EventExplosion              // An enemy was destroyed
	EventHit                    // The player was hit by an enemy
	EventLevelUp                // Difficulty level increased
	EventGameOver               // Lives reached zero
)

// String returns the clip name associated with the event.
func (e Event) String() string {
	switch e {
	case EventShoot:
		return "shoot"
	case EventExplosion:
		return "explosion"
	case EventHit:
		return "hit"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
