package core

// RuntimeConfig is the context handed to the game, the frame driver and the
// renderer. It is built once per session; nothing here is process-global.
type RuntimeConfig struct {
	ScreenW  int     // Playfield width in pixels
	ScreenH  int     // Playfield height in pixels
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Palette  Palette // Colours used by draw instructions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Palette:  DefaultPalette(),
	}
}

// Phase is the coarse state of a round.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState summarises a round for the platform layer.
type GameState struct {
	Score int
	Phase Phase
}

// GameOver reports whether the round has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by a simulation step.
type StepResult struct {
	State GameState
	// Quit is set when the input asked to leave; no state was mutated.
	Quit bool
	// Frame is the draw list emitted during the tick. Nil when Quit was
	// requested before anything was drawn.
	Frame *DrawList
}
