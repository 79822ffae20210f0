package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size; the simulation itself runs in world units.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (or pixels for window front-ends)
	ScreenH  int // Screen height in characters (or pixels)
	TickRate int // Frames per second the front-end aims for (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDelta returns the nominal seconds per frame for the configured tick rate.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended (lost or cleared)
	Cleared  bool // Whether the run ended by clearing the stage
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
// Contains the updated game state and the events that occurred this frame.
type StepResult struct {
	State     GameState
	Destroyed int  // Destructibles destroyed by player shots this frame
	PlayerHit bool // Whether an enemy projectile touched the player this frame
}

// RunStats summarizes a finished or running game for storage and display.
type RunStats struct {
	Score   int
	Kills   int     // Destructibles destroyed by the player
	Hits    int     // Enemy projectiles that touched the player
	Elapsed float64 // Simulated seconds, pauses excluded
	Cleared bool
}
