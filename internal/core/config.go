package core

import "time"

// RuntimeConfig contains frontend settings that are independent of the
// simulation constants. The simulation always steps at its own fixed tick
// rate; FrameRate only controls how often input is polled and the screen
// is redrawn.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	FrameRate int           // Render frames per second (default 60)
	KeyHold   time.Duration // How long a terminal key press counts as held without auto-repeat
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		KeyHold:   550 * time.Millisecond,
	}
}
