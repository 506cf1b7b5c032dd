package core

// RuntimeConfig holds the terminal geometry and timing handed to a play
// session by the platform layer.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // UI ticks per second, drives banners and auto-advance
}

// DefaultRuntimeConfig returns a classic 80x24 terminal at 30 ticks per second.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}
