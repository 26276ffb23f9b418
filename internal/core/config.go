package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The viewport size is in terminal cells.
type RuntimeConfig struct {
	ScreenW  int // Viewport width in characters
	ScreenH  int // Viewport height in characters
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

// TickDT returns the nominal frame duration in seconds.
func (c RuntimeConfig) TickDT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
