package platformer

// Countdown is a status timer that runs down to zero. The effect it guards
// is active while time remains.
type Countdown struct {
	remaining float64
}

// Tick subtracts dt, stopping at zero.
func (c *Countdown) Tick(dt float64) {
	if c.remaining <= 0 {
		return
	}
	c.remaining = max(c.remaining-dt, 0)
}

// Active reports whether time remains.
func (c Countdown) Active() bool {
	return c.remaining > 0
}

// Reset sets the remaining time to d. Resetting an active countdown does
// not add to what is left.
func (c *Countdown) Reset(d float64) {
	c.remaining = max(d, 0)
}

// Clear stops the countdown.
func (c *Countdown) Clear() {
	c.remaining = 0
}

// Remaining returns the time left in seconds.
func (c Countdown) Remaining() float64 {
	return c.remaining
}
