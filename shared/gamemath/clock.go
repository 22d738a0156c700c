package gamemath

import "github.com/automoto/followtheleader/mathutil"

// FrameClock turns per-frame timestamps (seconds) into elapsed time.
type FrameClock struct {
	LastUpdate float64
	DT         float64
	// MaxDT caps a single step after a stall. Zero disables the cap.
	MaxDT float64
}

// Tick records now and returns the seconds elapsed since the previous tick.
// The first tick returns 0. Time running backwards also yields 0.
// With MaxDT set, a gap longer than MaxDT returns MaxDT rather than the raw
// now - LastUpdate; the zero value reports the raw gap.
func (c *FrameClock) Tick(now float64) float64 {
	if c.LastUpdate > 0 {
		c.DT = now - c.LastUpdate
	} else {
		c.DT = 0
	}
	c.LastUpdate = now

	if c.MaxDT > 0 {
		c.DT = mathutil.ClampFloat(c.DT, 0, c.MaxDT)
	} else if c.DT < 0 {
		c.DT = 0
	}
	return c.DT
}
