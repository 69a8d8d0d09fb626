package engine

import "time"

//bounds for the simulation interval
const (
	DefInterval  = 100 * time.Millisecond
	MinInterval  = 30 * time.Millisecond
	MaxInterval  = time.Second
	IntervalStep = 10 * time.Millisecond
)

//Clock holds the simulation cadence parameters
//mutated only by the engine loop
type Clock struct {
	Interval time.Duration
	Paused   bool
}

//SpeedUp shortens the interval by one step, clamped at MinInterval
func (c *Clock) SpeedUp() time.Duration {
	c.Interval -= IntervalStep
	if c.Interval < MinInterval {
		c.Interval = MinInterval
	}
	return c.Interval
}

//SlowDown lengthens the interval by one step, clamped at MaxInterval
func (c *Clock) SlowDown() time.Duration {
	c.Interval += IntervalStep
	if c.Interval > MaxInterval {
		c.Interval = MaxInterval
	}
	return c.Interval
}

//TogglePause flips the paused flag and reports the new value
func (c *Clock) TogglePause() bool {
	c.Paused = !c.Paused
	return c.Paused
}
