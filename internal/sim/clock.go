package sim

import "time"

// DefaultMaxTicks bounds how many updates one Advance may run. Time owed
// beyond that is dropped so a stalled frame does not trigger a catch-up
// spiral.
const DefaultMaxTicks = 25

// Clock schedules a callback at a fixed interval from measured frame time.
type Clock struct {
	interval  time.Duration
	maxTicks  int
	owed      time.Duration
	sinceLast time.Duration
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval, maxTicks: DefaultMaxTicks}
}

// IntervalFromRate converts an update rate in Hz to a clock interval.
func IntervalFromRate(rate float64) time.Duration {
	return time.Duration(float64(time.Second) / rate)
}

func (c *Clock) SetMaxTicks(n int) {
	if n > 0 {
		c.maxTicks = n
	}
}

func (c *Clock) Interval() time.Duration { return c.interval }

// Advance adds elapsed wall time and calls tick once per whole interval
// owed. tick receives the wall time since its previous call in seconds.
// It returns the number of ticks run and stops at the first error.
func (c *Clock) Advance(elapsed time.Duration, tick func(dt float64) error) (int, error) {
	if c.interval <= 0 {
		return 0, ErrInvalidInterval
	}
	if elapsed > 0 {
		c.owed += elapsed
		c.sinceLast += elapsed
	}

	n := 0
	for c.owed >= c.interval {
		if n == c.maxTicks {
			c.owed = 0
			break
		}
		c.owed -= c.interval
		dt := c.sinceLast.Seconds()
		c.sinceLast = 0
		n++
		if err := tick(dt); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *Clock) Reset() {
	c.owed = 0
	c.sinceLast = 0
}
