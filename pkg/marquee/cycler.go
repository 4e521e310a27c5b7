package marquee

import "time"

// Cycler is the discrete counterpart of a lane: it walks an index through
// count tiles, advancing every interval, and like a lane it can be paused
// and resumed without skipping or repeating a tile.
type Cycler struct {
	count    int
	interval time.Duration
	start    time.Time
	paused   bool
	// frozen is the elapsed time captured when paused.
	frozen time.Duration
}

// NewCycler starts cycling through count tiles at now.
func NewCycler(count int, interval time.Duration, now time.Time) *Cycler {
	return &Cycler{count: count, interval: interval, start: now}
}

func (c *Cycler) elapsed(now time.Time) time.Duration {
	if c.paused {
		return c.frozen
	}
	return now.Sub(c.start)
}

// Index returns the active tile at now, or -1 when there are no tiles.
func (c *Cycler) Index(now time.Time) int {
	if c.count <= 0 {
		return -1
	}
	if c.interval <= 0 {
		return 0
	}
	elapsed := c.elapsed(now)
	steps := int64(elapsed / c.interval)
	if elapsed%c.interval < 0 {
		steps--
	}
	idx := int(steps % int64(c.count))
	if idx < 0 {
		idx += c.count
	}
	return idx
}

// Progress returns how far through the active tile's interval now is, in
// [0, 1).
func (c *Cycler) Progress(now time.Time) float64 {
	if c.count <= 0 || c.interval <= 0 {
		return 0
	}
	return wrapUnit(float64(c.elapsed(now)) / float64(c.interval))
}

// Pause freezes the cycler at now. Pausing twice keeps the first capture.
func (c *Cycler) Pause(now time.Time) {
	if c.paused {
		return
	}
	c.frozen = now.Sub(c.start)
	c.paused = true
}

// Resume continues from the paused position at now.
func (c *Cycler) Resume(now time.Time) {
	if !c.paused {
		return
	}
	c.start = now.Add(-c.frozen)
	c.paused = false
}

// Paused reports whether the cycler is paused.
func (c *Cycler) Paused() bool {
	return c.paused
}

// Select jumps to tile i at the beginning of its interval.
func (c *Cycler) Select(i int, now time.Time) {
	if c.count <= 0 {
		return
	}
	i = ((i % c.count) + c.count) % c.count
	elapsed := time.Duration(i) * c.interval
	if c.paused {
		c.frozen = elapsed
		return
	}
	c.start = now.Add(-elapsed)
}
