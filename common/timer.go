package common

import "time"

// Cooldown stores the timestamp of the last Start on the game clock. A zero
// Cooldown has never been started.
type Cooldown struct {
	at      time.Duration
	started bool
}

func (c *Cooldown) Start(now time.Duration) {
	if c == nil {
		return
	}
	c.at = now
	c.started = true
}

func (c *Cooldown) Reset() {
	if c == nil {
		return
	}
	*c = Cooldown{}
}

func (c *Cooldown) Started() bool {
	return c != nil && c.started
}

// At returns the timestamp of the last Start.
func (c *Cooldown) At() (time.Duration, bool) {
	if c == nil || !c.started {
		return 0, false
	}
	return c.at, true
}

// Elapsed returns the time since Start. The second result is false when the
// cooldown was never started. A clock reading before Start counts as zero.
func (c *Cooldown) Elapsed(now time.Duration) (time.Duration, bool) {
	if c == nil || !c.started {
		return 0, false
	}
	if now < c.at {
		return 0, true
	}
	return now - c.at, true
}

// Expired reports whether d has passed since Start. An unstarted cooldown is
// always expired.
func (c *Cooldown) Expired(now, d time.Duration) bool {
	elapsed, ok := c.Elapsed(now)
	if !ok {
		return true
	}
	return elapsed >= d
}

// Active is the inverse of Expired for started timers. An unstarted timer is
// never active.
func (c *Cooldown) Active(now, d time.Duration) bool {
	if !c.Started() {
		return false
	}
	return !c.Expired(now, d)
}
