package beat

import "time"

// Ticker is the part of time.Ticker the clock needs, so tests can tick by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFunc func(period time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

func NewRealTicker(period time.Duration) Ticker {
	return realTicker{t: time.NewTicker(period)}
}

// PeriodFromBPM is the length of one beat, 60000 / BPM milliseconds.
func PeriodFromBPM(bpm int) time.Duration {
	if bpm <= 0 {
		return 0
	}
	return time.Minute / time.Duration(bpm)
}

// Clock emits ticks at a fixed period. Drift is not corrected.
type Clock struct {
	period    time.Duration
	newTicker TickerFunc
	ticker    Ticker
	count     uint64
}

func NewClock(period time.Duration, newTicker TickerFunc) *Clock {
	if newTicker == nil {
		newTicker = NewRealTicker
	}
	return &Clock{period: period, newTicker: newTicker}
}

func (c *Clock) Period() time.Duration { return c.period }

func (c *Clock) Running() bool { return c.ticker != nil }

// Start is a no-op on a running clock or a clock without a period.
func (c *Clock) Start() {
	if c.ticker != nil || c.period <= 0 {
		return
	}
	c.count = 0
	c.ticker = c.newTicker(c.period)
}

// Stop is a no-op on a stopped clock.
func (c *Clock) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
}

// C is nil while stopped, so selecting on it never fires.
func (c *Clock) C() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C()
}

// Next counts a received tick and returns its index, starting at 0.
func (c *Clock) Next() uint64 {
	n := c.count
	c.count++
	return n
}
