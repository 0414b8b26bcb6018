package beat

import "time"

// manualTicker is ticked by the test instead of the wall clock.
type manualTicker struct {
	period  time.Duration
	ch      chan time.Time
	stopped bool
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               { m.stopped = true }

func (m *manualTicker) tick() {
	m.ch <- time.Time{}
}

type manualTickers struct {
	made []*manualTicker
}

func (f *manualTickers) new(period time.Duration) Ticker {
	t := &manualTicker{period: period, ch: make(chan time.Time, 16)}
	f.made = append(f.made, t)
	return t
}
