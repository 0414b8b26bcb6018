package session

import (
	"sync"
	"time"

	"git.lost.host/meutraa/dancehero/internal/beat"
	"git.lost.host/meutraa/dancehero/internal/game"
)

// recordingAudio counts what the game asked to be played.
type recordingAudio struct {
	mu       sync.Mutex
	previews []game.Direction
	confirms []game.Direction
	music    bool
	volume   float64
	muted    bool
}

func (a *recordingAudio) Preview(d game.Direction) {
	a.mu.Lock()
	a.previews = append(a.previews, d)
	a.mu.Unlock()
}

func (a *recordingAudio) Confirm(d game.Direction) {
	a.mu.Lock()
	a.confirms = append(a.confirms, d)
	a.mu.Unlock()
}

func (a *recordingAudio) StartMusic()        { a.mu.Lock(); a.music = true; a.mu.Unlock() }
func (a *recordingAudio) StopMusic()         { a.mu.Lock(); a.music = false; a.mu.Unlock() }
func (a *recordingAudio) MusicRunning() bool { a.mu.Lock(); defer a.mu.Unlock(); return a.music }
func (a *recordingAudio) SetVolume(v float64) {
	a.mu.Lock()
	a.volume = v
	a.mu.Unlock()
}
func (a *recordingAudio) SetMuted(m bool) { a.mu.Lock(); a.muted = m; a.mu.Unlock() }
func (a *recordingAudio) Close()          {}

// manualTicker blocks each tick until the runner has received it.
type manualTicker struct {
	period time.Duration
	ch     chan time.Time
	mu     sync.Mutex
	stop   bool
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }

func (m *manualTicker) Stop() {
	m.mu.Lock()
	m.stop = true
	m.mu.Unlock()
}

func (m *manualTicker) stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

type manualTickers struct {
	mu   sync.Mutex
	made []*manualTicker
}

func (f *manualTickers) new(period time.Duration) beat.Ticker {
	t := &manualTicker{period: period, ch: make(chan time.Time)}
	f.mu.Lock()
	f.made = append(f.made, t)
	f.mu.Unlock()
	return t
}

// latest returns the most recent live ticker with the period.
func (f *manualTickers) latest(period time.Duration) *manualTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.made) - 1; i >= 0; i-- {
		if f.made[i].period == period {
			return f.made[i]
		}
	}
	return nil
}

// manualTimer fires only when the test says so.
type manualTimer struct {
	f       func()
	stopped bool
}

func (m *manualTimer) Stop() bool {
	was := !m.stopped
	m.stopped = true
	return was
}

type manualTimers struct {
	mu   sync.Mutex
	made []*manualTimer
}

func (f *manualTimers) afterFunc(d time.Duration, fn func()) Timer {
	t := &manualTimer{f: fn}
	f.mu.Lock()
	f.made = append(f.made, t)
	f.mu.Unlock()
	return t
}

func (f *manualTimers) all() []*manualTimer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*manualTimer(nil), f.made...)
}
