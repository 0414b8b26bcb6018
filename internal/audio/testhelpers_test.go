package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// pullOutput stands in for the speaker, the test pulls samples itself.
type pullOutput struct {
	mu      sync.Mutex
	initErr error
	root    beep.Streamer
	sr      beep.SampleRate
}

func (p *pullOutput) Init(sr beep.SampleRate) error {
	p.sr = sr
	return p.initErr
}

func (p *pullOutput) Play(s beep.Streamer) { p.root = s }
func (p *pullOutput) Lock()                { p.mu.Lock() }
func (p *pullOutput) Unlock()              { p.mu.Unlock() }

func (p *pullOutput) pull(n int) [][2]float64 {
	buf := make([][2]float64, n)
	p.Lock()
	defer p.Unlock()
	p.root.Stream(buf)
	return buf
}

func peak(buf [][2]float64) float64 {
	m := 0.0
	for _, s := range buf {
		v := s[0]
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}
