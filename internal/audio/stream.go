package audio

import (
	"time"

	"github.com/faiface/beep"
)

// voiceStream adapts a Voice to a mono beep.Streamer.
type voiceStream struct {
	v Voice
}

func (s *voiceStream) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val, done := s.v.Sample()
		if done {
			return i, i > 0
		}
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (s *voiceStream) Err() error { return nil }

// Bass notes, one per beat, A2 F2 C3 G2
var bassLine = []float64{110.00, 87.31, 130.81, 98.00}

const (
	bassGain  = 0.2
	kickGain  = 0.5
	snareGain = 0.25
)

// loop is the backing track. It counts samples, so each beat lands exactly
// one beat period after the previous one, and ends once stopped.
type loop struct {
	sampleRate     int
	beat           time.Duration
	samplesPerBeat int
	noise          []float64

	pos     int // Sample within the current beat
	count   int // Beats started
	voices  []Voice
	stopped bool
}

func newLoop(sampleRate int, beat time.Duration, noise []float64) *loop {
	spb := beep.SampleRate(sampleRate).N(beat)
	if spb < 1 {
		spb = 1
	}
	return &loop{
		sampleRate:     sampleRate,
		beat:           beat,
		samplesPerBeat: spb,
		noise:          noise,
	}
}

func (l *loop) trigger() {
	l.voices = append(l.voices, newBass(bassLine[l.count%len(bassLine)], bassGain, l.beat, l.sampleRate))
	if l.count%2 == 0 {
		l.voices = append(l.voices, newKick(kickGain, l.beat, l.sampleRate))
	} else {
		l.voices = append(l.voices, newSnare(l.noise, snareGain, l.beat, l.sampleRate))
	}
	l.count++
}

func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	if l.stopped {
		return 0, false
	}
	for i := range samples {
		if l.pos == 0 {
			l.trigger()
		}
		var sum float64
		live := l.voices[:0]
		for _, v := range l.voices {
			val, done := v.Sample()
			if done {
				continue
			}
			sum += val
			live = append(live, v)
		}
		l.voices = live
		samples[i][0] = sum
		samples[i][1] = sum

		l.pos++
		if l.pos >= l.samplesPerBeat {
			l.pos = 0
		}
	}
	return len(samples), true
}

func (l *loop) Err() error { return nil }
