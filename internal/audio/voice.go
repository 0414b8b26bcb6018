package audio

import (
	"math"
	"math/rand"
	"time"
)

// Voice generates samples in the range [-1,1].
type Voice interface {
	// Sample returns the next sample and whether the voice has finished.
	Sample() (float64, bool)
}

// toneVoice is a sine with an exponential decay envelope.
type toneVoice struct {
	i, n  int
	sr    float64
	freq  float64
	gain  float64
	phase float64
}

func newTone(freq, gain float64, dur time.Duration, sampleRate int) *toneVoice {
	return &toneVoice{
		n:    int(float64(sampleRate) * dur.Seconds()),
		sr:   float64(sampleRate),
		freq: freq,
		gain: gain,
	}
}

func (v *toneVoice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	t := float64(v.i) / float64(v.n)
	v.phase += 2 * math.Pi * v.freq / v.sr
	env := math.Exp(-5 * t)
	v.i++
	return math.Sin(v.phase) * env * v.gain, false
}

// bassVoice is a triangle wave that fades over one beat.
type bassVoice struct {
	i, n  int
	sr    float64
	freq  float64
	gain  float64
	phase float64
}

func newBass(freq, gain float64, beat time.Duration, sampleRate int) *bassVoice {
	return &bassVoice{
		n:    int(float64(sampleRate) * beat.Seconds() * 0.9),
		sr:   float64(sampleRate),
		freq: freq,
		gain: gain,
	}
}

func (v *bassVoice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	v.phase += v.freq / v.sr
	if v.phase >= 1.0 {
		v.phase -= 1.0
	}
	var tri float64
	if v.phase < 0.5 {
		tri = 4.0*v.phase - 1.0
	} else {
		tri = 3.0 - 4.0*v.phase
	}
	env := 1 - float64(v.i)/float64(v.n)
	v.i++
	return tri * env * v.gain, false
}

// kickVoice is a decaying sine with a downward pitch bend over half a beat.
type kickVoice struct {
	i, n  int
	sr    float64
	gain  float64
	phase float64
}

func newKick(gain float64, beat time.Duration, sampleRate int) *kickVoice {
	return &kickVoice{
		n:    int(float64(sampleRate) * beat.Seconds() * 0.5),
		sr:   float64(sampleRate),
		gain: gain,
	}
}

func (k *kickVoice) Sample() (float64, bool) {
	if k.i >= k.n {
		return 0, true
	}
	t := float64(k.i) / float64(k.n)
	freq := 150 - 100*t
	k.phase += 2 * math.Pi * freq / k.sr
	env := math.Exp(-5 * t)
	k.i++
	return math.Sin(k.phase) * env * k.gain, false
}

// noiseBuffer is one second of white noise shared by every snare.
func noiseBuffer(sampleRate int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	buf := make([]float64, sampleRate)
	for i := range buf {
		buf[i] = r.Float64()*2 - 1
	}
	return buf
}

// snareVoice plays the noise buffer with a fast decay over a quarter beat.
type snareVoice struct {
	i, n  int
	noise []float64
	gain  float64
}

func newSnare(noise []float64, gain float64, beat time.Duration, sampleRate int) *snareVoice {
	n := int(float64(sampleRate) * beat.Seconds() * 0.25)
	if n > len(noise) {
		n = len(noise)
	}
	return &snareVoice{n: n, noise: noise, gain: gain}
}

func (s *snareVoice) Sample() (float64, bool) {
	if s.i >= s.n {
		return 0, true
	}
	env := math.Exp(-4 * float64(s.i) / float64(s.n))
	v := s.noise[s.i] * env * s.gain
	s.i++
	return v, false
}
