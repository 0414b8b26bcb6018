package audio

import (
	"time"

	"git.lost.host/meutraa/dancehero/internal/game"
	"git.lost.host/meutraa/dancehero/internal/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

const (
	previewGain  = 0.25
	previewDecay = 150 * time.Millisecond
	confirmGain  = 0.5
	confirmDecay = 400 * time.Millisecond
)

// Output is where the engine's graph is played. Graph changes are only
// made while the output is locked.
type Output interface {
	Init(sr beep.SampleRate) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// Speaker plays through the default audio device.
type Speaker struct{}

func (Speaker) Init(sr beep.SampleRate) error {
	return speaker.Init(sr, sr.N(time.Second/30))
}

func (Speaker) Play(s beep.Streamer) { speaker.Play(s) }
func (Speaker) Lock()                { speaker.Lock() }
func (Speaker) Unlock()              { speaker.Unlock() }

// DefaultEngine mixes voices and the backing loop, then applies the master
// volume and the mute switch:
//
//	voices, loop -> mixer -> gain -> ctrl -> output
type DefaultEngine struct {
	opts  Options
	out   Output
	log   *log.Logger
	noise []float64

	mixer *beep.Mixer
	gain  *effects.Gain
	ctrl  *beep.Ctrl
	loop  *loop

	volume float64
	muted  bool
}

// New opens the output. When that fails the returned engine is Silent and
// the error says why.
func New(opts Options, out Output, logger *log.Logger) (Engine, error) {
	if nil == logger {
		logger = log.Discard()
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}
	if nil == out {
		out = Speaker{}
	}
	if err := out.Init(beep.SampleRate(opts.SampleRate)); nil != err {
		return Silent{}, errors.Wrap(err, "unable to open audio output")
	}

	e := &DefaultEngine{
		opts:   opts,
		out:    out,
		log:    logger,
		noise:  noiseBuffer(opts.SampleRate, 1),
		mixer:  &beep.Mixer{},
		volume: clampVolume(opts.Volume),
		muted:  opts.Muted,
	}
	e.gain = &effects.Gain{Streamer: e.mixer, Gain: e.volume - 1}
	e.ctrl = &beep.Ctrl{Streamer: e.gain, Paused: e.muted}
	out.Play(e.ctrl)
	logger.Infof("audio output open at %d Hz", opts.SampleRate)
	return e, nil
}

func (e *DefaultEngine) pitch(d game.Direction) (float64, bool) {
	if !d.Valid() {
		return 0, false
	}
	return e.opts.Pitches[d.Lane()], true
}

// Muted output would otherwise queue voices and play them all on unmute.
func (e *DefaultEngine) add(v Voice) {
	if e.muted {
		return
	}
	e.out.Lock()
	e.mixer.Add(&voiceStream{v: v})
	e.out.Unlock()
}

func (e *DefaultEngine) Preview(d game.Direction) {
	if freq, ok := e.pitch(d); ok {
		e.add(newTone(freq, previewGain, previewDecay, e.opts.SampleRate))
	}
}

func (e *DefaultEngine) Confirm(d game.Direction) {
	if freq, ok := e.pitch(d); ok {
		e.add(newTone(freq, confirmGain, confirmDecay, e.opts.SampleRate))
	}
}

func (e *DefaultEngine) StartMusic() {
	if nil != e.loop || e.opts.BeatPeriod <= 0 {
		return
	}
	e.loop = newLoop(e.opts.SampleRate, e.opts.BeatPeriod, e.noise)
	e.out.Lock()
	e.mixer.Add(e.loop)
	e.out.Unlock()
	e.log.Debugf("backing loop started, %v per beat", e.opts.BeatPeriod)
}

// StopMusic ends the loop. The mixer drops it on its next pass.
func (e *DefaultEngine) StopMusic() {
	if nil == e.loop {
		return
	}
	e.out.Lock()
	e.loop.stopped = true
	e.out.Unlock()
	e.loop = nil
	e.log.Debugf("backing loop stopped")
}

func (e *DefaultEngine) MusicRunning() bool {
	return nil != e.loop
}

func (e *DefaultEngine) SetVolume(level float64) {
	e.volume = clampVolume(level)
	e.out.Lock()
	e.gain.Gain = e.volume - 1
	e.out.Unlock()
}

// SetMuted pauses the whole graph, so envelopes and the loop hold their
// place until unmuted.
func (e *DefaultEngine) SetMuted(muted bool) {
	e.muted = muted
	e.out.Lock()
	e.ctrl.Paused = muted
	e.out.Unlock()
}

func (e *DefaultEngine) Close() {
	e.StopMusic()
	e.out.Lock()
	e.ctrl.Streamer = nil
	e.out.Unlock()
}
