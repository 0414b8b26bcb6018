package audio

import (
	"io"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// ExportLoop renders the given number of beats of the backing loop as a
// 16-bit stereo WAV, without touching the audio device.
func ExportLoop(w io.WriteSeeker, opts Options, beats int) error {
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}
	if opts.BeatPeriod <= 0 || beats <= 0 {
		return errors.New("nothing to export")
	}
	sr := beep.SampleRate(opts.SampleRate)
	l := newLoop(opts.SampleRate, opts.BeatPeriod, noiseBuffer(opts.SampleRate, 1))
	s := beep.Take(l.samplesPerBeat*beats, l)

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, s, format); nil != err {
		return errors.Wrap(err, "unable to encode loop")
	}
	return nil
}
