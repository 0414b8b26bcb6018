// Package audio synthesises every sound in the game. Nothing is sampled:
// lane tones are decaying sines, the backing loop is a triangle bass line
// over a kick and a noise snare.
package audio

import (
	"time"

	"git.lost.host/meutraa/dancehero/internal/game"
)

// Engine plays the game's sounds. Every method is safe to call when the
// audio device is missing.
type Engine interface {
	// Preview plays the lane tone when a note spawns
	Preview(d game.Direction)
	// Confirm replays the lane tone louder and longer on a hit
	Confirm(d game.Direction)

	StartMusic()
	StopMusic()
	MusicRunning() bool

	SetVolume(level float64)
	SetMuted(muted bool)
	Close()
}

type Options struct {
	SampleRate int
	BeatPeriod time.Duration
	Pitches    [game.NKeys]float64
	Volume     float64
	Muted      bool
}

// Silent is used when there is no audio device.
type Silent struct{}

func (Silent) Preview(game.Direction) {}
func (Silent) Confirm(game.Direction) {}
func (Silent) StartMusic()            {}
func (Silent) StopMusic()             {}
func (Silent) MusicRunning() bool     { return false }
func (Silent) SetVolume(float64)      {}
func (Silent) SetMuted(bool)          {}
func (Silent) Close()                 {}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
