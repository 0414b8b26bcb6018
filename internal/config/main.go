package config

import (
	"time"

	"git.lost.host/meutraa/dancehero/internal/game"
)

// Config holds the fixed tuning of the game. None of it is exposed on the
// command line.
type Config struct {
	BPM           int
	AdvancePeriod time.Duration // Note advance tick
	Speed         float64       // Position units per advance tick

	PlayfieldHeight float64
	HitLineRatio    float64
	Tolerance       float64
	EntryPosition   float64
	ExitPosition    float64
	FadeTicks       uint64 // Advance ticks a resolved note stays visible

	PressedFor time.Duration // How long a lane shows as pressed
	WinScore   int

	Judgements []game.Judgement
	Pitches    [game.NKeys]float64 // Hz, indexed by lane
}

func Default() Config {
	return Config{
		BPM:           120,
		AdvancePeriod: 16 * time.Millisecond,
		Speed:         1.5,

		PlayfieldHeight: 1000,
		HitLineRatio:    0.88,
		Tolerance:       50,
		EntryPosition:   -50,
		ExitPosition:    1000,
		FadeTicks:       19,

		PressedFor: 150 * time.Millisecond,
		WinScore:   300,

		Judgements: []game.Judgement{
			{Name: "Perfect", Distance: 20, Points: 300},
			{Name: "Great", Distance: 35, Points: 200},
			{Name: "Good", Distance: 50, Points: 150},
			{Name: "OK", Distance: game.Unbounded, Points: 100},
		},
		Pitches: [game.NKeys]float64{
			game.Up:    392.00, // G4
			game.Down:  329.63, // E4
			game.Left:  261.63, // C4
			game.Right: 523.25, // C5
		},
	}
}

func (c Config) HitLine() float64 {
	return c.PlayfieldHeight * c.HitLineRatio
}

// BeatPeriod is 60000 / BPM milliseconds.
func (c Config) BeatPeriod() time.Duration {
	if c.BPM <= 0 {
		return 0
	}
	return time.Minute / time.Duration(c.BPM)
}
