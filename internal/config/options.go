package config

import (
	"io"
	"time"

	"git.lost.host/meutraa/dancehero/internal/game"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Options are the user facing settings parsed from the command line.
type Options struct {
	Volume      float64
	Muted       bool
	NoAudio     bool
	LogLevel    string
	LogFile     string
	Keys        []rune
	FramePeriod time.Duration
	History     string
	ExportLoop  string // Render the backing loop to this WAV file and exit
}

// Parse reads the command line into Options. Usage output goes to w.
func Parse(args []string, w io.Writer) (Options, error) {
	var o Options
	app := kingpin.New("dancehero", "Press the arrows in time with the music.")
	app.Version("0.3.0")
	app.UsageWriter(w)
	app.ErrorWriter(w)
	app.Terminate(nil)

	app.Flag("volume", "Master volume between 0 and 1").Default("0.7").Short('v').Float64Var(&o.Volume)
	app.Flag("mute", "Start muted").Short('m').BoolVar(&o.Muted)
	app.Flag("no-audio", "Never open the audio device").BoolVar(&o.NoAudio)
	app.Flag("log-level", "Log level").Default("info").EnumVar(&o.LogLevel, "debug", "info", "error", "none")
	app.Flag("log-file", "Write logs to this file").Default("").Short('l').StringVar(&o.LogFile)
	keys := app.Flag("keys", "Keys for up, down, left and right").Default("kjhl").Short('k').String()
	app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').DurationVar(&o.FramePeriod)
	app.Flag("history", "SQLite data source for the session judgement log").Default(":memory:").StringVar(&o.History)

	app.Flag("export-loop", "Write 16 beats of the backing loop to a WAV file and exit").PlaceHolder("FILE").StringVar(&o.ExportLoop)

	if _, err := app.Parse(args); nil != err {
		return o, errors.Wrap(err, "unable to parse arguments")
	}

	o.Keys = []rune(*keys)
	if len(o.Keys) != game.NKeys {
		return o, errors.Errorf("expected %d keys, got %q", game.NKeys, *keys)
	}
	if o.Volume < 0 || o.Volume > 1 {
		return o, errors.Errorf("volume %v is outside [0, 1]", o.Volume)
	}
	if o.FramePeriod <= 0 {
		return o, errors.New("frame period must be positive")
	}
	return o, nil
}

// KeyDirection maps a key press to a lane. Arrow keys always work, runes
// are looked up in Keys.
func (o Options) KeyDirection(r rune, key keyboard.Key) (game.Direction, bool) {
	switch key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}
	if r == 0 {
		return -1, false
	}
	for i, c := range o.Keys {
		if r == c {
			return game.Direction(i), true
		}
	}
	return -1, false
}
