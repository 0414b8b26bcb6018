package config

import (
	"io/ioutil"
	"testing"
	"time"

	"git.lost.host/meutraa/dancehero/internal/game"
	"github.com/eiannone/keyboard"
)

func TestParseDefaults(t *testing.T) {
	o, err := Parse([]string{}, ioutil.Discard)
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Volume != 0.7 || o.Muted || o.NoAudio {
		t.Log("options", o)
		t.Fail()
	}
	if o.FramePeriod != 16*time.Millisecond {
		t.Fatalf("expected 16ms frame period, got %v", o.FramePeriod)
	}
	if o.History != ":memory:" {
		t.Fatalf("expected in-memory history, got %q", o.History)
	}
}

var badArgs = [][]string{
	{"--volume", "1.5"},
	{"--keys", "abc"},
	{"--log-level", "loud"},
	{"--frame-period", "0s"},
}

func TestParseRejects(t *testing.T) {
	for _, args := range badArgs {
		if _, err := Parse(args, ioutil.Discard); nil == err {
			t.Log("args", args)
			t.Fail()
		}
	}
}

type keyTest struct {
	r   rune
	key keyboard.Key
}

var keyTests = map[keyTest]game.Direction{
	{0, keyboard.KeyArrowUp}:    game.Up,
	{0, keyboard.KeyArrowDown}:  game.Down,
	{0, keyboard.KeyArrowLeft}:  game.Left,
	{0, keyboard.KeyArrowRight}: game.Right,
	{'w', 0}:                    game.Up,
	{'s', 0}:                    game.Down,
	{'a', 0}:                    game.Left,
	{'d', 0}:                    game.Right,
	{'x', 0}:                    -1,
	{0, keyboard.KeyEsc}:        -1,
}

func TestKeyDirection(t *testing.T) {
	o, err := Parse([]string{"--keys", "wsad"}, ioutil.Discard)
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	for in, expected := range keyTests {
		d, ok := o.KeyDirection(in.r, in.key)
		if (expected == -1 && ok) || (expected != -1 && (!ok || d != expected)) {
			t.Log("input   ", in)
			t.Log("got     ", d, ok)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestDefaultGeometry(t *testing.T) {
	c := Default()
	if c.HitLine() != 880 {
		t.Fatalf("expected hit line at 880, got %v", c.HitLine())
	}
	if c.BeatPeriod() != 500*time.Millisecond {
		t.Fatalf("expected 500ms beat, got %v", c.BeatPeriod())
	}
}
