package session

import (
	"testing"

	"git.lost.host/meutraa/dancehero/internal/beat"
	"git.lost.host/meutraa/dancehero/internal/config"
	"git.lost.host/meutraa/dancehero/internal/game"
)

func newGame(cfg config.Config, playlist beat.Playlist) (*Game, *recordingAudio) {
	a := &recordingAudio{}
	return NewGame(cfg, playlist, a, nil, nil), a
}

func ticks(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

func TestPerfectHitOnFirstNoteWins(t *testing.T) {
	g, a := newGame(config.Default(), beat.Playlist{{1, 0, 2, 0}})
	g.Start()
	g.Beat()

	s := g.Snapshot()
	if len(s.Notes) != 1 || s.Notes[0].Direction != game.Up || s.Notes[0].Position != -50 {
		t.Fatalf("expected an up note at -50, got %+v", s.Notes)
	}

	ticks(g, 620)
	if pos := g.Snapshot().Notes[0].Position; pos != 880 {
		t.Fatalf("expected note at the hit line, got %v", pos)
	}

	o, ok := g.Press(game.Up)
	if !ok || !o.Hit || o.Judgement.Name != "Perfect" || o.Points != 300 {
		t.Fatalf("expected a perfect hit, got %+v", o)
	}

	s = g.Snapshot()
	if s.Score != 300 || s.Combo != 1 || s.MaxCombo != 1 {
		t.Fatalf("unexpected score %+v", s)
	}
	if !s.Victory || s.Running || a.MusicRunning() {
		t.Fatal("expected victory to end the session and the music")
	}
	if len(a.previews) != 1 || len(a.confirms) != 1 || a.confirms[0] != game.Up {
		t.Fatalf("unexpected audio calls %v %v", a.previews, a.confirms)
	}
}

// Positions reachable from -50 in steps of 1.5 that land in each tier
const (
	ticksOK    = 655 // 932.5, 52.5 away
	ticksGood  = 647 // 920.5, 40.5 away
	ticksGreat = 640 // 910, 30 away
)

func wideConfig() config.Config {
	cfg := config.Default()
	cfg.Tolerance = 60
	cfg.WinScore = 1000000
	return cfg
}

func TestConsecutiveHitsMultiply(t *testing.T) {
	g, _ := newGame(wideConfig(), beat.Playlist{{1}})
	g.Start()

	for i, n := range []int{ticksOK, ticksGood, ticksGreat} {
		g.Beat()
		ticks(g, n)
		if o, _ := g.Press(game.Up); !o.Hit {
			t.Fatalf("press %d missed", i)
		}
	}

	s := g.Snapshot()
	if s.Score != 100*1+150*2+200*3 || s.Combo != 3 || s.MaxCombo != 3 {
		t.Fatalf("unexpected score %+v", s)
	}
}

func TestMissBreaksCombo(t *testing.T) {
	g, _ := newGame(wideConfig(), beat.Playlist{{1}})
	g.Start()

	combos := []int{}
	g.Beat()
	ticks(g, ticksOK)
	g.Press(game.Up)
	combos = append(combos, g.Snapshot().Combo)

	if o, ok := g.Press(game.Up); !ok || o.Hit {
		t.Fatalf("expected a miss, got %+v", o)
	}
	combos = append(combos, g.Snapshot().Combo)

	g.Beat()
	ticks(g, ticksOK)
	g.Press(game.Up)
	combos = append(combos, g.Snapshot().Combo)

	s := g.Snapshot()
	if combos[0] != 1 || combos[1] != 0 || combos[2] != 1 {
		t.Fatalf("expected combos 1 0 1, got %v", combos)
	}
	if s.Score != 200 || s.MaxCombo != 1 {
		t.Fatalf("unexpected score %+v", s)
	}
	if sum := g.Summary(); sum.Hits() != 0 {
		t.Fatalf("expected the discard recorder, got %+v", sum)
	}
}

func TestPressIgnored(t *testing.T) {
	g, _ := newGame(config.Default(), beat.DefaultPlaylist)

	if _, ok := g.Press(game.Up); ok {
		t.Fatal("expected press before start to be ignored")
	}

	g.Start()
	g.Beat()
	before := g.Snapshot()
	if _, ok := g.Press(game.Direction(4)); ok {
		t.Fatal("expected an invalid direction to be ignored")
	}

	g.judging = true
	if _, ok := g.Press(game.Up); ok {
		t.Fatal("expected a press during judgement to be dropped")
	}
	g.judging = false

	after := g.Snapshot()
	if after.Score != before.Score || after.Combo != before.Combo || after.Last != nil || after.Pressed != before.Pressed {
		t.Fatalf("ignored presses changed state: %+v -> %+v", before, after)
	}
}

func TestPressedFlag(t *testing.T) {
	g, _ := newGame(config.Default(), beat.DefaultPlaylist)
	g.Start()
	g.Press(game.Left)
	if !g.Snapshot().Pressed[game.Left] {
		t.Fatal("expected left to show as pressed")
	}
	g.Release(game.Left)
	g.Release(game.Direction(-3))
	if g.Snapshot().Pressed[game.Left] {
		t.Fatal("expected left released")
	}
}

func TestResetStopsEverything(t *testing.T) {
	g, a := newGame(config.Default(), beat.DefaultPlaylist)
	g.Start()
	g.Beat()
	g.Beat()
	if !a.MusicRunning() {
		t.Fatal("expected music while running")
	}

	g.Reset()
	g.Beat()
	g.Tick()
	s := g.Snapshot()
	if s.Running || len(s.Notes) != 0 || s.MusicRunning {
		t.Fatalf("expected a stopped empty session, got %+v", s)
	}
	if s.Cursor != (beat.Cursor{Pattern: 0, Beat: 2}) {
		t.Fatalf("expected the cursor to hold at beat 2, got %+v", s.Cursor)
	}

	// A new session starts from scratch
	g.Start()
	s = g.Snapshot()
	if s.Cursor != (beat.Cursor{}) || s.Score != 0 || !s.Running {
		t.Fatalf("expected a fresh session, got %+v", s)
	}
}

func TestBeatFollowsPlaylist(t *testing.T) {
	g, a := newGame(config.Default(), beat.Playlist{{1, 0, 2, 0}})
	g.Start()
	for i := 0; i < 8; i++ {
		g.Beat()
	}
	expected := []game.Direction{game.Up, game.Down, game.Up, game.Down}
	if len(a.previews) != len(expected) {
		t.Fatalf("expected %d previews, got %v", len(expected), a.previews)
	}
	for i, d := range expected {
		if a.previews[i] != d {
			t.Fatalf("preview %d: expected %v, got %v", i, d, a.previews[i])
		}
	}
	notes := g.Snapshot().Notes
	for i := 1; i < len(notes); i++ {
		if notes[i].ID <= notes[i-1].ID {
			t.Fatalf("ids not increasing: %+v", notes)
		}
	}
}
