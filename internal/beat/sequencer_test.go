package beat

import (
	"testing"

	"git.lost.host/meutraa/dancehero/internal/game"
)

type step struct {
	d  game.Direction
	ok bool
}

func run(s *Sequencer, n int) []step {
	steps := make([]step, n)
	for i := range steps {
		d, ok := s.Advance()
		steps[i] = step{d, ok}
	}
	return steps
}

func TestSequencerMapsCodes(t *testing.T) {
	s := NewSequencer(Playlist{{1, 0, 2, 0, 3, 4}})
	expected := []step{
		{game.Up, true},
		{-1, false},
		{game.Down, true},
		{-1, false},
		{game.Left, true},
		{game.Right, true},
	}
	for i, got := range run(s, len(expected)) {
		if got != expected[i] {
			t.Fatalf("beat %d: expected %v, got %v", i, expected[i], got)
		}
	}
}

func TestSequencerCursorWraps(t *testing.T) {
	s := NewSequencer(Playlist{{1, 0}, {2, 0, 3}})
	cursors := []Cursor{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {0, 0}, {0, 1}}
	for i, expected := range cursors {
		s.Advance()
		if s.Cursor() != expected {
			t.Fatalf("after beat %d: expected %v, got %v", i, expected, s.Cursor())
		}
	}
}

func TestSequencerIsPeriodic(t *testing.T) {
	s := NewSequencer(DefaultPlaylist)
	period := s.Period()
	if period != 48 {
		t.Fatalf("expected period 48, got %d", period)
	}

	first := run(s, period)
	if s.Cursor() != (Cursor{}) {
		t.Fatalf("expected cursor to return to start, got %v", s.Cursor())
	}
	second := run(s, period)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("beat %d differs between cycles: %v != %v", i, first[i], second[i])
		}
	}

	// A fresh sequencer replays the identical sequence
	fresh := run(NewSequencer(DefaultPlaylist), period)
	for i := range first {
		if first[i] != fresh[i] {
			t.Fatalf("beat %d differs from fresh run: %v != %v", i, first[i], fresh[i])
		}
	}
}

func TestSequencerReset(t *testing.T) {
	s := NewSequencer(DefaultPlaylist)
	run(s, 21)
	s.Reset()
	if s.Cursor() != (Cursor{}) {
		t.Fatalf("expected zero cursor, got %v", s.Cursor())
	}
}

func TestSequencerIgnoresBadCodes(t *testing.T) {
	s := NewSequencer(Playlist{{}, {7, -1, 4}})
	got := run(s, 3)
	expected := []step{{-1, false}, {-1, false}, {game.Right, true}}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("beat %d: expected %v, got %v", i, expected[i], got[i])
		}
	}

	empty := NewSequencer(nil)
	if _, ok := empty.Advance(); ok {
		t.Fatal("expected an empty playlist never to spawn")
	}
}
