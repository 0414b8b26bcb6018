package beat

import "git.lost.host/meutraa/dancehero/internal/game"

// 0 - No note
// 1 - Up
// 2 - Down
// 3 - Left
// 4 - Right
type Pattern []int

type Playlist []Pattern

// DefaultPlaylist goes from simple to complex and then wraps.
var DefaultPlaylist = Playlist{
	{1, 0, 1, 0, 2, 0, 1, 0, 3, 0, 2, 0, 4, 0, 1, 0},
	{1, 2, 0, 3, 1, 0, 4, 2, 0, 1, 3, 0, 2, 4, 0, 1},
	{1, 2, 3, 0, 4, 1, 0, 2, 3, 4, 0, 1, 2, 0, 3, 4},
}

func codeDirection(code int) (game.Direction, bool) {
	if code < 1 || code > game.NKeys {
		return -1, false
	}
	return game.Directions[code-1], true
}

type Cursor struct {
	Pattern int
	Beat    int
}

type Sequencer struct {
	playlist Playlist
	cursor   Cursor
}

// NewSequencer drops empty patterns. An empty playlist never spawns.
func NewSequencer(playlist Playlist) *Sequencer {
	pl := make(Playlist, 0, len(playlist))
	for _, p := range playlist {
		if len(p) > 0 {
			pl = append(pl, p)
		}
	}
	return &Sequencer{playlist: pl}
}

// Advance returns the lane to spawn on for the current beat, if any, and
// moves the cursor on by one beat.
func (s *Sequencer) Advance() (game.Direction, bool) {
	if len(s.playlist) == 0 {
		return -1, false
	}
	pattern := s.playlist[s.cursor.Pattern]
	d, ok := codeDirection(pattern[s.cursor.Beat])

	s.cursor.Beat = (s.cursor.Beat + 1) % len(pattern)
	if s.cursor.Beat == 0 {
		s.cursor.Pattern = (s.cursor.Pattern + 1) % len(s.playlist)
	}
	return d, ok
}

func (s *Sequencer) Cursor() Cursor { return s.cursor }

func (s *Sequencer) Reset() { s.cursor = Cursor{} }

// Period is the number of beats before the spawn sequence repeats.
func (s *Sequencer) Period() int {
	n := 0
	for _, p := range s.playlist {
		n += len(p)
	}
	return n
}
