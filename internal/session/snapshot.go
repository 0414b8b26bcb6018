package session

import (
	"git.lost.host/meutraa/dancehero/internal/beat"
	"git.lost.host/meutraa/dancehero/internal/game"
)

// Snapshot is a read-only copy of the session, safe to keep.
type Snapshot struct {
	Score    int
	Combo    int
	MaxCombo int

	Notes  []game.Note
	Cursor beat.Cursor

	MusicRunning bool
	Running      bool
	Victory      bool
	Pressed      [game.NKeys]bool
	Last         *game.Outcome // The most recent judgement, nil before any
	Judged       int           // Presses judged this session

	HitLine float64
	Height  float64
}
