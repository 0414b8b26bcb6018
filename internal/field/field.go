// Package field owns the notes that are currently scrolling down the lanes.
package field

import "git.lost.host/meutraa/dancehero/internal/game"

type Field struct {
	entry     float64
	exit      float64
	fadeTicks uint64

	notes  []*game.Note
	nextID uint64
	tick   uint64
}

// New creates an empty field. Notes enter at entry, are removed once past
// exit, and linger for fadeTicks after being resolved.
func New(entry, exit float64, fadeTicks uint64) *Field {
	return &Field{
		entry:     entry,
		exit:      exit,
		fadeTicks: fadeTicks,
		nextID:    1,
	}
}

func (f *Field) Spawn(d game.Direction) game.Note {
	note := &game.Note{
		ID:        f.nextID,
		Direction: d,
		Position:  f.entry,
	}
	f.nextID++
	f.notes = append(f.notes, note)
	return *note
}

// Advance moves every note by delta and drops the ones that left the field
// or finished fading, whether they were hit or not.
func (f *Field) Advance(delta float64) {
	f.tick++
	live := f.notes[:0]
	for _, note := range f.notes {
		note.Position += delta
		if note.Position > f.exit {
			continue
		}
		if note.Resolved && f.tick-note.ResolvedTick > f.fadeTicks {
			continue
		}
		live = append(live, note)
	}
	for i := len(live); i < len(f.notes); i++ {
		f.notes[i] = nil
	}
	f.notes = live
}

// MarkResolved reports whether the note is live. Resolving twice is a no-op.
func (f *Field) MarkResolved(id uint64) bool {
	for _, note := range f.notes {
		if note.ID != id {
			continue
		}
		if !note.Resolved {
			note.Resolved = true
			note.ResolvedTick = f.tick
		}
		return true
	}
	return false
}

// LiveUnresolvedInLane returns copies of the hit-testable notes of a lane,
// oldest first.
func (f *Field) LiveUnresolvedInLane(d game.Direction) []game.Note {
	var out []game.Note
	for _, note := range f.notes {
		if note.Direction == d && !note.Resolved {
			out = append(out, *note)
		}
	}
	return out
}

// Notes returns a copy of every live note, oldest first.
func (f *Field) Notes() []game.Note {
	out := make([]game.Note, len(f.notes))
	for i, note := range f.notes {
		out[i] = *note
	}
	return out
}

func (f *Field) Len() int { return len(f.notes) }

// Reset drops every note. Ids keep counting so none is ever reused.
func (f *Field) Reset() {
	f.notes = nil
	f.tick = 0
}
