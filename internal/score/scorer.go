package score

import "git.lost.host/meutraa/dancehero/internal/game"

// Resolver is the part of the note field a judge needs.
type Resolver interface {
	LiveUnresolvedInLane(d game.Direction) []game.Note
	MarkResolved(id uint64) bool
}

type Scorer interface {
	// Judge a press against the field, resolving the winning note
	Judge(f Resolver, d game.Direction) game.Outcome
}

// Recorder keeps the judgements of the current session.
type Recorder interface {
	Record(o game.Outcome, combo int)
	Summary() Summary
	Reset()
}

type Summary struct {
	Counts map[string]int // Hits per judgement name
	Misses int
	Mean   float64 // Mean signed offset of hits
	Stdev  float64
}

func (s Summary) Hits() int {
	n := 0
	for _, c := range s.Counts {
		n += c
	}
	return n
}
