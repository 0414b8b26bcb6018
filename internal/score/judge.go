package score

import (
	"git.lost.host/meutraa/dancehero/internal/game"
)

type Judge struct {
	HitLine    float64
	Tolerance  float64
	Judgements []game.Judgement // Tightest first
}

func NewJudge(hitLine, tolerance float64, judgements []game.Judgement) *Judge {
	return &Judge{HitLine: hitLine, Tolerance: tolerance, Judgements: judgements}
}

// Tier finds the tightest judgement the distance falls inside.
func (j *Judge) Tier(d float64) (int, game.Judgement) {
	for i, judgement := range j.Judgements {
		if d < judgement.Distance {
			return i, judgement
		}
	}
	// Only reachable with a table whose loosest tier is bounded
	last := len(j.Judgements) - 1
	return last, j.Judgements[last]
}

// Pick chooses the note closest to the hit line among candidates in the
// pressed lane. Equal distances go to the older note.
func (j *Judge) Pick(d game.Direction, candidates []game.Note) game.Outcome {
	var closest *game.Note
	distance := j.Tolerance

	for i := range candidates {
		note := &candidates[i]
		if note.Direction != d || note.Resolved {
			continue
		}
		dd := note.Distance(j.HitLine)
		if dd >= j.Tolerance {
			continue
		}
		if nil == closest || dd < distance || (dd == distance && note.ID < closest.ID) {
			closest = note
			distance = dd
		}
	}

	if nil == closest || len(j.Judgements) == 0 {
		return game.Miss(d)
	}

	_, judgement := j.Tier(distance)
	return game.Outcome{
		Hit:       true,
		NoteID:    closest.ID,
		Direction: d,
		Judgement: judgement,
		Points:    judgement.Points,
		Offset:    closest.Position - j.HitLine,
	}
}

func (j *Judge) Judge(f Resolver, d game.Direction) game.Outcome {
	o := j.Pick(d, f.LiveUnresolvedInLane(d))
	if o.Hit {
		f.MarkResolved(o.NoteID)
	}
	return o
}
