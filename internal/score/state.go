package score

import "git.lost.host/meutraa/dancehero/internal/game"

type State struct {
	Score    int
	Combo    int
	MaxCombo int
}

// Apply multiplies the points of a hit by the combo it extends, so the
// nth hit in a row is worth n times its base points. A miss breaks the combo.
func (s *State) Apply(o game.Outcome) {
	if !o.Hit {
		s.Combo = 0
		return
	}
	s.Score += o.Points * (s.Combo + 1)
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
}

func (s *State) Reset() {
	*s = State{}
}
