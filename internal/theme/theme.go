package theme

import "git.lost.host/meutraa/dancehero/internal/game"

type Theme interface {
	RenderNote(d game.Direction, resolved bool) string
	RenderHitField(d game.Direction, pressed bool) string
	RenderJudgement(name string) string
	RenderLabel(s string) string
}
