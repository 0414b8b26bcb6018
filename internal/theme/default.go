package theme

import (
	"git.lost.host/meutraa/dancehero/internal/game"
	"github.com/charmbracelet/lipgloss"
)

type DefaultTheme struct {
	notes  [game.NKeys]lipgloss.Style
	faded  lipgloss.Style
	field  lipgloss.Style
	label  lipgloss.Style
	judged map[string]lipgloss.Style
}

var (
	syms    = [game.NKeys]string{"▲", "▼", "◀", "▶"}
	barSyms = [game.NKeys]string{"△", "▽", "◁", "▷"}
	colors  = [game.NKeys]lipgloss.Color{
		game.Up:    "#ef4444", // red
		game.Down:  "#3b82f6", // blue
		game.Left:  "#22c55e", // green
		game.Right: "#eab308", // yellow
	}
	judgementColors = map[string]lipgloss.Color{
		"Perfect": "#f0abfc",
		"Great":   "#67e8f9",
		"Good":    "#86efac",
		"OK":      "#fde68a",
		"Miss":    "#f87171",
	}
)

func NewDefaultTheme() *DefaultTheme {
	t := &DefaultTheme{
		faded:  lipgloss.NewStyle().Foreground(lipgloss.Color("#525252")),
		field:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a3a3a3")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e9d5ff")).Bold(true),
		judged: map[string]lipgloss.Style{},
	}
	for i, c := range colors {
		t.notes[i] = lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	for name, c := range judgementColors {
		t.judged[name] = lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return t
}

func (t *DefaultTheme) RenderNote(d game.Direction, resolved bool) string {
	if !d.Valid() {
		return " "
	}
	if resolved {
		return t.faded.Render(syms[d])
	}
	return t.notes[d].Render(syms[d])
}

func (t *DefaultTheme) RenderHitField(d game.Direction, pressed bool) string {
	if !d.Valid() {
		return " "
	}
	if pressed {
		return t.notes[d].Render(syms[d])
	}
	return t.field.Render(barSyms[d])
}

func (t *DefaultTheme) RenderJudgement(name string) string {
	style, ok := t.judged[name]
	if !ok {
		return t.label.Render(name)
	}
	return style.Render(name)
}

func (t *DefaultTheme) RenderLabel(s string) string {
	return t.label.Render(s)
}
