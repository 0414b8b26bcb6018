package main

import (
	"fmt"

	"git.lost.host/meutraa/dancehero/internal/config"
	"git.lost.host/meutraa/dancehero/internal/game"
	"git.lost.host/meutraa/dancehero/internal/render"
	"git.lost.host/meutraa/dancehero/internal/score"
	"git.lost.host/meutraa/dancehero/internal/session"
	"git.lost.host/meutraa/dancehero/internal/theme"
	"github.com/eiannone/keyboard"
)

const columnSpacing = 6

type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Runner   *session.Runner
	Options  config.Options
	Config   config.Config

	rows, cols  int
	top, bottom int
	hitRow      int
	cis         [game.NKeys]int
	sideCol     int

	volume  float64
	muted   bool
	judged  int
	summary score.Summary
}

func (p *Program) Resize() {
	p.rows, p.cols = p.Renderer.Size()
	p.top = 3
	p.bottom = p.rows - 1
	p.hitRow = p.row(p.Config.HitLine())

	mc := p.cols >> 1
	for i := range p.cis {
		p.cis[i] = mc + (2*i-3)*columnSpacing/2
	}
	p.sideCol = p.cis[0] - 30
	if p.sideCol < 2 {
		p.sideCol = 2
	}
}

// row maps a lane position onto a terminal row.
func (p *Program) row(position float64) int {
	span := float64(p.bottom - p.top)
	return p.top + int(position/p.Config.PlayfieldHeight*span)
}

func (p *Program) Init() {
	p.volume = p.Options.Volume
	p.muted = p.Options.Muted
	p.summary = score.Summary{Counts: map[string]int{}}
	p.Resize()
}

// Update applies the key presses received since the last frame and reports
// whether the program should keep running.
func (p *Program) Update(keys <-chan keyboard.KeyEvent, s session.Snapshot) bool {
	for i := len(keys); i > 0; i-- {
		key := <-keys
		if nil != key.Err {
			continue
		}
		switch {
		case key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC || key.Rune == 'q':
			return false
		case key.Key == keyboard.KeyEnter || key.Key == keyboard.KeySpace:
			if !s.Running {
				p.Runner.StartSession()
			}
		case key.Rune == 'r':
			p.Runner.ResetSession()
		case key.Rune == 'm':
			p.muted = !p.muted
			p.Runner.SetMuted(p.muted)
		case key.Rune == '+' || key.Rune == '=':
			p.setVolume(p.volume + 0.1)
		case key.Rune == '-':
			p.setVolume(p.volume - 0.1)
		default:
			if d, ok := p.Options.KeyDirection(key.Rune, key.Key); ok {
				p.Runner.HandleDirectionInput(d)
			}
		}
	}
	return true
}

func (p *Program) setVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	p.volume = v
	p.Runner.SetVolume(v)
}

func (p *Program) Render(s session.Snapshot) {
	p.Resize()
	p.Renderer.Clear()

	if s.Judged != p.judged {
		p.judged = s.Judged
		p.summary = p.Runner.Summary()
		p.decorate(s.Last)
	}

	p.RenderStatic(s)
	p.RenderGame(s)
}

func (p *Program) decorate(o *game.Outcome) {
	if nil == o || !o.Direction.Valid() {
		return
	}
	name := "Miss"
	if o.Hit {
		name = o.Judgement.Name
	}
	col := p.cis[o.Direction.Lane()] - len(name)/2
	p.Renderer.AddDecoration(col, p.hitRow+1, p.Theme.RenderJudgement(name), 30)
}

func (p *Program) RenderGame(s session.Snapshot) {
	for _, d := range game.Directions {
		p.Renderer.Fill(p.hitRow, p.cis[d.Lane()], p.Theme.RenderHitField(d, s.Pressed[d.Lane()]))
	}

	for _, note := range s.Notes {
		row := p.row(note.Position)
		if row < p.top || row > p.bottom || row == p.hitRow && note.Resolved {
			continue
		}
		p.Renderer.Fill(row, p.cis[note.Direction.Lane()], p.Theme.RenderNote(note.Direction, note.Resolved))
	}
}

func (p *Program) RenderStatic(s session.Snapshot) {
	p.Renderer.Fill(1, p.sideCol, p.Theme.RenderLabel(fmt.Sprintf("Score: %7d   Combo: %4d", s.Score, s.Combo)))

	music := "off"
	if s.MusicRunning {
		music = "on"
	}
	vol := fmt.Sprintf("%3.0f%%", p.volume*100)
	if p.muted {
		vol = "muted"
	}
	p.Renderer.Fill(p.top+1, p.sideCol, fmt.Sprintf("  Max Combo: %6d", s.MaxCombo))
	p.Renderer.Fill(p.top+2, p.sideCol, fmt.Sprintf("    Pattern: %6d", s.Cursor.Pattern+1))
	p.Renderer.Fill(p.top+3, p.sideCol, fmt.Sprintf("       Beat: %6d", s.Cursor.Beat+1))
	p.Renderer.Fill(p.top+4, p.sideCol, fmt.Sprintf("      Music: %6s", music))
	p.Renderer.Fill(p.top+5, p.sideCol, fmt.Sprintf("     Volume: %6s", vol))

	names := make([]string, 0, len(p.Config.Judgements))
	for _, j := range p.Config.Judgements {
		names = append(names, j.Name)
	}
	for i, name := range names {
		p.Renderer.Fill(p.top+7+i, p.sideCol, fmt.Sprintf("%11s: %6d", name, p.summary.Counts[name]))
	}
	p.Renderer.Fill(p.top+7+len(names), p.sideCol, fmt.Sprintf("%11s: %6d", "Miss", p.summary.Misses))
	if p.summary.Hits() > 1 {
		p.Renderer.Fill(p.top+9+len(names), p.sideCol, fmt.Sprintf("       Mean: %6.1f", p.summary.Mean))
		p.Renderer.Fill(p.top+10+len(names), p.sideCol, fmt.Sprintf("      Stdev: %6.1f", p.summary.Stdev))
	}

	mc := p.cols >> 1
	switch {
	case s.Victory:
		msg := fmt.Sprintf("Victory! %d points, max combo %d", s.Score, s.MaxCombo)
		p.Renderer.Fill(p.rows>>1, mc-len(msg)/2, p.Theme.RenderLabel(msg))
		p.Renderer.Fill(p.rows>>1+1, mc-15, "enter to dance again, q to quit")
	case !s.Running:
		msg := fmt.Sprintf("Dance Hero  %d BPM", p.Config.BPM)
		p.Renderer.Fill(p.rows>>1, mc-len(msg)/2, p.Theme.RenderLabel(msg))
		p.Renderer.Fill(p.rows>>1+1, mc-15, "enter to start, arrows to dance")
	}
}
