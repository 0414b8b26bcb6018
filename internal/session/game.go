// Package session ties the beat clock, note field, judge, score and audio
// together. Game is the single owner of all session state and is not safe
// for concurrent use; Runner drives it from one goroutine.
package session

import (
	"git.lost.host/meutraa/dancehero/internal/audio"
	"git.lost.host/meutraa/dancehero/internal/beat"
	"git.lost.host/meutraa/dancehero/internal/config"
	"git.lost.host/meutraa/dancehero/internal/field"
	"git.lost.host/meutraa/dancehero/internal/game"
	"git.lost.host/meutraa/dancehero/internal/log"
	"git.lost.host/meutraa/dancehero/internal/score"
)

type Game struct {
	cfg     config.Config
	audio   audio.Engine
	history score.Recorder
	log     *log.Logger

	sequencer *beat.Sequencer
	field     *field.Field
	judge     score.Scorer
	state     score.State

	running bool
	victory bool
	judging bool
	pressed [game.NKeys]bool
	last    *game.Outcome
	judged  int
}

func NewGame(cfg config.Config, playlist beat.Playlist, a audio.Engine, history score.Recorder, logger *log.Logger) *Game {
	if nil == a {
		a = audio.Silent{}
	}
	if nil == history {
		history = score.Discard{}
	}
	if nil == logger {
		logger = log.Discard()
	}
	return &Game{
		cfg:       cfg,
		audio:     a,
		history:   history,
		log:       logger,
		sequencer: beat.NewSequencer(playlist),
		field:     field.New(cfg.EntryPosition, cfg.ExitPosition, cfg.FadeTicks),
		judge:     score.NewJudge(cfg.HitLine(), cfg.Tolerance, cfg.Judgements),
	}
}

// Start begins a fresh session.
func (g *Game) Start() {
	g.state.Reset()
	g.history.Reset()
	g.sequencer.Reset()
	g.field = field.New(g.cfg.EntryPosition, g.cfg.ExitPosition, g.cfg.FadeTicks)
	g.victory = false
	g.judging = false
	g.pressed = [game.NKeys]bool{}
	g.last = nil
	g.judged = 0
	g.running = true
	g.audio.StartMusic()
	g.log.Infof("session started at %d bpm", g.cfg.BPM)
}

// Reset ends the session and clears the field. The score stays readable
// until the next Start.
func (g *Game) Reset() {
	g.running = false
	g.judging = false
	g.pressed = [game.NKeys]bool{}
	g.field.Reset()
	g.audio.StopMusic()
	g.log.Infof("session reset")
}

func (g *Game) Running() bool { return g.running }

// Beat handles one beat clock tick.
func (g *Game) Beat() {
	if !g.running {
		return
	}
	d, ok := g.sequencer.Advance()
	if !ok {
		return
	}
	note := g.field.Spawn(d)
	g.audio.Preview(d)
	g.log.Debugf("spawned note %d in lane %v", note.ID, d)
}

// Tick handles one note advance tick.
func (g *Game) Tick() {
	if !g.running {
		return
	}
	g.field.Advance(g.cfg.Speed)
}

// Press judges a lane press against the notes on the field right now. It
// reports false when the press was ignored: no session, an unknown lane or
// a judgement already underway.
func (g *Game) Press(d game.Direction) (game.Outcome, bool) {
	if !g.running || !d.Valid() {
		return game.Outcome{}, false
	}
	if g.judging {
		g.log.Debugf("dropped press on %v during judgement", d)
		return game.Outcome{}, false
	}
	g.judging = true
	defer func() { g.judging = false }()

	g.pressed[d.Lane()] = true

	o := g.judge.Judge(g.field, d)
	g.state.Apply(o)
	g.history.Record(o, g.state.Combo)
	g.last = &o
	g.judged++

	if !o.Hit {
		g.log.Debugf("miss on %v", d)
		return o, true
	}
	g.audio.Confirm(d)
	g.log.Debugf("%s on %v, note %d off by %.1f", o.Judgement.Name, d, o.NoteID, o.Offset)

	if g.state.Score >= g.cfg.WinScore {
		g.victory = true
		g.running = false
		g.audio.StopMusic()
		g.log.Infof("victory with %d points", g.state.Score)
	}
	return o, true
}

// Release clears the pressed flag of a lane.
func (g *Game) Release(d game.Direction) {
	if d.Valid() {
		g.pressed[d.Lane()] = false
	}
}

func (g *Game) SetVolume(level float64) { g.audio.SetVolume(level) }
func (g *Game) SetMuted(muted bool)     { g.audio.SetMuted(muted) }

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Score:        g.state.Score,
		Combo:        g.state.Combo,
		MaxCombo:     g.state.MaxCombo,
		Notes:        g.field.Notes(),
		Cursor:       g.sequencer.Cursor(),
		MusicRunning: g.audio.MusicRunning(),
		Running:      g.running,
		Victory:      g.victory,
		Pressed:      g.pressed,
		Judged:       g.judged,
		HitLine:      g.cfg.HitLine(),
		Height:       g.cfg.PlayfieldHeight,
	}
	if nil != g.last {
		last := *g.last
		s.Last = &last
	}
	return s
}

// Summary of the judgements so far this session.
func (g *Game) Summary() score.Summary {
	return g.history.Summary()
}
