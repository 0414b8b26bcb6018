package session

import (
	"context"
	"sync/atomic"
	"time"

	"git.lost.host/meutraa/dancehero/internal/beat"
	"git.lost.host/meutraa/dancehero/internal/game"
	"git.lost.host/meutraa/dancehero/internal/log"
	"git.lost.host/meutraa/dancehero/internal/score"
)

// Timer is the part of time.Timer the runner needs.
type Timer interface {
	Stop() bool
}

type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Option func(*Runner)

// WithTickers replaces the wall clock tickers of both clocks.
func WithTickers(f beat.TickerFunc) Option {
	return func(r *Runner) { r.newTicker = f }
}

// WithAfterFunc replaces time.AfterFunc for one-shot timers.
func WithAfterFunc(f AfterFunc) Option {
	return func(r *Runner) { r.afterFunc = f }
}

func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.log = l }
}

const queueSize = 64

type release struct {
	d     game.Direction
	epoch uint64
	id    uint64
}

// Runner owns a Game and serialises everything that touches it: clock
// ticks, one-shot timers and commands all run on the goroutine in Run.
// Commands never block; when the queue is full they are dropped.
type Runner struct {
	game       *Game
	newTicker  beat.TickerFunc
	afterFunc  AfterFunc
	advance    *beat.Clock
	beats      *beat.Clock
	pressedFor time.Duration
	log        *log.Logger

	cmds     chan func()
	releases chan release
	done     chan struct{}

	// Bumped on every start and reset so late timers are ignored
	epoch   uint64
	timerID uint64
	timers  map[uint64]Timer

	snapshot atomic.Value
	updates  chan Snapshot
}

func NewRunner(g *Game, opts ...Option) *Runner {
	r := &Runner{
		game:       g,
		newTicker:  beat.NewRealTicker,
		afterFunc:  realAfterFunc,
		pressedFor: g.cfg.PressedFor,
		log:        g.log,
		cmds:       make(chan func(), queueSize),
		releases:   make(chan release),
		done:       make(chan struct{}),
		timers:     map[uint64]Timer{},
		updates:    make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.advance = beat.NewClock(g.cfg.AdvancePeriod, r.newTicker)
	r.beats = beat.NewClock(g.cfg.BeatPeriod(), r.newTicker)
	r.snapshot.Store(g.Snapshot())
	return r
}

// Run handles events until ctx is done, then halts every schedule.
func (r *Runner) Run(ctx context.Context) error {
	defer r.shutdown()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-r.cmds:
			cmd()
		case <-r.advance.C():
			r.advance.Next()
			r.game.Tick()
		case <-r.beats.C():
			r.beats.Next()
			r.game.Beat()
		case rel := <-r.releases:
			delete(r.timers, rel.id)
			if rel.epoch == r.epoch {
				r.game.Release(rel.d)
			}
		}
		if !r.game.Running() {
			r.stopClocks()
		}
		r.publish()
	}
}

func (r *Runner) shutdown() {
	r.game.Reset()
	r.stopClocks()
	r.stopTimers()
	r.publish()
	close(r.done)
}

// Done is closed once Run has returned and every schedule is halted.
func (r *Runner) Done() <-chan struct{} { return r.done }

func (r *Runner) enqueue(name string, cmd func()) {
	select {
	case r.cmds <- cmd:
	default:
		r.log.Debugf("command queue full, dropped %s", name)
	}
}

func (r *Runner) stopClocks() {
	r.advance.Stop()
	r.beats.Stop()
}

func (r *Runner) stopTimers() {
	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
	}
}

func (r *Runner) publish() {
	s := r.game.Snapshot()
	r.snapshot.Store(s)
	select {
	case r.updates <- s:
	default:
		// Latest wins
		select {
		case <-r.updates:
		default:
		}
		select {
		case r.updates <- s:
		default:
		}
	}
}

// StartSession begins a new session. The first beat is played at once.
func (r *Runner) StartSession() {
	r.enqueue("start", func() {
		r.epoch++
		r.stopTimers()
		r.stopClocks()
		r.game.Start()
		r.advance.Start()
		r.beats.Start()
		r.game.Beat()
	})
}

func (r *Runner) ResetSession() {
	r.enqueue("reset", func() {
		r.epoch++
		r.stopTimers()
		r.stopClocks()
		r.game.Reset()
	})
}

// HandleDirectionInput judges a press against the notes on the field at
// the moment it is handled. Unknown directions are ignored.
func (r *Runner) HandleDirectionInput(d game.Direction) {
	if !d.Valid() {
		r.log.Debugf("ignored invalid direction %d", d)
		return
	}
	r.enqueue("press", func() {
		if _, ok := r.game.Press(d); !ok {
			return
		}
		r.timerID++
		id, epoch := r.timerID, r.epoch
		r.timers[id] = r.afterFunc(r.pressedFor, func() {
			select {
			case r.releases <- release{d: d, epoch: epoch, id: id}:
			case <-r.done:
			}
		})
	})
}

func (r *Runner) SetVolume(level float64) {
	r.enqueue("volume", func() { r.game.SetVolume(level) })
}

func (r *Runner) SetMuted(muted bool) {
	r.enqueue("mute", func() { r.game.SetMuted(muted) })
}

// Snapshot returns the state as of the last handled event.
func (r *Runner) Snapshot() Snapshot {
	return r.snapshot.Load().(Snapshot)
}

// Updates delivers a snapshot after handled events. Only the latest
// unread snapshot is kept.
func (r *Runner) Updates() <-chan Snapshot { return r.updates }

func (r *Runner) Summary() score.Summary {
	return r.game.Summary()
}
