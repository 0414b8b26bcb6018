package main

import (
	"context"
	"io"
	"io/ioutil"
	stdlog "log"
	"os"
	"time"

	"git.lost.host/meutraa/dancehero/internal/audio"
	"git.lost.host/meutraa/dancehero/internal/beat"
	"git.lost.host/meutraa/dancehero/internal/config"
	"git.lost.host/meutraa/dancehero/internal/log"
	"git.lost.host/meutraa/dancehero/internal/render"
	"git.lost.host/meutraa/dancehero/internal/score"
	"git.lost.host/meutraa/dancehero/internal/session"
	"git.lost.host/meutraa/dancehero/internal/theme"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

func main() {
	if err := run(); nil != err {
		stdlog.Fatalln(err)
	}
}

func openLog(o config.Options) (*log.Logger, io.Closer, error) {
	if o.LogFile == "" {
		return log.New(ioutil.Discard, log.LevelNone), ioutil.NopCloser(nil), nil
	}
	f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if nil != err {
		return nil, nil, errors.Wrap(err, "unable to open log file")
	}
	return log.New(f, log.LevelFromString(o.LogLevel)), f, nil
}

func exportLoop(o config.Options, cfg config.Config) error {
	f, err := os.Create(o.ExportLoop)
	if nil != err {
		return errors.Wrap(err, "unable to create loop file")
	}
	defer f.Close()
	return audio.ExportLoop(f, audio.Options{BeatPeriod: cfg.BeatPeriod()}, 16)
}

func run() error {
	o, err := config.Parse(os.Args[1:], os.Stderr)
	if nil != err {
		return err
	}
	cfg := config.Default()

	if o.ExportLoop != "" {
		return exportLoop(o, cfg)
	}

	logger, logCloser, err := openLog(o)
	if nil != err {
		return err
	}
	defer logCloser.Close()

	var history score.Recorder = score.Discard{}
	if h, err := score.OpenHistory(o.History, logger); nil != err {
		logger.Warnf("playing without a judgement history: %v", err)
	} else {
		defer h.Close()
		history = h
	}

	var engine audio.Engine = audio.Silent{}
	if !o.NoAudio {
		engine, err = audio.New(audio.Options{
			BeatPeriod: cfg.BeatPeriod(),
			Pitches:    cfg.Pitches,
			Volume:     o.Volume,
			Muted:      o.Muted,
		}, audio.Speaker{}, logger)
		if nil != err {
			logger.Warnf("playing without sound: %v", err)
		}
	}
	defer engine.Close()

	g := session.NewGame(cfg, beat.DefaultPlaylist, engine, history, logger)
	runner := session.NewRunner(g, session.WithLogger(logger))

	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			logger.Errorf("unable to close keyboard: %v", err)
		}
	}()

	r := render.NewDefaultRenderer()
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			logger.Errorf("unable to restore terminal: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		<-runner.Done()
	}()
	go runner.Run(ctx)

	p := &Program{
		Renderer: r,
		Theme:    theme.NewDefaultTheme(),
		Runner:   runner,
		Options:  o,
		Config:   cfg,
	}
	p.Init()

	r.RenderLoop(o.FramePeriod, func(_ time.Duration) bool {
		s := runner.Snapshot()
		if !p.Update(keys, s) {
			return false
		}
		p.Render(s)
		return true
	})
	return nil
}
