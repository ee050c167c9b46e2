package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picofb/internal/clock"
	"github.com/vovakirdan/picofb/internal/config"
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
	"github.com/vovakirdan/picofb/internal/platform/headless"
	"github.com/vovakirdan/picofb/internal/platform/sdl"
	"github.com/vovakirdan/picofb/internal/platform/tui"
	"github.com/vovakirdan/picofb/internal/platform/window"
	"github.com/vovakirdan/picofb/internal/registry"
	"github.com/vovakirdan/picofb/internal/snapshot"
)

// session is one demo run on one backend.
type session struct {
	cfg     config.Config
	logger  *log.Logger
	backend engine.Backend
	exit    func(code int)
	limit   int // Frame budget, 0 runs until quit
}

// result summarizes a finished session.
type result struct {
	Frames  int
	Updates uint64
	Elapsed time.Duration
}

// openBackend creates the configured backend. limit is the requested frame
// budget; headless runs always get one so they terminate.
func openBackend(cfg config.Config, logger *log.Logger, limit int) (*session, error) {
	s := &session{cfg: cfg, logger: logger, exit: os.Exit, limit: limit}

	switch cfg.Backend {
	case config.BackendHeadless:
		var clk clock.Clock = clock.NewSystem()
		if cfg.Headless.ManualClock {
			m := clock.NewManual(0)
			m.AutoAdvance = true
			clk = m
		}
		s.backend = headless.New(clk)
		if s.limit <= 0 {
			s.limit = cfg.Headless.Frames
		}
	case config.BackendTUI:
		b, err := tui.New(logger, time.Duration(cfg.Terminal.HoldMS)*time.Millisecond)
		if err != nil {
			return nil, err
		}
		s.backend = b
		s.exit = func(code int) {
			b.ReleaseTerminal()
			os.Exit(code)
		}
	case config.BackendWindow:
		b, err := window.New(logger, cfg.Window.Scale)
		if err != nil {
			return nil, err
		}
		s.backend = b
	case config.BackendSDL:
		b, err := sdl.New(logger)
		if err != nil {
			return nil, err
		}
		s.backend = b
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	return s, nil
}

// launch creates demo id and drives it on the session backend.
func (s *session) launch(id string) (result, error) {
	var res result

	demo, err := registry.Create(id)
	if err != nil {
		return res, err
	}
	rc := runtimeFor(s.cfg, id, demo.Defaults())

	key, err := s.cfg.ScreenshotKey()
	if err != nil {
		return res, err
	}
	loop := &screenshotter{
		Demo:   demo,
		key:    key,
		dir:    s.cfg.Screenshot.Dir,
		format: s.cfg.Screenshot.Format,
		logger: s.logger,
		now:    time.Now,
	}

	err = s.backend.Main(func() error {
		fb, err := engine.New(s.backend, rc, engine.WithLogger(s.logger), engine.WithExit(s.exit))
		if err != nil {
			return errors.Join(err, s.backend.Close())
		}
		if err := demo.Attach(fb); err != nil {
			return errors.Join(err, fb.Destroy())
		}

		start := time.Now()
		if s.limit > 0 {
			res.Frames = fb.Benchmark(loop, s.limit)
		} else {
			fb.Run(loop)
			res.Frames = int(fb.Frames())
		}
		res.Elapsed = time.Since(start)
		res.Updates = fb.Updates()
		return fb.Destroy()
	})
	return res, err
}

// fail reports err and exits. Engine collaborator failures are fatal log
// entries, everything else is a plain error message.
func fail(logger *log.Logger, err error) {
	var op *engine.OpError
	if errors.As(err, &op) {
		logger.Fatal("engine failed", "op", op.Op, "err", op.Err)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// screenshotter saves the main surface after the render callback whenever
// the screenshot key was pressed since the last frame.
type screenshotter struct {
	registry.Demo

	key     core.Key
	dir     string
	format  string
	logger  *log.Logger
	now     func() time.Time
	pending bool
	saved   []string
}

func (s *screenshotter) HandleEvent(fb *engine.Framebuffer, e core.Event) {
	if s.key != core.KeyUnknown && e.IsPress(s.key) {
		s.pending = true
	}
	s.Demo.HandleEvent(fb, e)
}

func (s *screenshotter) Render(h *engine.DrawHandle) {
	s.Demo.Render(h)
	if !s.pending {
		return
	}
	s.pending = false

	path := filepath.Join(s.dir, snapshot.Name(s.ID(), s.format, s.now()))
	if err := snapshot.Save(path, h.Surface()); err != nil {
		s.logger.Error("screenshot failed", "err", err)
		return
	}
	s.saved = append(s.saved, path)
	s.logger.Info("screenshot saved", "path", path)
}
