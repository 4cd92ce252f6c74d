package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/meghashyamc/swingpong/audio"
	"github.com/meghashyamc/swingpong/config"
	"github.com/meghashyamc/swingpong/display"
	"github.com/meghashyamc/swingpong/input"
	"github.com/meghashyamc/swingpong/logger"
	"github.com/meghashyamc/swingpong/trace"
	"github.com/meghashyamc/swingpong/window"
)

type Game struct {
	cfg       *config.Config
	settings  Settings
	signal    *SwingSignal
	sim       *Simulation
	clock     Clock
	recorder  *trace.Recorder
	cue       *audio.HitCue
	logger    logger.Logger
	logCloser io.Closer
	stdin     io.Reader
	stdout    io.Writer
}

func NewGame(cfg *config.Config) (*Game, error) {
	log, logCloser, err := logger.Open(cfg.GetLogFile(), cfg.GetLogLevel())
	if err != nil {
		return nil, err
	}

	settings := SettingsFromConfig(cfg)
	if err := settings.Validate(); err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("invalid game settings: %w", err)
	}

	recorder, err := trace.NewRecorder(cfg.GetTraceDir())
	if err != nil {
		logCloser.Close()
		return nil, err
	}
	if err := recorder.WriteConfig(cfg); err != nil {
		log.Warn("failed to save config snapshot", "err", err)
	}

	g := &Game{
		cfg:       cfg,
		settings:  settings,
		signal:    NewSwingSignal(),
		sim:       NewSimulation(settings, log),
		clock:     SystemClock,
		recorder:  recorder,
		logger:    log,
		logCloser: logCloser,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
	}

	if cfg.GetAudioEnabled() {
		cue := audio.NewHitCue(log)
		if err := cue.Initialize(); err != nil {
			// Non-fatal, the round plays without sound
			log.Warn("audio initialization failed", "err", err)
		} else {
			g.cue = cue
		}
	}

	g.logger.Info("game initialized",
		"frontend", cfg.GetFrontend(),
		"halfPaddle", settings.HalfPaddle,
		"velocity", settings.InitialVelocity,
		"timingBonus", settings.TimingBonus,
		"tick", settings.TickDuration,
	)
	return g, nil
}

// Run plays a single round on the configured frontend and releases
// everything the game opened.
func (g *Game) Run() error {
	defer g.cleanup()

	switch frontend := g.cfg.GetFrontend(); frontend {
	case config.FrontendTerminal:
		return g.runTerminal()
	case config.FrontendScreen:
		return g.runScreen()
	case config.FrontendWindow:
		return g.runWindow()
	default:
		return fmt.Errorf("unknown frontend %q", frontend)
	}
}

func (g *Game) runTerminal() error {
	term := display.NewTerminal(g.stdout, g.settings.Columns, g.logger)
	if err := term.Init(); err != nil {
		return err
	}

	return g.play(context.Background(), term, input.NewLineReader(g.stdin, g.logger))
}

func (g *Game) runScreen() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}

	disp := display.NewScreen(screen, g.settings.Columns, g.logger)
	defer disp.Close(g.stdout)

	return g.play(context.Background(), disp, input.NewScreenKeys(screen, g.logger))
}

// runWindow hands the main goroutine to ebiten and plays the round in the
// background. Closing the window ends the round.
func (g *Game) runWindow() error {
	frontend := window.New(window.Options{
		Width:      g.cfg.GetWindowWidth(),
		Height:     g.cfg.GetWindowHeight(),
		Title:      g.cfg.GetWindowTitle(),
		HalfPaddle: g.settings.HalfPaddle,
	}, g.logger)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- g.playWhenReady(ctx, frontend.Ready(), frontend, frontend)
	}()

	showErr := frontend.Show()
	cancel()

	if err := <-result; err != nil {
		return err
	}
	if showErr != nil {
		return fmt.Errorf("failed to run window: %w", showErr)
	}
	return nil
}

// playWhenReady holds the round until ready is closed, so no tick passes
// before the player can see the track.
func (g *Game) playWhenReady(ctx context.Context, ready <-chan struct{}, disp display.Display, src input.Source) error {
	select {
	case <-ready:
	case <-ctx.Done():
		return nil
	}
	return g.play(ctx, disp, src)
}

// play runs the loop and the input source side by side. The source is
// stopped once the loop returns; a source error stops the loop.
func (g *Game) play(ctx context.Context, disp display.Display, src input.Source) error {
	loop := NewLoop(g.sim, g.signal, disp, g.clock, g.settings.TickDuration, g.logger)
	loop.AddHook(g.recordTick)
	loop.AddHook(g.playHit)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return src.Run(ctx, g.signal)
	})
	grp.Go(func() error {
		defer cancel()
		return loop.Run(ctx)
	})

	err := grp.Wait()
	if errors.Is(err, input.ErrQuit) {
		g.logger.Info("round abandoned by player", "ticks", g.sim.LastTick().Number)
		return nil
	}
	return err
}

func (g *Game) recordTick(t Tick) {
	err := g.recorder.Record(trace.Row{
		Tick:       t.Number,
		Position:   t.Position,
		Velocity:   t.Velocity,
		Swung:      t.Swung,
		Hit:        t.Hit,
		JustTiming: t.JustTiming,
	})
	if err != nil {
		g.logger.Warn("failed to record tick", "tick", t.Number, "err", err)
	}
}

func (g *Game) playHit(t Tick) {
	if t.Hit && g.cue != nil {
		g.cue.Play(t.JustTiming)
	}
}

func (g *Game) cleanup() {
	if err := g.recorder.Close(); err != nil {
		g.logger.Warn("failed to close trace", "err", err)
	}
	if g.cue != nil {
		g.cue.Cleanup()
	}
	g.logCloser.Close()
}
