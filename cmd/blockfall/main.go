package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/events"
	"github.com/lixenwraith/blockfall/game"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/logx"
	"github.com/lixenwraith/blockfall/render"
)

func main() {
	cmd := &cli.Command{
		Name:  "blockfall",
		Usage: "falling-block puzzle with a bomb ultimate, in your terminal",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "mute",
				Usage: "start with audio muted",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "log file path (empty disables logging)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
				Value: "info",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "board width in cells",
				Value: constants.BoardWidth,
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "board height in cells",
				Value: constants.BoardHeight,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(runConfig{
				mute:     c.Bool("mute"),
				logPath:  c.String("log"),
				logLevel: c.String("log-level"),
				width:    int(c.Int("width")),
				height:   int(c.Int("height")),
			})
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runConfig struct {
	mute     bool
	logPath  string
	logLevel string
	width    int
	height   int
}

// uiHandler owns the non-gameplay events: process shutdown, mute
// toggles, and terminal resizes
type uiHandler struct {
	quit   chan struct{}
	sounds *audio.SoundManager
	screen tcell.Screen
}

func (h *uiHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventQuit,
		events.EventToggleMute,
		events.EventResize,
	}
}

func (h *uiHandler) HandleEvent(_ time.Time, event events.GameEvent) {
	switch event.Type {
	case events.EventQuit:
		select {
		case <-h.quit:
		default:
			close(h.quit)
		}
	case events.EventToggleMute:
		h.sounds.ToggleMute()
	case events.EventResize:
		h.screen.Sync()
	}
}

func run(cfg runConfig) error {
	log, closeLog, err := logx.New(cfg.logPath, logx.LevelByString(cfg.logLevel))
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before printing a crash, or the trace is lost
	// in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "blockfall crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	sounds := audio.NewSoundManager()
	sounds.SetMuted(cfg.mute)
	if err := sounds.Initialize(); err != nil {
		log.Warnw("audio unavailable, continuing silent", "error", err)
	}
	defer sounds.Cleanup()

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	session := game.NewSession(clock, game.Config{
		Width:  cfg.width,
		Height: cfg.height,
		Log:    log,
		Sounds: sounds,
	})

	queue := events.NewQueue()
	router := events.NewRouter[time.Time](queue)
	router.Register(session)

	quit := make(chan struct{})
	router.Register(&uiHandler{quit: quit, sounds: sounds, screen: screen})

	scheduler := engine.NewClockScheduler(clock, constants.GameUpdateInterval,
		func(now time.Time) {
			router.DispatchAll(now)
			session.Tick(now)
		})
	scheduler.Start()
	defer scheduler.Stop()

	poller := input.NewPoller(screen, input.DefaultKeyTable(), queue)
	go poller.Run()

	renderer := render.NewRenderer(screen)
	frame := time.NewTicker(constants.FrameUpdateInterval)
	defer frame.Stop()

	log.Infow("blockfall started", "width", cfg.width, "height", cfg.height)

	for {
		select {
		case <-quit:
			log.Infow("blockfall exiting")
			return nil
		case <-frame.C:
			renderer.Draw(session.Snapshot(clock.Now()))
		}
	}
}
