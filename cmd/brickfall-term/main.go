package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/engine"
	"github.com/plus3/brickfall/render/termsurface"
)

// showSystem flushes the frame drawn by the render system to the terminal.
type showSystem struct {
	surface *termsurface.Surface
}

func (s *showSystem) Execute(frame *engine.UpdateFrame) {
	s.surface.Show()
}

func main() {
	cfg := breakout.DefaultConfig()
	flag.Float64Var(&cfg.Width, "width", cfg.Width, "Width of the play field in surface pixels.")
	flag.Float64Var(&cfg.Height, "height", cfg.Height, "Height of the play field in surface pixels.")
	flag.IntVar(&cfg.Lives, "lives", cfg.Lives, "Lives per game.")
	flag.BoolVar(&cfg.PauseOnLifeLost, "pause-on-life-lost", cfg.PauseOnLifeLost, "Pause after every lost life.")
	fps := flag.Int("fps", breakout.FPS, "Ticks per second.")
	logFile := flag.String("log", "", "Write log output to this file instead of discarding it.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *fps <= 0 {
		log.Fatalf("Invalid configuration: fps must be positive, got %d", *fps)
	}

	// The terminal is owned by tcell while the game runs.
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	world := engine.NewWorld(cfg)
	if err := run(world, time.Second/time.Duration(*fps)); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Terminal game failed: %v", err)
	}
	fmt.Printf("Played %d ticks, destroyed %d blocks, lost %d lives\n",
		world.Metrics.Ticks, world.Metrics.BlocksDestroyed, world.Metrics.LivesLost)
}

func run(world *engine.World, interval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cfg := world.State.Config
	surface := termsurface.New(screen, cfg.Width, cfg.Height)

	scheduler := engine.NewScheduler(world)
	engine.RegisterGameSystems(scheduler)
	scheduler.Register(&engine.RenderSystem{Surface: surface})
	scheduler.Register(&showSystem{surface: surface})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, screen, events)
	go forwardInput(ctx, cancel, screen, surface, world, events)

	log.Printf("Running at %s per tick", interval)
	scheduler.Run(ctx, interval)
	log.Printf("Stopped after %d ticks", world.Metrics.Ticks)
	return nil
}

// pollEvents feeds screen events into events until the screen is finalized or
// ctx is done.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// forwardInput translates terminal events into world input until ctx is done or
// the player quits.
func forwardInput(ctx context.Context, quit context.CancelFunc, screen tcell.Screen, surface *termsurface.Surface, world *engine.World, events <-chan tcell.Event) {
	var pressed bool

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					quit()
					return
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					quit()
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					world.Click()
				}
			case *tcell.EventMouse:
				col, _ := ev.Position()
				world.MovePointer(surface.ToSurface(col))

				down := ev.Buttons()&tcell.Button1 != 0
				if down && !pressed {
					world.Click()
				}
				pressed = down
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}
