package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/debugui"
	debugui_ebiten "github.com/plus3/brickfall/debugui/ebiten"
	"github.com/plus3/brickfall/engine"
	"github.com/plus3/brickfall/render/ebitensurface"
)

const title = "Brickfall"

// Game drives two schedulers over one world: the update scheduler advances the
// simulation at the ebiten tick rate, the draw scheduler renders it.
type Game struct {
	World           *engine.World
	UpdateScheduler *engine.Scheduler
	DrawScheduler   *engine.Scheduler

	surface *ebitensurface.Surface
	imgui   *debugui.ImguiSystem
	backend *debugui_ebiten.ImguiBackend

	cursorX, cursorY int
	touches          []ebiten.TouchID
}

func main() {
	cfg := breakout.DefaultConfig()
	flag.Float64Var(&cfg.Width, "width", cfg.Width, "Width of the play field in pixels.")
	flag.Float64Var(&cfg.Height, "height", cfg.Height, "Height of the play field in pixels.")
	flag.IntVar(&cfg.Lives, "lives", cfg.Lives, "Lives per game.")
	flag.BoolVar(&cfg.PauseOnLifeLost, "pause-on-life-lost", cfg.PauseOnLifeLost, "Pause after every lost life.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug panels.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	world := engine.NewWorld(cfg)

	update := engine.NewScheduler(world)
	engine.RegisterGameSystems(update)

	surface := ebitensurface.New(nil)
	draw := engine.NewScheduler(world)
	draw.Register(&engine.RenderSystem{Surface: surface})

	game := &Game{
		World:           world,
		UpdateScheduler: update,
		DrawScheduler:   draw,
		surface:         surface,
	}

	if *debug {
		game.backend = debugui_ebiten.NewImguiBackend(title, int(cfg.Width), int(cfg.Height))
		game.imgui = &debugui.ImguiSystem{
			Panels: []debugui.Panel{
				&debugui.StateInspector{},
				&debugui.DestructionLog{},
				debugui.NewPerformanceStats(120, update, draw),
			},
		}
		update.Register(game.imgui)
	} else {
		ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetTPS(breakout.FPS)

	log.Printf("Starting %s (%.0fx%.0f, %d lives)", title, cfg.Width, cfg.Height, cfg.Lives)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
	log.Printf("Played %d ticks, destroyed %d blocks", world.Metrics.Ticks, world.Metrics.BlocksDestroyed)
}

func (g *Game) Update() error {
	if g.backend != nil {
		g.backend.BeginFrame()
		defer g.backend.EndFrame()
	}

	if !g.keyboardCaptured() {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.World.Click()
		}
	}
	if !g.mouseCaptured() {
		g.forwardPointer()
	}

	g.UpdateScheduler.Once(1.0 / breakout.FPS)
	return nil
}

// forwardPointer hands mouse and touch input to the world.
func (g *Game) forwardPointer() {
	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.World.MovePointer(float64(x))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.World.Click()
	}

	for _, id := range ebiten.AppendTouchIDs(g.touches[:0]) {
		tx, _ := ebiten.TouchPosition(id)
		g.World.MovePointer(float64(tx))
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		g.World.Click()
	}
}

func (g *Game) mouseCaptured() bool {
	return g.imgui != nil && g.imgui.InputState.WantCaptureMouse
}

func (g *Game) keyboardCaptured() bool {
	return g.imgui != nil && g.imgui.InputState.WantCaptureKeyboard
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Image = screen
	g.DrawScheduler.Once(0)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.World.State.Config
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return int(cfg.Width), int(cfg.Height)
}
