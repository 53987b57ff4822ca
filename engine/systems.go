package engine

import (
	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/render"
)

// InputSystem collects the input queued since the previous frame.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	frame.World.input = frame.World.TakeInput()
}

// SimulationSystem advances the game by one tick.
type SimulationSystem struct{}

func (s *SimulationSystem) Execute(frame *UpdateFrame) {
	w := frame.World
	w.State, w.Events = breakout.Step(w.State, w.input)
	w.input = breakout.Input{}
}

// MetricsSystem records the events of the tick that just ran.
type MetricsSystem struct{}

func (s *MetricsSystem) Execute(frame *UpdateFrame) {
	frame.World.Metrics.Record(frame.World.State, frame.World.Events)
}

// RenderSystem draws the current state onto Surface. A nil Surface skips drawing.
type RenderSystem struct {
	Surface render.Surface
}

func (s *RenderSystem) Execute(frame *UpdateFrame) {
	if s.Surface == nil {
		return
	}
	render.Draw(s.Surface, frame.World.State)
}

// AutopilotSystem steers the paddle under the ball and restarts finished games.
// It must be registered before InputSystem.
type AutopilotSystem struct {
	// Offset shifts the aim point relative to the ball center.
	Offset float64
	// Restart clicks whenever the game is over or the level is cleared.
	Restart bool
}

func (s *AutopilotSystem) Execute(frame *UpdateFrame) {
	state := frame.World.State

	switch state.Pause {
	case breakout.NotPaused:
		frame.World.MovePointer(state.Ball.X + s.Offset)
	case breakout.PausedGameOver, breakout.PausedLevelCleared:
		if s.Restart {
			frame.World.Click()
		}
	}
}

// RegisterGameSystems registers the systems of one simulation tick in order.
func RegisterGameSystems(s *Scheduler) {
	s.Register(&InputSystem{})
	s.Register(&SimulationSystem{})
	s.Register(&MetricsSystem{})
}
