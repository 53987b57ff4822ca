package breakout

import "slices"

// PauseReason is the tag of the lifecycle state machine. NotPaused means Running.
type PauseReason int

const (
	NotPaused PauseReason = iota
	PausedManual
	PausedLifeLost
	PausedGameOver
	PausedLevelCleared
)

func (r PauseReason) String() string {
	switch r {
	case NotPaused:
		return "running"
	case PausedManual:
		return "paused"
	case PausedLifeLost:
		return "life-lost"
	case PausedGameOver:
		return "game-over"
	case PausedLevelCleared:
		return "level-cleared"
	default:
		return "unknown"
	}
}

// Overlay texts shown while paused.
const (
	OverlayResume   = "Paused - click to resume"
	OverlayGameOver = "Game over - click to restart"
	OverlayCleared  = "Level cleared - click to restart"
)

// State is the complete game state advanced by Step.
type State struct {
	Config Config

	Ball       Ball
	Paddle     Paddle
	Blocks     []Block
	Explosions []Explosion
	Trail      Trail

	Lives int
	Pause PauseReason
	Tick  uint64
}

// NewState returns a running game with a fresh grid, the ball centered and the
// paddle in its initial position.
func NewState(cfg Config) State {
	return State{
		Config: cfg,
		Ball:   initialBall(cfg),
		Paddle: Paddle{
			X: cfg.Width / 2,
			Y: cfg.Height - (BlockHeight + Margin),
		},
		Blocks: GenerateBlocks(cfg.Width),
		Lives:  cfg.Lives,
	}
}

func initialBall(cfg Config) Ball {
	return Ball{
		X:  cfg.Width / 2,
		Y:  cfg.Height / 2,
		VX: InitialVelocityX,
		VY: InitialVelocityY,
	}
}

// Paused reports whether the simulation is suspended.
func (s State) Paused() bool {
	return s.Pause != NotPaused
}

// GameOver reports whether all lives are spent.
func (s State) GameOver() bool {
	return s.Lives == 0
}

// Cleared reports whether every block has been destroyed.
func (s State) Cleared() bool {
	return len(s.Blocks) == 0
}

// Overlay returns the text to draw over the play field, or "" while running.
func (s State) Overlay() string {
	switch s.Pause {
	case NotPaused:
		return ""
	case PausedGameOver:
		return OverlayGameOver
	case PausedLevelCleared:
		return OverlayCleared
	default:
		return OverlayResume
	}
}

// clone copies the slices so the returned state can be mutated freely.
func (s State) clone() State {
	s.Blocks = slices.Clone(s.Blocks)
	s.Explosions = slices.Clone(s.Explosions)
	s.Trail = slices.Clone(s.Trail)
	return s
}

// toggle handles a click. It returns true when the click restarted the game.
func toggle(s State) (State, bool) {
	switch s.Pause {
	case NotPaused:
		s.Pause = PausedManual
		return s, false
	case PausedGameOver:
		s.Lives = s.Config.Lives
		s.Blocks = GenerateBlocks(s.Config.Width)
		s.Explosions = nil
		s.Ball = initialBall(s.Config)
		s.Trail = nil
		s.Pause = NotPaused
		return s, true
	case PausedLevelCleared:
		s.Blocks = GenerateBlocks(s.Config.Width)
		s.Ball.X, s.Ball.Y = s.Config.Width/2, s.Config.Height/2
		s.Trail = nil
		s.Pause = NotPaused
		return s, true
	default:
		s.Pause = NotPaused
		return s, false
	}
}

// loseLife recenters the ball and clears the trail. The last life also resets
// the velocity and ends the game.
func loseLife(s State) State {
	s.Lives--
	s.Ball.X, s.Ball.Y = s.Config.Width/2, s.Config.Height/2
	s.Trail = nil

	switch {
	case s.Lives <= 0:
		s.Lives = 0
		s.Ball.VX, s.Ball.VY = InitialVelocityX, InitialVelocityY
		s.Pause = PausedGameOver
	case s.Config.PauseOnLifeLost:
		s.Pause = PausedLifeLost
	}
	return s
}

// fadeExplosions counts every explosion down by one frame and drops the spent ones.
func fadeExplosions(explosions []Explosion) []Explosion {
	live := explosions[:0]
	for _, e := range explosions {
		e.Frames--
		if e.Frames > 0 {
			live = append(live, e)
		}
	}
	return live
}
