package breakout_test

import (
	"testing"

	"github.com/plus3/brickfall/breakout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState() breakout.State {
	return breakout.NewState(breakout.DefaultConfig())
}

func blockIDs(blocks []breakout.Block) []breakout.BlockID {
	ids := make([]breakout.BlockID, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	return ids
}

func TestNewState(t *testing.T) {
	s := newState()

	assert.Equal(t, breakout.Ball{X: 400, Y: 300, VX: 2, VY: 4}, s.Ball)
	assert.Equal(t, breakout.Paddle{X: 400, Y: 565}, s.Paddle)
	assert.Len(t, s.Blocks, 28)
	assert.Equal(t, 3, s.Lives)
	assert.False(t, s.Paused())
	assert.Empty(t, s.Overlay())
}

func TestAdvanceFreeFlight(t *testing.T) {
	s := newState()

	next := breakout.Advance(s, breakout.Input{})

	assert.Equal(t, breakout.Ball{X: 402, Y: 304, VX: 2, VY: 4}, next.Ball)
	assert.Equal(t, s.Lives, next.Lives)
	assert.Equal(t, blockIDs(s.Blocks), blockIDs(next.Blocks))
	assert.Equal(t, breakout.Trail{{X: 400, Y: 300}}, next.Trail)
	assert.Equal(t, uint64(1), next.Tick)

	// the input state is left untouched
	assert.Equal(t, breakout.Ball{X: 400, Y: 300, VX: 2, VY: 4}, s.Ball)
	assert.Empty(t, s.Trail)
}

func TestAdvancePointer(t *testing.T) {
	s := newState()

	next := breakout.Advance(s, breakout.Input{PointerX: 300, PointerMoved: true})
	assert.Equal(t, 250.0, next.Paddle.X)

	next = breakout.Advance(next, breakout.Input{PointerX: 999})
	assert.Equal(t, 250.0, next.Paddle.X, "x without a move event is ignored")
}

func TestAdvanceWhilePaused(t *testing.T) {
	for _, reason := range []breakout.PauseReason{
		breakout.PausedManual,
		breakout.PausedLifeLost,
		breakout.PausedGameOver,
		breakout.PausedLevelCleared,
	} {
		t.Run(reason.String(), func(t *testing.T) {
			s := newState()
			s.Pause = reason

			next := s
			for i := 0; i < 50; i++ {
				next = breakout.Advance(next, breakout.Input{PointerX: float64(i * 10), PointerMoved: true})
			}

			assert.Equal(t, s.Ball, next.Ball)
			assert.Equal(t, s.Paddle, next.Paddle)
			assert.Equal(t, s.Lives, next.Lives)
			assert.Equal(t, blockIDs(s.Blocks), blockIDs(next.Blocks))
			assert.Equal(t, reason, next.Pause)
		})
	}
}

func TestAdvanceEdges(t *testing.T) {
	t.Run("side edge negates vx", func(t *testing.T) {
		s := newState()
		s.Ball = breakout.Ball{X: 797, Y: 300, VX: 4, VY: 4}

		next := breakout.Advance(s, breakout.Input{})
		assert.Equal(t, -4.0, next.Ball.VX)
		assert.Equal(t, 4.0, next.Ball.VY)
	})

	t.Run("top edge negates vy", func(t *testing.T) {
		s := newState()
		s.Ball = breakout.Ball{X: 400, Y: 3, VX: 2, VY: -4}

		next := breakout.Advance(s, breakout.Input{})
		assert.Equal(t, 2.0, next.Ball.VX)
		assert.Equal(t, 4.0, next.Ball.VY)
	})
}

func TestAdvanceLifeLoss(t *testing.T) {
	t.Run("bottom edge costs one life", func(t *testing.T) {
		s := newState()
		s.Paddle.X = 0
		s.Trail = breakout.Trail{{X: 1, Y: 1}, {X: 2, Y: 2}}
		s.Ball = breakout.Ball{X: 400, Y: 596, VX: 2, VY: 4}

		next, ev := breakout.Step(s, breakout.Input{})

		assert.True(t, ev.LifeLost)
		assert.Equal(t, 2, next.Lives)
		assert.Equal(t, 400.0, next.Ball.X)
		assert.Equal(t, 300.0, next.Ball.Y)
		assert.Empty(t, next.Trail)
		assert.False(t, next.Paused())
	})

	t.Run("last life ends the game", func(t *testing.T) {
		s := newState()
		s.Lives = 1
		s.Paddle.X = 0
		s.Ball = breakout.Ball{X: 400, Y: 596, VX: -5, VY: 6}

		next := breakout.Advance(s, breakout.Input{})

		assert.Equal(t, 0, next.Lives)
		assert.True(t, next.GameOver())
		assert.Equal(t, breakout.PausedGameOver, next.Pause)
		assert.Equal(t, breakout.Ball{X: 400, Y: 300, VX: 2, VY: 4}, next.Ball)
		assert.Equal(t, breakout.OverlayGameOver, next.Overlay())
	})

	t.Run("optional pause after every life", func(t *testing.T) {
		cfg := breakout.DefaultConfig()
		cfg.PauseOnLifeLost = true
		s := breakout.NewState(cfg)
		s.Paddle.X = 0
		s.Ball = breakout.Ball{X: 400, Y: 596, VX: 2, VY: 4}

		next := breakout.Advance(s, breakout.Input{})
		assert.Equal(t, breakout.PausedLifeLost, next.Pause)
		assert.Equal(t, breakout.OverlayResume, next.Overlay())

		resumed, ev := breakout.Step(next, breakout.Input{Click: true})
		assert.False(t, resumed.Paused())
		assert.False(t, ev.Restarted)
		assert.Equal(t, 2, resumed.Lives)
	})
}

func TestAdvanceToggle(t *testing.T) {
	t.Run("manual pause and resume", func(t *testing.T) {
		s := newState()

		paused := breakout.Advance(s, breakout.Input{Click: true})
		assert.Equal(t, breakout.PausedManual, paused.Pause)
		assert.Equal(t, s.Ball, paused.Ball)
		assert.Equal(t, breakout.OverlayResume, paused.Overlay())

		resumed := breakout.Advance(paused, breakout.Input{Click: true})
		assert.False(t, resumed.Paused())
		assert.Equal(t, 402.0, resumed.Ball.X)
	})

	t.Run("click after game over restarts", func(t *testing.T) {
		s := newState()
		s.Lives = 0
		s.Pause = breakout.PausedGameOver
		s.Blocks = s.Blocks[:3]
		s.Trail = breakout.Trail{{X: 5, Y: 5}}

		next, ev := breakout.Step(s, breakout.Input{Click: true})

		assert.True(t, ev.Restarted)
		assert.Equal(t, 3, next.Lives)
		assert.Equal(t, blockIDs(breakout.GenerateBlocks(800)), blockIDs(next.Blocks))
		assert.False(t, next.Paused())
		assert.Equal(t, breakout.Ball{X: 402, Y: 304, VX: 2, VY: 4}, next.Ball)
		assert.Equal(t, breakout.Trail{{X: 400, Y: 300}}, next.Trail)
	})
}

func TestAdvancePaddleHit(t *testing.T) {
	s := newState()
	s.Paddle.X = 350
	s.Ball = breakout.Ball{X: 400, Y: 552, VX: 2, VY: 4}

	next, ev := breakout.Step(s, breakout.Input{})

	assert.True(t, ev.PaddleHit)
	assert.Equal(t, 2.0, next.Ball.VX)
	assert.Equal(t, -4.0, next.Ball.VY)
}

func TestAdvancePaddleSlidesUnderBall(t *testing.T) {
	s := newState()
	s.Paddle.X = 0
	s.Ball = breakout.Ball{X: 400, Y: 588, VX: 2, VY: 4}

	next, ev := breakout.Step(s, breakout.Input{PointerX: 400, PointerMoved: true})

	assert.True(t, ev.PaddleHit)
	assert.False(t, ev.LifeLost)
	assert.Equal(t, 3, next.Lives)
	assert.Equal(t, breakout.Ball{X: 402, Y: 592, VX: 2, VY: -4}, next.Ball)
}

func TestAdvancePaddleTakesPrecedence(t *testing.T) {
	s := newState()
	s.Paddle.X = 350
	s.Blocks = []breakout.Block{{ID: 99, X: 350, Y: 560}}
	s.Ball = breakout.Ball{X: 400, Y: 552, VX: 2, VY: 4}

	next, ev := breakout.Step(s, breakout.Input{})

	assert.True(t, ev.PaddleHit)
	assert.Empty(t, ev.Destroyed)
	assert.Len(t, next.Blocks, 1)
}

func hitBottomRowBlock(t *testing.T, s breakout.State) (breakout.State, breakout.Events) {
	t.Helper()
	s.Ball = breakout.Ball{X: 70, Y: 145, VX: 2, VY: -4}

	next, ev := breakout.Step(s, breakout.Input{})
	require.Equal(t, []breakout.BlockID{21}, ev.Destroyed)
	return next, ev
}

func TestAdvanceBlockHit(t *testing.T) {
	next, _ := hitBottomRowBlock(t, newState())

	assert.Len(t, next.Blocks, 27)
	assert.NotContains(t, blockIDs(next.Blocks), breakout.BlockID(21))
	assert.Equal(t, 2.0, next.Ball.VX)
	assert.Equal(t, 4.0, next.Ball.VY, "struck from below, bounces down")

	require.Len(t, next.Explosions, 1)
	assert.Equal(t, breakout.BlockID(21), next.Explosions[0].Block.ID)
	assert.Equal(t, breakout.ExplosionFrames, next.Explosions[0].Frames)
}

func TestExplosionFade(t *testing.T) {
	s, _ := hitBottomRowBlock(t, newState())
	s.Pause = breakout.PausedManual

	for frame := 1; frame < breakout.ExplosionFrames; frame++ {
		s = breakout.Advance(s, breakout.Input{})
		require.Len(t, s.Explosions, 1, "frame %d", frame)
		assert.Equal(t, breakout.ExplosionFrames-frame, s.Explosions[0].Frames)
	}

	s = breakout.Advance(s, breakout.Input{})
	assert.Empty(t, s.Explosions)
}

func TestAdvanceLevelCleared(t *testing.T) {
	s := newState()
	s.Blocks = []breakout.Block{s.Blocks[21]}

	cleared, _ := hitBottomRowBlock(t, s)
	assert.True(t, cleared.Cleared())
	assert.Equal(t, breakout.PausedLevelCleared, cleared.Pause)
	assert.Equal(t, breakout.OverlayCleared, cleared.Overlay())

	next, ev := breakout.Step(cleared, breakout.Input{Click: true})
	assert.True(t, ev.Restarted)
	assert.Len(t, next.Blocks, 28)
	assert.Equal(t, 3, next.Lives)
	assert.Equal(t, breakout.Ball{X: 402, Y: 304, VX: 2, VY: 4}, next.Ball)
}

func TestTrailBounded(t *testing.T) {
	s := newState()
	for i := 0; i < 30; i++ {
		s = breakout.Advance(s, breakout.Input{})
		assert.LessOrEqual(t, len(s.Trail), breakout.TrailLength)
	}

	assert.Len(t, s.Trail, breakout.TrailLength)
	assert.Equal(t, breakout.Point{X: 458, Y: 416}, s.Trail[0])
	assert.Equal(t, breakout.Point{X: 460, Y: 420}, s.Ball.Position())
}
