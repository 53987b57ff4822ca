package breakout

import (
	"errors"
	"fmt"
)

// Frame rate the simulation is tuned for. Velocities are expressed in pixels per tick.
const FPS = 60

// Geometry shared by every collision check.
const (
	BallRadius   = 10.0
	BlockWidth   = 100.0
	BlockHeight  = 15.0
	BlockMargin  = 10.0
	Margin       = 20.0
	PaddleWidth  = BlockWidth
	PaddleHeight = BlockHeight
)

// Block grid layout.
const (
	BlockRows    = 4
	BlockColumns = 7
)

// Ball response.
const (
	Dampener         = 0.25
	MinXVelocity     = 2.0
	MaxXVelocity     = 12.0
	InitialVelocityX = 2.0
	InitialVelocityY = 4.0
)

// Lifetimes and limits.
const (
	StartingLives   = 3
	TrailLength     = 10
	ExplosionFrames = 10
)

// Config holds the per-game parameters that are not fixed tuning constants.
type Config struct {
	Width  float64
	Height float64
	Lives  int

	// PauseOnLifeLost pauses the game after every lost life, not only the last one.
	PauseOnLifeLost bool
}

// DefaultConfig returns an 800x600 surface with StartingLives lives.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Lives:  StartingLives,
	}
}

// GridWidth is the horizontal extent of a full row of blocks.
func GridWidth() float64 {
	return (BlockWidth+BlockMargin)*BlockColumns - BlockMargin
}

// Validate reports whether the configuration can host the block grid and paddle.
func (c Config) Validate() error {
	if c.Lives <= 0 {
		return errors.New("lives must be positive")
	}
	if c.Width < GridWidth() {
		return fmt.Errorf("width %.0f is narrower than the block grid (%.0f)", c.Width, GridWidth())
	}
	minHeight := Margin + BlockRows*(BlockHeight+Margin) + 2*BallRadius + PaddleHeight + Margin
	if c.Height < minHeight {
		return fmt.Errorf("height %.0f leaves no room below the block grid (need %.0f)", c.Height, minHeight)
	}
	return nil
}
