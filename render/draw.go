package render

import (
	"fmt"
	"image/color"

	"github.com/plus3/brickfall/breakout"
)

var (
	Background = color.RGBA{0, 0, 0, 255}
	Foreground = color.RGBA{255, 255, 255, 255}
)

const (
	// TrailOpacity is the opacity of the most recent trail point.
	TrailOpacity  = 0.5
	hudPadding    = 10
	hudLineHeight = 18
)

// WithAlpha scales a premultiplied color by alpha in [0, 1].
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// TrailAlpha returns the opacity of the i-th trail point, most recent first.
func TrailAlpha(i int) float64 {
	return TrailOpacity * float64(breakout.TrailLength-i) / breakout.TrailLength
}

// Draw renders one frame of s. It only reads the state.
func Draw(dst Surface, s breakout.State) {
	cfg := s.Config

	dst.FillRect(0, 0, cfg.Width, cfg.Height, Background)
	dst.FillRect(s.Paddle.X, s.Paddle.Y, breakout.PaddleWidth, breakout.PaddleHeight, Foreground)

	for _, b := range s.Blocks {
		dst.FillRect(b.X, b.Y, breakout.BlockWidth, breakout.BlockHeight, Foreground)
	}
	for _, e := range s.Explosions {
		dst.FillRect(e.Block.X, e.Block.Y, breakout.BlockWidth, breakout.BlockHeight, WithAlpha(Foreground, e.Alpha()))
	}

	dst.FillCircle(s.Ball.X, s.Ball.Y, breakout.BallRadius, Foreground)
	for i, p := range s.Trail {
		dst.FillCircle(p.X, p.Y, breakout.BallRadius, WithAlpha(Foreground, TrailAlpha(i)))
	}

	hudY := cfg.Height - hudLineHeight/2
	dst.Text(fmt.Sprintf("Lives: %d", s.Lives), hudPadding, hudY, Foreground, AlignLeft)
	dst.Text(fmt.Sprintf("Blocks: %d", len(s.Blocks)), cfg.Width-hudPadding, hudY, Foreground, AlignRight)

	if overlay := s.Overlay(); overlay != "" {
		dst.Text(overlay, cfg.Width/2, cfg.Height/2, Foreground, AlignCenter)
	}
}
