package breakout

import "math"

func reflectX(b Ball) Ball {
	b.VX = -b.VX
	return b
}

func reflectY(b Ball) Ball {
	b.VY = -b.VY
	return b
}

// steer sets the horizontal velocity from the impact offset relative to a
// target's center, keeping its magnitude within [MinXVelocity, MaxXVelocity].
func steer(b Ball, centerX float64) Ball {
	b.VX = clampXVelocity((b.X-centerX)*Dampener, b.VX)
	return b
}

// clampXVelocity clamps the magnitude of vx. A zero vx takes the sign of prev.
func clampXVelocity(vx, prev float64) float64 {
	sign := 1.0
	if vx < 0 || (vx == 0 && prev < 0) {
		sign = -1
	}
	mag := math.Min(math.Max(math.Abs(vx), MinXVelocity), MaxXVelocity)
	return sign * mag
}

func bounceOffPaddle(b Ball, p Paddle) Ball {
	b = steer(b, p.CenterX())
	b.VY = -math.Abs(b.VY)
	return b
}

func bounceOffBlock(b Ball, blk Block, side Side) Ball {
	b = steer(b, blk.CenterX())
	switch side {
	case SideTop:
		b.VY = -math.Abs(b.VY)
	case SideBottom:
		b.VY = math.Abs(b.VY)
	}
	return b
}
