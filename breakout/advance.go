package breakout

import "slices"

// Input is what the input device delivered since the previous tick.
type Input struct {
	// PointerX is the surface-relative pointer position; only read when PointerMoved.
	PointerX     float64
	PointerMoved bool
	Click        bool
}

// Events summarizes what happened during one tick.
type Events struct {
	Toggled   bool
	Restarted bool
	PaddleHit bool
	LifeLost  bool
	Destroyed []BlockID
}

// Advance returns the state one tick after s.
func Advance(s State, in Input) State {
	next, _ := Step(s, in)
	return next
}

// Step advances s by one tick and reports what happened. s itself is not modified.
//
// Explosions fade on every tick, paused or not. A click is applied before anything
// else; pointer movement and ball motion are skipped while paused.
func Step(s State, in Input) (State, Events) {
	var ev Events

	next := s.clone()
	next.Tick++
	next.Explosions = fadeExplosions(next.Explosions)

	if in.Click {
		ev.Toggled = true
		next, ev.Restarted = toggle(next)
	}
	if next.Paused() {
		return next, ev
	}

	if in.PointerMoved {
		next.Paddle.X = in.PointerX - PaddleWidth/2
	}
	return move(next, &ev), ev
}

// move advances the ball and resolves collisions. The paddle is checked before
// the blocks; a tick with a paddle hit never destroys a block.
func move(s State, ev *Events) State {
	b := s.Ball
	s.Trail = s.Trail.Push(b.Position())

	b.X += b.VX
	b.Y += b.VY

	if HitsSideEdge(b, s.Config.Width) {
		b = reflectX(b)
	}
	if HitsTopEdge(b) {
		b = reflectY(b)
	}
	s.Ball = b

	if HitsBottomEdge(b, s.Config.Height) {
		ev.LifeLost = true
		return loseLife(s)
	}

	if HitsPaddle(b, s.Paddle) {
		ev.PaddleHit = true
		s.Ball = bounceOffPaddle(b, s.Paddle)
		return s
	}

	i := FindBlock(b, s.Blocks)
	if i == NoBlock {
		return s
	}

	blk := s.Blocks[i]
	s.Ball = bounceOffBlock(b, blk, BlockSide(b, s.Blocks, i))
	s.Blocks = slices.Delete(s.Blocks, i, i+1)
	s.Explosions = append(s.Explosions, Explosion{Block: blk, Frames: ExplosionFrames})
	ev.Destroyed = append(ev.Destroyed, blk.ID)

	if s.Cleared() {
		s.Pause = PausedLevelCleared
	}
	return s
}
