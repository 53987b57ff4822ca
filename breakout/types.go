package breakout

// Point is a position on the play surface.
type Point struct {
	X, Y float64
}

// Ball is the moving ball. X and Y are its center; VX and VY are in pixels per tick.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

func (b Ball) Top() float64    { return b.Y - BallRadius }
func (b Ball) Bottom() float64 { return b.Y + BallRadius }

// Position returns the ball center.
func (b Ball) Position() Point {
	return Point{X: b.X, Y: b.Y}
}

// Paddle is the player's bat. X is the left edge; Y is fixed by the surface height.
type Paddle struct {
	X, Y float64
}

func (p Paddle) CenterX() float64 {
	return p.X + PaddleWidth/2
}

// BlockID identifies a block by its slot in the initial grid.
type BlockID int

// Block is a destructible target. X and Y are its top-left corner.
type Block struct {
	ID   BlockID
	X, Y float64
}

func (b Block) CenterX() float64 { return b.X + BlockWidth/2 }
func (b Block) CenterY() float64 { return b.Y + BlockHeight/2 }

// Explosion marks the spot of a destroyed block while it fades out.
type Explosion struct {
	Block  Block
	Frames int // remaining fade frames
}

// Alpha is the opacity the explosion should be drawn with this frame.
func (e Explosion) Alpha() float64 {
	return float64(e.Frames) / ExplosionFrames
}

// Trail holds recent ball positions, most recent first.
type Trail []Point

// Push returns a new trail with p in front, truncated to TrailLength.
func (t Trail) Push(p Point) Trail {
	n := len(t) + 1
	if n > TrailLength {
		n = TrailLength
	}
	next := make(Trail, n)
	next[0] = p
	copy(next[1:], t)
	return next
}

