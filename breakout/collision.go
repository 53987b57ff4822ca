package breakout

// NoBlock is returned by FindBlock when the ball touches no block.
const NoBlock = -1

// Side tells which half of a target's vertical band the ball struck.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// HitsSideEdge reports whether the ball is past the left or right edge while
// still moving outward.
func HitsSideEdge(b Ball, width float64) bool {
	return (b.X > width && b.VX > 0) || (b.X < 0 && b.VX < 0)
}

// HitsTopEdge reports whether the ball reached the top edge while moving up.
func HitsTopEdge(b Ball) bool {
	return b.Y <= 0 && b.VY < 0
}

// HitsBottomEdge reports whether the ball reached the bottom edge while moving down.
func HitsBottomEdge(b Ball, height float64) bool {
	return b.Y >= height && b.VY > 0
}

// HitsPaddle reports whether the ball overlaps the paddle horizontally and its
// bottom edge has reached the paddle band. A ball that already dropped below the
// paddle still counts when the paddle moves under it.
func HitsPaddle(b Ball, p Paddle) bool {
	return overlapsX(b, p.X, PaddleWidth) && b.Bottom() >= p.Y
}

// FindBlock returns the index of the first block whose band the ball's top edge
// has reached, or NoBlock. Ties are broken by slice order, so a ball above the
// top row is matched against that row.
func FindBlock(b Ball, blocks []Block) int {
	for i, blk := range blocks {
		if overlapsX(b, blk.X, BlockWidth) && b.Top() <= blk.Y+BlockHeight {
			return i
		}
	}
	return NoBlock
}

// BlockSide reports which half of blocks[i] the ball struck. An index of NoBlock
// (or any index out of range) yields SideNone.
func BlockSide(b Ball, blocks []Block, i int) Side {
	if i < 0 || i >= len(blocks) {
		return SideNone
	}
	return impactSide(b, blocks[i].CenterY())
}

// PaddleSide reports which half of the paddle band the ball struck.
func PaddleSide(b Ball, p Paddle) Side {
	return impactSide(b, p.Y+PaddleHeight/2)
}

func impactSide(b Ball, midY float64) Side {
	if b.Y < midY {
		return SideTop
	}
	return SideBottom
}

func overlapsX(b Ball, left, width float64) bool {
	return b.X <= left+width+BallRadius && b.X >= left-BallRadius
}
