package breakout_test

import (
	"testing"

	"github.com/plus3/brickfall/breakout"
	"github.com/stretchr/testify/assert"
)

func TestEdgeCollisions(t *testing.T) {
	tests := []struct {
		name   string
		ball   breakout.Ball
		side   bool
		top    bool
		bottom bool
	}{
		{name: "free flight", ball: breakout.Ball{X: 400, Y: 300, VX: 2, VY: 4}},
		{name: "past right edge moving out", ball: breakout.Ball{X: 801, Y: 300, VX: 2, VY: 4}, side: true},
		{name: "past right edge moving in", ball: breakout.Ball{X: 801, Y: 300, VX: -2, VY: 4}},
		{name: "past left edge moving out", ball: breakout.Ball{X: -1, Y: 300, VX: -2, VY: 4}, side: true},
		{name: "past left edge moving in", ball: breakout.Ball{X: -1, Y: 300, VX: 2, VY: 4}},
		{name: "top edge moving up", ball: breakout.Ball{X: 400, Y: 0, VX: 2, VY: -4}, top: true},
		{name: "top edge moving down", ball: breakout.Ball{X: 400, Y: -3, VX: 2, VY: 4}},
		{name: "bottom edge moving down", ball: breakout.Ball{X: 400, Y: 600, VX: 2, VY: 4}, bottom: true},
		{name: "bottom edge moving up", ball: breakout.Ball{X: 400, Y: 600, VX: 2, VY: -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.side, breakout.HitsSideEdge(tt.ball, 800))
			assert.Equal(t, tt.top, breakout.HitsTopEdge(tt.ball))
			assert.Equal(t, tt.bottom, breakout.HitsBottomEdge(tt.ball, 600))
		})
	}
}

func TestHitsPaddle(t *testing.T) {
	paddle := breakout.Paddle{X: 350, Y: 565}

	tests := []struct {
		name string
		ball breakout.Ball
		want bool
	}{
		{"centered on band", breakout.Ball{X: 400, Y: 556}, true},
		{"above band", breakout.Ball{X: 400, Y: 540}, false},
		{"under the paddle", breakout.Ball{X: 400, Y: 592}, true},
		{"under but beside", breakout.Ball{X: 300, Y: 592}, false},
		{"left reach", breakout.Ball{X: 340, Y: 556}, true},
		{"left miss", breakout.Ball{X: 339, Y: 556}, false},
		{"right reach", breakout.Ball{X: 460, Y: 556}, true},
		{"right miss", breakout.Ball{X: 461, Y: 556}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, breakout.HitsPaddle(tt.ball, paddle))
		})
	}
}

func TestFindBlock(t *testing.T) {
	blocks := breakout.GenerateBlocks(800)

	t.Run("no block near the center", func(t *testing.T) {
		assert.Equal(t, breakout.NoBlock, breakout.FindBlock(breakout.Ball{X: 400, Y: 300}, blocks))
	})

	t.Run("bottom row is reached first from below", func(t *testing.T) {
		i := breakout.FindBlock(breakout.Ball{X: 70, Y: 140}, blocks)
		assert.Equal(t, 3*breakout.BlockColumns, i)
		assert.Equal(t, breakout.BlockID(21), blocks[i].ID)
	})

	t.Run("ties go to the lowest index", func(t *testing.T) {
		// x=125 reaches both the first and second column of the bottom row
		i := breakout.FindBlock(breakout.Ball{X: 125, Y: 140}, blocks)
		assert.Equal(t, 3*breakout.BlockColumns, i)
	})

	t.Run("ball above the top row", func(t *testing.T) {
		i := breakout.FindBlock(breakout.Ball{X: 70, Y: 5}, blocks)
		assert.Equal(t, 0, i)
		assert.Equal(t, breakout.BlockID(0), blocks[i].ID)
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Equal(t, breakout.NoBlock, breakout.FindBlock(breakout.Ball{X: 70, Y: 140}, nil))
	})
}

func TestImpactSide(t *testing.T) {
	blocks := breakout.GenerateBlocks(800)
	i := 3 * breakout.BlockColumns // y 125..140, midpoint 132.5

	assert.Equal(t, breakout.SideNone, breakout.BlockSide(breakout.Ball{X: 70, Y: 130}, blocks, breakout.NoBlock))
	assert.Equal(t, breakout.SideNone, breakout.BlockSide(breakout.Ball{X: 70, Y: 130}, blocks, len(blocks)))
	assert.Equal(t, breakout.SideTop, breakout.BlockSide(breakout.Ball{X: 70, Y: 130}, blocks, i))
	assert.Equal(t, breakout.SideBottom, breakout.BlockSide(breakout.Ball{X: 70, Y: 140}, blocks, i))

	paddle := breakout.Paddle{X: 350, Y: 565}
	assert.Equal(t, breakout.SideTop, breakout.PaddleSide(breakout.Ball{X: 400, Y: 560}, paddle))
	assert.Equal(t, breakout.SideBottom, breakout.PaddleSide(breakout.Ball{X: 400, Y: 575}, paddle))
	assert.Equal(t, "top", breakout.SideTop.String())
}
