package breakout

// GenerateBlocks lays out BlockRows x BlockColumns blocks centered horizontally
// on a surface of the given width. Blocks are ordered row by row, left to right.
func GenerateBlocks(width float64) []Block {
	stride := BlockWidth + BlockMargin
	offset := (width - GridWidth()) / 2

	blocks := make([]Block, 0, BlockRows*BlockColumns)
	for row := 0; row < BlockRows; row++ {
		for col := 0; col < BlockColumns; col++ {
			blocks = append(blocks, Block{
				ID: BlockID(row*BlockColumns + col),
				X:  float64(col)*stride + offset,
				Y:  BlockHeight*float64(row) + Margin*float64(row) + Margin,
			})
		}
	}
	return blocks
}
