// Package render maps game state onto a 2D drawing surface.
package render

import "image/color"

// Align is the horizontal anchor of a text draw call.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the drawing target the game renders to. Coordinates are surface pixels
// with the origin at the top-left corner. Colors may carry alpha. Text is
// vertically centered on y.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	Text(s string, x, y float64, c color.Color, align Align)
}
