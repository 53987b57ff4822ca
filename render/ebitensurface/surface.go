// Package ebitensurface implements render.Surface on an ebiten image.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/brickfall/render"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

type Surface struct {
	Image *ebiten.Image
}

func New(image *ebiten.Image) *Surface {
	return &Surface{Image: image}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.Image, float32(cx), float32(cy), float32(r), c, true)
}

// Text uses the debug font, which is always drawn in white; c is ignored.
func (s *Surface) Text(str string, x, y float64, c color.Color, align render.Align) {
	width := float64(len(str) * glyphWidth)
	switch align {
	case render.AlignCenter:
		x -= width / 2
	case render.AlignRight:
		x -= width
	}
	ebitenutil.DebugPrintAt(s.Image, str, int(x), int(y-glyphHeight/2))
}
