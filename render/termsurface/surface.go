// Package termsurface implements render.Surface on a tcell screen. The game surface
// is scaled down to the terminal grid, one cell covering several surface pixels.
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/brickfall/render"
)

const ballRune = '●'

type Surface struct {
	Screen tcell.Screen

	// logical surface size in pixels
	width, height float64
}

func New(screen tcell.Screen, width, height float64) *Surface {
	return &Surface{Screen: screen, width: width, height: height}
}

// scale returns the number of surface pixels per cell on each axis.
func (s *Surface) scale() (float64, float64) {
	cols, rows := s.Screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return s.width / float64(cols), s.height / float64(rows)
}

// ToSurface converts a cell column to the surface x of the cell center.
func (s *Surface) ToSurface(col int) float64 {
	sx, _ := s.scale()
	return (float64(col) + 0.5) * sx
}

func (s *Surface) cell(x, y float64) (int, int) {
	sx, sy := s.scale()
	if sx == 0 {
		return -1, -1
	}
	return int(math.Floor(x / sx)), int(math.Floor(y / sy))
}

func (s *Surface) inside(col, row int) bool {
	cols, rows := s.Screen.Size()
	return col >= 0 && row >= 0 && col < cols && row < rows
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	sx, sy := s.scale()
	if sx == 0 || w <= 0 || h <= 0 {
		return
	}
	col0, row0 := s.cell(x, y)
	col1 := int(math.Ceil((x+w)/sx)) - 1
	row1 := int(math.Ceil((y+h)/sy)) - 1

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if !s.inside(col, row) {
				continue
			}
			_, _, style, _ := s.Screen.GetContent(col, row)
			_, bg, _ := style.Decompose()
			s.Screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(blend(c, bg)))
		}
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	col, row := s.cell(cx, cy)
	if !s.inside(col, row) {
		return
	}
	_, _, style, _ := s.Screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	s.Screen.SetContent(col, row, ballRune, nil, tcell.StyleDefault.Foreground(blend(c, bg)).Background(bg))
}

func (s *Surface) Text(str string, x, y float64, c color.Color, align render.Align) {
	col, row := s.cell(x, y)
	runes := []rune(str)
	switch align {
	case render.AlignCenter:
		col -= len(runes) / 2
	case render.AlignRight:
		col -= len(runes)
	}

	for i, r := range runes {
		if !s.inside(col+i, row) {
			continue
		}
		_, _, style, _ := s.Screen.GetContent(col+i, row)
		_, bg, _ := style.Decompose()
		s.Screen.SetContent(col+i, row, r, nil, tcell.StyleDefault.Foreground(blend(c, bg)).Background(bg))
	}
}

// Show pushes the drawn frame to the terminal.
func (s *Surface) Show() {
	s.Screen.Show()
}

// blend composes the premultiplied color c over the cell background dst.
func blend(c color.Color, dst tcell.Color) tcell.Color {
	r, g, b, a := c.RGBA()
	dr, dg, db := dst.RGB()
	if dr < 0 {
		dr, dg, db = 0, 0, 0
	}
	inv := float64(0xffff-a) / 0xffff
	mix := func(src uint32, d int32) int32 {
		return int32(float64(src>>8) + float64(d)*inv)
	}
	return tcell.NewRGBColor(mix(r, dr), mix(g, dg), mix(b, db))
}
