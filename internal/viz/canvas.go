package viz

import (
	"math"
	"strings"

	"github.com/san-kum/lsys/internal/turtle"
)

// Braille cells pack 2x4 dots per terminal character:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a braille-cell raster. Width/Height are in terminal cells; the
// drawable resolution is (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	cells         [][]rune
}

// NewCanvas allocates an empty canvas of w x h terminal cells.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, cells: make([][]rune, h)}
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
		for j := range c.cells[i] {
			c.cells[i][j] = brailleBase
		}
	}
	return c
}

// DotWidth returns the horizontal resolution in dots.
func (c *Canvas) DotWidth() int { return c.Width * 2 }

// DotHeight returns the vertical resolution in dots.
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set turns on the dot at (x, y) in dot coordinates. Out-of-range dots are
// dropped silently.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row][col] |= brailleBits[y%4][x%2]
}

// On reports whether the dot at (x, y) is lit.
func (c *Canvas) On(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.cells[row][col]&brailleBits[y%4][x%2] != 0
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = brailleBase
		}
	}
}

// DrawLine rasterizes a segment between two dot coordinates (Bresenham).
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawSegment rasterizes a world-space segment through the view transform.
func (c *Canvas) DrawSegment(v *Transform, s turtle.Segment) {
	x0, y0 := v.Apply(s.X0, s.Y0)
	x1, y1 := v.Apply(s.X1, s.Y1)
	c.DrawLine(roundToInt(x0), roundToInt(y0), roundToInt(x1), roundToInt(y1))
}

// DrawPath replays every recorded segment through the view transform.
// Callers clear first when redrawing a frame.
func (c *Canvas) DrawPath(v *Transform, p *turtle.Path) {
	for _, s := range p.Segments() {
		c.DrawSegment(v, s)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func roundToInt(v float64) int { return int(math.Round(v)) }
