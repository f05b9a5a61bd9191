package viz

import (
	"math"

	"github.com/san-kum/lsys/internal/turtle"
)

// Scale clamp for the view transform.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// Transform is the pan/zoom layer between turtle (world) coordinates and
// canvas dots: screen = world*scale + offset. It is never baked into turtle
// state, so resetting the view is a pure presentation operation.
type Transform struct {
	Scale            float64
	OffsetX, OffsetY float64
}

// NewTransform returns the identity transform.
func NewTransform() *Transform { return &Transform{Scale: 1} }

// Apply maps a world point to screen dots.
func (t *Transform) Apply(x, y float64) (float64, float64) {
	return x*t.Scale + t.OffsetX, y*t.Scale + t.OffsetY
}

// Invert maps a screen point back to world coordinates.
func (t *Transform) Invert(sx, sy float64) (float64, float64) {
	return (sx - t.OffsetX) / t.Scale, (sy - t.OffsetY) / t.Scale
}

// ZoomAt scales multiplicatively (clamped to [0.1, 10]) while keeping the
// world point currently under (px, py) fixed on screen.
func (t *Transform) ZoomAt(factor, px, py float64) {
	newScale := clampScale(t.Scale * factor)
	wx, wy := t.Invert(px, py)
	t.Scale = newScale
	t.OffsetX = px - wx*newScale
	t.OffsetY = py - wy*newScale
}

// Pan accumulates raw screen-space deltas into the offset, unaffected by
// the current scale.
func (t *Transform) Pan(dx, dy float64) {
	t.OffsetX += dx
	t.OffsetY += dy
}

// Reset restores the identity transform.
func (t *Transform) Reset() {
	t.Scale = 1
	t.OffsetX = 0
	t.OffsetY = 0
}

// FitTransform builds a transform that centers the recorded path on a
// dotW x dotH canvas with a dot margin, scaled to fit (within the scale
// clamp). An empty path yields the identity transform.
func FitTransform(p *turtle.Path, dotW, dotH, margin int) *Transform {
	segs := p.Segments()
	t := NewTransform()
	if len(segs) == 0 {
		return t
	}
	minX, maxX := segs[0].X0, segs[0].X0
	minY, maxY := segs[0].Y0, segs[0].Y0
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	for _, s := range segs {
		grow(s.X0, s.Y0)
		grow(s.X1, s.Y1)
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	usableW := float64(dotW - 2*margin)
	usableH := float64(dotH - 2*margin)
	t.Scale = clampScale(math.Min(usableW/spanX, usableH/spanY))
	t.OffsetX = float64(dotW)/2 - (minX+maxX)/2*t.Scale
	t.OffsetY = float64(dotH)/2 - (minY+maxY)/2*t.Scale
	return t
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
