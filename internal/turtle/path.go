package turtle

// Segment is one drawn line in world coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Path is a Surface that records drawn segments instead of rasterizing
// them. Renderers replay the segments through the current view transform on
// every frame, so pan/zoom never perturbs the logical drawing.
type Path struct {
	segments []Segment
	penX     float64
	penY     float64
}

// NewPath returns an empty recording surface.
func NewPath() *Path { return &Path{} }

// MoveTo repositions the pen without recording a segment.
func (p *Path) MoveTo(x, y float64) {
	p.penX, p.penY = x, y
}

// LineTo records a segment from the pen to (x, y) and advances the pen.
func (p *Path) LineTo(x, y float64) {
	p.segments = append(p.segments, Segment{X0: p.penX, Y0: p.penY, X1: x, Y1: y})
	p.penX, p.penY = x, y
}

// Segments exposes the recorded lines in draw order.
func (p *Path) Segments() []Segment { return p.segments }

// Len returns the number of recorded segments.
func (p *Path) Len() int { return len(p.segments) }

// Clear drops all recorded segments. The pen position is kept; callers that
// also re-home the turtle get a fresh MoveTo from Machine.Reset.
func (p *Path) Clear() {
	p.segments = p.segments[:0]
}

// Pen returns the current pen position.
func (p *Path) Pen() (x, y float64) { return p.penX, p.penY }
