package viz

import (
	"math"
	"testing"

	"github.com/san-kum/lsys/internal/turtle"
)

const tol = 1e-9

func TestZoomKeepsPointUnderPointer(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		px, py float64
	}{
		{"zoom in at origin", 2.0, 0, 0},
		{"zoom in off-center", 1.5, 37, 81},
		{"zoom out", 0.5, 120, 40},
		{"repeated zoom", 1.25, 80, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewTransform()
			v.Pan(12, -7)

			wx, wy := v.Invert(tt.px, tt.py)
			v.ZoomAt(tt.factor, tt.px, tt.py)
			sx, sy := v.Apply(wx, wy)

			if math.Abs(sx-tt.px) > tol || math.Abs(sy-tt.py) > tol {
				t.Errorf("world point drifted to (%f,%f), want (%f,%f)", sx, sy, tt.px, tt.py)
			}
		})
	}
}

func TestZoomClamp(t *testing.T) {
	v := NewTransform()
	for i := 0; i < 50; i++ {
		v.ZoomAt(2.0, 10, 10)
	}
	if v.Scale != MaxScale {
		t.Errorf("expected scale clamped to %f, got %f", MaxScale, v.Scale)
	}

	for i := 0; i < 50; i++ {
		v.ZoomAt(0.5, 10, 10)
	}
	if v.Scale != MinScale {
		t.Errorf("expected scale clamped to %f, got %f", MinScale, v.Scale)
	}
}

func TestPanIsScaleIndependent(t *testing.T) {
	v := NewTransform()
	v.ZoomAt(4.0, 0, 0)

	v.Pan(10, -5)
	if v.OffsetX != 10 || v.OffsetY != -5 {
		t.Errorf("pan deltas must land raw in the offset, got (%f,%f)", v.OffsetX, v.OffsetY)
	}
}

func TestResetView(t *testing.T) {
	v := NewTransform()
	v.ZoomAt(3, 40, 40)
	v.Pan(17, 23)
	v.Reset()

	if v.Scale != 1 || v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("expected identity after reset, got %+v", v)
	}
}

func TestApplyInvertRoundTrip(t *testing.T) {
	v := &Transform{Scale: 2.5, OffsetX: -14, OffsetY: 9}
	sx, sy := v.Apply(3.2, -7.7)
	wx, wy := v.Invert(sx, sy)
	if math.Abs(wx-3.2) > tol || math.Abs(wy+7.7) > tol {
		t.Errorf("round trip drifted: (%f,%f)", wx, wy)
	}
}

func TestFitTransformCentersPath(t *testing.T) {
	p := turtle.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	v := FitTransform(p, 160, 96, 2)

	// Bounding-box center must land on the canvas center.
	cx, cy := v.Apply(5, 5)
	if math.Abs(cx-80) > tol || math.Abs(cy-48) > tol {
		t.Errorf("expected path centered at (80,48), got (%f,%f)", cx, cy)
	}
	if v.Scale < MinScale || v.Scale > MaxScale {
		t.Errorf("fit scale %f outside clamp", v.Scale)
	}
}

func TestFitTransformEmptyPath(t *testing.T) {
	v := FitTransform(turtle.NewPath(), 160, 96, 2)
	if v.Scale != 1 || v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("expected identity for empty path, got %+v", v)
	}
}
