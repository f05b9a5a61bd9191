// Package turtle interprets L-system symbols as 2D drawing commands.
//
// A [Machine] holds a cursor (position + heading) and a push-down stack of
// saved cursors. Each symbol fed to Exec either moves the cursor, turns it,
// or saves/restores it:
//
//	F G  draw one step forward
//	f    move one step forward, pen up
//	+ -  turn by the configured angle step
//	[ ]  push / pop the cursor
//
// Anything else is ignored. Output goes to a [Surface]; the machine knows
// nothing about canvases or view transforms.
package turtle

import "math"

// Surface receives draw primitives in world coordinates. MoveTo repositions
// the pen without drawing; LineTo draws from the current pen position.
type Surface interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

// Cursor is the turtle's position and heading. Heading 0 points along +x;
// positive y is down, matching screen space, so "up" is -pi/2.
type Cursor struct {
	X, Y    float64
	Heading float64
}

// Machine executes symbols against a cursor and saved-cursor stack.
// Dispatch is stateless: no state survives a command beyond the cursor and
// the stack.
type Machine struct {
	surface Surface
	step    float64
	angle   float64 // radians, converted once from degrees
	start   Cursor
	cursor  Cursor
	stack   []Cursor
}

// NewMachine configures a turtle. angleDeg is the turn step in degrees;
// startX/startY is the home position restored by Reset (heading up).
func NewMachine(surface Surface, step, angleDeg, startX, startY float64) *Machine {
	m := &Machine{
		surface: surface,
		step:    step,
		angle:   angleDeg * math.Pi / 180,
		start:   Cursor{X: startX, Y: startY, Heading: -math.Pi / 2},
	}
	m.Reset()
	return m
}

// Exec runs a single symbol. Unrecognized symbols are ignored; a pop on an
// empty stack is a no-op, so a dangling ] degrades gracefully.
func (m *Machine) Exec(sym rune) {
	switch sym {
	case 'F', 'G':
		m.advance(true)
	case 'f':
		m.advance(false)
	case '+':
		m.cursor.Heading += m.angle
	case '-':
		m.cursor.Heading -= m.angle
	case '[':
		m.stack = append(m.stack, m.cursor)
	case ']':
		if n := len(m.stack); n > 0 {
			m.cursor = m.stack[n-1]
			m.stack = m.stack[:n-1]
			m.surface.MoveTo(m.cursor.X, m.cursor.Y)
		}
	}
}

// ExecString runs every symbol of s in order.
func (m *Machine) ExecString(s string) {
	for _, sym := range s {
		m.Exec(sym)
	}
}

func (m *Machine) advance(draw bool) {
	m.cursor.X += m.step * math.Cos(m.cursor.Heading)
	m.cursor.Y += m.step * math.Sin(m.cursor.Heading)
	if draw {
		m.surface.LineTo(m.cursor.X, m.cursor.Y)
	} else {
		m.surface.MoveTo(m.cursor.X, m.cursor.Y)
	}
}

// Reset re-homes the cursor, clears the stack, and primes the surface pen
// at the home position.
func (m *Machine) Reset() {
	m.cursor = m.start
	m.stack = m.stack[:0]
	m.surface.MoveTo(m.cursor.X, m.cursor.Y)
}

// Cursor returns a snapshot of the current cursor.
func (m *Machine) Cursor() Cursor { return m.cursor }

// StackDepth returns how many cursors are saved.
func (m *Machine) StackDepth() int { return len(m.stack) }

// Step returns the configured step length.
func (m *Machine) Step() float64 { return m.step }

// Angle returns the configured turn step in radians.
func (m *Machine) Angle() float64 { return m.angle }
