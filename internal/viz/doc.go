// Package viz renders L-system drawings in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Transform]: pan/zoom view layer applied only at render time
//   - [Model]: animated symbol-by-symbol playback
//   - [NewInteractiveApp]: preset menu and parameter editor
//
// # Key Bindings (playback)
//
//	Space - Pause/Resume drawing
//	S     - Stop and clear
//	R     - Restart from scratch
//	+/-   - Zoom at canvas center
//	Arrows- Pan
//	V     - Reset view
//	[ ]   - Slower / faster
//
// # Coordinate Spaces
//
// Turtle output is recorded as world-space segments; the view transform
// maps world to canvas dots on every frame. Pan/zoom therefore never
// perturbs the logical drawing, and resetting the view is purely a
// presentation operation.
package viz
