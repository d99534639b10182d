package engine

import "github.com/go-gl/mathgl/mgl32"

// Frame is the read-only context handle passed into every drawable's
// Update. Drawables never hold a reference back to the engine; the shared
// uniform values travel through this value instead.
type Frame struct {
	// Time is seconds since engine start, from the monotonic clock,
	// advanced once per tick.
	Time float64
	// Cursor is the live cursor position normalized to [0,1]², origin
	// bottom-left.
	Cursor mgl32.Vec2
	// Offset is the full pan translation: committed + floating.
	Offset   mgl32.Vec2
	Viewport Viewport
}
