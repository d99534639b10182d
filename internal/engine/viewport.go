package engine

import "github.com/go-gl/mathgl/mgl32"

// Viewport is the fixed output surface, in pixels. It does not change after
// startup; resize handling is out of scope.
type Viewport struct {
	Width  int
	Height int
}

func (v Viewport) AspectRatio() float32 {
	return float32(v.Width) / float32(v.Height)
}

func (v Viewport) Size() mgl32.Vec2 {
	return mgl32.Vec2{float32(v.Width), float32(v.Height)}
}
