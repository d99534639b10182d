package engine

import "github.com/go-gl/mathgl/mgl32"

// TransformVertex is the CPU-side mirror of the vertex shader transform:
//
//	screen = (local ⊙ scale + position) / (aspect, 1) + offset ⊙ (1, -1)
//
// Scale and position live in a vertically-unit, horizontally
// aspect-normalized space; the offset's Y flip matches the screen-space
// pan convention. The renderer uses it to cull off-screen candles, and it
// doubles as the golden reference for the shader contract.
func TransformVertex(local, scale, position mgl32.Vec2, aspect float32, offset mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(local.X()*scale.X()+position.X())/aspect + offset.X(),
		local.Y()*scale.Y() + position.Y() - offset.Y(),
	}
}
