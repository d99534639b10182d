package engine

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"candlechart/internal/assets"
	"candlechart/internal/engine/shader"
)

// Candle is the composite chart drawable: a filled quad body plus a
// constant-width border rendered from the same footprint through a
// geometry-shader expansion pass. Position is the quad center, Scale the
// full width/height, both in the aspect-normalized chart space.
type Candle struct {
	Position mgl32.Vec2
	Scale    mgl32.Vec2
	Bullish  bool

	color     mgl32.Vec3
	lineWidth float32
	library   *assets.Library

	body         *mesh
	outline      *mesh
	fill         *shader.Program
	fillParams   shader.Params
	border       *shader.Program
	borderParams shader.Params

	offscreen bool
}

func NewCandle(position, scale mgl32.Vec2, bullish bool, color mgl32.Vec3, lineWidth float32, library *assets.Library) *Candle {
	return &Candle{
		Position:  position,
		Scale:     scale,
		Bullish:   bullish,
		color:     color,
		lineWidth: lineWidth,
		library:   library,
	}
}

// Corner anchors are derived from position/scale on every call, never
// cached, so they stay consistent with whatever the fields currently hold.

func (c *Candle) TopLeft() mgl32.Vec2 {
	return c.Position.Sub(c.Scale.Mul(0.5))
}

func (c *Candle) BottomRight() mgl32.Vec2 {
	return c.Position.Add(c.Scale.Mul(0.5))
}

func (c *Candle) BottomLeft() mgl32.Vec2 {
	return mgl32.Vec2{c.TopLeft().X(), c.BottomRight().Y()}
}

func (c *Candle) TopRight() mgl32.Vec2 {
	return mgl32.Vec2{c.BottomRight().X(), c.TopLeft().Y()}
}

// StartPosition is the open end of the candle's diagonal: bottom-left for
// a bullish candle, top-left for a bearish one.
func (c *Candle) StartPosition() mgl32.Vec2 {
	if c.Bullish {
		return c.BottomLeft()
	}
	return c.TopLeft()
}

// EndPosition is the close end of the diagonal: top-right for bullish,
// bottom-right for bearish.
func (c *Candle) EndPosition() mgl32.Vec2 {
	if c.Bullish {
		return c.TopRight()
	}
	return c.BottomRight()
}

func (c *Candle) Create() error {
	vertSrc, err := c.library.ShaderSource("candle.vert")
	if err != nil {
		return err
	}
	fragSrc, err := c.library.ShaderSource("candle.frag")
	if err != nil {
		return err
	}
	geomSrc, err := c.library.ShaderSource("outline.geom")
	if err != nil {
		return err
	}
	borderFragSrc, err := c.library.ShaderSource("outline.frag")
	if err != nil {
		return err
	}

	c.fill, err = shader.NewProgram("candle", vertSrc, fragSrc, "")
	if err != nil {
		return fmt.Errorf("candle fill: %w", err)
	}
	c.fillParams = shader.Resolve(c.fill, "candle")

	c.border, err = shader.NewProgram("candle-outline", vertSrc, borderFragSrc, geomSrc)
	if err != nil {
		return fmt.Errorf("candle outline: %w", err)
	}
	c.borderParams = shader.Resolve(c.border, "candle-outline")

	quad, err := c.library.QuadMesh()
	if err != nil {
		return err
	}
	c.body = newMesh(quad)
	c.outline = newMesh(outlineSegments(quad))
	return nil
}

// visible reports whether any transformed corner of the footprint can
// reach clip space. The border width pads the test so an outline never
// pops at the edge.
func (c *Candle) visible(frame Frame) bool {
	aspect := frame.Viewport.AspectRatio()
	pad := c.lineWidth
	half := c.Scale.Mul(0.5)

	minX, minY := float32(2), float32(2)
	maxX, maxY := float32(-2), float32(-2)
	for _, local := range [][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		p := TransformVertex(mgl32.Vec2{local[0], local[1]}, half, c.Position, aspect, frame.Offset)
		minX = min(minX, p.X())
		minY = min(minY, p.Y())
		maxX = max(maxX, p.X())
		maxY = max(maxY, p.Y())
	}
	return maxX >= -1-pad && minX <= 1+pad && maxY >= -1-pad && minY <= 1+pad
}

func (c *Candle) Update(frame Frame) {
	c.offscreen = !c.visible(frame)
	if c.offscreen {
		return
	}

	aspect := frame.Viewport.AspectRatio()

	c.fill.Use()
	gl.Uniform2f(c.fillParams.Position, c.Position.X(), c.Position.Y())
	gl.Uniform2f(c.fillParams.Scale, c.Scale.X()*0.5, c.Scale.Y()*0.5)
	gl.Uniform1f(c.fillParams.Aspect, aspect)
	gl.Uniform2f(c.fillParams.Offset, frame.Offset.X(), frame.Offset.Y())
	gl.Uniform1f(c.fillParams.Time, float32(frame.Time))
	gl.Uniform3f(c.fillParams.Color, c.color.X(), c.color.Y(), c.color.Z())

	borderColor := c.color.Mul(0.65)
	c.border.Use()
	gl.Uniform2f(c.borderParams.Position, c.Position.X(), c.Position.Y())
	gl.Uniform2f(c.borderParams.Scale, c.Scale.X()*0.5, c.Scale.Y()*0.5)
	gl.Uniform1f(c.borderParams.Aspect, aspect)
	gl.Uniform2f(c.borderParams.Offset, frame.Offset.X(), frame.Offset.Y())
	gl.Uniform1f(c.borderParams.LineWidth, c.lineWidth)
	gl.Uniform3f(c.borderParams.Color, borderColor.X(), borderColor.Y(), borderColor.Z())
}

// Render draws the outline pass first, then the body over it, leaving a
// uniform border around the fill. Both passes share the same footprint.
func (c *Candle) Render() {
	if c.offscreen {
		return
	}
	c.border.Use()
	c.outline.draw(gl.LINES)
	c.fill.Use()
	c.body.draw(gl.TRIANGLE_STRIP)
}

func (c *Candle) Destroy() {
	if c.fill != nil {
		c.fill.Delete()
	}
	if c.border != nil {
		c.border.Delete()
	}
	c.body.destroy()
	c.outline.destroy()
}
