package engine

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"candlechart/internal/assets"
	"candlechart/internal/engine/shader"
)

// Background is the fullscreen quad drawn behind the chart. Its fragment
// shader renders a radial vignette centered on the live cursor, with the
// vignette radius oscillating sinusoidally over elapsed time.
type Background struct {
	tint      mgl32.Vec3
	base      float32
	amplitude float32
	frequency float32
	library   *assets.Library

	quad    *mesh
	program *shader.Program
	params  shader.Params
}

func NewBackground(tint mgl32.Vec3, base, amplitude, frequency float32, library *assets.Library) *Background {
	return &Background{
		tint:      tint,
		base:      base,
		amplitude: amplitude,
		frequency: frequency,
		library:   library,
	}
}

func (b *Background) Create() error {
	vertSrc, err := b.library.ShaderSource("background.vert")
	if err != nil {
		return err
	}
	fragSrc, err := b.library.ShaderSource("background.frag")
	if err != nil {
		return err
	}

	b.program, err = shader.NewProgram("background", vertSrc, fragSrc, "")
	if err != nil {
		return err
	}
	b.params = shader.Resolve(b.program, "background")

	quad, err := b.library.QuadMesh()
	if err != nil {
		return err
	}
	b.quad = newMesh(quad)
	return nil
}

func (b *Background) Update(frame Frame) {
	b.program.Use()
	gl.Uniform1f(b.params.Time, float32(frame.Time))
	gl.Uniform2f(b.params.Cursor, frame.Cursor.X(), frame.Cursor.Y())
	gl.Uniform1f(b.params.Aspect, frame.Viewport.AspectRatio())
	gl.Uniform3f(b.params.Tint, b.tint.X(), b.tint.Y(), b.tint.Z())
	gl.Uniform1f(b.params.Base, b.base)
	gl.Uniform1f(b.params.Amplitude, b.amplitude)
	gl.Uniform1f(b.params.Frequency, b.frequency)
}

func (b *Background) Render() {
	b.program.Use()
	b.quad.draw(gl.TRIANGLE_STRIP)
}

func (b *Background) Destroy() {
	if b.program != nil {
		b.program.Delete()
	}
	b.quad.destroy()
}
