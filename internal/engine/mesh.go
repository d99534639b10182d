package engine

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// mesh is one GL vertex buffer with a 2-float position layout at
// attribute 0. Vertex data is uploaded once and never mutated.
type mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func newMesh(verts []float32) *mesh {
	m := &mesh{count: int32(len(verts) / 2)}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *mesh) draw(mode uint32) {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(mode, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *mesh) destroy() {
	if m == nil {
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// outlineSegments rebuilds the quad's perimeter as four independent line
// segments, the input primitive the geometry-shader expansion consumes.
// quadStrip is the shared unit quad in triangle-strip order.
func outlineSegments(quadStrip []float32) []float32 {
	bl := quadStrip[0:2]
	br := quadStrip[2:4]
	tl := quadStrip[4:6]
	tr := quadStrip[6:8]

	segs := make([]float32, 0, 16)
	for _, pair := range [][2][]float32{{bl, br}, {br, tr}, {tr, tl}, {tl, bl}} {
		segs = append(segs, pair[0]...)
		segs = append(segs, pair[1]...)
	}
	return segs
}
