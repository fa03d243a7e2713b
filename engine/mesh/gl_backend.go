package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glBackend implements Backend against OpenGL.
// Attribute layout matches the shader: location 0 position, 1 normal, 2 texcoord.
type glBackend struct{}

var _ Backend = glBackend{}

// NewGLBackend returns the OpenGL mesh backend.
//
// Returns:
//   - Backend: the GL-backed implementation
func NewGLBackend() Backend {
	return glBackend{}
}

func (glBackend) Upload(geo Geometry) (Buffers, error) {
	if len(geo.Vertices) == 0 || len(geo.Indices) == 0 {
		return Buffers{}, fmt.Errorf("mesh: empty geometry")
	}

	var buf Buffers
	gl.GenVertexArrays(1, &buf.VAO)
	gl.BindVertexArray(buf.VAO)

	gl.GenBuffers(1, &buf.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*4, gl.Ptr(geo.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buf.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, gl.Ptr(geo.Indices), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	buf.IndexCount = int32(len(geo.Indices))
	return buf, nil
}

func (glBackend) Draw(buf Buffers) {
	gl.BindVertexArray(buf.VAO)
	gl.DrawElements(gl.TRIANGLES, buf.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (glBackend) Delete(buf Buffers) {
	gl.DeleteBuffers(1, &buf.VBO)
	gl.DeleteBuffers(1, &buf.EBO)
	gl.DeleteVertexArrays(1, &buf.VAO)
}
