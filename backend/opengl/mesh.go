package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/engine"
)

// Mesh is an engine.Mesh uploaded to GPU buffers. The buffers are created
// with STATIC_DRAW and never written again.
type Mesh struct {
	vao, vbo   uint32
	ebo        uint32
	indexCount int32
	vertexSize int // bytes in vbo
	indexSize  int // bytes in ebo
}

// UploadMesh creates a VAO, VBO and EBO holding m. Attribute 0 is the vec3
// position.
func UploadMesh(m engine.Mesh) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(m.Indices) == 0 {
		return nil, fmt.Errorf("upload mesh: no indices")
	}

	gm := &Mesh{
		indexCount: int32(len(m.Indices)),
		vertexSize: len(m.Vertices) * 4,
		indexSize:  len(m.Indices) * 4,
	}

	gl.GenBuffers(1, &gm.vbo)
	gl.GenVertexArrays(1, &gm.vao)
	gl.GenBuffers(1, &gm.ebo)

	gl.BindVertexArray(gm.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, gm.vertexSize, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, gm.indexSize, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, engine.PositionComponents, gl.FLOAT, false, int32(m.Stride()), 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return gm, nil
}

// IndexCount returns the number of indices drawn per DrawMesh call.
func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

// ReadBack returns the current contents of the vertex and index buffers.
func (m *Mesh) ReadBack() engine.Mesh {
	out := engine.Mesh{
		Vertices: make([]float32, m.vertexSize/4),
		Indices:  make([]uint32, m.indexSize/4),
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.GetBufferSubData(gl.ARRAY_BUFFER, 0, m.vertexSize, gl.Ptr(out.Vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// The element binding is VAO state, so read it through the VAO.
	gl.BindVertexArray(m.vao)
	gl.GetBufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, m.indexSize, gl.Ptr(out.Indices))
	gl.BindVertexArray(0)

	return out
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
