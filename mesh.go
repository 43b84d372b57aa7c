package engine

import (
	"fmt"
	"slices"
)

// PositionComponents is the number of floats per vertex: x, y, z.
const PositionComponents = 3

// Mesh is static indexed triangle geometry with positions only.
// Meshes are never modified after construction; backends upload them once.
type Mesh struct {
	Vertices []float32 // PositionComponents floats per vertex
	Indices  []uint32  // Three indices per triangle
}

// Quad returns a fresh copy of the centered quad drawn by the demo programs:
// four vertices and two triangles sharing the top-left/bottom-right diagonal.
func Quad() Mesh {
	return Mesh{
		Vertices: []float32{
			0.5, 0.5, 0.0, // top right
			0.5, -0.5, 0.0, // bottom right
			-0.5, -0.5, 0.0, // bottom left
			-0.5, 0.5, 0.0, // top left
		},
		Indices: []uint32{
			0, 1, 3, // first triangle
			1, 2, 3, // second triangle
		},
	}
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / PositionComponents
}

// Stride returns the byte distance between consecutive vertices.
func (m Mesh) Stride() int {
	return PositionComponents * 4
}

// Clone returns a deep copy of m.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Vertices: slices.Clone(m.Vertices),
		Indices:  slices.Clone(m.Indices),
	}
}

// Equal reports whether m and other hold the same vertex and index data.
func (m Mesh) Equal(other Mesh) bool {
	return slices.Equal(m.Vertices, other.Vertices) && slices.Equal(m.Indices, other.Indices)
}

// Validate checks that the vertex data is whole vertices, the index data is
// whole triangles and that every index refers to an existing vertex.
func (m Mesh) Validate() error {
	if len(m.Vertices)%PositionComponents != 0 {
		return &MeshError{Reason: "vertex data is not a multiple of 3 floats"}
	}
	if len(m.Indices)%3 != 0 {
		return &MeshError{Reason: "index data is not a multiple of 3"}
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return &MeshError{Reason: "index out of range", Index: i}
		}
	}
	return nil
}

// MeshError reports invalid mesh data.
type MeshError struct {
	Reason string
	Index  int // Position in Indices, for out of range errors
}

func (e *MeshError) Error() string {
	if e.Reason == "index out of range" {
		return fmt.Sprintf("invalid mesh: index %d out of range", e.Index)
	}
	return "invalid mesh: " + e.Reason
}
