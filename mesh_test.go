package engine_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/engine"
)

func TestQuad(t *testing.T) {
	q := engine.Quad()

	if q.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", q.VertexCount())
	}
	if len(q.Indices) != 6 {
		t.Errorf("len(Indices) = %d, want 6", len(q.Indices))
	}
	if q.Stride() != 12 {
		t.Errorf("Stride() = %d, want 12", q.Stride())
	}
	if err := q.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	// Both triangles share the bottom-right/top-left diagonal.
	want := []uint32{0, 1, 3, 1, 2, 3}
	for i, idx := range want {
		if q.Indices[i] != idx {
			t.Errorf("Indices[%d] = %d, want %d", i, q.Indices[i], idx)
		}
	}
}

func TestQuadReturnsFreshCopy(t *testing.T) {
	a := engine.Quad()
	a.Vertices[0] = 42
	a.Indices[0] = 3

	b := engine.Quad()
	if b.Vertices[0] != 0.5 || b.Indices[0] != 0 {
		t.Error("Quad() shares backing arrays between calls")
	}
}

func TestMeshClone(t *testing.T) {
	a := engine.Quad()
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone differs from original")
	}

	b.Vertices[1] = -1
	if a.Equal(b) {
		t.Error("modifying clone changed original")
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh engine.Mesh
		ok   bool
	}{
		{"empty", engine.Mesh{}, true},
		{"partial vertex", engine.Mesh{Vertices: []float32{0, 0}}, false},
		{"partial triangle", engine.Mesh{Vertices: []float32{0, 0, 0}, Indices: []uint32{0, 0}}, false},
		{"index out of range", engine.Mesh{Vertices: []float32{0, 0, 0}, Indices: []uint32{0, 0, 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok {
				var meshErr *engine.MeshError
				if !errors.As(err, &meshErr) {
					t.Errorf("Validate() = %v, want *MeshError", err)
				}
			}
		})
	}
}
