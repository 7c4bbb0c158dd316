package obj

import (
	"github.com/philipparndt/heightmap2obj/pkg/geometry"
)

// Model is the content of a parsed OBJ file
type Model struct {
	Comments []string
	Vertices []geometry.Vector3
	// Faces holds 1-based, already resolved vertex indices
	Faces [][]int
}

// NewModel creates an empty model
func NewModel() *Model {
	return &Model{
		Comments: make([]string, 0),
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([][]int, 0),
	}
}

// VertexCount returns the number of vertices in the model
func (m *Model) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces in the model
func (m *Model) FaceCount() int {
	return len(m.Faces)
}

// Positions returns the vertex positions
func (m *Model) Positions() []geometry.Vector3 {
	return m.Vertices
}

// FaceIndices returns the vertex indices of face i
func (m *Model) FaceIndices(i int) []int {
	return m.Faces[i]
}
