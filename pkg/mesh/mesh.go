// Package mesh builds quad meshes from heightmap grids.
//
// Vertices are emitted in row-major order, one per grid sample, and
// faces reference them with 1-based indices, one quad per interior cell.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/heightmap2obj/pkg/geometry"
)

// ErrInvalidParams is returned when mesh parameters are rejected
var ErrInvalidParams = errors.New("invalid mesh parameters")

// Params controls how intensities are mapped to positions. Scale applies
// to all three axes, MaxHeight multiplies the normalized intensity.
type Params struct {
	Scale     float64
	MaxHeight float64
}

// DefaultParams returns the parameters the converter starts with
func DefaultParams() Params {
	return Params{Scale: 1.0, MaxHeight: 1.0}
}

// Validate checks the parameters. NaN and infinite values are always
// rejected. Zero and negative values flatten or invert the mesh and are
// only rejected when strict is set.
func (p Params) Validate(strict bool) error {
	if math.IsNaN(p.Scale) || math.IsInf(p.Scale, 0) {
		return fmt.Errorf("%w: scale must be finite, got %v", ErrInvalidParams, p.Scale)
	}
	if math.IsNaN(p.MaxHeight) || math.IsInf(p.MaxHeight, 0) {
		return fmt.Errorf("%w: max height must be finite, got %v", ErrInvalidParams, p.MaxHeight)
	}
	if strict {
		if p.Scale <= 0 {
			return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidParams, p.Scale)
		}
		if p.MaxHeight <= 0 {
			return fmt.Errorf("%w: max height must be positive, got %v", ErrInvalidParams, p.MaxHeight)
		}
	}
	return nil
}

// Face is a quad given by four 1-based vertex indices
type Face [4]int

// Mesh is the generated geometry of one heightmap
type Mesh struct {
	Width    int
	Height   int
	Vertices []geometry.Vector3
	Faces    []Face
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Positions returns the vertex positions
func (m *Mesh) Positions() []geometry.Vector3 {
	return m.Vertices
}

// FaceIndices returns the 1-based vertex indices of face i
func (m *Mesh) FaceIndices(i int) []int {
	f := m.Faces[i]
	return f[:]
}

// Bounds returns the bounding box of all vertices
func (m *Mesh) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// ExpectedCounts returns the vertex and face counts of a width x height grid
func ExpectedCounts(width, height int) (vertices, faces int) {
	vertices = width * height
	if width > 1 && height > 1 {
		faces = (width - 1) * (height - 1)
	}
	return vertices, faces
}
