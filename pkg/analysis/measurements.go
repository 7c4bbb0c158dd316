package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/heightmap2obj/pkg/geometry"
)

// Polygonal is a mesh made of indexed polygon faces. Face indices are
// 1-based, as in OBJ files.
type Polygonal interface {
	Positions() []geometry.Vector3
	FaceCount() int
	FaceIndices(i int) []int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	VertexCount   int
	FaceCount     int
	EdgeCount     int
	SurfaceArea   float64
	MinHeight     float64
	MaxHeight     float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Analyze measures a mesh. Edges are counted per face, so an edge shared
// by two faces is counted twice. Polygon areas are summed over a triangle
// fan from the first vertex.
func Analyze(m Polygonal) *MeasurementResult {
	vertices := m.Positions()
	result := &MeasurementResult{
		BoundingBox: geometry.NewBoundingBox(),
		VertexCount: len(vertices),
		FaceCount:   m.FaceCount(),
	}

	for _, v := range vertices {
		result.BoundingBox.Extend(v)
	}
	result.Dimensions = result.BoundingBox.Size()
	if !result.BoundingBox.Empty() {
		result.MinHeight = result.BoundingBox.Min.Y
		result.MaxHeight = result.BoundingBox.Max.Y
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i < result.FaceCount; i++ {
		face := m.FaceIndices(i)
		if len(face) < 3 {
			continue
		}

		first := vertices[face[0]-1]
		for j := 1; j+1 < len(face); j++ {
			result.SurfaceArea += geometry.TriangleArea(first, vertices[face[j]-1], vertices[face[j+1]-1])
		}

		for j := range face {
			start := vertices[face[j]-1]
			end := vertices[face[(j+1)%len(face)]-1]
			length := start.Distance(end)

			result.EdgeCount++
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
