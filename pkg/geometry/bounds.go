package geometry

import "math"

// BoundingBox is an axis-aligned box. A box that has not been extended
// by any point is empty: Min is +Inf and Max is -Inf on every axis.
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: Vector3{X: inf, Y: inf, Z: inf},
		Max: Vector3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Extend grows the box to include point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Empty reports whether no point was added yet
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the extent along each axis, zero for an empty box
func (b BoundingBox) Size() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the box
func (b BoundingBox) Center() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}
