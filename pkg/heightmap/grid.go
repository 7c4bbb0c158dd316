// Package heightmap turns raster images into grids of normalized
// intensity samples.
package heightmap

import "fmt"

// Grid is a rectangular, row-major grid of intensity samples in [0, 1],
// 0 being black and 1 white. A Grid must not be modified after it has
// been handed to the mesher.
type Grid struct {
	Width   int
	Height  int
	Samples []float64
}

// NewGrid validates the dimensions and samples and wraps them in a Grid.
// The samples slice is used as is, not copied.
func NewGrid(width, height int, samples []float64) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("grid %dx%d needs %d samples, got %d", width, height, width*height, len(samples))
	}
	for i, s := range samples {
		// also rejects NaN
		if !(s >= 0 && s <= 1) {
			return nil, fmt.Errorf("sample %d (col %d, row %d) out of range [0,1]: %v", i, i%width, i/width, s)
		}
	}
	return &Grid{Width: width, Height: height, Samples: samples}, nil
}

// At returns the sample of the given column and row
func (g *Grid) At(col, row int) float64 {
	return g.Samples[row*g.Width+col]
}

// Len returns the number of samples
func (g *Grid) Len() int {
	return g.Width * g.Height
}
