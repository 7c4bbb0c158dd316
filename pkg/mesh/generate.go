package mesh

import (
	"context"

	"github.com/philipparndt/heightmap2obj/pkg/geometry"
	"github.com/philipparndt/heightmap2obj/pkg/heightmap"
	"golang.org/x/sync/errgroup"
)

// Generate builds the mesh of grid. It performs no I/O and always returns
// the same mesh for the same input.
func Generate(grid *heightmap.Grid, params Params) *Mesh {
	m := newMesh(grid)
	emitVertexRows(m.Vertices, grid, params, 0, grid.Height)
	emitFaces(m.Faces, grid.Width, grid.Height)
	return m
}

// GenerateContext is Generate with cancellation and optional parallel
// vertex generation. Vertex rows are split across up to workers
// goroutines; the result is identical to Generate. The context is
// checked before, between and after the vertex and face passes.
func GenerateContext(ctx context.Context, grid *heightmap.Grid, params Params, workers int) (*Mesh, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := newMesh(grid)

	if workers > grid.Height {
		workers = grid.Height
	}
	if workers <= 1 {
		emitVertexRows(m.Vertices, grid, params, 0, grid.Height)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		rowsPerWorker := (grid.Height + workers - 1) / workers
		for start := 0; start < grid.Height; start += rowsPerWorker {
			start := start
			end := min(start+rowsPerWorker, grid.Height)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				emitVertexRows(m.Vertices, grid, params, start, end)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emitFaces(m.Faces, grid.Width, grid.Height)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func newMesh(grid *heightmap.Grid) *Mesh {
	vertexCount, faceCount := ExpectedCounts(grid.Width, grid.Height)
	return &Mesh{
		Width:    grid.Width,
		Height:   grid.Height,
		Vertices: make([]geometry.Vector3, vertexCount),
		Faces:    make([]Face, faceCount),
	}
}

// emitVertexRows fills the vertices of rows [startRow, endRow)
func emitVertexRows(dst []geometry.Vector3, grid *heightmap.Grid, params Params, startRow, endRow int) {
	halfWidth := float64(grid.Width) / 2
	halfHeight := float64(grid.Height) / 2

	for row := startRow; row < endRow; row++ {
		z := (float64(row) - halfHeight) * params.Scale
		base := row * grid.Width
		for col := 0; col < grid.Width; col++ {
			dst[base+col] = geometry.Vector3{
				X: (float64(col) - halfWidth) * params.Scale,
				Y: grid.Samples[base+col] * params.MaxHeight * params.Scale,
				Z: z,
			}
		}
	}
}

// emitFaces fills one quad per interior cell in row-major cell order
func emitFaces(dst []Face, width, height int) {
	i := 0
	for row := 0; row < height-1; row++ {
		for col := 0; col < width-1; col++ {
			top := row*width + col + 1
			bottom := (row+1)*width + col + 1
			dst[i] = Face{top, top + 1, bottom + 1, bottom}
			i++
		}
	}
}
