package mesh

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/philipparndt/heightmap2obj/pkg/geometry"
	"github.com/philipparndt/heightmap2obj/pkg/heightmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformGrid(t *testing.T, width, height int, value float64) *heightmap.Grid {
	t.Helper()
	samples := make([]float64, width*height)
	for i := range samples {
		samples[i] = value
	}
	grid, err := heightmap.NewGrid(width, height, samples)
	require.NoError(t, err)
	return grid
}

func randomGrid(t *testing.T, width, height int, seed int64) *heightmap.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	samples := make([]float64, width*height)
	for i := range samples {
		samples[i] = float64(rng.Intn(256)) / 255.0
	}
	grid, err := heightmap.NewGrid(width, height, samples)
	require.NoError(t, err)
	return grid
}

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		width, height int
		faces         int
	}{
		{1, 1, 0},
		{1, 7, 0},
		{7, 1, 0},
		{2, 2, 1},
		{3, 2, 2},
		{5, 4, 12},
		{16, 9, 120},
	}

	for _, tt := range tests {
		m := Generate(uniformGrid(t, tt.width, tt.height, 0.5), DefaultParams())

		assert.Len(t, m.Vertices, tt.width*tt.height, "%dx%d vertices", tt.width, tt.height)
		assert.Len(t, m.Faces, tt.faces, "%dx%d faces", tt.width, tt.height)

		vertices, faces := ExpectedCounts(tt.width, tt.height)
		assert.Equal(t, tt.width*tt.height, vertices)
		assert.Equal(t, tt.faces, faces)
	}
}

func TestGenerateVertexPositions(t *testing.T) {
	grid := randomGrid(t, 5, 3, 1)
	params := Params{Scale: 2.5, MaxHeight: 4}
	m := Generate(grid, params)

	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			v := m.Vertices[row*grid.Width+col]
			assert.Equal(t, (float64(col)-2.5)*2.5, v.X, "x at (%d,%d)", col, row)
			assert.Equal(t, grid.At(col, row)*4*2.5, v.Y, "y at (%d,%d)", col, row)
			assert.Equal(t, (float64(row)-1.5)*2.5, v.Z, "z at (%d,%d)", col, row)
		}
	}
}

func TestGenerateFaceIndices(t *testing.T) {
	grid := uniformGrid(t, 6, 4, 0)
	m := Generate(grid, DefaultParams())

	for i, f := range m.Faces {
		row, col := i/(grid.Width-1), i%(grid.Width-1)
		want := Face{
			row*grid.Width + col + 1,
			row*grid.Width + col + 2,
			(row+1)*grid.Width + col + 2,
			(row+1)*grid.Width + col + 1,
		}
		require.Equal(t, want, f, "face %d", i)

		seen := map[int]bool{}
		for _, idx := range f {
			assert.GreaterOrEqual(t, idx, 1)
			assert.LessOrEqual(t, idx, grid.Len())
			assert.False(t, seen[idx], "duplicate index %d in face %d", idx, i)
			seen[idx] = true
		}
	}
}

func TestGenerateTwoByTwoWhite(t *testing.T) {
	m := Generate(uniformGrid(t, 2, 2, 1), Params{Scale: 1, MaxHeight: 1})

	assert.Equal(t, []geometry.Vector3{
		{X: -1, Y: 1, Z: -1},
		{X: 0, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}, m.Vertices)
	assert.Equal(t, []Face{{1, 2, 4, 3}}, m.Faces)
}

func TestGenerateZeroScaleCollapses(t *testing.T) {
	m := Generate(uniformGrid(t, 4, 3, 1), Params{Scale: 0, MaxHeight: 10})

	for i, v := range m.Vertices {
		assert.Zero(t, v.X, "x of vertex %d", i)
		assert.Zero(t, v.Y, "y of vertex %d", i)
		assert.Zero(t, v.Z, "z of vertex %d", i)
	}
	assert.Len(t, m.Faces, 6)
}

func TestGenerateNegativeMaxHeightInverts(t *testing.T) {
	m := Generate(uniformGrid(t, 2, 2, 1), Params{Scale: 1, MaxHeight: -2})

	for _, v := range m.Vertices {
		assert.Equal(t, -2.0, v.Y)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	grid := randomGrid(t, 13, 11, 42)
	params := Params{Scale: 0.7, MaxHeight: 3.3}

	assert.Equal(t, Generate(grid, params), Generate(grid, params))
}

func TestGenerateContextMatchesGenerate(t *testing.T) {
	grid := randomGrid(t, 37, 29, 7)
	params := Params{Scale: 1.3, MaxHeight: 2}
	expected := Generate(grid, params)

	for _, workers := range []int{0, 1, 2, 3, 8, 100} {
		m, err := GenerateContext(context.Background(), grid, params, workers)
		require.NoError(t, err)
		assert.Equal(t, expected, m, "workers=%d", workers)
	}
}

func TestGenerateContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := GenerateContext(ctx, uniformGrid(t, 4, 4, 0), DefaultParams(), 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, m)
}

func TestMeshBounds(t *testing.T) {
	m := Generate(uniformGrid(t, 3, 3, 0.5), Params{Scale: 2, MaxHeight: 1})
	bbox := m.Bounds()

	assert.Equal(t, geometry.NewVector3(-3, 1, -3), bbox.Min)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), bbox.Max)
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		strict bool
		valid  bool
	}{
		{"defaults", DefaultParams(), true, true},
		{"zero scale permissive", Params{Scale: 0, MaxHeight: 1}, false, true},
		{"negative height permissive", Params{Scale: 1, MaxHeight: -1}, false, true},
		{"zero scale strict", Params{Scale: 0, MaxHeight: 1}, true, false},
		{"negative height strict", Params{Scale: 1, MaxHeight: -1}, true, false},
		{"NaN scale", Params{Scale: math.NaN(), MaxHeight: 1}, false, false},
		{"infinite height", Params{Scale: 1, MaxHeight: math.Inf(1)}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate(tt.strict)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidParams)
			}
		})
	}
}
