package obj

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/heightmap2obj/pkg/geometry"
	"github.com/philipparndt/heightmap2obj/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	params := mesh.Params{Scale: 2, MaxHeight: 1.5}
	m := generate(t, 3, 3, []float64{0, 0.5, 1, 1, 0.5, 0, 0, 0, 0}, params)

	model, err := Parse(bytes.NewReader(Encode(m, NewHeader("r.png", m, params))))
	require.NoError(t, err)

	assert.Equal(t, m.VertexCount(), model.VertexCount())
	assert.Equal(t, m.FaceCount(), model.FaceCount())
	assert.Equal(t, "Heightmap to OBJ", model.Comments[0])
	assert.Equal(t, "Dimensions: 3x3", model.Comments[2])
	for i, f := range m.Faces {
		assert.Equal(t, f[:], model.Faces[i])
	}
	for i, v := range m.Vertices {
		assert.InDelta(t, v.X, model.Vertices[i].X, 1e-4)
		assert.InDelta(t, v.Y, model.Vertices[i].Y, 1e-4)
		assert.InDelta(t, v.Z, model.Vertices[i].Z, 1e-4)
	}
}

func TestParseGeneralOBJ(t *testing.T) {
	src := `# triangle and quad
o thing
v 0 0 0
v 1 0 0
v 1 1 0 1.0
vn 0 0 1
vt 0 0
v 0 1 0
f 1/1/1 2/1/1 3/1/1
f -4 -3 -2 -1
usemtl none
`
	model, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"triangle and quad"}, model.Comments)
	assert.Len(t, model.Vertices, 4)
	assert.Equal(t, geometry.NewVector3(1, 1, 0), model.Vertices[2])
	assert.Equal(t, [][]int{{1, 2, 3}, {1, 2, 3, 4}}, model.Faces)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"short vertex":       "v 1 2\n",
		"bad coordinate":     "v 1 two 3\n",
		"short face":         "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"bad index":          "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 x 3\n",
		"index out of range": "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 4\n",
		"zero index":         "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 0 1 2\n",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(src))
			assert.ErrorContains(t, err, "line ")
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 1 2 3\n"), 0644))

	model, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Vector3{{X: 1, Y: 2, Z: 3}}, model.Vertices)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
