package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/heightmap2obj/pkg/geometry"
)

// ParseFile reads an OBJ file and returns a Model
func ParseFile(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads comments, vertices and faces from r. Other statements
// (normals, texture coordinates, groups, materials) are skipped. Face
// indices may use the v/vt/vn form and negative relative indices; they
// are resolved to absolute 1-based indices.
func Parse(r io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	model := NewModel()

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			model.Comments = append(model.Comments, strings.TrimSpace(line[1:]))
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			model.Vertices = append(model.Vertices, v)

		case "f":
			face, err := parseFace(fields[1:], len(model.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			model.Faces = append(model.Faces, face)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	return model, nil
}

// parseVertex parses "x y z [w]"; the optional weight is ignored
func parseVertex(fields []string) (geometry.Vector3, error) {
	if len(fields) < 3 {
		return geometry.Vector3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}

	var coords [3]float64
	for i := range coords {
		c, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid vertex coordinate %q: %w", fields[i], err)
		}
		coords[i] = c
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

func parseFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	face := make([]int, len(fields))
	for i, field := range fields {
		ref, _, _ := strings.Cut(field, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("invalid face index %q: %w", field, err)
		}
		if idx < 0 {
			idx = vertexCount + idx + 1
		}
		if idx < 1 || idx > vertexCount {
			return nil, fmt.Errorf("face index %s out of range (%d vertices defined)", ref, vertexCount)
		}
		face[i] = idx
	}
	return face, nil
}
