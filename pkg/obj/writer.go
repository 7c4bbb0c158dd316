// Package obj reads and writes the Wavefront OBJ subset produced by the
// heightmap converter: comment lines, vertices and polygon faces.
package obj

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/heightmap2obj/pkg/geometry"
	"github.com/philipparndt/heightmap2obj/pkg/mesh"
)

// Title is the first comment line of every generated file
const Title = "Heightmap to OBJ"

// Header carries the provenance written as comments before the geometry
type Header struct {
	Source    string
	Width     int
	Height    int
	Scale     float64
	MaxHeight float64
}

// NewHeader builds the header of a mesh generated from source
func NewHeader(source string, m *mesh.Mesh, params mesh.Params) Header {
	return Header{
		Source:    source,
		Width:     m.Width,
		Height:    m.Height,
		Scale:     params.Scale,
		MaxHeight: params.MaxHeight,
	}
}

// Encoder writes a mesh section by section so callers can report progress
// between the vertex and face blocks. Output is buffered; call Flush when
// done.
type Encoder struct {
	w   *bufio.Writer
	buf []byte
}

// NewEncoder creates an encoder writing to w
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:   bufio.NewWriterSize(w, 64*1024),
		buf: make([]byte, 0, 128),
	}
}

// WriteHeader writes the comment header followed by a blank line
func (e *Encoder) WriteHeader(h Header) error {
	_, err := fmt.Fprintf(e.w, "# %s\n# Original image: %s\n# Dimensions: %dx%d\n# Scale: %s\n# Max height: %s\n\n",
		Title, h.Source, h.Width, h.Height, FormatParam(h.Scale), FormatParam(h.MaxHeight))
	return err
}

// WriteVertices writes one "v x y z" line per vertex with four decimals
func (e *Encoder) WriteVertices(vertices []geometry.Vector3) error {
	for _, v := range vertices {
		b := append(e.buf[:0], 'v', ' ')
		b = strconv.AppendFloat(b, v.X, 'f', 4, 64)
		b = append(b, ' ')
		b = strconv.AppendFloat(b, v.Y, 'f', 4, 64)
		b = append(b, ' ')
		b = strconv.AppendFloat(b, v.Z, 'f', 4, 64)
		b = append(b, '\n')
		e.buf = b
		if _, err := e.w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// WriteFaces writes one "f a b c d" line per quad
func (e *Encoder) WriteFaces(faces []mesh.Face) error {
	for _, f := range faces {
		b := append(e.buf[:0], 'f')
		for _, idx := range f {
			b = append(b, ' ')
			b = strconv.AppendInt(b, int64(idx), 10)
		}
		b = append(b, '\n')
		e.buf = b
		if _, err := e.w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

// Write serializes the mesh to w, preserving vertex and face order
func Write(w io.Writer, m *mesh.Mesh, h Header) error {
	enc := NewEncoder(w)
	if err := enc.WriteHeader(h); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := enc.WriteVertices(m.Vertices); err != nil {
		return fmt.Errorf("failed to write vertices: %w", err)
	}
	if err := enc.WriteFaces(m.Faces); err != nil {
		return fmt.Errorf("failed to write faces: %w", err)
	}
	return enc.Flush()
}

// Encode returns the serialized mesh
func Encode(m *mesh.Mesh, h Header) []byte {
	var buf bytes.Buffer
	// writes to a bytes.Buffer cannot fail
	_ = Write(&buf, m, h)
	return buf.Bytes()
}

// FormatParam prints a parameter the way Python's repr prints floats: the
// shortest decimal that round-trips, a ".0" suffix on integral values
// (1 -> "1.0"), and exponent form when the decimal exponent is below -4
// or at least 16 (0.00001 -> "1e-05", 1e16 -> "1e+16").
func FormatParam(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strings.ToLower(strconv.FormatFloat(v, 'g', -1, 64))
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	_, exp, _ := strings.Cut(sci, "e")
	if e, err := strconv.Atoi(exp); err == nil && v != 0 && (e < -4 || e >= 16) {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
