// Package convert runs a heightmap conversion from image file to OBJ file:
// decode, generate, serialize, write.
package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/philipparndt/heightmap2obj/internal/logger"
	"github.com/philipparndt/heightmap2obj/pkg/heightmap"
	"github.com/philipparndt/heightmap2obj/pkg/mesh"
	"github.com/philipparndt/heightmap2obj/pkg/obj"
	"go.uber.org/zap"
)

// Request describes one conversion
type Request struct {
	InputPath  string
	OutputPath string
	Params     mesh.Params
}

// Options tune how a conversion runs without changing its output
type Options struct {
	// Workers bounds the goroutines generating vertex rows; 0 means one
	// per CPU
	Workers int
	// Strict rejects non-positive scale and max height
	Strict bool
}

// Summary describes a finished conversion
type Summary struct {
	InputPath  string
	OutputPath string
	Width      int
	Height     int
	Vertices   int
	Faces      int
	Bytes      int64
	Elapsed    time.Duration
}

// String returns the completion message shown to users
func (s *Summary) String() string {
	return fmt.Sprintf("Conversion complete!\nVertices: %d\nFaces: %d\nSaved to: %s", s.Vertices, s.Faces, s.OutputPath)
}

// Details returns a one-line description including size and duration
func (s *Summary) Details() string {
	return fmt.Sprintf("%dx%d heightmap, %s vertices, %s faces, %s written in %s",
		s.Width, s.Height,
		humanize.Comma(int64(s.Vertices)), humanize.Comma(int64(s.Faces)),
		humanize.Bytes(uint64(s.Bytes)), s.Elapsed.Round(time.Millisecond))
}

// DefaultOutputPath suggests the output file for an input image: the same
// path with an .obj extension.
func DefaultOutputPath(inputPath string) string {
	if inputPath == "" {
		return ""
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".obj"
}

// Run converts req.InputPath into an OBJ file at req.OutputPath. Progress
// goes to reporter, which may be nil. Request validation happens before
// any file is touched. The output is written to a temporary file and only
// renamed into place after the whole mesh was written, so a failed run
// never leaves a truncated OBJ file behind.
func Run(ctx context.Context, req Request, opts Options, reporter Reporter) (*Summary, error) {
	if reporter == nil {
		reporter = discardReporter{}
	}
	log := logger.Named("convert")

	summary, err := run(ctx, req, opts, reporter, log)
	if err != nil {
		log.Error("conversion failed", zap.String("input", req.InputPath), zap.Error(err))
		reporter.Status(fmt.Sprintf("Error during conversion: %v", err))
		return nil, err
	}

	log.Info("conversion complete",
		zap.String("input", summary.InputPath),
		zap.String("output", summary.OutputPath),
		zap.Int("vertices", summary.Vertices),
		zap.Int("faces", summary.Faces),
		zap.Int64("bytes", summary.Bytes),
		zap.Duration("elapsed", summary.Elapsed))
	reporter.Status(summary.String())
	return summary, nil
}

func run(ctx context.Context, req Request, opts Options, reporter Reporter, log *zap.Logger) (*Summary, error) {
	if req.InputPath == "" {
		return nil, ErrMissingInput
	}
	if req.OutputPath == "" {
		return nil, ErrMissingOutput
	}
	if err := req.Params.Validate(opts.Strict); err != nil {
		return nil, err
	}

	start := time.Now()
	reporter.Status("Starting conversion...")

	reporter.Status(fmt.Sprintf("Loading image: %s", req.InputPath))
	grid, err := heightmap.Decode(req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, req.InputPath, err)
	}
	log.Debug("image decoded", zap.String("path", req.InputPath), zap.Int("width", grid.Width), zap.Int("height", grid.Height))
	reporter.Status(fmt.Sprintf("Image dimensions: %dx%d pixels", grid.Width, grid.Height))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	m, err := mesh.GenerateContext(ctx, grid, req.Params, workers)
	if err != nil {
		return nil, err
	}
	log.Debug("mesh generated", zap.Int("vertices", m.VertexCount()), zap.Int("faces", m.FaceCount()), zap.Int("workers", workers))

	header := obj.NewHeader(req.InputPath, m, req.Params)
	written, err := writeAtomic(req.OutputPath, func(w io.Writer) error {
		enc := obj.NewEncoder(w)
		if err := enc.WriteHeader(header); err != nil {
			return err
		}

		reporter.Status("Writing vertices...")
		if err := enc.WriteVertices(m.Vertices); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		reporter.Status("Writing faces...")
		if err := enc.WriteFaces(m.Faces); err != nil {
			return err
		}
		return enc.Flush()
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w %s: %w", ErrWrite, req.OutputPath, err)
	}

	return &Summary{
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		Width:      grid.Width,
		Height:     grid.Height,
		Vertices:   m.VertexCount(),
		Faces:      m.FaceCount(),
		Bytes:      written,
		Elapsed:    time.Since(start),
	}, nil
}
