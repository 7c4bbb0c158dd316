package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeAtomic writes to a temporary file next to path and renames it over
// path once fill succeeded. On any failure the temporary file is removed
// and path is left untouched. It returns the number of bytes written.
func writeAtomic(path string, fill func(w io.Writer) error) (int64, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()

	// removed unless renamed
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	counter := &countingWriter{w: tmp}
	if err := fill(counter); err != nil {
		return 0, err
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, outputMode(path)); err != nil {
		return 0, err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, err
	}

	committed = true
	return counter.n, nil
}

// outputMode keeps the permissions of an existing output file. New files
// get 0666 minus the process umask, as os.Create would give them.
func outputMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0666 &^ processUmask()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
