package convert

import (
	"errors"

	"github.com/philipparndt/heightmap2obj/pkg/mesh"
)

// Error kinds reported by Run. Use errors.Is to tell them apart; the
// wrapped error carries the details.
var (
	ErrMissingInput  = errors.New("please select an input heightmap image")
	ErrMissingOutput = errors.New("please specify an output OBJ file")
	ErrDecode        = errors.New("failed to decode heightmap")
	ErrWrite         = errors.New("failed to write OBJ file")
	ErrInvalidParams = mesh.ErrInvalidParams
)
