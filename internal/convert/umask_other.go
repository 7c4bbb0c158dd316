//go:build !unix

package convert

import "os"

// processUmask returns 0: there is no umask outside unix
func processUmask() os.FileMode {
	return 0
}
