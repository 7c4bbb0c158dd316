//go:build unix

package convert

import (
	"os"
	"syscall"
)

// processUmask reads the umask. The umask can only be read by setting it,
// so it is briefly set to 0 and restored.
func processUmask() os.FileMode {
	old := syscall.Umask(0)
	syscall.Umask(old)
	return os.FileMode(old)
}
