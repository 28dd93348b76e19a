//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// deviceID identifies the filesystem a path lives on. Two paths with
// equal deviceID values are on the same mounted filesystem, which is
// the test TrashLocator uses to choose HomeTrash over a top-dir trash.
type deviceID uint64

// deviceOf extracts the device id from a FileInfo obtained via
// os.Lstat. The *syscall.Stat_t cast is the same approach the teacher
// uses in trash_linux.go's findMountPoint and the one
// mutagen-io/mutagen's pkg/filesystem/device_posix.go uses for the
// identical purpose — a raw syscall.Stat_t.Dev field is the only
// portable way to get this across the BSD family without cgo.
func deviceOf(info os.FileInfo) (deviceID, error) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, errors.New("unable to extract raw filesystem information from stat result")
	}
	return deviceID(stat.Dev), nil
}
