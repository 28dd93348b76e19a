//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// moveIntoTrash renames src to dst. On failure, it unlinks the
// reservation info file at infoPath before returning, since the
// reservation it protected never got claimed by a files/ entry
// (spec.md §4.6). Cross-device renames (EXDEV) are not retried — the
// caller's canonical path already lives on the same device as dirs,
// so EXDEV here indicates a TOCTOU race on the mount table, not an
// expected condition.
func moveIntoTrash(src, dst, infoPath string) error {
	if err := os.Rename(src, dst); err != nil {
		os.Remove(infoPath)
		if isCrossDeviceError(err) {
			return wrapStatus(StatusRenameFailed, errors.Wrap(err, "cannot move across devices"))
		}
		return wrapStatus(StatusRenameFailed, errors.Wrapf(err, "unable to rename %q to %q", src, dst))
	}
	return nil
}

func isCrossDeviceError(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
