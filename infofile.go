//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// infoWriteResult distinguishes the three outcomes spec.md §4.5
// requires: a clean create, a collision with an existing reservation,
// or any other error.
type infoWriteResult int

const (
	infoWriteOK infoWriteResult = iota
	infoWriteCollision
	infoWriteErr
)

// writeInfoFile atomically creates infoPath with the two-key
// [Trash Info] body, using O_EXCL so that two concurrent callers
// racing for the same stem see exactly one success — the cornerstone
// of this library's cross-process concurrency safety (spec.md §4.5,
// §5). originalPath must already be the absolute, canonical source
// path; it is percent-escaped here, not by the caller.
func writeInfoFile(infoPath, originalPath string, deletionTime time.Time) (infoWriteResult, error) {
	f, err := os.OpenFile(infoPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return infoWriteCollision, nil
		}
		return infoWriteErr, errors.Wrapf(err, "unable to create %q", infoPath)
	}

	body := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapePath(originalPath),
		deletionTime.Format("2006-01-02T15:04:05"))

	if _, writeErr := f.WriteString(body); writeErr != nil {
		f.Close()
		os.Remove(infoPath)
		return infoWriteErr, errors.Wrapf(writeErr, "unable to write %q", infoPath)
	}

	if closeErr := f.Close(); closeErr != nil {
		os.Remove(infoPath)
		return infoWriteErr, errors.Wrapf(closeErr, "unable to close %q", infoPath)
	}

	return infoWriteOK, nil
}
