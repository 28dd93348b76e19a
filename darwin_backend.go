//go:build darwin

// macOS is outside this module's core (spec.md §1): it is treated as
// an opaque external collaborator whose only contract is "move path
// to the recycle store; return ok or error." Rather than invent an
// NSFileManager cgo binding — no such library appears anywhere in the
// retrieved corpus, and the project's dependency policy forbids
// fabricating one — this adapter drives Finder's "move to trash" verb
// through osascript, mirroring the teacher's own pattern of shelling
// out to a platform tool on Darwin (its mount_darwin.go already shells
// out to df/mount for the exact same reason: no portable syscall
// binding exists).
package trash

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// SoftDelete is the macOS thin-adapter entry point. It shares the
// stable Status contract with the Linux/BSD core, but none of the
// XDG machinery: it is a single external call.
func SoftDelete(path string) Status {
	return statusOf(softDelete(path))
}

// Delete is the idiomatic wrapper, identical in shape to the core's.
func Delete(path string) error {
	return softDelete(path)
}

func softDelete(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return wrapStatus(StatusRealPathFailed, errors.Wrap(err, "unable to make path absolute"))
	}

	script := fmt.Sprintf(
		`tell application "Finder" to delete POSIX file %q`,
		abs,
	)
	cmd := exec.Command("osascript", "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return wrapStatus(StatusRenameFailed, errors.Wrapf(err, "osascript failed: %s", out))
	}
	return nil
}
