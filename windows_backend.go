//go:build windows

// Windows is outside this module's core (spec.md §1): like macOS it
// is an opaque external collaborator. No COM/IFileOperation binding
// library appears anywhere in the retrieved corpus, and the project's
// dependency policy forbids fabricating one, so this adapter calls
// the older SHFileOperationW recycle-bin API directly through
// golang.org/x/sys/windows (the golang.org/x/sys module is already a
// dependency for the NAME_MAX plumbing used elsewhere), which exposes exactly
// the "move path to recycle store; return ok or error" contract the
// spec asks of this backend.
package trash

import (
	"path/filepath"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

const (
	foDelete        = 0x0003
	fofAllowUndo    = 0x0040
	fofNoConfirmation = 0x0010
	fofSilent       = 0x0004
)

// shFileOpStruct mirrors the Win32 SHFILEOPSTRUCTW layout closely
// enough to drive SHFileOperationW for a single recycle-bin move.
type shFileOpStruct struct {
	hwnd                  uintptr
	wFunc                 uint32
	pFrom                 *uint16
	pTo                   *uint16
	fFlags                uint16
	fAnyOperationsAborted int32
	hNameMappings         uintptr
	lpszProgressTitle     *uint16
}

// SoftDelete is the Windows thin-adapter entry point, sharing the
// stable Status contract with the Linux/BSD core.
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

	// SHFileOperationW requires the source list to be double-NUL
	// terminated, even for a single entry.
	from, err := windows.UTF16FromString(abs)
	if err != nil {
		return wrapStatus(StatusRealPathFailed, errors.Wrap(err, "unable to encode path as UTF-16"))
	}
	from = append(from, 0)

	op := shFileOpStruct{
		wFunc:  foDelete,
		pFrom:  &from[0],
		fFlags: fofAllowUndo | fofNoConfirmation | fofSilent,
	}

	shell32 := windows.NewLazySystemDLL("shell32.dll")
	proc := shell32.NewProc("SHFileOperationW")
	ret, _, _ := proc.Call(uintptr(unsafe.Pointer(&op)))
	if ret != 0 {
		return wrapStatus(StatusRenameFailed, errors.Errorf("SHFileOperationW failed with code %d", ret))
	}
	if op.fAnyOperationsAborted != 0 {
		return wrapStatus(StatusRenameFailed, errors.New("recycle operation was aborted"))
	}
	return nil
}
