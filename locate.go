//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
)

// trashDirSet is the (root, info, files) triple of spec.md §3. Once
// locateTrash returns one, infoDir and filesDir are guaranteed to
// exist with mode 0700.
type trashDirSet struct {
	root     string
	infoDir  string
	filesDir string
}

func trashDirSetAt(root string) trashDirSet {
	return trashDirSet{
		root:     root,
		infoDir:  filepath.Join(root, "info"),
		filesDir: filepath.Join(root, "files"),
	}
}

func (t trashDirSet) ensureDirs() error {
	for _, dir := range [2]string{t.infoDir, t.filesDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	return nil
}

// locateTrash chooses the TrashDirSet for src, following the
// HomeTrash / TopDirAdmin (case 1) / TopDirUser (case 2) algorithm of
// spec.md §4.2.
func locateTrash(src resolvedPath) (trashDirSet, error) {
	home, err := homeTrashRoot()
	if err != nil {
		return trashDirSet{}, wrapStatus(StatusHomeTrashFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(home), 0700); err != nil {
		return trashDirSet{}, wrapStatus(StatusMkdirFailed, errors.Wrapf(err, "unable to create %q", filepath.Dir(home)))
	}

	homeInfo, err := os.Lstat(filepath.Dir(home))
	if err != nil {
		return trashDirSet{}, wrapStatus(StatusHomeStatFailed, errors.Wrapf(err, "unable to stat %q", filepath.Dir(home)))
	}
	homeDevice, err := deviceOf(homeInfo)
	if err != nil {
		return trashDirSet{}, wrapStatus(StatusHomeStatFailed, err)
	}

	if homeDevice == src.device {
		dirs := trashDirSetAt(home)
		if err := dirs.ensureDirs(); err != nil {
			return trashDirSet{}, wrapStatus(StatusMkdirFailed, errors.Wrap(err, "unable to create home trash subdirectories"))
		}
		return dirs, nil
	}

	if dirs, ok := tryTopDirAdmin(src.device); ok {
		return dirs, nil
	}

	dirs, err := topDirUser(src.device)
	if err != nil {
		return trashDirSet{}, err
	}
	return dirs, nil
}

// homeTrashRoot computes $XDG_DATA_HOME/Trash, defaulting
// $XDG_DATA_HOME to $HOME/.local/share. Fails only when neither
// environment variable is usable.
func homeTrashRoot() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome != "" {
		return filepath.Join(dataHome, "Trash"), nil
	}

	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.New("neither XDG_DATA_HOME nor HOME is set")
	}
	return filepath.Join(home, ".local", "share", "Trash"), nil
}

// tryTopDirAdmin attempts case 1: <mount>/.Trash/<uid>. It returns
// ok=false on any abandonment condition (no mount point, missing
// .Trash, .Trash is a symlink, .Trash lacks the sticky bit, or the
// per-uid subdirectories can't be created) — all of which are
// recoverable by falling back to case 2, per spec.md §4.2 step 5.
func tryTopDirAdmin(dev deviceID) (trashDirSet, bool) {
	mount, err := mountPointForDevice(dev)
	if err != nil {
		return trashDirSet{}, false
	}

	adminTrash := filepath.Join(mount, ".Trash")
	info, err := os.Lstat(adminTrash)
	if err != nil {
		return trashDirSet{}, false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return trashDirSet{}, false
	}
	if info.Mode()&os.ModeSticky == 0 {
		return trashDirSet{}, false
	}

	root := filepath.Join(adminTrash, strconv.Itoa(currentUID()))
	dirs := trashDirSetAt(root)
	if err := dirs.ensureDirs(); err != nil {
		return trashDirSet{}, false
	}
	return dirs, true
}

// topDirUser is case 2: <mount>/.Trash-<uid>. Unlike case 1, any
// failure here is fatal — there is no further fallback per spec.md
// §4.2 step 6.
func topDirUser(dev deviceID) (trashDirSet, error) {
	mount, err := mountPointForDevice(dev)
	if err != nil {
		return trashDirSet{}, wrapStatus(StatusTopDirFailed, err)
	}

	root := filepath.Join(mount, ".Trash-"+strconv.Itoa(currentUID()))
	dirs := trashDirSetAt(root)
	if err := dirs.ensureDirs(); err != nil {
		return trashDirSet{}, wrapStatus(StatusMkdirFailed, errors.Wrapf(err, "unable to create %q", root))
	}
	return dirs, nil
}

func currentUID() int {
	return syscall.Getuid()
}
