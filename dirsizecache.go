//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// refreshDirSizeCache rewrites <root>/directorysizes so it contains
// exactly one line per direct subdirectory of filesDir that has a
// sibling .trashinfo file, per spec.md §4.7. It is not part of the atomic commit of an entry: a crash
// between the rename in moveIntoTrash and this call leaves the cache
// stale, which the next successful delete self-heals by rebuilding it
// from scratch.
func refreshDirSizeCache(dirs trashDirSet) error {
	stem, err := randomNameStem(16)
	if err != nil {
		return wrapStatus(StatusDirCacheFailed, err)
	}
	tmpPath := filepath.Join(dirs.root, stem)

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return wrapStatus(StatusDirCacheFailed, errors.Wrapf(err, "unable to create %q", tmpPath))
	}

	if err := writeDirSizeLines(tmp, dirs); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return wrapStatus(StatusDirCacheFailed, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return wrapStatus(StatusDirCacheFailed, errors.Wrap(err, "unable to close temporary size-cache file"))
	}

	cachePath := filepath.Join(dirs.root, "directorysizes")
	if err := os.Rename(tmpPath, cachePath); err != nil {
		os.Remove(tmpPath)
		return wrapStatus(StatusDirCacheFailed, errors.Wrap(err, "unable to replace directorysizes"))
	}

	return nil
}

func writeDirSizeLines(tmp *os.File, dirs trashDirSet) error {
	entries, err := os.ReadDir(dirs.filesDir)
	if err != nil {
		return errors.Wrapf(err, "unable to read %q", dirs.filesDir)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue // only directories get a cache line, per spec.md §4.7
		}

		infoPath := filepath.Join(dirs.infoDir, entry.Name()+trashInfoSuffix)
		infoStat, err := os.Lstat(infoPath)
		if err != nil {
			continue // no sibling .trashinfo: skip this entry, spec.md §4.7 step 2
		}

		size, err := recursiveRegularFileSize(filepath.Join(dirs.filesDir, entry.Name()))
		if err != nil {
			return err
		}

		line := fmt.Sprintf("%d %d %s\n", size, infoStat.ModTime().Unix(), entry.Name())
		if _, err := tmp.WriteString(line); err != nil {
			return errors.Wrap(err, "unable to write size-cache line")
		}
	}

	return nil
}

// recursiveRegularFileSize sums the byte size of every regular file
// beneath root. It recurses into child directories but never follows
// symlinks, and symlinks/sockets/fifos/devices contribute zero, per
// spec.md §4.7 step 2.
func recursiveRegularFileSize(root string) (uint64, error) {
	var total uint64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.Type()&os.ModeSymlink != 0 {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += uint64(info.Size())
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "unable to walk %q", root)
	}
	return total, nil
}
