//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// resolvedPath is the output of the PathResolver component: a fully
// canonical, symlink-free absolute path, the device id it lives on,
// and its basename.
type resolvedPath struct {
	canonical string
	device    deviceID
	basename  string
}

// resolvePath canonicalises path per spec.md §4.1. The whole path,
// including its final component, is dereferenced via
// filepath.EvalSymlinks: per spec.md §9's resolution of the "symlink
// as input" question, trashing a symlink moves its *target*, matching
// the upstream implementation this behaviour is preserved from.
func resolvePath(path string) (resolvedPath, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return resolvedPath{}, wrapStatus(StatusRealPathFailed, errors.Wrap(err, "unable to make path absolute"))
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return resolvedPath{}, wrapStatus(StatusRealPathFailed, errors.Wrapf(err, "unable to resolve %q", abs))
	}

	if canonical == string(filepath.Separator) {
		return resolvedPath{}, wrapStatus(StatusNameFailed, nil)
	}

	info, err := os.Lstat(canonical)
	if err != nil {
		return resolvedPath{}, wrapStatus(StatusPathStatFailed, errors.Wrapf(err, "unable to stat %q", canonical))
	}

	dev, err := deviceOf(info)
	if err != nil {
		return resolvedPath{}, wrapStatus(StatusPathStatFailed, err)
	}

	basename := basenameOf(canonical)
	if basename == "" {
		return resolvedPath{}, wrapStatus(StatusNameFailed, nil)
	}

	return resolvedPath{canonical: canonical, device: dev, basename: basename}, nil
}

// basenameOf returns the text after the last '/'. It is deliberately
// simpler than filepath.Base: filepath.Base maps "/" to "/" and "."
// to ".", which would hide the NameFailed case spec.md §4.1 requires
// for the root path.
func basenameOf(canonical string) string {
	idx := strings.LastIndexByte(canonical, filepath.Separator)
	if idx < 0 {
		return canonical
	}
	return canonical[idx+1:]
}
