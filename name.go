//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"crypto/rand"
	"encoding/hex"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const trashInfoSuffix = ".trashinfo"

// candidateName is the (info_file_path, file_path) pair the
// NameAllocator produces for one attempt, per spec.md §4.4.
type candidateName struct {
	infoPath string
	filePath string
}

// allocateName implements NameAllocator. basename is the original
// entry's basename, dirs is the destination TrashDirSet, t is the
// deletion time captured once per SoftDelete call, counter is the
// current retry attempt, and forceRandom short-circuits straight to a
// random stem (set once the unsigned counter has wrapped).
func allocateName(basename string, dirs trashDirSet, t time.Time, counter uint64, forceRandom bool) (candidateName, error) {
	ts := t.Format("20060102150405")
	cs := strconv.FormatUint(counter, 16)

	nameMax, bounded := nameMaxFor(dirs.filesDir)

	stem := basename + ts + cs
	useRandom := forceRandom
	if bounded && len(stem)+len(trashInfoSuffix) > nameMax {
		useRandom = true
	}

	if useRandom {
		randomLen := nameMax - len(trashInfoSuffix)
		if !bounded || randomLen <= 0 {
			randomLen = 32
		}
		if randomLen%2 != 0 {
			randomLen-- // round down, per spec.md §9's deliberate refinement
		}
		if randomLen <= 0 {
			return candidateName{}, wrapStatus(StatusNameFailed, errors.New("filesystem NAME_MAX too small for any trash entry"))
		}
		s, err := randomHexStem(randomLen / 2)
		if err != nil {
			return candidateName{}, wrapStatus(StatusNameAllocFailed, err)
		}
		stem = s
	}

	return candidateName{
		infoPath: filepath.Join(dirs.infoDir, stem+trashInfoSuffix),
		filePath: filepath.Join(dirs.filesDir, stem),
	}, nil
}

// randomHexStem draws n cryptographically random bytes from the OS
// random device and renders them as an uppercase hex string of length
// 2n, the "safety valve" path spec.md §4.4 describes for filesystems
// with a very small NAME_MAX. It is a var, not a plain func, so tests
// can stub it to pin down a deterministic stem and force a collision
// on the random-name path.
var randomHexStem = func(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "unable to read random bytes")
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// randomNameStem is the same generator used for DirSizeCache's
// temporary file names (spec.md §4.7 step 1 mandates reusing it).
func randomNameStem(n int) (string, error) {
	return randomHexStem(n)
}
