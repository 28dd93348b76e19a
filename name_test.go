//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAllocateNameFallsBackToRandomWhenNameMaxTooSmall(t *testing.T) {
	orig := nameMaxFor
	defer func() { nameMaxFor = orig }()
	nameMaxFor = func(dir string) (int, bool) { return 14, true }

	dirs := trashDirSet{root: "/trash", infoDir: "/trash/info", filesDir: "/trash/files"}
	t0 := time.Date(2024, 5, 1, 12, 34, 56, 0, time.Local)

	cand, err := allocateName("short", dirs, t0, 0, false)
	require.NoError(t, err)

	stem := cand.infoPath[len(dirs.infoDir)+1 : len(cand.infoPath)-len(trashInfoSuffix)]
	require.LessOrEqual(t, len(stem)+len(trashInfoSuffix), 14)
	require.NotContains(t, stem, "short")
}

func TestAllocateNameDerivedStemWhenItFits(t *testing.T) {
	orig := nameMaxFor
	defer func() { nameMaxFor = orig }()
	nameMaxFor = func(dir string) (int, bool) { return 255, true }

	dirs := trashDirSet{root: "/trash", infoDir: "/trash/info", filesDir: "/trash/files"}
	t0 := time.Date(2024, 5, 1, 12, 34, 56, 0, time.Local)

	cand, err := allocateName("notes.txt", dirs, t0, 0, false)
	require.NoError(t, err)
	require.Equal(t, "/trash/info/notes.txt202405011234560.trashinfo", cand.infoPath)
	require.Equal(t, "/trash/files/notes.txt202405011234560", cand.filePath)
}

func TestAllocateNameForceRandom(t *testing.T) {
	orig := nameMaxFor
	defer func() { nameMaxFor = orig }()
	nameMaxFor = func(dir string) (int, bool) { return 255, true }

	dirs := trashDirSet{root: "/trash", infoDir: "/trash/info", filesDir: "/trash/files"}
	t0 := time.Now()

	cand, err := allocateName("notes.txt", dirs, t0, 0, true)
	require.NoError(t, err)
	require.NotContains(t, cand.filePath, "notes.txt")
}

func TestRandomHexStemIsUppercase(t *testing.T) {
	s, err := randomHexStem(8)
	require.NoError(t, err)
	require.Len(t, s, 16)
	require.Equal(t, s, upperCaseOnly(s))
}

func upperCaseOnly(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'z' {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}
