//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveIntoTrashRemovesInfoFileOnFailure(t *testing.T) {
	root := t.TempDir()
	infoPath := filepath.Join(root, "stem.trashinfo")
	require.NoError(t, os.WriteFile(infoPath, []byte("[Trash Info]\n"), 0600))

	src := filepath.Join(root, "does-not-exist")
	dst := filepath.Join(root, "missing-parent", "stem")

	err := moveIntoTrash(src, dst, infoPath)
	require.Error(t, err)

	_, statErr := os.Lstat(infoPath)
	require.True(t, os.IsNotExist(statErr), "reservation info file must be rolled back on rename failure")
}

func TestMoveIntoTrashSucceeds(t *testing.T) {
	root := t.TempDir()
	infoPath := filepath.Join(root, "stem.trashinfo")
	require.NoError(t, os.WriteFile(infoPath, []byte("[Trash Info]\n"), 0600))

	src := filepath.Join(root, "source.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))
	dst := filepath.Join(root, "stem")

	require.NoError(t, moveIntoTrash(src, dst, infoPath))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "payload", string(content))

	// The reservation must still exist: the move succeeded.
	_, err = os.Lstat(infoPath)
	require.NoError(t, err)
}
