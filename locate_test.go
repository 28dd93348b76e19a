//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubMountPoint(t *testing.T, mount string) {
	t.Helper()
	orig := mountPointForDevice
	t.Cleanup(func() { mountPointForDevice = orig })
	mountPointForDevice = func(deviceID) (string, error) { return mount, nil }
}

func TestTryTopDirAdminSucceedsWithStickyNonSymlinkTrash(t *testing.T) {
	mount := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(mount, ".Trash"), 0700|os.ModeSticky))
	stubMountPoint(t, mount)

	dirs, ok := tryTopDirAdmin(0)
	require.True(t, ok)
	require.DirExists(t, dirs.infoDir)
	require.DirExists(t, dirs.filesDir)
}

func TestTryTopDirAdminAbandonsWhenTrashIsSymlink(t *testing.T) {
	mount := t.TempDir()
	realDir := filepath.Join(mount, "real")
	require.NoError(t, os.MkdirAll(realDir, 0700|os.ModeSticky))
	require.NoError(t, os.Symlink(realDir, filepath.Join(mount, ".Trash")))
	stubMountPoint(t, mount)

	_, ok := tryTopDirAdmin(0)
	require.False(t, ok, "a symlinked .Trash must abandon case 1 even though it exists")
}

func TestTryTopDirAdminAbandonsWithoutStickyBit(t *testing.T) {
	mount := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(mount, ".Trash"), 0700))
	stubMountPoint(t, mount)

	_, ok := tryTopDirAdmin(0)
	require.False(t, ok)
}

func TestTryTopDirAdminAbandonsWhenMissing(t *testing.T) {
	mount := t.TempDir()
	stubMountPoint(t, mount)

	_, ok := tryTopDirAdmin(0)
	require.False(t, ok)
}

func TestTopDirUserCreatesPerUIDDirectory(t *testing.T) {
	mount := t.TempDir()
	stubMountPoint(t, mount)

	dirs, err := topDirUser(0)
	require.NoError(t, err)
	require.DirExists(t, dirs.infoDir)
	require.DirExists(t, dirs.filesDir)

	info, err := os.Stat(dirs.root)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestHomeTrashRootDefaultsUnderHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/u")

	root, err := homeTrashRoot()
	require.NoError(t, err)
	require.Equal(t, "/home/u/.local/share/Trash", root)
}

func TestHomeTrashRootFailsWithNeitherVarSet(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "")

	_, err := homeTrashRoot()
	require.Error(t, err)
}
