//go:build linux

package trash

import "golang.org/x/sys/unix"

// nameMaxFor queries the maximum filename length for the filesystem
// containing dir. Linux has no pathconf(3) syscall — glibc emulates
// it from statfs(2) — so we read f_namelen directly via
// golang.org/x/sys/unix, the same call mutagen-io/mutagen's
// pkg/filesystem/format_statfs_linux.go uses for filesystem
// introspection on this platform. The second return value is false
// when the query fails or reports an unusably small value, in which
// case callers must treat NAME_MAX as unbounded per spec.md §4.4 step 2.
// nameMaxFor is a var so tests can stub an arbitrarily small
// NAME_MAX without needing a real filesystem that imposes one.
var nameMaxFor = nameMaxForViaStatfs

func nameMaxForViaStatfs(dir string) (int, bool) {
	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return 0, false
	}
	if stat.Namelen <= 0 {
		return 0, false
	}
	return int(stat.Namelen), true
}
