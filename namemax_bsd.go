//go:build freebsd || netbsd || openbsd || dragonfly

package trash

import "golang.org/x/sys/unix"

// nameMaxFor queries NAME_MAX via the real pathconf(2) the BSD family
// exposes, unlike Linux. golang.org/x/sys/unix.Pathconf wraps it
// directly, so no statfs-field workaround is needed here.
var nameMaxFor = nameMaxForViaPathconf

func nameMaxForViaPathconf(dir string) (int, bool) {
	n, err := unix.Pathconf(dir, unix.PC_NAME_MAX)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
