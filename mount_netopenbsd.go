//go:build netbsd || openbsd

package trash

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// mountPointForDevice implements MountLookup on NetBSD and OpenBSD.
// Neither exposes a getfsstat(2) wrapper in golang.org/x/sys/unix as
// reliably as FreeBSD/DragonFly do, so this mirrors the teacher's own
// fallback strategy on Darwin (mount_darwin.go): shell out to mount(8)
// and parse its "<device> on <mountpoint> (<type>, ...)" output. It is
// the same "equivalent in-memory mount list" spec.md §4.3 allows for,
// just reached via the system's own mount(8) rather than a direct
// syscall binding that doesn't exist for these two kernels in the
// vendored dependency set.
var mountPointForDevice = mountPointForDeviceViaMountCmd

func mountPointForDeviceViaMountCmd(dev deviceID) (string, error) {
	out, err := exec.Command("mount").Output()
	if err != nil {
		return "", errors.Wrap(err, "unable to run mount(8)")
	}

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), " on ", 2)
		if len(parts) != 2 {
			continue
		}
		fields := strings.Fields(parts[1])
		if len(fields) == 0 {
			continue
		}
		mountPoint := fields[0]

		info, err := os.Lstat(mountPoint)
		if err != nil {
			continue
		}
		mdev, err := deviceOf(info)
		if err != nil {
			continue
		}
		if mdev == dev {
			return mountPoint, nil
		}
	}

	return "", errors.New("no mount point found for device")
}
