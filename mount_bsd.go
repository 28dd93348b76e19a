//go:build freebsd || dragonfly

package trash

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// mountPointForDevice implements MountLookup on FreeBSD and
// DragonFly BSD using the getfsstat(2) family exposed by
// golang.org/x/sys/unix, which returns the full in-kernel mount table
// in one call — no /proc filesystem required, matching spec.md §4.3's
// "kernel-exported ... equivalent in-memory mount list" wording more
// directly than shelling out to mount(8) would.
var mountPointForDevice = mountPointForDeviceViaGetfsstat

func mountPointForDeviceViaGetfsstat(dev deviceID) (string, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return "", errors.Wrap(err, "unable to query mount table size")
	}

	entries := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(entries, unix.MNT_NOWAIT)
	if err != nil {
		return "", errors.Wrap(err, "unable to query mount table")
	}

	for _, entry := range entries[:n] {
		mountPoint := bsdCString(entry.Mntonname[:])
		if mountPoint == "" {
			continue
		}
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
