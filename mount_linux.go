//go:build linux

package trash

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// mountPointForDevice implements MountLookup (spec.md §4.3) on Linux
// by walking the kernel-exported mount table at /proc/mounts and
// lstat-ing each mount point until one matches dev. This is the same
// source the teacher's trash_linux.go (findMountPoint) reads; unlike
// the teacher we
// compare against a target device id directly rather than computing
// the longest-prefix match, since spec.md's TopDir cases need the
// mount point of a specific device, not of an arbitrary path.
// mountPointForDevice is a var, not a plain func, so tests can
// substitute a fake mount table without needing a real second
// filesystem mounted in CI.
var mountPointForDevice = mountPointForDeviceViaProcMounts

func mountPointForDeviceViaProcMounts(dev deviceID) (string, error) {
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return "", errors.Wrap(err, "unable to open /proc/mounts")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		mountPoint := unescapeMountField(fields[1])

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
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, "unable to read /proc/mounts")
	}

	return "", errors.New("no mount point found for device")
}

// unescapeMountField reverses the octal escaping /proc/mounts applies
// to whitespace and backslashes in mount point paths.
func unescapeMountField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && isOctalDigit(s[i+1]) && isOctalDigit(s[i+2]) && isOctalDigit(s[i+3]) {
			v, err := strconv.ParseUint(s[i+1:i+4], 8, 8)
			if err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}
