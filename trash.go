//go:build linux || freebsd || netbsd || openbsd || dragonfly

// Package trash implements the XDG freedesktop.org trash protocol: a
// synchronous, single-threaded soft-delete primitive that relocates a
// file or directory into the calling user's trash store so it can
// later be restored through a native trash browser, rather than being
// unlinked permanently.
//
// The sole entry points are SoftDelete (the stable, language-neutral
// integer-status contract) and its idiomatic wrapper Delete. Neither
// lists, restores, nor empties the trash; see spec.md §1 for the full
// list of non-goals this package deliberately does not cover.
package trash

import (
	"time"
)

// SoftDelete relocates path into the XDG trash and returns a stable,
// negative-on-failure status code. It is the literal
// soft_delete(path) -> status_code contract: see StatusMessage for a
// human-readable rendering of any non-OK result.
func SoftDelete(path string) Status {
	return statusOf(softDelete(path))
}

// Delete is the idiomatic Go wrapper over SoftDelete: nil on success,
// otherwise an error whose Code() method recovers the Status.
func Delete(path string) error {
	return softDelete(path)
}

// softDelete implements the orchestration of spec.md §4.9.
func softDelete(path string) error {
	return softDeleteFrom(path, 0, false)
}

// softDeleteFrom is softDelete parameterised over the starting
// counter and force_random state, so tests can enter the retry loop
// already on the random-name safety valve without needing to exhaust
// a full uint64 counter wraparound to get there.
func softDeleteFrom(path string, counter uint64, forceRandom bool) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}

	dirs, err := locateTrash(resolved)
	if err != nil {
		return err
	}

	deletionTime := time.Now()

	for {
		candidate, err := allocateName(resolved.basename, dirs, deletionTime, counter, forceRandom)
		if err != nil {
			return err
		}

		result, writeErr := writeInfoFile(candidate.infoPath, resolved.canonical, deletionTime)
		if writeErr != nil {
			return wrapStatus(StatusTrashInfoFailed, writeErr)
		}

		switch result {
		case infoWriteOK:
			if err := moveIntoTrash(resolved.canonical, candidate.filePath, candidate.infoPath); err != nil {
				return err
			}
			if err := refreshDirSizeCache(dirs); err != nil {
				// The entry has already been moved: spec.md §8's "no
				// data loss on failure" invariant carves out exactly
				// this case, returning DirCacheFailed with the source
				// already gone.
				return err
			}
			return nil

		case infoWriteCollision:
			if forceRandom {
				// Already on the random-name safety valve: a further
				// collision exhausts retries, per spec.md §4.9.
				return wrapStatus(StatusCollisionFailed, nil)
			}
			counter++
			if counter == 0 {
				// The unsigned counter wrapped: fall back to random
				// names for all subsequent attempts, per spec.md §4.9.
				forceRandom = true
			}
			continue

		default:
			return wrapStatus(StatusTrashInfoFailed, nil)
		}
	}
}
