package filesystem

import (
	"fmt"

	"github.com/desertwitch/filestat/internal/record"
	"golang.org/x/sys/unix"
)

// ensureModTime sets both access and modification time of a path to the
// given [record.Timestamp].
func (f *Handler) ensureModTime(path string, mtime record.Timestamp, follow bool) error {
	flags := 0
	if !follow {
		flags = unix.AT_SYMLINK_NOFOLLOW
	}

	ts := unix.Timespec{Sec: mtime.Sec, Nsec: mtime.Nsec}
	if err := f.unixHandler.UtimesNanoAt(unix.AT_FDCWD, path, []unix.Timespec{ts, ts}, flags); err != nil {
		return fmt.Errorf("(fs-times) failed to utimensat: %w", err)
	}

	return nil
}
