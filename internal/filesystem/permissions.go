package filesystem

import (
	"fmt"

	"github.com/desertwitch/filestat/internal/schema"
	"golang.org/x/sys/unix"
)

// ensureMode sets the rwx permission bits of mode on a path, following
// symbolic links. There is no portable way to set the permissions of a
// symbolic link itself, so this is never attempted.
func (f *Handler) ensureMode(path string, mode uint32) error {
	if err := f.unixHandler.Fchmodat(unix.AT_FDCWD, path, mode&schema.BasePermMask, 0); err != nil {
		return fmt.Errorf("(fs-perms) failed to chmod: %w", err)
	}

	return nil
}
