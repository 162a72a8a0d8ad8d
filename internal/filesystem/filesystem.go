// Package filesystem captures the metadata of filesystem elements and applies
// recorded metadata back to them, respecting whether symbolic links are to be
// followed or operated on themselves.
package filesystem

import (
	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Fchmodat(dirfd int, path string, mode uint32, flags int) error
	Lstat(path string, stat *unix.Stat_t) error
	Stat(path string, stat *unix.Stat_t) error
	UtimesNanoAt(dirfd int, path string, ts []unix.Timespec, flags int) error
}

// Handler is the principal implementation for the filesystem operations.
type Handler struct {
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(unixHandler unixProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
	}
}
