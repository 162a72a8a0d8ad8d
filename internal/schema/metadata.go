package schema

import "golang.org/x/sys/unix"

const (
	// BasePermMask masks the nine rwx permission bits of a Unix mode.
	BasePermMask = 0o777

	// TypeMask masks the file type bits of a Unix mode.
	TypeMask = 0o170000

	// TypeSymlink is the file type bits value of a symbolic link.
	TypeSymlink = 0o120000
)

// Metadata is the live metadata of a filesystem element, as it is captured
// into and compared against a snapshot.
type Metadata struct {
	Mode       uint32
	ModifiedAt unix.Timespec
}

// IsSymlink returns whether the [Metadata] describes a symbolic link.
func (m *Metadata) IsSymlink() bool {
	return m.Mode&TypeMask == TypeSymlink
}
