package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedData occurs when snapshot content or a restore target
	// cannot be decoded or is not acceptable, e.g. an invalid escape
	// sequence, an invalid octal mode, an invalid timestamp or a path
	// traversal segment.
	ErrMalformedData = errors.New("malformed data")

	// ErrSnapshotNotFound occurs when the snapshot file does not exist, but
	// its absence is not permitted (e.g. when restoring metadata).
	ErrSnapshotNotFound = errors.New("snapshot file not found")

	// ErrNotInSnapshot occurs when a requested path has no entry in the
	// snapshot table.
	ErrNotInSnapshot = errors.New("path not recorded in snapshot")
)

// PathError tags an error with the path (or other identifier) that caused it.
type PathError struct {
	Path string
	Err  error
}

// WithPath returns a new [PathError] tagging err with path. A nil err yields
// a nil error.
func WithPath(path string, err error) error {
	if err == nil {
		return nil
	}

	return &PathError{Path: path, Err: err}
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", strings.ToValidUTF8(e.Path, "�"), e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
