package validation

import "errors"

var (
	// ErrEmptySegment occurs when a path contains an empty segment, which is
	// the case for absolute paths, doubled and trailing slashes.
	ErrEmptySegment = errors.New("path contains an empty segment")

	// ErrParentSegment occurs when a path contains a ".." segment, which
	// could lead outside of the directory the snapshot belongs to.
	ErrParentSegment = errors.New("path contains a parent directory segment")
)
