// Package validation provides the checks that a path from a snapshot must
// pass before any metadata is written to it.
package validation

import (
	"fmt"
	"strings"

	"github.com/desertwitch/filestat/internal/schema"
)

// ValidateRelativePath ensures that a path is relative and cannot traverse
// out of the current directory, so that a crafted snapshot entry is never
// able to modify elements outside of it. Any violation is returned as a
// [schema.ErrMalformedData].
func ValidateRelativePath(path string) error {
	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "":
			return fmt.Errorf("(validation) %w: %w", schema.ErrMalformedData, ErrEmptySegment)
		case "..":
			return fmt.Errorf("(validation) %w: %w", schema.ErrMalformedData, ErrParentSegment)
		}
	}

	return nil
}
