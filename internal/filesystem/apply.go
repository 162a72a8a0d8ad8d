package filesystem

import (
	"fmt"

	"github.com/desertwitch/filestat/internal/record"
	"github.com/desertwitch/filestat/internal/validation"
)

// Apply restores the metadata of a [record.Record] onto the filesystem
// element at path. The path must be relative and free of ".." segments.
//
// If the record describes a symbolic link, the link itself is operated on
// regardless of follow. Its mode is then left untouched, as only the
// timestamps of a symbolic link can be set.
func (f *Handler) Apply(path string, rec *record.Record, follow bool) error {
	if rec == nil {
		return fmt.Errorf("(fs-apply) %w", ErrNoRecord)
	}

	if err := validation.ValidateRelativePath(path); err != nil {
		return fmt.Errorf("(fs-apply) %w", err)
	}

	follow = follow && !rec.IsSymlink()

	if rec.Mode != nil && follow {
		if err := f.ensureMode(path, *rec.Mode); err != nil {
			return fmt.Errorf("(fs-apply) %w", err)
		}
	}

	if rec.ModTime != nil {
		if err := f.ensureModTime(path, *rec.ModTime, follow); err != nil {
			return fmt.Errorf("(fs-apply) %w", err)
		}
	}

	return nil
}
