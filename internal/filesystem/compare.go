package filesystem

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/desertwitch/filestat/internal/record"
	"github.com/desertwitch/filestat/internal/schema"
	"github.com/desertwitch/filestat/internal/validation"
)

// Drift describes how the live metadata of a path differs from its record.
type Drift struct {
	Missing        bool
	ModeChanged    bool
	ModTimeChanged bool
}

// Any returns whether there is any difference at all.
func (d Drift) Any() bool {
	return d.Missing || d.ModeChanged || d.ModTimeChanged
}

// Compare establishes the [Drift] between a [record.Record] and the path,
// only considering what [Handler.Apply] would restore with the same follow.
// A path that does not exist is reported as missing rather than an error.
func (f *Handler) Compare(path string, rec *record.Record, follow bool) (Drift, error) {
	if rec == nil {
		return Drift{}, fmt.Errorf("(fs-compare) %w", ErrNoRecord)
	}

	if err := validation.ValidateRelativePath(path); err != nil {
		return Drift{}, fmt.Errorf("(fs-compare) %w", err)
	}

	follow = follow && !rec.IsSymlink()

	metadata, err := f.GetMetadata(path, follow)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Drift{Missing: true}, nil
		}

		return Drift{}, fmt.Errorf("(fs-compare) %w", err)
	}

	var drift Drift

	if rec.Mode != nil && follow {
		drift.ModeChanged = metadata.Mode&schema.BasePermMask != *rec.Mode&schema.BasePermMask
	}

	if rec.ModTime != nil {
		drift.ModTimeChanged = int64(metadata.ModifiedAt.Sec) != rec.ModTime.Sec || //nolint:unconvert
			int64(metadata.ModifiedAt.Nsec) != rec.ModTime.Nsec //nolint:unconvert
	}

	return drift, nil
}
