package filesystem

import (
	"fmt"

	"github.com/desertwitch/filestat/internal/schema"
	"golang.org/x/sys/unix"
)

// GetMetadata captures the live [schema.Metadata] of a path. With follow set,
// a symbolic link is resolved and the metadata of its target is returned.
func (f *Handler) GetMetadata(path string, follow bool) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if follow {
		if err := f.unixHandler.Stat(path, &stat); err != nil {
			return nil, fmt.Errorf("(fs-metadata) failed to stat: %w", err)
		}
	} else {
		if err := f.unixHandler.Lstat(path, &stat); err != nil {
			return nil, fmt.Errorf("(fs-metadata) failed to lstat: %w", err)
		}
	}

	return &schema.Metadata{
		Mode:       uint32(stat.Mode), //nolint:unconvert
		ModifiedAt: stat.Mtim,
	}, nil
}
