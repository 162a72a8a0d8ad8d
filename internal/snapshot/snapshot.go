// Package snapshot implements the persisted snapshot table: reading and
// parsing a snapshot file into a sorted [Table], and atomically rewriting the
// file from such a [Table].
package snapshot

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/desertwitch/filestat/internal/record"
	"github.com/desertwitch/filestat/internal/schema"
	"github.com/dustin/go-humanize"
	"github.com/zeebo/blake3"
)

const (
	// DefaultFile is the name of the snapshot file, if not configured otherwise.
	DefaultFile = ".filestat"

	tmpSuffix     = ".tmp"
	snapshotPerms = 0o644
)

type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// Handler is the principal implementation for reading and writing snapshot
// files.
type Handler struct {
	osHandler osProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osHandler osProvider) *Handler {
	return &Handler{
		osHandler: osHandler,
	}
}

// Load reads and parses the snapshot file at path, see [Handler.Read] and
// [Parse]. Any error is tagged with the path of the snapshot file.
func (s *Handler) Load(path string, allowMissing bool) (*Table, error) {
	data, err := s.Read(path, allowMissing)
	if err != nil {
		return nil, schema.WithPath(path, err)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, schema.WithPath(path, err)
	}

	return table, nil
}

// Read returns the full content of the snapshot file at path. A missing file
// yields empty content if allowMissing is set and [schema.ErrSnapshotNotFound]
// otherwise.
func (s *Handler) Read(path string, allowMissing bool) ([]byte, error) {
	data, err := s.osHandler.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if allowMissing {
				return []byte{}, nil
			}

			return nil, fmt.Errorf("(snapshot-read) %w: %w", schema.ErrSnapshotNotFound, err)
		}

		return nil, fmt.Errorf("(snapshot-read) failed to read: %w", err)
	}

	return data, nil
}

// Parse builds a [Table] from the content of a snapshot file. Every non-empty
// line is keyed by its unescaped path and stored as is, so that attributes
// unknown to this version survive a rewrite. A line whose path cannot be
// decoded fails the whole parse.
func Parse(data []byte) (*Table, error) {
	table := NewTable()

	for i, line := range bytes.Split(data, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}

		path, err := record.ExtractPath(string(line))
		if err != nil {
			return nil, fmt.Errorf("(snapshot-parse) line %d %q: %w", i+1, line, err)
		}

		table.Put(path, string(line), true)
	}

	return table, nil
}

// Write atomically replaces the snapshot file at path with the content of the
// [Table]. The lines are written to a temporary file in the same directory,
// which is synced and verified before it is renamed over the snapshot file.
// A reader sees either the previous or the new content, never a mix of both.
//
// No locking takes place, concurrent writers are not ordered and the last
// rename wins.
func (s *Handler) Write(path string, table *Table) error {
	var writeComplete bool

	tmpPath := path + tmpSuffix
	defer func() {
		if !writeComplete {
			s.osHandler.Remove(tmpPath) //nolint:errcheck
		}
	}()

	// A leftover from an earlier run is replaced, never written through.
	if err := s.osHandler.Remove(tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("(snapshot-write) failed to remove stale temporary file: %w", err)
	}

	tmpFile, err := s.osHandler.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, snapshotPerms)
	if err != nil {
		return fmt.Errorf("(snapshot-write) failed to open temporary file: %w", err)
	}
	defer tmpFile.Close()

	hasher := blake3.New()
	writer := bufio.NewWriter(io.MultiWriter(tmpFile, hasher))

	var written uint64
	for _, e := range table.entries {
		n, err := writer.WriteString(e.Line + "\n")
		if err != nil {
			return fmt.Errorf("(snapshot-write) failed to write: %w", err)
		}
		written += uint64(n) //nolint:gosec
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("(snapshot-write) failed to flush: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("(snapshot-write) failed to sync: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("(snapshot-write) failed to close: %w", err)
	}

	if err := s.verifyFile(tmpPath, hasher.Sum(nil)); err != nil {
		return fmt.Errorf("(snapshot-write) %w", err)
	}

	if err := s.osHandler.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("(snapshot-write) failed to rename temporary file to snapshot file: %w", err)
	}

	writeComplete = true

	if err := s.syncDir(filepath.Dir(path)); err != nil {
		slog.Warn("Failure syncing snapshot directory (was skipped)",
			"path", path,
			"err", err,
		)
	}

	slog.Debug("Snapshot written:",
		"path", path,
		"entries", table.Len(),
		"size", humanize.Bytes(written),
	)

	return nil
}

// verifyFile compares the blake3 checksum of a file with an expected one.
func (s *Handler) verifyFile(path string, expected []byte) error {
	f, err := s.osHandler.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open for verification: %w", err)
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return fmt.Errorf("failed to read for verification: %w", err)
	}

	if actual := hasher.Sum(nil); !bytes.Equal(actual, expected) {
		return fmt.Errorf("%w: %x (file) != %x (memory)", ErrHashMismatch, actual, expected)
	}

	return nil
}

// syncDir makes a completed rename within a directory durable.
func (s *Handler) syncDir(dir string) error {
	d, err := s.osHandler.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer d.Close()

	if err := d.Sync(); err != nil {
		return fmt.Errorf("failed to sync directory: %w", err)
	}

	return nil
}
