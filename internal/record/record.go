// Package record implements the line format of a snapshot file. A line holds
// an escaped path followed by tab-separated key=value attributes:
//
//	<escaped-path>\tmode=<octal>\tmtime=<seconds>.<nanoseconds>
//
// Unknown attributes are ignored when decoding, so that lines written by a
// future revision of the format still decode to what is understood.
package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/desertwitch/filestat/internal/escaping"
	"github.com/desertwitch/filestat/internal/schema"
)

const (
	fieldSep = "\t"
	keyMode  = "mode"
	keyMtime = "mtime"

	nsecDigits = 9
)

// Timestamp is a point in time as seconds and nanoseconds since the epoch.
type Timestamp struct {
	Sec  int64
	Nsec int64
}

// Record is the decoded, restorable part of a snapshot line. Both attributes
// are optional and are only applied when present.
type Record struct {
	Mode    *uint32
	ModTime *Timestamp
}

// IsSymlink returns whether the recorded mode describes a symbolic link.
func (r *Record) IsSymlink() bool {
	return r.Mode != nil && *r.Mode&schema.TypeMask == schema.TypeSymlink
}

// MakeLine encodes a path with its mode and modification time into a line.
func MakeLine(path string, mode uint32, sec int64, nsec int64) string {
	return fmt.Sprintf("%s\tmode=%03o\tmtime=%d.%09d", escaping.Escape(path), mode, sec, nsec)
}

// MakeLineFromMetadata encodes a path with its captured [schema.Metadata].
func MakeLineFromMetadata(path string, metadata *schema.Metadata) string {
	return MakeLine(path, metadata.Mode, int64(metadata.ModifiedAt.Sec), int64(metadata.ModifiedAt.Nsec)) //nolint:unconvert
}

// ExtractPath returns the unescaped path of a line.
func ExtractPath(line string) (string, error) {
	token, _, _ := strings.Cut(line, fieldSep)

	path, err := escaping.Unescape(token)
	if err != nil {
		return "", fmt.Errorf("(record-path) %w", err)
	}

	return path, nil
}

// ParseLine decodes the attributes of a line into a [Record]. The path field
// is not decoded here, see [ExtractPath].
func ParseLine(line string) (*Record, error) {
	rec := &Record{}

	fields := strings.Split(line, fieldSep)
	for _, field := range fields[1:] {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}

		switch key {
		case keyMode:
			mode, err := parseMode(value)
			if err != nil {
				return nil, err
			}
			rec.Mode = &mode

		case keyMtime:
			ts, err := parseMtime(value)
			if err != nil {
				return nil, err
			}
			rec.ModTime = ts
		}
	}

	return rec, nil
}

func parseMode(value string) (uint32, error) {
	mode, err := strconv.ParseUint(value, 8, 32) //nolint:mnd
	if err != nil {
		return 0, fmt.Errorf("(record-mode) %w: invalid mode %q", schema.ErrMalformedData, value)
	}

	return uint32(mode), nil
}

func parseMtime(value string) (*Timestamp, error) {
	secStr, nsecStr, hasNsec := strings.Cut(value, ".")

	sec, err := strconv.ParseInt(secStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("(record-mtime) %w: invalid mtime %q", schema.ErrMalformedData, value)
	}

	if !hasNsec {
		return &Timestamp{Sec: sec}, nil
	}

	if len(nsecStr) != nsecDigits || strings.Trim(nsecStr, "0123456789") != "" {
		return nil, fmt.Errorf("(record-mtime) %w: invalid mtime %q", schema.ErrMalformedData, value)
	}

	nsec, err := strconv.ParseInt(nsecStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("(record-mtime) %w: invalid mtime %q", schema.ErrMalformedData, value)
	}

	return &Timestamp{Sec: sec, Nsec: nsec}, nil
}
