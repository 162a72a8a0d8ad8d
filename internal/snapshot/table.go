package snapshot

import (
	"slices"
	"strings"
)

// Entry is a single element of a [Table], mapping a path to its encoded line.
type Entry struct {
	Path string
	Line string
}

// Table is the in-memory form of a snapshot file. It holds unique paths in
// ascending order of their raw bytes, which is also the order of the lines
// within the persisted file.
type Table struct {
	entries []Entry
}

// NewTable returns a pointer to a new, empty [Table].
func NewTable() *Table {
	return &Table{}
}

func (t *Table) search(path string) (int, bool) {
	return slices.BinarySearchFunc(t.entries, path, func(e Entry, p string) int {
		return strings.Compare(e.Path, p)
	})
}

// Len returns the amount of entries in the [Table].
func (t *Table) Len() int {
	return len(t.entries)
}

// Get returns the encoded line for a path.
func (t *Table) Get(path string) (string, bool) {
	i, found := t.search(path)
	if !found {
		return "", false
	}

	return t.entries[i].Line, true
}

// Put inserts the line for a path. An existing entry is only replaced if
// overwrite is set. It returns whether the [Table] was changed.
func (t *Table) Put(path string, line string, overwrite bool) bool {
	i, found := t.search(path)
	if found {
		if !overwrite {
			return false
		}
		t.entries[i].Line = line

		return true
	}

	t.entries = slices.Insert(t.entries, i, Entry{Path: path, Line: line})

	return true
}

// Delete removes the entry for a path, returning whether it existed.
func (t *Table) Delete(path string) bool {
	i, found := t.search(path)
	if !found {
		return false
	}

	t.entries = slices.Delete(t.entries, i, i+1)

	return true
}

// Entries returns a copy of all entries in ascending path order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}
