package filesystem

import "errors"

// ErrNoRecord occurs when metadata is to be applied or compared without a
// record to take it from.
var ErrNoRecord = errors.New("record is nil")
