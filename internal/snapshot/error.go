package snapshot

import "errors"

// ErrHashMismatch is an error that occurs when the content read back from the
// temporary snapshot file does not match what was written, this usually means
// that there are underlying storage issues.
var ErrHashMismatch = errors.New("hash mismatch")
