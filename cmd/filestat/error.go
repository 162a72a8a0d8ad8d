package main

import "errors"

var (
	// ErrApplyFailed occurs when metadata could not be applied to at least
	// one of the requested paths.
	ErrApplyFailed = errors.New("failed to apply metadata")

	// ErrDriftDetected occurs when the live metadata of at least one path
	// differs from its recorded metadata.
	ErrDriftDetected = errors.New("metadata differs from snapshot")

	// ErrFollowConflict occurs when both following and not following
	// symbolic links are requested at the same time.
	ErrFollowConflict = errors.New("--follow and --no-follow are mutually exclusive")

	// ErrNoFiles occurs when a command requiring paths was given none.
	ErrNoFiles = errors.New("no files given")
)
