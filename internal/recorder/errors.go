package recorder

import "errors"

var (
	// ErrFileUnavailable means the target file could not be stat'd or read.
	// The CLI reports it to the user and exits cleanly.
	ErrFileUnavailable = errors.New("file unavailable")

	// ErrStoreUnavailable means the record store could not be opened or its
	// schema could not be ensured.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreRead is returned when querying the record store fails.
	ErrStoreRead = errors.New("store read failure")

	// ErrStoreWrite is returned when inserting into the record store fails.
	ErrStoreWrite = errors.New("store write failure")

	// ErrSealed is returned when a stored password is sealed but the active
	// Sealer cannot open it.
	ErrSealed = errors.New("password is sealed")
)
