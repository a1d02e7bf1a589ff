package model

import "errors"

var (
	// Authentication failures. Both surface as 401 with the same message,
	// but callers log them apart.
	ErrUnknownUser   = errors.New("unknown username")
	ErrWrongPassword = errors.New("wrong password")

	// ErrDuplicateSubmission means the (year, week, member) key already has
	// a row. The submission is rejected and nothing is appended.
	ErrDuplicateSubmission = errors.New("submission already exists for this week")

	// ErrStoreUnavailable wraps any failure reading or appending the
	// backing spreadsheet. Never masked as empty data.
	ErrStoreUnavailable = errors.New("sheet store unavailable")

	// ErrMalformedRow marks a stored row that cannot be parsed. Readers
	// skip and log such rows instead of aborting the whole load.
	ErrMalformedRow = errors.New("malformed row")
)
