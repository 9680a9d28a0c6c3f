package domain

import "errors"

var (
	// ErrLocationUnreadable marks a directory or archive that could not be read.
	ErrLocationUnreadable = errors.New("location unreadable")
	// ErrMalformedEntry marks a path or entry that cannot become a qualified name.
	ErrMalformedEntry = errors.New("malformed entry")
)
