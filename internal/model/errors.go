package model

import "errors"

// Catalog validation errors.
// Project.Validate wraps these with the offending value so callers can use
// errors.Is while users still see what is wrong.
var (
	// ErrUnknownFileKind is returned when a file kind label is not recognized.
	ErrUnknownFileKind = errors.New("unknown file kind")

	// ErrEmptyTitle is returned when the project has no title.
	ErrEmptyTitle = errors.New("project title is empty")

	// ErrEmptyFileName is returned when a file descriptor has no name.
	ErrEmptyFileName = errors.New("file name is empty")

	// ErrDuplicateFile is returned when two descriptors share a name.
	ErrDuplicateFile = errors.New("duplicate file name")

	// ErrMissingColorToken is returned when a palette lacks a required variable.
	ErrMissingColorToken = errors.New("palette is missing a required color token")

	// ErrEmptyBreakpoint is returned when a breakpoint has no label.
	ErrEmptyBreakpoint = errors.New("breakpoint label is empty")
)
