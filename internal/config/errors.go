package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() while still printing a human-readable message.
var (
	// ErrEmptyOutputDir is returned when no output directory is configured.
	ErrEmptyOutputDir = errors.New("invalid output directory: must not be empty")

	// ErrInvalidFileName is returned when an artifact file name is empty or
	// contains a directory component. Use the output directory to choose
	// where files are written.
	ErrInvalidFileName = errors.New("invalid file name: must be a plain file name")

	// ErrDuplicateFileName is returned when two enabled artifacts would be
	// written to the same file.
	ErrDuplicateFileName = errors.New("duplicate file name: artifacts would overwrite each other")

	// ErrEmptyDBDir is returned when history is enabled without a database directory.
	ErrEmptyDBDir = errors.New("invalid database directory: must not be empty when history is enabled")
)
