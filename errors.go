package readmegen

import "errors"

// Sentinel errors for library operations.
var (
	// Descriptor loading errors.
	ErrConfigNotFound = errors.New("module descriptor not found")
	ErrConfigParse    = errors.New("failed to parse module descriptor")

	// ErrMissingField is returned when an examples or related entry lacks a
	// key those sections index directly.
	ErrMissingField = errors.New("missing required field")

	// ErrDocsTool reports a documentation-table tool that is missing, exited
	// non-zero, or was cancelled. FallbackDocs recovers from it.
	ErrDocsTool = errors.New("documentation tool failed")

	ErrWriteOutput = errors.New("failed to write output")
)
