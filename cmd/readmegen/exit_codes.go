package main

import (
	"errors"

	"github.com/alnah/go-readmegen/internal/config"
)

// Exit codes for the readmegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // README written
	ExitGeneral = 1 // Descriptor missing or malformed, required field missing, write failed
	ExitUsage   = 2 // Invalid flags or settings
)

// ErrInvalidArgs marks command-line parsing failures.
var ErrInvalidArgs = errors.New("invalid arguments")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, config.ErrEmptyPath) ||
		errors.Is(err, config.ErrSamePath) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, config.ErrEmptyDocsCmd) ||
		errors.Is(err, config.ErrInvalidDocsArgs) ||
		errors.Is(err, config.ErrFieldTooLong) {
		return ExitUsage
	}

	return ExitGeneral
}
