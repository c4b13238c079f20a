package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/config"
)

// Exit codes for the mdblog CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, build or scaffold write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdblog.ErrTemplateParse) ||
		errors.Is(err, mdblog.ErrEmptySlug) ||
		errors.Is(err, mdblog.ErrUnsafeOutputDir) ||
		errors.Is(err, ErrNoTitle) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdblog.ErrReadPosts) ||
		errors.Is(err, mdblog.ErrBuild) ||
		errors.Is(err, mdblog.ErrPostExists) ||
		errors.Is(err, ErrWatch) {
		return ExitIO
	}

	return ExitGeneral
}
