package pqhash

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	sum, err := hasher.Hash(ctx, query)
//	if err != nil {
//	    err = fmt.Errorf("%w: %w", pqhash.ErrDigestFailed, err)
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownBackend indicates a backend name that does not match any known kind.
	ErrUnknownBackend = errors.New("unknown digest backend")

	// ErrDigestFailed indicates the committed backend reported an error while hashing.
	ErrDigestFailed = errors.New("digest computation failed")

	// ErrNoQuery indicates no query text was supplied.
	ErrNoQuery = errors.New("no query provided")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")
)

// usagePatterns are message fragments produced by cobra/pflag for command line misuse.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnknownBackend):
		return ExitConfigError
	case errors.Is(err, ErrDigestFailed):
		return ExitDigestFailed
	case errors.Is(err, ErrNoQuery):
		return ExitNoQueryInput
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
