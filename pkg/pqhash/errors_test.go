package pqhash_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/pqhash/pkg/pqhash"
)

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag --foo"), pqhash.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), pqhash.ExitUsageError},
		{"accepts args", errors.New("accepts at most 1 arg(s), received 2"), pqhash.ExitUsageError},
		{"flag needs argument", errors.New("flag needs an argument: --file"), pqhash.ExitUsageError},
		{"general error", errors.New("something went wrong"), pqhash.ExitGeneralError},
		{"nil error", nil, pqhash.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pqhash.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_Sentinels(t *testing.T) {
	backendErr := errors.New("operation error")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"usage", fmt.Errorf("%w: missing query", pqhash.ErrUsage), pqhash.ExitUsageError},
		{"invalid config", fmt.Errorf("load: %w", pqhash.ErrInvalidConfig), pqhash.ExitConfigError},
		{"unknown backend", fmt.Errorf("%w: %q", pqhash.ErrUnknownBackend, "gpu"), pqhash.ExitConfigError},
		{"digest failed", fmt.Errorf("%w: %w", pqhash.ErrDigestFailed, backendErr), pqhash.ExitDigestFailed},
		{"no query", pqhash.ErrNoQuery, pqhash.ExitNoQueryInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pqhash.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
