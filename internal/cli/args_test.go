package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pqhash/pkg/pqhash"
)

func TestRequireQueryDir(t *testing.T) {
	cmd := &cobra.Command{
		Use: "manifest <query_dir>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireQueryDir(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <query_dir>") {
			t.Errorf("expected error to contain 'missing required argument: <query_dir>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
		if pqhash.ExitCodeForError(err) != pqhash.ExitUsageError {
			t.Errorf("expected usage exit code, got %d", pqhash.ExitCodeForError(err))
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		if err := RequireQueryDir(cmd, []string{"./queries"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireQueryDir(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
	})
}

func TestOptionalQuery(t *testing.T) {
	cmd := &cobra.Command{Use: "hash [query]"}

	if err := OptionalQuery(cmd, nil); err != nil {
		t.Errorf("expected nil for no args, got: %v", err)
	}
	if err := OptionalQuery(cmd, []string{"{ a }"}); err != nil {
		t.Errorf("expected nil for one arg, got: %v", err)
	}
	err := OptionalQuery(cmd, []string{"{", "a", "}"})
	if err == nil || !strings.Contains(err.Error(), "Quote the query") {
		t.Errorf("expected quoting hint, got: %v", err)
	}
}
