package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// RequireQueryDir validates that exactly one query_dir argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireQueryDir(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <query_dir>

Usage: %s

Example:
  %s ./queries -o manifest.json`, pqhash.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", pqhash.ErrUsage, len(args))
	}
	return nil
}

// OptionalQuery accepts at most one positional query argument.
func OptionalQuery(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`%w: accepts at most 1 arg(s), received %d

Quote the query so the shell passes it as one argument:
  %s '{ hero { name } }'`, pqhash.ErrUsage, len(args), cmd.CommandPath())
	}
	return nil
}
