package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pqhash",
	Short: "Persisted query digests",
	Long: `pqhash computes the SHA-256 digest that identifies a persisted query.

A persisted query client sends the lowercase hex digest of a query instead of
its text, and resends the full text when the server does not know the digest.
pqhash produces those digests, the request extension that carries them, and
manifests that seed a server with digest/query pairs ahead of time.

When no SHA-256 facility can be selected the digest is empty; callers must
then send the full query.

Exit Codes:
  0  - Success (including an empty digest from the degrade path)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  13 - Digest computation failed
  14 - No query provided`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringP("config-dir", "C", ".", "Directory containing pqhash.yaml and .env")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getConfigDir(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("config-dir")
	if err != nil || dir == "" {
		return "."
	}
	return dir
}
