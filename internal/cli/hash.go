package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vvka-141/pqhash/internal/files/filesystem"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// stdinIsTerminal reports whether stdin is interactive. Replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

type hashCommandFlags struct {
	hasherFlags
	file      string
	extension bool
}

var hashFlags hashCommandFlags

var hashCmd = &cobra.Command{
	Use:   "hash [query]",
	Short: "Print the persisted query digest of a query",
	Long: `Print the lowercase hex SHA-256 digest of a query.

The query is read from the argument, from --file, or from piped stdin, in that
order. The digest covers the exact bytes given: no whitespace or comment
normalization is applied.

If no digest backend can be selected, nothing is printed to stdout and the
command still succeeds, so scripts fall back to sending the full query.`,
	Example: `  pqhash hash '{ hero { name } }'
  pqhash hash --file queries/hero.graphql --extension
  cat hero.graphql | pqhash hash --backend subtle,native`,
	Args: OptionalQuery,
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)
	hashFlags.register(hashCmd)
	hashCmd.Flags().StringVarP(&hashFlags.file, "file", "f", "", "Read the query from a file (\"-\" for stdin)")
	hashCmd.Flags().BoolVar(&hashFlags.extension, "extension", false, "Print the persistedQuery request extension as JSON")
}

func runHash(cmd *cobra.Command, args []string) error {
	query, err := readQuery(cmd, args, hashFlags.file)
	if err != nil {
		return err
	}

	hasher, _, err := resolveHasher(cmd, hashFlags.hasherFlags)
	if err != nil {
		return err
	}

	sum, err := hasher.Hash(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("%w: %s backend: %w", pqhash.ErrDigestFailed, hasher.Backend().Kind(), err)
	}

	logger := newLogger(cmd)
	if sum == "" {
		logger.Info("No digest available; send the full query")
		return nil
	}
	logger.Verbose("Digest computed by %s backend", hasher.Backend().Kind())

	out := cmd.OutOrStdout()
	if !hashFlags.extension {
		_, err = fmt.Fprintln(out, sum)
		return err
	}

	ext, _ := pqhash.NewPersistedQueryExtension(sum)
	data, err := json.Marshal(ext)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// readQuery resolves the query text from the argument, --file, or piped stdin.
func readQuery(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) == 1 && file != "" {
		return "", fmt.Errorf("%w: pass the query as an argument or with --file, not both", pqhash.ErrUsage)
	}
	if len(args) == 1 {
		return args[0], nil
	}

	switch file {
	case "":
	case "-":
		return readAll(cmd.InOrStdin())
	default:
		data, err := filesystem.NewOSFileSystem().ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read query file '%s': %w", file, err)
		}
		return string(data), nil
	}

	if cmd.InOrStdin() == os.Stdin && stdinIsTerminal() {
		return "", fmt.Errorf(`%w

Usage: %s

Example:
  %s '{ hero { name } }'`, pqhash.ErrNoQuery, cmd.UseLine(), cmd.CommandPath())
	}
	return readAll(cmd.InOrStdin())
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read query from stdin: %w", err)
	}
	return string(data), nil
}
