package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pqhash/internal/files/scanner"
	"github.com/vvka-141/pqhash/internal/manifest"
)

type manifestCommandFlags struct {
	hasherFlags
	output     string
	format     string
	extensions []string
}

var manifestFlags manifestCommandFlags

var manifestCmd = &cobra.Command{
	Use:   "manifest <query_dir>",
	Short: "Build a persisted query manifest from a directory of query documents",
	Long: `Walk a directory, digest every query document, and write a manifest of
digest/query pairs that a server can be seeded with.

Documents are selected by extension (.graphql and .gql unless configured).
Identical documents appear once. Unlike hash, manifest fails when no digest
backend is available, since a manifest without digests is useless.`,
	Example: `  pqhash manifest ./queries -o persisted-queries.json
  pqhash manifest ./queries --format yaml --ext .graphql --ext .query`,
	Args: RequireQueryDir,
	RunE: runManifest,
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestFlags.register(manifestCmd)
	manifestCmd.Flags().StringVarP(&manifestFlags.output, "output", "o", "", "Write the manifest to a file instead of stdout")
	manifestCmd.Flags().StringVar(&manifestFlags.format, "format", "", "Manifest format: json or yaml (default from pqhash.yaml, else json)")
	manifestCmd.Flags().StringSliceVar(&manifestFlags.extensions, "ext", nil, "Query document extensions (repeatable)")
}

func runManifest(cmd *cobra.Command, args []string) error {
	queryDir := args[0]
	logger := newLogger(cmd)

	hasher, cfg, err := resolveHasher(cmd, manifestFlags.hasherFlags)
	if err != nil {
		return err
	}
	if len(manifestFlags.extensions) > 0 {
		cfg.Manifest.Extensions = manifestFlags.extensions
	}
	if manifestFlags.format != "" {
		cfg.Manifest.Format = manifestFlags.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s := scanner.NewScanner(hasher, scanner.WithExtensions(cfg.QueryExtensions()...))
	queries, err := s.ScanDirectory(cmd.Context(), queryDir)
	if err != nil {
		return err
	}
	logger.Verbose("Found %d query document(s) in %s", len(queries), queryDir)

	m, err := manifest.Build(queries)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := manifest.Write(&buf, m, cfg.ManifestFormat()); err != nil {
		return err
	}

	if manifestFlags.output == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(manifestFlags.output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	logger.Info("Wrote %d operation(s) to %s", len(m.Operations), manifestFlags.output)
	return nil
}
