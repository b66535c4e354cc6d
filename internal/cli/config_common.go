package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/pqhash/internal/config"
	"github.com/vvka-141/pqhash/internal/digest"
	"github.com/vvka-141/pqhash/internal/logging"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// hasherFlags holds the backend-related flag values shared by commands.
type hasherFlags struct {
	backends []string
	encoder  string
}

func (f *hasherFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.backends, "backend", nil, "Backend priority order (native, subtle, legacy, none)")
	cmd.Flags().StringVar(&f.encoder, "encoder", "", "Text encoder for subtle/legacy backends (utf8, truncate)")
}

// loadProjectConfig loads <dir>/.env and <dir>/pqhash.yaml, then applies
// PQHASH_* environment overrides. A missing config file yields defaults.
func loadProjectConfig(dir string, logger pqhash.Logger) (*config.ProjectConfig, error) {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("%w: failed to load %s: %v", pqhash.ErrInvalidConfig, envPath, err)
		}
		logger.Verbose("Loaded environment from %s", envPath)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %w", pqhash.ConfigFileName, err)
		}
		logger.Verbose("No %s in %s, using defaults", pqhash.ConfigFileName, dir)
		cfg = &config.ProjectConfig{}
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// resolveHasher builds the Hasher from config, environment and flags, in increasing priority.
func resolveHasher(cmd *cobra.Command, flags hasherFlags) (*digest.Hasher, *config.ProjectConfig, error) {
	logger := newLogger(cmd)

	cfg, err := loadProjectConfig(getConfigDir(cmd), logger)
	if err != nil {
		return nil, nil, err
	}
	if len(flags.backends) > 0 {
		cfg.Backends = flags.backends
	}
	if flags.encoder != "" {
		cfg.Encoder = flags.encoder
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	opts, err := cfg.HasherOptions(logger)
	if err != nil {
		return nil, nil, err
	}
	return digest.New(opts...), cfg, nil
}

func newLogger(cmd *cobra.Command) pqhash.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}
