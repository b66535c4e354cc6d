package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pqhash/internal/digest"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the project configuration file name.
const ConfigFileName = pqhash.ConfigFileName

// Manifest output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultQueryExtensions are the file extensions treated as query documents.
var DefaultQueryExtensions = []string{".graphql", ".gql"}

type ManifestConfig struct {
	Extensions []string `yaml:"extensions,omitempty"`
	Format     string   `yaml:"format,omitempty"`
}

type ProjectConfig struct {
	// Backends lists backend kinds in priority order. Empty means the default order.
	Backends []string       `yaml:"backends,omitempty"`
	Encoder  string         `yaml:"encoder,omitempty"`
	Manifest ManifestConfig `yaml:"manifest,omitempty"`
}

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pqhash.ErrInvalidConfig, ConfigFileName, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides file values with PQHASH_BACKENDS and PQHASH_ENCODER when set.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(pqhash.EnvBackends); ok && strings.TrimSpace(v) != "" {
		c.Backends = splitList(v)
	}
	if v, ok := lookup(pqhash.EnvEncoder); ok && strings.TrimSpace(v) != "" {
		c.Encoder = strings.TrimSpace(v)
	}
}

// Validate checks every configured name without building anything.
func (c *ProjectConfig) Validate() error {
	if _, err := c.BackendKinds(); err != nil {
		return err
	}
	if _, err := digest.ParseEncoder(c.Encoder); err != nil {
		return err
	}
	switch strings.ToLower(c.Manifest.Format) {
	case "", FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown manifest format %q (want json or yaml)", pqhash.ErrInvalidConfig, c.Manifest.Format)
	}
	for _, ext := range c.Manifest.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: manifest extension %q must start with a dot", pqhash.ErrInvalidConfig, ext)
		}
	}
	return nil
}

// BackendKinds returns the configured priority order, or digest.DefaultOrder.
func (c *ProjectConfig) BackendKinds() ([]digest.Kind, error) {
	if len(c.Backends) == 0 {
		return digest.DefaultOrder, nil
	}
	return digest.ParseKinds(c.Backends)
}

// QueryExtensions returns the configured extensions, or DefaultQueryExtensions.
func (c *ProjectConfig) QueryExtensions() []string {
	if len(c.Manifest.Extensions) == 0 {
		return DefaultQueryExtensions
	}
	return c.Manifest.Extensions
}

// ManifestFormat returns the configured manifest format, defaulting to JSON.
func (c *ProjectConfig) ManifestFormat() string {
	if c.Manifest.Format == "" {
		return FormatJSON
	}
	return strings.ToLower(c.Manifest.Format)
}

// HasherOptions translates the configuration into digest options.
func (c *ProjectConfig) HasherOptions(logger pqhash.Logger) ([]digest.Option, error) {
	kinds, err := c.BackendKinds()
	if err != nil {
		return nil, err
	}
	encoder, err := digest.ParseEncoder(c.Encoder)
	if err != nil {
		return nil, err
	}
	return []digest.Option{
		digest.WithOrder(kinds...),
		digest.WithEncoder(encoder),
		digest.WithLogger(logger),
	}, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
