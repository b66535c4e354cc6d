// Package manifest builds persisted query manifests: the list of digest/query
// pairs a server is seeded with so that clients can send digests from the first request.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pqhash/internal/files/scanner"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

const (
	// Format identifies the manifest layout.
	Format = "apollo-persisted-query-manifest"

	// Version is the manifest layout version.
	Version = 1
)

// Operation is one registered query.
type Operation struct {
	ID   string `json:"id" yaml:"id"`
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	Body string `json:"body" yaml:"body"`
}

// Manifest is the document written by Write.
type Manifest struct {
	Format     string      `json:"format" yaml:"format"`
	Version    int         `json:"version" yaml:"version"`
	Operations []Operation `json:"operations" yaml:"operations"`
}

// Build turns scanned queries into a manifest ordered by digest.
// Documents with identical bodies share a digest and appear once, under the
// lexically first path. A query without a digest means no backend was
// available, and fails the build.
func Build(queries []scanner.QueryFile) (*Manifest, error) {
	byID := make(map[string]Operation, len(queries))
	for _, q := range queries {
		if q.Hash == "" {
			return nil, fmt.Errorf("%w: no digest for %s (no digest backend available)", pqhash.ErrDigestFailed, q.Path)
		}
		if existing, ok := byID[q.Hash]; ok && existing.Path <= q.Path {
			continue
		}
		byID[q.Hash] = Operation{ID: q.Hash, Path: q.Path, Body: q.Body}
	}

	ops := make([]Operation, 0, len(byID))
	for _, op := range byID {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].ID < ops[j].ID
	})

	return &Manifest{
		Format:     Format,
		Version:    Version,
		Operations: ops,
	}, nil
}

// Write encodes m as "json" (indented) or "yaml".
func Write(w io.Writer, m *Manifest, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unknown manifest format %q", pqhash.ErrInvalidConfig, format)
	}
}

// Lookup returns the body registered under id.
func (m *Manifest) Lookup(id string) (string, bool) {
	i := sort.Search(len(m.Operations), func(i int) bool {
		return m.Operations[i].ID >= id
	})
	if i < len(m.Operations) && m.Operations[i].ID == id {
		return m.Operations[i].Body, true
	}
	return "", false
}
