package scanner

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/vvka-141/pqhash/internal/files/filesystem"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// Hasher computes the persisted query digest of a document.
type Hasher interface {
	Hash(ctx context.Context, query string) (string, error)
}

// QueryFile is one discovered query document.
type QueryFile struct {
	// Path is slash-separated and relative to the scanned root.
	Path string
	Body string
	// Hash is empty when no digest backend is available.
	Hash string
}

// Scanner discovers query documents and digests them.
// Scanner is safe for concurrent use as long as the hasher and fsProvider are.
type Scanner struct {
	hasher     Hasher
	fsProvider filesystem.FileSystemProvider
	extensions []string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithFileSystem replaces the OS filesystem, typically with an in-memory one.
func WithFileSystem(fsProvider filesystem.FileSystemProvider) Option {
	return func(s *Scanner) {
		s.fsProvider = fsProvider
	}
}

// WithExtensions sets the extensions of query documents, matched case-insensitively.
func WithExtensions(extensions ...string) Option {
	return func(s *Scanner) {
		s.extensions = make([]string, 0, len(extensions))
		for _, ext := range extensions {
			s.extensions = append(s.extensions, strings.ToLower(ext))
		}
	}
}

// NewScanner creates a scanner over the OS filesystem accepting .graphql and .gql files.
// Panics if hasher is nil.
func NewScanner(hasher Hasher, opts ...Option) *Scanner {
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	s := &Scanner{
		hasher:     hasher,
		fsProvider: filesystem.NewOSFileSystem(),
		extensions: []string{".graphql", ".gql"},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return s
}

// ScanDirectory walks sourcePath and returns every query document sorted by path.
// A digest failure aborts the scan and is reported with pqhash.ErrDigestFailed.
func (s *Scanner) ScanDirectory(ctx context.Context, sourcePath string) ([]QueryFile, error) {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	var queries []QueryFile
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if file.Info().IsDir() || !s.isQueryFile(file.RelativePath()) {
			return nil
		}

		query, err := s.processFile(ctx, file)
		if err != nil {
			return fmt.Errorf("failed to process file %s: %w", file.RelativePath(), err)
		}
		queries = append(queries, query)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(queries, func(i, j int) bool {
		return queries[i].Path < queries[j].Path
	})
	return queries, nil
}

func (s *Scanner) isQueryFile(relPath string) bool {
	ext := strings.ToLower(path.Ext(relPath))
	for _, want := range s.extensions {
		if ext == want {
			return true
		}
	}
	return false
}

func (s *Scanner) processFile(ctx context.Context, file filesystem.File) (QueryFile, error) {
	content, err := file.ReadContent()
	if err != nil {
		return QueryFile{}, fmt.Errorf("failed to read file: %w", err)
	}

	body := string(content)
	sum, err := s.hasher.Hash(ctx, body)
	if err != nil {
		return QueryFile{}, fmt.Errorf("%w: %w", pqhash.ErrDigestFailed, err)
	}

	return QueryFile{
		Path: file.RelativePath(),
		Body: body,
		Hash: sum,
	}, nil
}
