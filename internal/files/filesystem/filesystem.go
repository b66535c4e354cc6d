package filesystem

import (
	"fmt"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File is one entry discovered while walking a Directory.
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the slash-separated path relative to the walked root
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory is a tree that can be walked.
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk calls fn for every entry, directories included, in lexical order.
	// Walking stops at the first error fn returns.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider opens directories and reads single files.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)
}

// callSafely runs fn and converts a panic into an error naming the path.
func callSafely(path string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("walk callback panicked at %s: %v", path, r)
		}
	}()
	return fn()
}
