// Package scanner discovers query documents in a directory tree and digests them.
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// so tests run against an in-memory tree.
package scanner
