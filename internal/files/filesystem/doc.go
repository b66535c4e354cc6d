// Package filesystem provides the filesystem abstraction used to discover query documents.
//
// Implementations:
//   - OSFileSystem: the operating system filesystem
//   - MemoryFileSystem: an in-memory tree for tests
package filesystem
