// Package logging provides concrete implementations of the pqhash.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed lines to stderr or any io.Writer, one write per message
//   - NullLogger: Discards all messages
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
