// Package digest computes the SHA-256 digest that identifies a persisted query.
//
// A client of the persisted query protocol sends the lowercase hex digest of a
// query in place of its text and falls back to the full text when the server
// does not know the digest. This package only produces the digest; sending and
// retrying are left to the transport.
//
// # Backends
//
// The digest can come from one of several facilities, tried in priority order:
//
//  1. Native: crypto/sha256, hashing the string's UTF-8 bytes directly
//  2. Subtle: a promise-style facility (see package platform)
//  3. Legacy: a callback-style facility (see package platform)
//
// The first provider whose probe succeeds is committed for the lifetime of the
// Hasher. Probe errors and panics are absorbed and selection moves on. When no
// provider succeeds the Hasher degrades: Hash returns "" and a nil error, and
// development builds log a warning. Build with -tags production to drop the warning.
//
// # Encoding
//
// Subtle and Legacy hash bytes, not text, so the Hasher encodes the query first.
// UTF8 is the default and agrees with the native backend for every input.
// Truncating keeps the low 8 bits of each UTF-16 code unit; it matches UTF8
// only for ASCII input and exists for parity with clients that still encode
// that way.
//
// # Example Usage
//
//	sum, err := digest.Hash(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if sum == "" {
//	    // send the full query
//	}
//
// # Thread Safety
//
// Hasher is safe for concurrent use. Concurrent first calls share one selection.
package digest
