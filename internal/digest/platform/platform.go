package platform

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// ErrUnsupportedAlgorithm is reported when a facility is asked for an algorithm it does not know.
var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

// DigestResult is the settled outcome of an asynchronous digest.
type DigestResult struct {
	Sum []byte
	Err error
}

// Subtle is a promise-style digest facility.
// The returned channel yields exactly one result and is never closed without one.
type Subtle interface {
	Digest(algorithm string, data []byte) <-chan DigestResult
}

// Operation is a pending digest in the legacy callback shape.
type Operation interface {
	OnComplete(fn func(sum []byte))
	OnError(fn func(err error))
}

// LegacySubtle is a callback-style digest facility.
type LegacySubtle interface {
	Digest(algorithm string, data []byte) Operation
}

// Environment lists the non-native digest facilities that are present.
type Environment struct {
	Subtle Subtle
	Legacy LegacySubtle
}

// DefaultEnvironment returns an environment with both goroutine-backed facilities installed.
func DefaultEnvironment() Environment {
	return Environment{
		Subtle: NewAsyncCrypto(),
		Legacy: NewCallbackCrypto(),
	}
}

// newHashFor resolves a Web Crypto algorithm identifier, case-insensitively.
func newHashFor(algorithm string) (func() hash.Hash, error) {
	switch strings.ToUpper(strings.TrimSpace(algorithm)) {
	case "SHA-256":
		return sha256.New, nil
	case "SHA-384":
		return sha512.New384, nil
	case "SHA-512":
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

func digestOf(newHash func() hash.Hash, data []byte) []byte {
	h := newHash()
	h.Write(data)
	return h.Sum(nil)
}
