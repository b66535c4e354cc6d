package platform

import "bytes"

// AsyncCrypto computes digests on a separate goroutine and delivers them through a channel.
// Safe for concurrent use by multiple goroutines.
type AsyncCrypto struct{}

// NewAsyncCrypto creates a promise-style digest facility.
func NewAsyncCrypto() *AsyncCrypto {
	return &AsyncCrypto{}
}

// Digest starts hashing a private copy of data and returns the pending result.
// The channel is buffered, so an abandoned result never blocks the worker.
func (c *AsyncCrypto) Digest(algorithm string, data []byte) <-chan DigestResult {
	results := make(chan DigestResult, 1)

	newHash, err := newHashFor(algorithm)
	if err != nil {
		results <- DigestResult{Err: err}
		return results
	}

	buf := bytes.Clone(data)
	go func() {
		results <- DigestResult{Sum: digestOf(newHash, buf)}
	}()
	return results
}
