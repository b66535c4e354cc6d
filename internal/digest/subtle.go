package digest

import (
	"context"
	"fmt"

	"github.com/vvka-141/pqhash/internal/digest/platform"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// SubtleBackend hashes through a promise-style facility.
type SubtleBackend struct {
	crypto  platform.Subtle
	encoder Encoder
}

// NewSubtleBackend creates a backend over crypto. A nil encoder selects UTF8.
func NewSubtleBackend(crypto platform.Subtle, encoder Encoder) *SubtleBackend {
	if crypto == nil {
		panic("subtle crypto cannot be nil")
	}
	if encoder == nil {
		encoder = UTF8
	}
	return &SubtleBackend{crypto: crypto, encoder: encoder}
}

// Kind reports KindSubtle.
func (b *SubtleBackend) Kind() Kind { return KindSubtle }

// Digest encodes text, waits for the facility and formats the result.
func (b *SubtleBackend) Digest(ctx context.Context, text string) (string, error) {
	sum, err := await(ctx, b.crypto.Digest(pqhash.Algorithm, b.encoder.Encode(text)))
	if err != nil {
		return "", err
	}
	return formatChecked(KindSubtle, sum)
}

// await blocks until the facility settles or ctx is done.
func await(ctx context.Context, results <-chan platform.DigestResult) ([]byte, error) {
	select {
	case res, ok := <-results:
		if !ok {
			return nil, fmt.Errorf("digest facility closed without a result")
		}
		return res.Sum, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// formatChecked rejects a facility result that is not a SHA-256 digest.
func formatChecked(kind Kind, sum []byte) (string, error) {
	if len(sum) != pqhash.DigestSize {
		return "", fmt.Errorf("%s backend returned %d digest bytes, want %d", kind, len(sum), pqhash.DigestSize)
	}
	return FormatHex(sum), nil
}
