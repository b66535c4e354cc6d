package digest

import (
	"context"
	"fmt"

	"github.com/vvka-141/pqhash/internal/digest/platform"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// LegacyBackend hashes through a callback-style facility. The callbacks are
// adapted to the same channel the subtle backend waits on.
type LegacyBackend struct {
	crypto  platform.LegacySubtle
	encoder Encoder
}

// NewLegacyBackend creates a backend over crypto. A nil encoder selects UTF8.
func NewLegacyBackend(crypto platform.LegacySubtle, encoder Encoder) *LegacyBackend {
	if crypto == nil {
		panic("legacy crypto cannot be nil")
	}
	if encoder == nil {
		encoder = UTF8
	}
	return &LegacyBackend{crypto: crypto, encoder: encoder}
}

// Kind reports KindLegacy.
func (b *LegacyBackend) Kind() Kind { return KindLegacy }

// Digest encodes text, attaches completion and error handlers, and waits for either.
// An error reported through OnError is returned unchanged.
func (b *LegacyBackend) Digest(ctx context.Context, text string) (string, error) {
	op := b.crypto.Digest(pqhash.Algorithm, b.encoder.Encode(text))
	if op == nil {
		return "", fmt.Errorf("legacy digest facility returned no operation")
	}

	results := make(chan platform.DigestResult, 1)
	settle := func(res platform.DigestResult) {
		select {
		case results <- res:
		default:
		}
	}
	op.OnComplete(func(sum []byte) { settle(platform.DigestResult{Sum: sum}) })
	op.OnError(func(err error) { settle(platform.DigestResult{Err: err}) })

	sum, err := await(ctx, results)
	if err != nil {
		return "", err
	}
	return formatChecked(KindLegacy, sum)
}
