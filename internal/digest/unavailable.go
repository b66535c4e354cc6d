package digest

import (
	"context"

	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// unavailableBackend is committed when no provider could be probed.
type unavailableBackend struct {
	logger pqhash.Logger
}

func (b unavailableBackend) Kind() Kind { return KindUnavailable }

// Digest returns "" so callers send the full query instead.
func (b unavailableBackend) Digest(context.Context, string) (string, error) {
	warnUnavailable(b.logger)
	return "", nil
}
