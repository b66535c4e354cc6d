package digest

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// Kind identifies which digest facility a Backend uses.
type Kind int

const (
	KindUnavailable Kind = iota
	KindNative
	KindSubtle
	KindLegacy
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindSubtle:
		return "subtle"
	case KindLegacy:
		return "legacy"
	default:
		return "unavailable"
	}
}

// ParseKind resolves a backend name. "none" yields KindUnavailable.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "native":
		return KindNative, nil
	case "subtle", "webcrypto":
		return KindSubtle, nil
	case "legacy", "mscrypto":
		return KindLegacy, nil
	case "none", "unavailable":
		return KindUnavailable, nil
	default:
		return KindUnavailable, fmt.Errorf("%w: %q", pqhash.ErrUnknownBackend, name)
	}
}

// ParseKinds resolves a list of backend names, preserving order.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Backend computes the hex digest of a query.
//
// Digest returns the 64-character lowercase hex SHA-256 of text, or "" when no
// facility is available. An error means the committed facility itself failed;
// it is returned as reported. ctx bounds only the wait for asynchronous facilities.
type Backend interface {
	Kind() Kind
	Digest(ctx context.Context, text string) (string, error)
}
