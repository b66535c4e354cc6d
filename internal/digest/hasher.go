package digest

import (
	"context"
	"sync"

	"github.com/vvka-141/pqhash/internal/digest/platform"
	"github.com/vvka-141/pqhash/internal/logging"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// Hasher computes persisted query digests through one committed Backend.
type Hasher struct {
	selector *Selector
}

type options struct {
	logger    pqhash.Logger
	encoder   Encoder
	env       platform.Environment
	order     []Kind
	providers []Provider
}

// Option configures a Hasher.
type Option func(*options)

// WithLogger sets the logger used for selection diagnostics and the unavailable warning.
func WithLogger(logger pqhash.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEncoder sets the text encoder used by the subtle and legacy backends.
func WithEncoder(encoder Encoder) Option {
	return func(o *options) {
		o.encoder = encoder
	}
}

// WithEnvironment sets the non-native facilities that may be probed.
func WithEnvironment(env platform.Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithOrder sets the backend priority. Kinds not listed are never probed.
func WithOrder(kinds ...Kind) Option {
	return func(o *options) {
		o.order = append([]Kind(nil), kinds...)
	}
}

// WithProviders replaces the provider list entirely; WithOrder, WithEncoder and
// WithEnvironment are then ignored.
func WithProviders(providers ...Provider) Option {
	return func(o *options) {
		o.providers = append([]Provider(nil), providers...)
	}
}

// New creates a Hasher. Selection is deferred until the first Hash or Backend call.
//
// Example:
//
//	hasher := digest.New(
//	    digest.WithOrder(digest.KindSubtle, digest.KindNative),
//	    digest.WithLogger(logging.NewConsoleLogger(true)),
//	)
func New(opts ...Option) *Hasher {
	o := options{
		encoder: UTF8,
		env:     platform.DefaultEnvironment(),
		order:   DefaultOrder,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewConsoleLogger(false)
	}

	providers := o.providers
	if providers == nil {
		providers = ProvidersFor(o.order, o.env, o.encoder)
	}

	return &Hasher{selector: NewSelector(o.logger, providers...)}
}

// Hash returns the lowercase hex SHA-256 digest of query, or "" if no backend is available.
func (h *Hasher) Hash(ctx context.Context, query string) (string, error) {
	return h.selector.Backend().Digest(ctx, query)
}

// Backend returns the committed backend.
func (h *Hasher) Backend() Backend {
	return h.selector.Backend()
}

// Reports returns the probe outcomes behind the committed backend.
func (h *Hasher) Reports() []ProbeReport {
	return h.selector.Reports()
}

var defaultHasher = sync.OnceValue(func() *Hasher { return New() })

// Default returns the process-wide Hasher, built on first use with the default
// priority order and environment.
func Default() *Hasher {
	return defaultHasher()
}

// Hash digests query with the process-wide Hasher.
func Hash(ctx context.Context, query string) (string, error) {
	return Default().Hash(ctx, query)
}
