package digest

import (
	"crypto"
	"errors"
	"fmt"
	"sync"

	"github.com/vvka-141/pqhash/internal/digest/platform"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// Probe reports whether a facility is usable and, if so, returns a Backend for it.
type Probe func() (Backend, error)

// Provider is one candidate in the selection order.
type Provider struct {
	Kind  Kind
	Probe Probe
}

// NativeProvider probes crypto/sha256.
func NativeProvider() Provider {
	return Provider{
		Kind: KindNative,
		Probe: func() (Backend, error) {
			if !crypto.SHA256.Available() {
				return nil, errors.New("crypto.SHA256 is not linked into the binary")
			}
			return NativeBackend{}, nil
		},
	}
}

// SubtleProvider probes for a promise-style facility in env.
func SubtleProvider(env platform.Environment, encoder Encoder) Provider {
	return Provider{
		Kind: KindSubtle,
		Probe: func() (Backend, error) {
			if env.Subtle == nil {
				return nil, errors.New("no subtle crypto facility in environment")
			}
			return NewSubtleBackend(env.Subtle, encoder), nil
		},
	}
}

// LegacyProvider probes for a callback-style facility in env.
func LegacyProvider(env platform.Environment, encoder Encoder) Provider {
	return Provider{
		Kind: KindLegacy,
		Probe: func() (Backend, error) {
			if env.Legacy == nil {
				return nil, errors.New("no legacy crypto facility in environment")
			}
			return NewLegacyBackend(env.Legacy, encoder), nil
		},
	}
}

// DefaultOrder is the selection priority used when none is configured.
var DefaultOrder = []Kind{KindNative, KindSubtle, KindLegacy}

// ProvidersFor builds providers for kinds, in the given order.
// KindUnavailable entries contribute nothing, so []Kind{KindUnavailable}
// forces the degrade path.
func ProvidersFor(kinds []Kind, env platform.Environment, encoder Encoder) []Provider {
	providers := make([]Provider, 0, len(kinds))
	for _, k := range kinds {
		switch k {
		case KindNative:
			providers = append(providers, NativeProvider())
		case KindSubtle:
			providers = append(providers, SubtleProvider(env, encoder))
		case KindLegacy:
			providers = append(providers, LegacyProvider(env, encoder))
		}
	}
	return providers
}

// ProbeReport is the outcome of probing one provider.
type ProbeReport struct {
	Kind Kind
	Err  error
}

// Select probes providers in order and returns the first usable backend.
// It never fails: when nothing is usable it returns the unavailable backend.
func Select(logger pqhash.Logger, providers ...Provider) Backend {
	backend, _ := selectWithReport(logger, providers)
	return backend
}

func selectWithReport(logger pqhash.Logger, providers []Provider) (Backend, []ProbeReport) {
	reports := make([]ProbeReport, 0, len(providers))
	for _, p := range providers {
		backend, err := runProbe(p)
		reports = append(reports, ProbeReport{Kind: p.Kind, Err: err})
		if err != nil {
			logger.Verbose("digest: %s backend unavailable: %v", p.Kind, err)
			continue
		}
		logger.Verbose("digest: selected %s backend", backend.Kind())
		return backend, reports
	}

	logger.Verbose("digest: no backend available, digests will be empty")
	return unavailableBackend{logger: logger}, reports
}

func runProbe(p Provider) (backend Backend, err error) {
	defer func() {
		if r := recover(); r != nil {
			backend, err = nil, fmt.Errorf("probe panicked: %v", r)
		}
	}()

	if p.Probe == nil {
		return nil, errors.New("provider has no probe")
	}
	backend, err = p.Probe()
	if err == nil && backend == nil {
		err = errors.New("probe returned no backend")
	}
	return backend, err
}

// Selector memoizes one selection. Probing runs on the first call to Backend;
// concurrent first callers wait for that single run and share its result.
type Selector struct {
	logger    pqhash.Logger
	providers []Provider

	once    sync.Once
	backend Backend
	reports []ProbeReport
}

// NewSelector creates a Selector over providers, in priority order.
func NewSelector(logger pqhash.Logger, providers ...Provider) *Selector {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Selector{
		logger:    logger,
		providers: append([]Provider(nil), providers...),
	}
}

// Backend returns the committed backend, selecting it on first use.
func (s *Selector) Backend() Backend {
	s.once.Do(func() {
		s.backend, s.reports = selectWithReport(s.logger, s.providers)
	})
	return s.backend
}

// Reports returns the probe outcomes of the committed selection, in probe order.
// Providers after the winner were never probed and are absent.
func (s *Selector) Reports() []ProbeReport {
	s.Backend()
	return append([]ProbeReport(nil), s.reports...)
}
