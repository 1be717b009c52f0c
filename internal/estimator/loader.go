package estimator

import (
	"context"

	"github.com/vk/xplatform-core/internal/ctxlog"
	"github.com/vk/xplatform-core/internal/estimate"
)

// SelectivityLoader reads selectivity specifications out of a
// Configuration, parses them with estimate.ParseSelectivitySpec, and warns
// (rather than erroring) when a key is simply absent.
type SelectivityLoader struct {
	cache SpecCache
}

// NewSelectivityLoader returns a loader backed by cache. A nil cache is
// replaced with NoCache.
func NewSelectivityLoader(cache SpecCache) *SelectivityLoader {
	if cache == nil {
		cache = NoCache{}
	}
	return &SelectivityLoader{cache: cache}
}

// Load resolves key against cfg. It returns (estimate, true, nil) on a
// successful parse, (zero, false, nil) when the key is simply missing
// (logged at warn level, not an error), and (zero, false, err) when the
// key was present but malformed or of an unrecognized type.
func (l *SelectivityLoader) Load(ctx context.Context, cfg Configuration, key string) (estimate.PIE, bool, error) {
	if cached, ok := l.cache.Get(key); ok {
		return cached.(estimate.PIE), true, nil
	}

	raw, ok := cfg.GetOptionalStringProperty(key)
	if !ok {
		ctxlog.FromContext(ctx).Warn("missing selectivity specification, caller should fall back to a default", "key", key)
		return estimate.PIE{}, false, nil
	}

	spec, err := estimate.ParseSelectivitySpec(key, raw)
	if err != nil {
		return estimate.PIE{}, false, err
	}
	l.cache.Put(key, spec)
	return spec, true, nil
}
