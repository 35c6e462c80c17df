package inference

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mashaer-ai/mashaer/internal/cache"
)

// CachedProvider wraps a provider with a TTL response cache keyed by the
// analyzed text, so idempotent re-runs skip the billable call.
type CachedProvider struct {
	inner Provider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProvider wraps a provider with the given cache.
func NewCachedProvider(inner Provider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, cache: c, ttl: ttl}
}

// Name returns the wrapped provider's name.
func (p *CachedProvider) Name() string {
	return p.inner.Name()
}

// Infer returns the cached probabilities when present, otherwise calls
// through and caches the result. Errors are never cached.
func (p *CachedProvider) Infer(ctx context.Context, text string) (Probs, error) {
	key := cache.Key(p.inner.Name(), text)

	if data, found := p.cache.Get(key); found {
		var probs Probs
		if err := json.Unmarshal(data, &probs); err == nil {
			return probs, nil
		}
	}

	probs, err := p.inner.Infer(ctx, text)
	if err != nil {
		return Probs{}, err
	}

	if data, err := json.Marshal(probs); err == nil {
		_ = p.cache.Set(key, data, p.ttl)
	}

	return probs, nil
}
