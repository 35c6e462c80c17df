package inference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mashaer-ai/mashaer/internal/cache"
)

type countingProvider struct {
	calls int
	probs Probs
	err   error
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Infer(ctx context.Context, text string) (Probs, error) {
	p.calls++
	return p.probs, p.err
}

func TestCachedProviderHitsCacheOnRepeat(t *testing.T) {
	inner := &countingProvider{probs: Probs{Positive: 0.8, Negative: 0.2}}
	provider := NewCachedProvider(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 3; i++ {
		probs, err := provider.Infer(context.Background(), "نفس النص")
		if err != nil {
			t.Fatalf("Infer: %v", err)
		}
		if probs != inner.probs {
			t.Errorf("probs = %+v, want %+v", probs, inner.probs)
		}
	}

	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}

func TestCachedProviderMissesOnDifferentText(t *testing.T) {
	inner := &countingProvider{probs: Probs{Positive: 0.6, Negative: 0.4}}
	provider := NewCachedProvider(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	provider.Infer(context.Background(), "نص أول")
	provider.Infer(context.Background(), "نص ثان")

	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2", inner.calls)
	}
}

func TestCachedProviderNeverCachesErrors(t *testing.T) {
	inner := &countingProvider{err: errors.New("upstream down")}
	provider := NewCachedProvider(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := provider.Infer(context.Background(), "نص"); err == nil {
			t.Fatal("expected the upstream error")
		}
	}

	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want each failed call to pass through", inner.calls)
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "oracle"}); err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}
