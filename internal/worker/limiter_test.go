package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiterAllowConsumesBurst(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("huggingface") {
		t.Fatal("first call should be allowed")
	}
	if !l.Allow("huggingface") {
		t.Fatal("second call should fit the burst")
	}
	if l.Allow("huggingface") {
		t.Error("third call should be limited")
	}
}

func TestLimiterIsPerProvider(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("huggingface") {
		t.Fatal("first provider should be allowed")
	}
	if !l.Allow("openai") {
		t.Error("second provider must have its own bucket")
	}
}

func TestLimiterSetRateOverride(t *testing.T) {
	l := NewLimiter(0, 1)
	l.Allow("slow") // exhaust the only token

	l.SetRate("slow", 100, 10)
	if !l.Allow("slow") {
		t.Error("override should replace the exhausted bucket")
	}
}

func TestLimiterWaitHonorsContext(t *testing.T) {
	l := NewLimiter(0, 1)

	if err := l.Wait(context.Background(), "stalled"); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "stalled"); err == nil {
		t.Error("expected an error once the bucket is empty and the context expires")
	}
}
