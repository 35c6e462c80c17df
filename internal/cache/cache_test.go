package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKeyIsDeterministic(t *testing.T) {
	a := Key("huggingface", "نص تجريبي")
	b := Key("huggingface", "نص تجريبي")
	if a != b {
		t.Errorf("same parts produced different keys: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "mashaer:v1:") {
		t.Errorf("key = %s, want namespace prefix", a)
	}
}

func TestKeySeparatesParts(t *testing.T) {
	// "ab"+"c" and "a"+"bc" must not collide.
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("part boundaries are not encoded in the key")
	}
	if Key("p", "x") == Key("q", "x") {
		t.Error("provider must be part of the key")
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("empty cache reported a hit")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found := c.Get("k")
	if !found || string(got) != "v" {
		t.Errorf("Get = %q/%v, want v", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("deleted key still present")
	}
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("expired entry still present")
	}
}
