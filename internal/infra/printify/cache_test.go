package printify

import (
	"testing"
	"time"
)

func TestCache_PutGetWithinTTL(t *testing.T) {
	cache := NewCache(1 * time.Hour)

	cache.Put("key", "value")

	got, ok := cache.Get("key")
	if !ok {
		t.Fatal("expected cache hit within TTL")
	}
	if got != "value" {
		t.Errorf("expected value, got %v", got)
	}
}

func TestCache_ExpiryWithoutPut(t *testing.T) {
	current := time.Now()
	cache := NewCache(1 * time.Hour)
	cache.now = func() time.Time { return current }

	cache.Put("key", "value")

	// Just inside TTL
	current = current.Add(59 * time.Minute)
	if _, ok := cache.Get("key"); !ok {
		t.Error("expected hit just inside TTL")
	}

	// At TTL boundary the entry is stale
	current = current.Add(1 * time.Minute)
	if _, ok := cache.Get("key"); ok {
		t.Error("expected miss at TTL expiry")
	}
}

func TestCache_PutRefreshesTimestamp(t *testing.T) {
	current := time.Now()
	cache := NewCache(1 * time.Hour)
	cache.now = func() time.Time { return current }

	cache.Put("key", "old")

	current = current.Add(50 * time.Minute)
	cache.Put("key", "new")

	// 50m after the overwrite: fresh relative to the new timestamp
	current = current.Add(50 * time.Minute)
	got, ok := cache.Get("key")
	if !ok {
		t.Fatal("expected hit after overwrite refreshed the timestamp")
	}
	if got != "new" {
		t.Errorf("expected new, got %v", got)
	}
}

func TestCache_MissForUnknownKey(t *testing.T) {
	cache := NewCache(0)
	if _, ok := cache.Get("absent"); ok {
		t.Error("expected miss for unknown key")
	}
}
