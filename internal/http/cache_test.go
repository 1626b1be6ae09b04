package http

import (
	"fmt"
	"testing"
	"time"
)

func TestLRUCacheEviction(t *testing.T) {
	cache := newLRUCache[int](3, time.Minute)

	for i := 0; i < 4; i++ {
		cache.Set(fmt.Sprintf("k%d", i), i)
	}

	// k0 is the oldest and should have been evicted.
	if _, ok := cache.Get("k0"); ok {
		t.Error("expected k0 evicted")
	}
	for i := 1; i < 4; i++ {
		if v, ok := cache.Get(fmt.Sprintf("k%d", i)); !ok || v != i {
			t.Errorf("k%d = %v ok=%v", i, v, ok)
		}
	}
}

func TestLRUCacheTTL(t *testing.T) {
	cache := newLRUCache[string](10, 10*time.Millisecond)
	cache.Set("k", "v")

	if _, ok := cache.Get("k"); !ok {
		t.Fatal("expected fresh entry")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := cache.Get("k"); ok {
		t.Error("expected entry expired")
	}
	if cleaned := cache.CleanExpired(); cleaned != 0 {
		// Get already removed the expired entry.
		t.Errorf("expected nothing left to clean, got %d", cleaned)
	}
}

func TestLRUCacheDeleteFunc(t *testing.T) {
	cache := newLRUCache[int](10, time.Minute)
	cache.Set("1:USD", 1)
	cache.Set("1:EUR", 2)
	cache.Set("2:USD", 3)

	removed := cache.DeleteFunc(func(key string) bool { return key[:2] == "1:" })
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if _, ok := cache.Get("1:USD"); ok {
		t.Error("expected 1:USD removed")
	}
	if _, ok := cache.Get("2:USD"); !ok {
		t.Error("expected 2:USD kept")
	}
}

func TestLRUCacheRecencyOnGet(t *testing.T) {
	cache := newLRUCache[int](2, time.Minute)
	cache.Set("a", 1)
	cache.Set("b", 2)

	// Touch a so b becomes the eviction candidate.
	cache.Get("a")
	cache.Set("c", 3)

	if _, ok := cache.Get("b"); ok {
		t.Error("expected b evicted")
	}
	if _, ok := cache.Get("a"); !ok {
		t.Error("expected a kept")
	}
}
