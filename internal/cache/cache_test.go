// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package cache

import (
	"testing"
	"time"
)

func TestCacheBasicOperations(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	_, exists = c.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := New(100 * time.Millisecond)

	c.Set("key1", "value1")

	_, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	time.Sleep(150 * time.Millisecond)

	_, exists = c.Get("key1")
	if exists {
		t.Error("Expected key1 to be expired")
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	c := New(50 * time.Millisecond)

	// Session-style entry outlives the default TTL.
	c.SetWithTTL("session", "token", 1*time.Minute)

	time.Sleep(80 * time.Millisecond)

	_, exists := c.Get("session")
	if !exists {
		t.Error("Expected session entry to outlive the default TTL")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Delete("key1")

	_, exists := c.Get("key1")
	if exists {
		t.Error("Expected key1 to be deleted")
	}
}

func TestCacheClear(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Clear()

	for _, key := range []string{"key1", "key2"} {
		_, exists := c.Get(key)
		if exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
}

func TestCacheStats(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Get("key1")
	c.Get("missing")

	stats := c.GetStats()
	if stats.Hits != 1 {
		t.Errorf("Expected 1 hit, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
	if rate := c.HitRate(); rate != 50.0 {
		t.Errorf("Expected 50%% hit rate, got %.2f", rate)
	}
}

func TestGenerateKeyDeterministic(t *testing.T) {
	params := map[string]string{"tables": "nh_fish", "limit": "100"}

	key1 := GenerateKey("cargoquery", params)
	key2 := GenerateKey("cargoquery", params)
	if key1 != key2 {
		t.Errorf("Expected identical keys, got %s and %s", key1, key2)
	}

	other := GenerateKey("cargoquery", map[string]string{"tables": "nh_bug", "limit": "100"})
	if key1 == other {
		t.Error("Expected different parameters to produce different keys")
	}
}
