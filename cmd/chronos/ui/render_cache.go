package ui

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// RenderCache holds rendered turns. Turns are immutable, so an entry keyed
// by turn ID, wrap width and theme never goes stale.
type RenderCache struct {
	cache *cache.Cache
}

// NewRenderCache creates a cache whose entries expire after ttl.
// A zero ttl keeps entries until Clear.
func NewRenderCache(ttl time.Duration) *RenderCache {
	if ttl <= 0 {
		return &RenderCache{cache: cache.New(cache.NoExpiration, 0)}
	}
	return &RenderCache{cache: cache.New(ttl, 2*ttl)}
}

// TurnKey builds the cache key for one rendered turn.
func TurnKey(turnID string, width int, dark bool) string {
	return fmt.Sprintf("%s|%d|%t", turnID, width, dark)
}

// GetOrCompute retrieves from cache or computes if missing.
func (rc *RenderCache) GetOrCompute(key string, compute func() string) string {
	if v, ok := rc.cache.Get(key); ok {
		return v.(string)
	}
	content := compute()
	rc.cache.SetDefault(key, content)
	return content
}

// Len reports the number of cached entries.
func (rc *RenderCache) Len() int {
	return rc.cache.ItemCount()
}

// Clear empties the cache.
func (rc *RenderCache) Clear() {
	rc.cache.Flush()
}
