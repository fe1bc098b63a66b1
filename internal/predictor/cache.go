// Package predictor provides caching for computed predictions.
package predictor

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/pitch-oracle/internal/models"
)

// CacheKey identifies a prediction: same venue, score, and model version
// always yield the same result, so cached entries never go stale within
// a model generation.
type CacheKey struct {
	Venue        string
	Score        int
	ModelVersion string
}

// String returns string representation of cache key
func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%d:%s", k.Venue, k.Score, k.ModelVersion)
}

// ResultCache provides in-memory caching for computed predictions.
type ResultCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	maxSize   int
	mu        sync.Mutex
	hitCount  uint64
	missCount uint64
}

// NewResultCache creates a new prediction result cache
func NewResultCache(ttl time.Duration, maxSize int) *ResultCache {
	return &ResultCache{
		cache:   cache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get retrieves a cached prediction, nil on miss.
func (rc *ResultCache) Get(key CacheKey) *models.PredictionResult {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, found := rc.cache.Get(key.String()); found {
		if result, ok := cached.(*models.PredictionResult); ok {
			rc.hitCount++
			rc.updateMetrics()
			return result
		}
	}

	rc.missCount++
	rc.updateMetrics()
	return nil
}

// Set stores a prediction in the cache.
func (rc *ResultCache) Set(key CacheKey, result *models.PredictionResult) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.cache.ItemCount() >= rc.maxSize {
		rc.cache.DeleteExpired()
	}

	rc.cache.Set(key.String(), result, rc.ttl)
}

// Clear removes all cached predictions.
func (rc *ResultCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.cache.Flush()
	rc.hitCount = 0
	rc.missCount = 0
}

// Len returns the number of cached predictions, including not-yet-evicted
// expired entries.
func (rc *ResultCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.cache.ItemCount()
}

func (rc *ResultCache) updateMetrics() {
	total := rc.hitCount + rc.missCount
	if total > 0 {
		CacheHitRatio.Set(float64(rc.hitCount) / float64(total))
	}
}
