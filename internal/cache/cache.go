// Package cache provides a small time- and size-bounded store for ranked
// recommendation lists, keyed by the full request fingerprint.
package cache

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/outfit-stylist/internal/types"
)

// Defaults for a recommendation cache.
const (
	DefaultTTL        = 10 * time.Minute
	DefaultMaxEntries = 128
)

type entry struct {
	recommendations []types.Recommendation
	expiresAt       time.Time
}

// Cache stores ranked recommendation lists for identical repeated requests.
// Entries expire by TTL, checked on read; inserts over capacity evict the
// entry closest to expiry. Safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[uint64]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// New creates a cache with the given TTL and capacity; non-positive values
// fall back to defaults.
func New(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{
		entries:    make(map[uint64]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Key fingerprints one request: sorted item ids, profile signature,
// context, and options.
func Key(items []types.WardrobeItem, profile *types.StyleProfile, ctx *types.RequestContext, opts types.RecommendOptions) uint64 {
	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	sort.Strings(ids)

	var sb strings.Builder
	sb.WriteString(strings.Join(ids, ","))
	sb.WriteByte('\n')
	if profile != nil {
		fmt.Fprintf(&sb, "%s|%s|%s|%s",
			profile.PreferredStyle,
			strings.Join(profile.FavoriteColors, ","),
			strings.Join(profile.ColorPaletteColors, ","),
			strings.Join(profile.LifestyleTags, ","))
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%s|%s|%s|%t|%t",
		ctx.Occasion, ctx.TimeOfDay, ctx.Season, ctx.SeasonalPreference, ctx.ColorTheoryMode)
	if ctx.Weather != nil {
		fmt.Fprintf(&sb, "|%.1f|%s|%.1f", ctx.Weather.TemperatureC, ctx.Weather.Condition, ctx.Weather.Humidity)
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%d|%t|%.2f|%d|%t",
		opts.MaxRecommendations, opts.AccessoriesEnabled(), opts.DiversityFactor,
		opts.MaxCombinations, opts.SoftOccasionFilter)

	h := fnv.New64a()
	_, _ = h.Write([]byte(sb.String()))
	return h.Sum64()
}

// Get returns the cached list for a key, or false when absent or expired.
func (c *Cache) Get(key uint64) ([]types.Recommendation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.recommendations, true
}

// Put stores a list under a key, evicting the entry closest to expiry when
// the cache is full.
func (c *Cache) Put(key uint64, recommendations []types.Recommendation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = entry{
		recommendations: recommendations,
		expiresAt:       c.now().Add(c.ttl),
	}
}

// Len returns the current number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictOldestLocked() {
	var oldestKey uint64
	var oldestExpiry time.Time
	first := true
	for key, e := range c.entries {
		if first || e.expiresAt.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = e.expiresAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
