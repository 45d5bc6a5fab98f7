package resolve

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// radiusBucketKM groups nearby radii so requests differing only slightly
// in search radius share a cache line.
const radiusBucketKM = 5.0

// cacheKey rounds coordinates to two decimals (~1.1 km) so nearby
// requests share a cache line.
func cacheKey(category models.Category, loc models.Coordinates, radiusKM float64) string {
	bucket := int(math.Ceil(radiusKM / radiusBucketKM))
	return fmt.Sprintf("%s:%.2f:%.2f:r%d", category, loc.Latitude, loc.Longitude, bucket)
}

type cacheEntry struct {
	candidates []models.FacilityCandidate
	category   models.Category
	insertedAt time.Time
	ttl        time.Duration
}

// Cache is a TTL map owned by a single resolver tier. Reads never block
// on writes for other keys; the map is guarded by a RWMutex and entries
// are immutable once stored.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttls    map[models.Category]time.Duration
	base    time.Duration
	now     func() time.Time
}

// NewCache builds a cache whose entry TTL depends on the category: the
// base TTL for medical, doubled for police and disaster, quadrupled for
// general (static-ish facility sets change slowly; live discovery does
// not).
func NewCache(base time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		base:    base,
		ttls: map[models.Category]time.Duration{
			models.CategoryMedical:  base,
			models.CategoryPolice:   2 * base,
			models.CategoryDisaster: 2 * base,
			models.CategoryGeneral:  4 * base,
		},
		now: time.Now,
	}
}

func (c *Cache) Get(key string) ([]models.FacilityCandidate, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.insertedAt) > e.ttl {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.insertedAt.Equal(e.insertedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.candidates, true
}

func (c *Cache) Set(key string, category models.Category, candidates []models.FacilityCandidate) {
	ttl, ok := c.ttls[category]
	if !ok {
		ttl = c.base
	}
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		candidates: candidates,
		category:   category,
		insertedAt: c.now(),
		ttl:        ttl,
	}
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
