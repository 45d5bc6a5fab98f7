// Package resolve turns a service category and coordinates into a ranked
// list of responding facilities. Three data tiers are consulted in fixed
// order — live provider, local dataset, compiled-in static contacts —
// each behind its own TTL cache, with duplicate concurrent lookups for a
// key collapsed into a single fetch.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// Source is one capability-bound facility tier. A failed or empty
// attempt hands over to the next tier; errors never reach the caller.
type Source interface {
	Tier() models.SourceTier
	Find(ctx context.Context, category models.Category, loc models.Coordinates, radiusKM float64) ([]models.FacilityCandidate, error)
}

// ErrNoStaticFallback reports the one fatal configuration error: a
// category for which not even the static tier has an entry.
type ErrNoStaticFallback struct {
	Category models.Category
}

func (e *ErrNoStaticFallback) Error() string {
	return fmt.Sprintf("no static fallback configured for category %q", e.Category)
}

type tier struct {
	source  Source
	cache   *Cache // nil for the static tier
	timeout time.Duration
}

type Resolver struct {
	tiers      []tier
	sf         singleflight.Group
	maxResults int
}

type Options struct {
	// Live is optional; when nil the resolver starts at the local tier.
	Live        Source
	Local       Source
	Static      Source
	LiveTTL     time.Duration
	LocalTTL    time.Duration
	LiveTimeout time.Duration
	// LocalTimeout bounds dataset lookups; generous since they are
	// in-process or on local disk.
	LocalTimeout time.Duration
	MaxResults   int
}

func New(opts Options) *Resolver {
	if opts.LiveTTL == 0 {
		opts.LiveTTL = time.Hour
	}
	if opts.LocalTTL == 0 {
		opts.LocalTTL = 6 * time.Hour
	}
	if opts.LiveTimeout == 0 {
		opts.LiveTimeout = 5 * time.Second
	}
	if opts.LocalTimeout == 0 {
		opts.LocalTimeout = 2 * time.Second
	}
	if opts.MaxResults == 0 {
		opts.MaxResults = 10
	}
	if opts.Static == nil {
		opts.Static = NewStaticSource()
	}

	r := &Resolver{maxResults: opts.MaxResults}
	if opts.Live != nil {
		r.tiers = append(r.tiers, tier{source: opts.Live, cache: NewCache(opts.LiveTTL), timeout: opts.LiveTimeout})
	}
	if opts.Local != nil {
		r.tiers = append(r.tiers, tier{source: opts.Local, cache: NewCache(opts.LocalTTL), timeout: opts.LocalTimeout})
	}
	r.tiers = append(r.tiers, tier{source: opts.Static, timeout: opts.LocalTimeout})
	return r
}

// Resolve walks the tiers in order. Each tier's cache is checked before
// any call; a hit short-circuits the tier. Failures, timeouts and empty
// results all mean "next tier". The static tier guarantees at least one
// candidate for any properly configured category.
func (r *Resolver) Resolve(ctx context.Context, category models.Category, loc models.Coordinates, radiusKM float64) ([]models.FacilityCandidate, error) {
	key := cacheKey(category, loc, radiusKM)

	for _, t := range r.tiers {
		if t.cache != nil {
			if candidates, ok := t.cache.Get(key); ok {
				return r.limit(candidates), nil
			}
		}

		candidates, err := r.attempt(ctx, t, key, category, loc, radiusKM)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Warn("facility tier failed",
				"tier", t.source.Tier(), "category", category, "error", err)
			continue
		}
		if len(candidates) == 0 {
			slog.Debug("facility tier empty", "tier", t.source.Tier(), "category", category)
			continue
		}
		return r.limit(candidates), nil
	}

	return nil, &ErrNoStaticFallback{Category: category}
}

// attempt runs one tier fetch under a per-key single-flight so a miss
// stampede collapses to one upstream call. The fetch itself runs on a
// detached context: a caller hanging up must not abort a population that
// other waiters share. Its timeout bounds it regardless.
func (r *Resolver) attempt(ctx context.Context, t tier, key string, category models.Category, loc models.Coordinates, radiusKM float64) ([]models.FacilityCandidate, error) {
	sfKey := string(t.source.Tier()) + "|" + key

	ch := r.sf.DoChan(sfKey, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.timeout)
		defer cancel()

		candidates, err := t.source.Find(fetchCtx, category, loc, radiusKM)
		if err != nil {
			return nil, err
		}
		rank(candidates, loc)
		if len(candidates) > 0 && t.cache != nil {
			t.cache.Set(key, category, candidates)
		}
		return candidates, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.FacilityCandidate), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *Resolver) limit(candidates []models.FacilityCandidate) []models.FacilityCandidate {
	if len(candidates) > r.maxResults {
		return candidates[:r.maxResults]
	}
	return candidates
}
