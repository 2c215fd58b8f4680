package feed

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/umputun/azupdates/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// Fetcher retrieves raw feed entries from the upstream feed
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]domain.Entry, error)
}

// Recorder collects cache and refresh statistics
type Recorder interface {
	RecordRefresh(duration time.Duration, err error)
	RecordCacheHit()
	RecordDroppedEntries(count int)
}

// CacheParams defines cache settings
type CacheParams struct {
	URL      string
	TTL      time.Duration
	Recorder Recorder         // optional
	Now      func() time.Time // optional, defaults to time.Now
}

// Cache keeps the latest parsed feed in memory and refreshes it after TTL expiration.
// Concurrent refreshes of a stale cache are collapsed into a single upstream fetch.
type Cache struct {
	fetcher  Fetcher
	url      string
	ttl      time.Duration
	recorder Recorder
	now      func() time.Time
	group    singleflight.Group

	mu        sync.RWMutex
	updates   []domain.Update
	fetchedAt time.Time
}

// NewCache makes a feed cache for the given fetcher
func NewCache(fetcher Fetcher, params CacheParams) *Cache {
	res := &Cache{
		fetcher:  fetcher,
		url:      params.URL,
		ttl:      params.TTL,
		recorder: params.Recorder,
		now:      params.Now,
	}
	if res.ttl <= 0 {
		res.ttl = 5 * time.Minute
	}
	if res.now == nil {
		res.now = time.Now
	}
	if res.recorder == nil {
		res.recorder = nopRecorder{}
	}
	return res
}

// Updates returns cached updates sorted by publication time, newest first.
// Refreshes from upstream if the cache is empty or older than TTL.
// On refresh failure the error is returned and the cached data kept as is.
// The returned slice is shared, callers must not modify it.
func (c *Cache) Updates(ctx context.Context) ([]domain.Update, error) {
	if updates, ok := c.fresh(); ok {
		c.recorder.RecordCacheHit()
		return updates, nil
	}
	return c.load(ctx, false)
}

// Refresh fetches the feed regardless of cache age and replaces cached updates on success
func (c *Cache) Refresh(ctx context.Context) ([]domain.Update, error) {
	return c.load(ctx, true)
}

// FetchedAt returns the time of the last successful refresh, zero if never refreshed
func (c *Cache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}

// load runs a refresh, callers arriving while one is in flight share its result
func (c *Cache) load(ctx context.Context, force bool) ([]domain.Update, error) {
	// shared fetch must not be canceled by the first caller going away
	sharedCtx := context.WithoutCancel(ctx)
	// forced refresh never joins a regular flight, that one may return without fetching
	key := "refresh"
	if force {
		key = "refresh-force"
	}
	res, err, shared := c.group.Do(key, func() (interface{}, error) {
		if !force {
			// another flight may have refreshed the cache since the caller checked it
			if updates, ok := c.fresh(); ok {
				return updates, nil
			}
		}
		return c.refresh(sharedCtx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Printf("[DEBUG] joined in-flight feed refresh")
	}
	return res.([]domain.Update), nil
}

// fresh returns cached updates if they are younger than TTL
func (c *Cache) fresh() ([]domain.Update, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fetchedAt.IsZero() || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.updates, true
}

func (c *Cache) refresh(ctx context.Context) ([]domain.Update, error) {
	st := c.now()
	log.Printf("[DEBUG] refreshing feed %s", c.url)

	entries, err := c.fetcher.Fetch(ctx, c.url)
	if err != nil {
		c.recorder.RecordRefresh(c.now().Sub(st), err)
		log.Printf("[WARN] feed refresh failed: %v", err)
		return nil, fmt.Errorf("refresh feed %s: %w", c.url, err)
	}

	now := c.now()
	updates := make([]domain.Update, 0, len(entries))
	dropped := 0
	for _, entry := range entries {
		upd, err := BuildUpdate(entry, now)
		if err != nil {
			log.Printf("[DEBUG] drop feed entry: %v", err)
			dropped++
			continue
		}
		updates = append(updates, upd)
	}

	sort.SliceStable(updates, func(i, j int) bool {
		return updates[i].Published.After(updates[j].Published)
	})

	c.mu.Lock()
	c.updates = updates
	c.fetchedAt = c.now()
	c.mu.Unlock()

	c.recorder.RecordRefresh(c.now().Sub(st), nil)
	if dropped > 0 {
		c.recorder.RecordDroppedEntries(dropped)
	}
	log.Printf("[INFO] feed refreshed, %d updates cached, %d entries dropped", len(updates), dropped)
	return updates, nil
}

type nopRecorder struct{}

func (nopRecorder) RecordRefresh(time.Duration, error) {}
func (nopRecorder) RecordCacheHit()                    {}
func (nopRecorder) RecordDroppedEntries(int)           {}
