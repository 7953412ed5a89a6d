package cache

import (
	"context"
	"time"
)

// CacheEntry stores one cached payload and its freshness metadata.
//
// Cached data is always derived and can be discarded and rebuilt from
// upstream reads.
type CacheEntry struct {
	CacheKey     string
	PayloadBytes []byte
	Stale        bool
	CheckedAt    time.Time
	RefreshedAt  time.Time
}

// Snapshot is the contract for persisting cache payloads across restarts.
//
// The store treats the snapshot as best-effort: persistence failures never
// block reads or invalidation.
type Snapshot interface {
	Close() error
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
	MarkPrefixStale(ctx context.Context, prefix string, checkedAt time.Time) error
}
