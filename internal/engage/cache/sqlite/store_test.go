package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/opencivica/civica/internal/engage/cache"
	_ "modernc.org/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "civica-cache.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	assertTableExists(t, sqlDB, "cache_entries")
}

func TestCacheEntryRoundTrip(t *testing.T) {
	store := openTestStore(t)

	ctx := context.Background()
	refreshedAt := time.Now().UTC().Truncate(time.Millisecond)
	if err := store.PutCacheEntry(ctx, cache.CacheEntry{
		CacheKey:     "project_detail:id:p1",
		PayloadBytes: []byte(`{"id":"p1"}`),
		RefreshedAt:  refreshedAt,
		CheckedAt:    refreshedAt,
	}); err != nil {
		t.Fatalf("put cache entry: %v", err)
	}

	entry, found, err := store.GetCacheEntry(ctx, "project_detail:id:p1")
	if err != nil {
		t.Fatalf("get cache entry: %v", err)
	}
	if !found {
		t.Fatal("expected cache entry row")
	}
	if string(entry.PayloadBytes) != `{"id":"p1"}` {
		t.Fatalf("payload = %q, want %q", entry.PayloadBytes, `{"id":"p1"}`)
	}
	if entry.Stale {
		t.Fatalf("stale = true, want false")
	}
	if !entry.RefreshedAt.Equal(refreshedAt) {
		t.Fatalf("refreshed at = %v, want %v", entry.RefreshedAt, refreshedAt)
	}
}

func TestGetCacheEntryMissingKey(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.GetCacheEntry(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get cache entry: %v", err)
	}
	if found {
		t.Fatal("expected no cache entry row")
	}
}

func TestPutCacheEntryRequiresPayload(t *testing.T) {
	store := openTestStore(t)

	err := store.PutCacheEntry(context.Background(), cache.CacheEntry{CacheKey: "k"})
	if err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDeleteCacheEntry(t *testing.T) {
	store := openTestStore(t)

	ctx := context.Background()
	if err := store.PutCacheEntry(ctx, cache.CacheEntry{
		CacheKey:     "k",
		PayloadBytes: []byte("v"),
	}); err != nil {
		t.Fatalf("put cache entry: %v", err)
	}
	if err := store.DeleteCacheEntry(ctx, "k"); err != nil {
		t.Fatalf("delete cache entry: %v", err)
	}
	_, found, err := store.GetCacheEntry(ctx, "k")
	if err != nil {
		t.Fatalf("get cache entry: %v", err)
	}
	if found {
		t.Fatal("expected entry to be deleted")
	}
}

func TestMarkPrefixStaleOnlyTouchesPrefix(t *testing.T) {
	store := openTestStore(t)

	ctx := context.Background()
	for _, key := range []string{"feed_page:cursor:", "feed_page:cursor:abc", "project_detail:id:p1"} {
		if err := store.PutCacheEntry(ctx, cache.CacheEntry{
			CacheKey:     key,
			PayloadBytes: []byte("v"),
		}); err != nil {
			t.Fatalf("put cache entry %q: %v", key, err)
		}
	}

	if err := store.MarkPrefixStale(ctx, "feed_page:", time.Now().UTC()); err != nil {
		t.Fatalf("mark prefix stale: %v", err)
	}

	for _, key := range []string{"feed_page:cursor:", "feed_page:cursor:abc"} {
		entry, found, err := store.GetCacheEntry(ctx, key)
		if err != nil || !found {
			t.Fatalf("get cache entry %q: found=%t err=%v", key, found, err)
		}
		if !entry.Stale {
			t.Fatalf("entry %q stale = false, want true", key)
		}
	}
	entry, found, err := store.GetCacheEntry(ctx, "project_detail:id:p1")
	if err != nil || !found {
		t.Fatalf("get cache entry: found=%t err=%v", found, err)
	}
	if entry.Stale {
		t.Fatalf("unrelated entry stale = true, want false")
	}
}

func TestMarkPrefixStaleEscapesLikeWildcards(t *testing.T) {
	store := openTestStore(t)

	ctx := context.Background()
	if err := store.PutCacheEntry(ctx, cache.CacheEntry{
		CacheKey:     "feedXpage:cursor:abc",
		PayloadBytes: []byte("v"),
	}); err != nil {
		t.Fatalf("put cache entry: %v", err)
	}

	if err := store.MarkPrefixStale(ctx, "feed_page:", time.Now().UTC()); err != nil {
		t.Fatalf("mark prefix stale: %v", err)
	}

	entry, found, err := store.GetCacheEntry(ctx, "feedXpage:cursor:abc")
	if err != nil || !found {
		t.Fatalf("get cache entry: found=%t err=%v", found, err)
	}
	if entry.Stale {
		t.Fatalf("wildcard-adjacent entry stale = true, want false")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "civica-cache.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}

func assertTableExists(t *testing.T, sqlDB *sql.DB, table string) {
	t.Helper()
	var name string
	row := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
	if err := row.Scan(&name); err != nil {
		t.Fatalf("table %q missing: %v", table, err)
	}
}
