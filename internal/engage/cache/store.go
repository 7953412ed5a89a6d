// Package cache provides the keyed store of server-derived values that the
// engagement layer reads through.
//
// Every entry is owned by the store: mutations never write values directly,
// they only request invalidation, and fresh values always arrive from a
// round trip through the entry's registered fetcher. Consumers subscribe to
// entries and are notified when an entry turns stale or is refreshed.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// FetchFunc loads the current upstream payload for one cache key.
type FetchFunc func(ctx context.Context) ([]byte, error)

// EventKind classifies subscriber notifications.
type EventKind string

const (
	// EventStale signals that the entry was marked stale by invalidation.
	EventStale EventKind = "stale"
	// EventRefreshed signals that a fetch completed and the value changed.
	EventRefreshed EventKind = "refreshed"
)

// Event describes one entry state change delivered to subscribers.
type Event struct {
	Key  string
	Kind EventKind
}

// Store is an injectable keyed cache of server-derived payloads.
//
// A stale entry with at least one subscriber is refetched eagerly when
// invalidated; a stale entry with no subscribers is refetched lazily on the
// next read or subscription.
type Store struct {
	mu       sync.Mutex
	entries  map[string]*entry
	snapshot Snapshot
	clock    func() time.Time
	subSeq   int
}

type entry struct {
	fetch       FetchFunc
	payload     []byte
	ok          bool
	stale       bool
	fetchedAt   time.Time
	inflight    bool
	subscribers map[int]func(Event)
}

// NewStore creates an empty cache store. The snapshot is optional; when
// present, registered entries warm-start from persisted payloads and every
// payload write is mirrored through it.
func NewStore(snapshot Snapshot) *Store {
	return &Store{
		entries:  make(map[string]*entry),
		snapshot: snapshot,
		clock:    time.Now,
	}
}

// Register binds a fetcher to a key. Registering an already-known key
// replaces its fetcher but keeps the current value and subscribers.
func (s *Store) Register(ctx context.Context, key string, fetch FetchFunc) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("cache key is required")
	}
	if fetch == nil {
		return fmt.Errorf("fetcher is required for key %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, exists := s.entries[key]
	if !exists {
		e = &entry{subscribers: make(map[int]func(Event))}
		s.entries[key] = e
	}
	e.fetch = fetch
	if !exists && s.snapshot != nil {
		if persisted, ok, err := s.snapshot.GetCacheEntry(ctx, key); err == nil && ok {
			e.payload = persisted.PayloadBytes
			e.ok = len(persisted.PayloadBytes) > 0
			e.stale = persisted.Stale
			e.fetchedAt = persisted.RefreshedAt
		}
	}
	return nil
}

// Peek returns the current payload without triggering a fetch. The second
// result reports whether a value is present at all; a stale value is still
// returned so callers can render it while a refresh is pending.
func (s *Store) Peek(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[strings.TrimSpace(key)]
	if !ok || !e.ok {
		return nil, false
	}
	return append([]byte(nil), e.payload...), true
}

// Read returns a fresh payload for the key, fetching when the entry is
// absent or stale. Concurrent reads of the same stale entry share one
// in-flight fetch.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("cache key %q is not registered", key)
	}
	if e.ok && !e.stale {
		payload := append([]byte(nil), e.payload...)
		s.mu.Unlock()
		return payload, nil
	}
	s.mu.Unlock()

	if err := s.refresh(ctx, key); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok = s.entries[key]
	if !ok || !e.ok {
		return nil, fmt.Errorf("cache key %q has no value after refresh", key)
	}
	return append([]byte(nil), e.payload...), nil
}

// Subscribe registers a consumer for entry state changes and returns a
// cancel function that drops the subscription. Subscribing to a stale or
// absent entry triggers a background refresh so the consumer converges on a
// fresh value without polling.
func (s *Store) Subscribe(key string, fn func(Event)) (cancel func(), err error) {
	key = strings.TrimSpace(key)
	if fn == nil {
		return nil, fmt.Errorf("subscriber callback is required")
	}

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("cache key %q is not registered", key)
	}
	s.subSeq++
	id := s.subSeq
	e.subscribers[id] = fn
	needsRefresh := !e.ok || e.stale
	s.mu.Unlock()

	if needsRefresh {
		go func() { _ = s.refresh(context.Background(), key) }()
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if e, ok := s.entries[key]; ok {
			delete(e.subscribers, id)
		}
	}, nil
}

// Invalidate marks every entry whose key starts with one of the prefixes as
// stale. Entries with active subscribers are refetched eagerly in the
// background; unsubscribed entries wait for the next read.
func (s *Store) Invalidate(ctx context.Context, prefixes ...string) {
	type notification struct {
		fn    func(Event)
		event Event
	}
	var eager []string
	var notify []notification

	now := s.now()
	s.mu.Lock()
	for key, e := range s.entries {
		if !matchesAnyPrefix(key, prefixes) || e.stale {
			continue
		}
		e.stale = true
		event := Event{Key: key, Kind: EventStale}
		for _, fn := range e.subscribers {
			notify = append(notify, notification{fn: fn, event: event})
		}
		if len(e.subscribers) > 0 {
			eager = append(eager, key)
		}
	}
	s.mu.Unlock()

	if s.snapshot != nil {
		for _, prefix := range prefixes {
			prefix = strings.TrimSpace(prefix)
			if prefix == "" {
				continue
			}
			_ = s.snapshot.MarkPrefixStale(ctx, prefix, now)
		}
	}
	for _, n := range notify {
		n.fn(n.event)
	}
	for _, key := range eager {
		key := key
		go func() { _ = s.refresh(context.Background(), key) }()
	}
}

// refresh performs one guarded round trip through the entry fetcher. A
// failed fetch leaves the entry exactly as it was.
func (s *Store) refresh(ctx context.Context, key string) error {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("cache key %q is not registered", key)
	}
	if e.inflight {
		s.mu.Unlock()
		return s.waitSettled(ctx, key)
	}
	e.inflight = true
	fetch := e.fetch
	s.mu.Unlock()

	payload, err := fetch(ctx)

	s.mu.Lock()
	e.inflight = false
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("refresh cache key %q: %w", key, err)
	}
	now := s.now()
	e.payload = payload
	e.ok = true
	e.stale = false
	e.fetchedAt = now
	var notify []func(Event)
	for _, fn := range e.subscribers {
		notify = append(notify, fn)
	}
	s.mu.Unlock()

	if s.snapshot != nil {
		_ = s.snapshot.PutCacheEntry(ctx, CacheEntry{
			CacheKey:     key,
			PayloadBytes: payload,
			Stale:        false,
			RefreshedAt:  now,
			CheckedAt:    now,
		})
	}
	event := Event{Key: key, Kind: EventRefreshed}
	for _, fn := range notify {
		fn(event)
	}
	return nil
}

// waitSettled polls until a concurrent in-flight fetch for key settles.
func (s *Store) waitSettled(ctx context.Context, key string) error {
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.mu.Lock()
			e, ok := s.entries[key]
			settled := !ok || !e.inflight
			s.mu.Unlock()
			if settled {
				return nil
			}
		}
	}
}

func (s *Store) now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

func matchesAnyPrefix(key string, prefixes []string) bool {
	for _, prefix := range prefixes {
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
