package feed

import (
	"context"
	"fmt"
	"sync"
)

// Page is one fetched slice of the feed stream.
type Page struct {
	Items      []Item
	NextCursor string
}

// ListSource fetches one feed page. An empty cursor requests the first page;
// an empty NextCursor in the result means the stream is exhausted.
type ListSource interface {
	ListFeedPage(ctx context.Context, cursor string) (Page, error)
}

// Pager drives forward-only "load more" over the feed stream. It tracks
// materialized pages and exhaustion, and separately supports a wholesale
// reload from page one after fan-out invalidation.
type Pager struct {
	source ListSource

	mu         sync.Mutex
	pages      []Page
	nextCursor string
	loaded     bool
	inflight   bool
}

// NewPager builds a pager over the given source. No fetch happens until the
// first LoadNext.
func NewPager(source ListSource) *Pager {
	return &Pager{source: source}
}

// Items returns every item across materialized pages, in fetch order.
func (p *Pager) Items() []Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	var items []Item
	for _, page := range p.pages {
		items = append(items, page.Items...)
	}
	return items
}

// Exhausted reports whether the stream has no further pages. It is false
// until the first page has loaded.
func (p *Pager) Exhausted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded && p.nextCursor == ""
}

// LoadNext fetches and appends the next page. It is a no-op when the stream
// is exhausted or a fetch is already in flight. On failure the pager is
// unchanged; the caller retries with another LoadNext.
func (p *Pager) LoadNext(ctx context.Context) error {
	if p == nil || p.source == nil {
		return fmt.Errorf("feed pager is not configured")
	}

	p.mu.Lock()
	if p.inflight || (p.loaded && p.nextCursor == "") {
		p.mu.Unlock()
		return nil
	}
	p.inflight = true
	cursor := p.nextCursor
	p.mu.Unlock()

	page, err := p.source.ListFeedPage(ctx, cursor)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inflight = false
	if err != nil {
		return fmt.Errorf("load feed page: %w", err)
	}
	p.pages = append(p.pages, page)
	p.nextCursor = page.NextCursor
	p.loaded = true
	return nil
}

// ReloadAll refetches every materialized page from page one and swaps the
// result in wholesale. It walks the same number of pages previously loaded
// (at least one), following fresh cursors, so counters in the list view are
// never stale after the user returns to it. On failure the existing pages
// stay untouched.
func (p *Pager) ReloadAll(ctx context.Context) error {
	if p == nil || p.source == nil {
		return fmt.Errorf("feed pager is not configured")
	}

	p.mu.Lock()
	if p.inflight {
		p.mu.Unlock()
		return nil
	}
	p.inflight = true
	pageCount := len(p.pages)
	p.mu.Unlock()

	if pageCount < 1 {
		pageCount = 1
	}

	fresh := make([]Page, 0, pageCount)
	cursor := ""
	for i := 0; i < pageCount; i++ {
		page, err := p.source.ListFeedPage(ctx, cursor)
		if err != nil {
			p.mu.Lock()
			p.inflight = false
			p.mu.Unlock()
			return fmt.Errorf("reload feed page %d: %w", i+1, err)
		}
		fresh = append(fresh, page)
		cursor = page.NextCursor
		if cursor == "" {
			break
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inflight = false
	p.pages = fresh
	p.nextCursor = cursor
	p.loaded = true
	return nil
}
