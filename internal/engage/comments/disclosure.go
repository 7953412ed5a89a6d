package comments

import (
	"context"
	"sync"
	"time"
)

const (
	// DisclosureWindow is the initial and incremental reveal size.
	DisclosureWindow = 5
	// DisclosureDelay paces each reveal so a large set never flashes in at
	// once. It is a presentation delay, the data is already loaded.
	DisclosureDelay = 400 * time.Millisecond
)

// Disclosure reveals an already-ranked, fully loaded comment list to the UI
// in fixed-size increments gated by sentinel visibility.
type Disclosure struct {
	sleep func(ctx context.Context, d time.Duration)

	mu      sync.Mutex
	ranked  []Comment
	visible int
}

// NewDisclosure builds a scheduler over a ranked list, starting at the
// initial window.
func NewDisclosure(ranked []Comment) *Disclosure {
	return NewDisclosurePaced(ranked, nil)
}

// NewDisclosurePaced builds a scheduler with a custom pacing sleep. A nil
// sleep uses the real timer.
func NewDisclosurePaced(ranked []Comment, sleep func(ctx context.Context, d time.Duration)) *Disclosure {
	if sleep == nil {
		sleep = sleepFor
	}
	d := &Disclosure{sleep: sleep}
	d.Reset(ranked)
	return d
}

// Reset replaces the ranked list and collapses the window back to the
// initial size. Called on re-sort.
func (d *Disclosure) Reset(ranked []Comment) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ranked = append([]Comment(nil), ranked...)
	d.visible = DisclosureWindow
	if d.visible > len(d.ranked) {
		d.visible = len(d.ranked)
	}
}

// Visible returns the currently disclosed prefix.
func (d *Disclosure) Visible() []Comment {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Comment(nil), d.ranked[:d.visible]...)
}

// HasMore reports whether any comments remain undisclosed.
func (d *Disclosure) HasMore() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible < len(d.ranked)
}

// Reveal grows the window by one increment, clamped to the full set, after
// the pacing delay. It returns the new visible count. A reveal at the end of
// the list returns immediately without sleeping.
func (d *Disclosure) Reveal(ctx context.Context) int {
	d.mu.Lock()
	total := len(d.ranked)
	visible := d.visible
	d.mu.Unlock()

	if visible >= total {
		return visible
	}

	d.sleep(ctx, DisclosureDelay)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible += DisclosureWindow
	if d.visible > len(d.ranked) {
		d.visible = len(d.ranked)
	}
	return d.visible
}

func sleepFor(ctx context.Context, duration time.Duration) {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
