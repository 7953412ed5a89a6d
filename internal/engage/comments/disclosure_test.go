package comments

import (
	"context"
	"testing"
	"time"
)

func buildComments(n int) []Comment {
	out := make([]Comment, n)
	for i := range out {
		out[i] = Comment{ID: string(rune('a' + i)), CreatedAt: at(i)}
	}
	return out
}

func newTestDisclosure(ranked []Comment) (*Disclosure, *[]time.Duration) {
	var slept []time.Duration
	d := NewDisclosure(ranked)
	d.sleep = func(_ context.Context, duration time.Duration) {
		slept = append(slept, duration)
	}
	return d, &slept
}

func TestDisclosureStartsAtInitialWindow(t *testing.T) {
	t.Parallel()

	d, _ := newTestDisclosure(buildComments(12))
	if got := len(d.Visible()); got != DisclosureWindow {
		t.Fatalf("visible = %d, want %d", got, DisclosureWindow)
	}
	if !d.HasMore() {
		t.Fatal("HasMore = false, want true")
	}
}

func TestDisclosureClampsBelowWindow(t *testing.T) {
	t.Parallel()

	d, slept := newTestDisclosure(buildComments(3))
	if got := len(d.Visible()); got != 3 {
		t.Fatalf("visible = %d, want 3", got)
	}
	if d.HasMore() {
		t.Fatal("HasMore = true, want false")
	}
	if got := d.Reveal(context.Background()); got != 3 {
		t.Fatalf("reveal = %d, want 3", got)
	}
	if len(*slept) != 0 {
		t.Fatalf("slept %d times, want 0 at end of list", len(*slept))
	}
}

func TestRevealGrowsByWindowWithPacingDelay(t *testing.T) {
	t.Parallel()

	d, slept := newTestDisclosure(buildComments(12))

	if got := d.Reveal(context.Background()); got != 10 {
		t.Fatalf("reveal = %d, want 10", got)
	}
	if got := d.Reveal(context.Background()); got != 12 {
		t.Fatalf("reveal = %d, want 12", got)
	}
	if d.HasMore() {
		t.Fatal("HasMore = true, want false")
	}
	if len(*slept) != 2 || (*slept)[0] != DisclosureDelay {
		t.Fatalf("slept = %v, want two %v delays", *slept, DisclosureDelay)
	}
}

func TestRevealNeverExceedsTotal(t *testing.T) {
	t.Parallel()

	d, _ := newTestDisclosure(buildComments(7))
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if got := d.Reveal(ctx); got > 7 {
			t.Fatalf("reveal = %d, exceeds total 7", got)
		}
	}
	if got := len(d.Visible()); got != 7 {
		t.Fatalf("visible = %d, want 7", got)
	}
}

func TestResetCollapsesToInitialWindow(t *testing.T) {
	t.Parallel()

	d, _ := newTestDisclosure(buildComments(12))
	d.Reveal(context.Background())

	d.Reset(Rank(buildComments(12), OrderLatest))
	if got := len(d.Visible()); got != DisclosureWindow {
		t.Fatalf("visible after reset = %d, want %d", got, DisclosureWindow)
	}
	if got := d.Visible()[0].ID; got != "l" {
		t.Fatalf("first visible = %q, want latest comment", got)
	}
}
