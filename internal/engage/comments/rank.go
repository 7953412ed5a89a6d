// Package comments ranks a fully loaded comment thread and schedules its
// progressive disclosure to the UI.
package comments

import (
	"sort"
	"strings"
	"time"
)

// Comment is one thread entry. Content is an opaque rich-text blob; this
// package never inspects it. Replies are populated for top-level comments
// only, the model carries exactly one nesting level.
type Comment struct {
	ID             string
	Author         string
	Content        string
	CreatedAt      time.Time
	LikeCount      uint
	ViewerHasLiked bool
	ParentID       string
	Replies        []Comment
}

// Order selects a comment ranking.
type Order string

const (
	OrderOldest   Order = "oldest"
	OrderLatest   Order = "latest"
	OrderTop      Order = "top"
	OrderRelevant Order = "relevant"
)

// DefaultOrder is applied when the viewer has not chosen one.
const DefaultOrder = OrderRelevant

// ParseOrder normalizes a raw order value, falling back to the default for
// anything outside the allowlist.
func ParseOrder(raw string) Order {
	switch Order(strings.ToLower(strings.TrimSpace(raw))) {
	case OrderOldest:
		return OrderOldest
	case OrderLatest:
		return OrderLatest
	case OrderTop:
		return OrderTop
	case OrderRelevant:
		return OrderRelevant
	default:
		return DefaultOrder
	}
}

// Rank returns a new slice sorted by the given order. Ties keep the input's
// relative order. Replies are never reordered, they render beneath their
// parent in creation order.
func Rank(comments []Comment, order Order) []Comment {
	ranked := append([]Comment(nil), comments...)
	switch order {
	case OrderOldest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		})
	case OrderLatest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[j].CreatedAt.Before(ranked[i].CreatedAt)
		})
	case OrderTop:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].LikeCount > ranked[j].LikeCount
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return relevanceScore(ranked[i]) > relevanceScore(ranked[j])
		})
	}
	return ranked
}

// relevanceScore keeps like count dominant and folds creation time in as a
// fractional additive nudge, so near-equal like counts rank newer comments
// slightly higher. It is not a decay function.
func relevanceScore(comment Comment) float64 {
	return float64(comment.LikeCount) + float64(comment.CreatedAt.Unix())/1_000_000_000
}
