package projects

import (
	"context"

	"github.com/opencivica/civica/internal/engage/comments"
	"github.com/opencivica/civica/internal/engage/feed"
	"github.com/opencivica/civica/internal/engage/reaction"
)

// ProjectDetail carries the project fields this module renders.
type ProjectDetail struct {
	ID           string
	Title        string
	Body         string
	MediaURL     string
	Status       string
	CommentCount uint
}

// FeedGateway walks the cursor-paginated project stream. Items accumulate
// across calls; Reload replaces the accumulated pages wholesale.
type FeedGateway interface {
	FeedItems(ctx context.Context) (items []feed.Item, exhausted bool, err error)
	LoadMoreFeed(ctx context.Context) (items []feed.Item, exhausted bool, err error)
	ReloadFeed(ctx context.Context) (items []feed.Item, exhausted bool, err error)
}

// ProjectGateway loads project detail and reaction state.
type ProjectGateway interface {
	Project(ctx context.Context, projectID string) (ProjectDetail, error)
	ProjectAggregate(ctx context.Context, projectID, viewerID string) (reaction.Aggregate, error)
}

// ReactionGateway applies vote gestures through the toggle engine.
type ReactionGateway interface {
	ToggleProjectReaction(ctx context.Context, viewerID, projectID string, kind reaction.Kind) error
	ToggleCommentLike(ctx context.Context, viewerID, projectID, commentID string) error
}

// CommentGateway reads and mutates a project's comment thread. Comments
// returns the full thread, top-level entries with one reply level.
type CommentGateway interface {
	Comments(ctx context.Context, projectID string) ([]comments.Comment, error)
	CreateComment(ctx context.Context, projectID, content, parentID string) error
	DeleteComment(ctx context.Context, projectID, commentID string) error
}

// Gateways groups the narrow interfaces the module depends on.
type Gateways struct {
	Feed      FeedGateway
	Projects  ProjectGateway
	Reactions ReactionGateway
	Comments  CommentGateway
}
