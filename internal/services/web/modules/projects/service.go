package projects

import (
	"context"
	"strings"
	"time"

	"github.com/opencivica/civica/internal/engage/comments"
	"github.com/opencivica/civica/internal/engage/feed"
	"github.com/opencivica/civica/internal/engage/reaction"
	apperrors "github.com/opencivica/civica/internal/services/web/platform/errors"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

const feedColumnCount = 3

type service struct {
	gateways Gateways
	sleep    func(ctx context.Context, d time.Duration)
}

func newService(gateways Gateways) service {
	return service{gateways: gateways}
}

type feedView struct {
	Columns   [][]webtemplates.FeedCard
	Exhausted bool
}

func (s service) loadFeed(ctx context.Context) (feedView, error) {
	if s.gateways.Feed == nil {
		return feedView{}, apperrors.E(apperrors.KindUnavailable, "project feed is unavailable")
	}
	items, exhausted, err := s.gateways.Feed.FeedItems(ctx)
	if err != nil {
		return feedView{}, err
	}
	return buildFeedView(items, exhausted), nil
}

func (s service) loadMoreFeed(ctx context.Context) (feedView, error) {
	if s.gateways.Feed == nil {
		return feedView{}, apperrors.E(apperrors.KindUnavailable, "project feed is unavailable")
	}
	items, exhausted, err := s.gateways.Feed.LoadMoreFeed(ctx)
	if err != nil {
		return feedView{}, err
	}
	return buildFeedView(items, exhausted), nil
}

func (s service) reloadFeed(ctx context.Context) (feedView, error) {
	if s.gateways.Feed == nil {
		return feedView{}, apperrors.E(apperrors.KindUnavailable, "project feed is unavailable")
	}
	items, exhausted, err := s.gateways.Feed.ReloadFeed(ctx)
	if err != nil {
		return feedView{}, err
	}
	return buildFeedView(items, exhausted), nil
}

func buildFeedView(items []feed.Item, exhausted bool) feedView {
	columns := feed.Distribute(items, feedColumnCount)
	view := feedView{
		Columns:   make([][]webtemplates.FeedCard, len(columns)),
		Exhausted: exhausted,
	}
	for i, column := range columns {
		cards := make([]webtemplates.FeedCard, 0, len(column))
		for _, item := range column {
			cards = append(cards, webtemplates.FeedCard{
				ID:           item.ID,
				Title:        item.Title,
				MediaURL:     item.MediaURL,
				Bucket:       string(feed.BucketForID(item.ID)),
				LikeCount:    item.LikeCount,
				DislikeCount: item.DislikeCount,
				CommentCount: item.CommentCount,
			})
		}
		view.Columns[i] = cards
	}
	return view
}

func (s service) loadProject(ctx context.Context, projectID, viewerID string) (webtemplates.ProjectView, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return webtemplates.ProjectView{}, apperrors.E(apperrors.KindInvalidInput, "project id is required")
	}
	if s.gateways.Projects == nil {
		return webtemplates.ProjectView{}, apperrors.E(apperrors.KindUnavailable, "projects are unavailable")
	}
	detail, err := s.gateways.Projects.Project(ctx, projectID)
	if err != nil {
		return webtemplates.ProjectView{}, err
	}
	aggregate, err := s.gateways.Projects.ProjectAggregate(ctx, projectID, viewerID)
	if err != nil {
		return webtemplates.ProjectView{}, err
	}
	view := webtemplates.ProjectView{
		ID:           detail.ID,
		Title:        detail.Title,
		Body:         detail.Body,
		MediaURL:     detail.MediaURL,
		Status:       detail.Status,
		LikeCount:    aggregate.LikeCount,
		DislikeCount: aggregate.DislikeCount,
		CommentCount: detail.CommentCount,
	}
	if aggregate.Viewer != nil {
		view.ViewerKind = string(aggregate.Viewer.Kind)
	}
	return view, nil
}

func (s service) toggleProjectReaction(ctx context.Context, viewerID, projectID, rawKind string) error {
	if s.gateways.Reactions == nil {
		return apperrors.E(apperrors.KindUnavailable, "reactions are unavailable")
	}
	kind, err := parseReactionKind(rawKind)
	if err != nil {
		return err
	}
	return s.gateways.Reactions.ToggleProjectReaction(ctx, viewerID, projectID, kind)
}

func (s service) toggleCommentLike(ctx context.Context, viewerID, projectID, commentID string) error {
	if s.gateways.Reactions == nil {
		return apperrors.E(apperrors.KindUnavailable, "reactions are unavailable")
	}
	return s.gateways.Reactions.ToggleCommentLike(ctx, viewerID, projectID, commentID)
}

func parseReactionKind(raw string) (reaction.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "like":
		return reaction.KindLike, nil
	case "dislike":
		return reaction.KindDislike, nil
	default:
		return "", apperrors.E(apperrors.KindInvalidInput, "unknown reaction kind")
	}
}

type threadView struct {
	Order      string
	Comments   []webtemplates.CommentView
	NextCount  int
	CanComment bool
}

// commentThread ranks the full thread and discloses the requested window.
// Requests beyond the initial window pace each increment before returning.
func (s service) commentThread(ctx context.Context, projectID, rawOrder string, count int, viewerID string, viewerIsAdmin bool) (threadView, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return threadView{}, apperrors.E(apperrors.KindInvalidInput, "project id is required")
	}
	if s.gateways.Comments == nil {
		return threadView{}, apperrors.E(apperrors.KindUnavailable, "comments are unavailable")
	}
	thread, err := s.gateways.Comments.Comments(ctx, projectID)
	if err != nil {
		return threadView{}, err
	}
	order := comments.ParseOrder(rawOrder)
	ranked := comments.Rank(thread, order)

	disclosure := comments.NewDisclosurePaced(ranked, s.sleep)
	visible := disclosure.Visible()
	for len(visible) < count && disclosure.HasMore() {
		disclosure.Reveal(ctx)
		visible = disclosure.Visible()
	}

	nextCount := 0
	if disclosure.HasMore() {
		nextCount = len(visible) + comments.DisclosureWindow
	}

	views := make([]webtemplates.CommentView, 0, len(visible))
	for _, comment := range visible {
		views = append(views, commentView(comment, viewerIsAdmin))
	}
	return threadView{
		Order:      string(order),
		Comments:   views,
		NextCount:  nextCount,
		CanComment: strings.TrimSpace(viewerID) != "",
	}, nil
}

func commentView(comment comments.Comment, viewerIsAdmin bool) webtemplates.CommentView {
	view := webtemplates.CommentView{
		ID:             comment.ID,
		Author:         comment.Author,
		Content:        comment.Content,
		CreatedAt:      comment.CreatedAt,
		LikeCount:      comment.LikeCount,
		ViewerHasLiked: comment.ViewerHasLiked,
		CanDelete:      viewerIsAdmin,
	}
	for _, reply := range comment.Replies {
		view.Replies = append(view.Replies, commentView(reply, viewerIsAdmin))
	}
	return view
}

// commentLikeState finds one comment's like state after a toggle settled.
func (s service) commentLikeState(ctx context.Context, projectID, commentID string) (likeCount uint, liked bool, err error) {
	thread, err := s.gateways.Comments.Comments(ctx, projectID)
	if err != nil {
		return 0, false, err
	}
	for _, comment := range thread {
		if comment.ID == commentID {
			return comment.LikeCount, comment.ViewerHasLiked, nil
		}
		for _, reply := range comment.Replies {
			if reply.ID == commentID {
				return reply.LikeCount, reply.ViewerHasLiked, nil
			}
		}
	}
	return 0, false, apperrors.E(apperrors.KindNotFound, "comment not found")
}

func (s service) createComment(ctx context.Context, projectID, content, parentID string) error {
	if s.gateways.Comments == nil {
		return apperrors.E(apperrors.KindUnavailable, "comments are unavailable")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return apperrors.E(apperrors.KindInvalidInput, "comment content is required")
	}
	return s.gateways.Comments.CreateComment(ctx, projectID, content, strings.TrimSpace(parentID))
}

func (s service) deleteComment(ctx context.Context, projectID, commentID string) error {
	if s.gateways.Comments == nil {
		return apperrors.E(apperrors.KindUnavailable, "comments are unavailable")
	}
	commentID = strings.TrimSpace(commentID)
	if commentID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "comment id is required")
	}
	return s.gateways.Comments.DeleteComment(ctx, projectID, commentID)
}
