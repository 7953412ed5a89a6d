package projects

import (
	"context"
	"errors"
	"testing"

	"github.com/opencivica/civica/internal/engage/comments"
	"github.com/opencivica/civica/internal/engage/feed"
	"github.com/opencivica/civica/internal/engage/reaction"
)

func TestLoadFeedDistributesIntoThreeColumns(t *testing.T) {
	t.Parallel()

	feedGW := &fakeFeedGateway{
		items: []feed.Item{
			{ID: "c", Title: "One"},
			{ID: "a", Title: "Two"},
			{ID: "b", Title: "Three"},
		},
		exhausted: true,
	}
	s := newTestService(testGateways(feedGW, nil, nil, nil))

	view, err := s.loadFeed(context.Background())
	if err != nil {
		t.Fatalf("loadFeed() error = %v", err)
	}
	if len(view.Columns) != feedColumnCount {
		t.Fatalf("columns = %d", len(view.Columns))
	}
	if !view.Exhausted {
		t.Fatal("view should be exhausted")
	}
	total := 0
	for _, column := range view.Columns {
		total += len(column)
	}
	if total != 3 {
		t.Fatalf("total cards = %d", total)
	}
	if view.Columns[0][0].Bucket != "portrait" {
		t.Fatalf("first card bucket = %q", view.Columns[0][0].Bucket)
	}
}

func TestLoadProjectMergesDetailAndAggregate(t *testing.T) {
	t.Parallel()

	projectGW := &fakeProjectGateway{
		detail: ProjectDetail{ID: "p1", Title: "Bike lanes", Status: "OPEN", CommentCount: 4},
		aggregate: reaction.Aggregate{
			LikeCount:    7,
			DislikeCount: 2,
			Viewer:       &reaction.ViewerReaction{ReactionID: "r1", Kind: reaction.KindLike},
		},
	}
	s := newTestService(testGateways(nil, projectGW, nil, nil))

	view, err := s.loadProject(context.Background(), "p1", "u1")
	if err != nil {
		t.Fatalf("loadProject() error = %v", err)
	}
	if view.LikeCount != 7 || view.DislikeCount != 2 {
		t.Fatalf("counts = %d/%d", view.LikeCount, view.DislikeCount)
	}
	if view.ViewerKind != "LIKE" {
		t.Fatalf("viewer kind = %q", view.ViewerKind)
	}
}

func TestLoadProjectRequiresID(t *testing.T) {
	t.Parallel()

	s := newTestService(testGateways(nil, nil, nil, nil))
	if _, err := s.loadProject(context.Background(), "   ", "u1"); err == nil {
		t.Fatal("expected error for blank project id")
	}
}

func TestToggleProjectReactionParsesKind(t *testing.T) {
	t.Parallel()

	reactionGW := &fakeReactionGateway{}
	s := newTestService(testGateways(nil, nil, reactionGW, nil))

	if err := s.toggleProjectReaction(context.Background(), "u1", "p1", "like"); err != nil {
		t.Fatalf("toggleProjectReaction() error = %v", err)
	}
	if err := s.toggleProjectReaction(context.Background(), "u1", "p1", "DISLIKE"); err != nil {
		t.Fatalf("toggleProjectReaction() error = %v", err)
	}
	if len(reactionGW.calls) != 2 {
		t.Fatalf("calls = %d", len(reactionGW.calls))
	}
	if reactionGW.calls[0].kind != reaction.KindLike {
		t.Fatalf("first kind = %q", reactionGW.calls[0].kind)
	}
	if reactionGW.calls[1].kind != reaction.KindDislike {
		t.Fatalf("second kind = %q", reactionGW.calls[1].kind)
	}
}

func TestToggleProjectReactionRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	reactionGW := &fakeReactionGateway{}
	s := newTestService(testGateways(nil, nil, reactionGW, nil))

	if err := s.toggleProjectReaction(context.Background(), "u1", "p1", "star"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if len(reactionGW.calls) != 0 {
		t.Fatalf("gateway called %d times for invalid kind", len(reactionGW.calls))
	}
}

func TestCommentThreadDefaultsToRelevantWindow(t *testing.T) {
	t.Parallel()

	commentGW := &fakeCommentGateway{thread: threadOf(12)}
	s := newTestService(testGateways(nil, nil, nil, commentGW))

	view, err := s.commentThread(context.Background(), "p1", "", 0, "u1", false)
	if err != nil {
		t.Fatalf("commentThread() error = %v", err)
	}
	if view.Order != string(comments.OrderRelevant) {
		t.Fatalf("order = %q", view.Order)
	}
	if len(view.Comments) != comments.DisclosureWindow {
		t.Fatalf("visible = %d", len(view.Comments))
	}
	if view.NextCount != comments.DisclosureWindow*2 {
		t.Fatalf("next count = %d", view.NextCount)
	}
	if !view.CanComment {
		t.Fatal("signed-in viewer should be able to comment")
	}
}

func TestCommentThreadGrowsToRequestedCount(t *testing.T) {
	t.Parallel()

	commentGW := &fakeCommentGateway{thread: threadOf(12)}
	s := newTestService(testGateways(nil, nil, nil, commentGW))

	view, err := s.commentThread(context.Background(), "p1", "top", 10, "u1", false)
	if err != nil {
		t.Fatalf("commentThread() error = %v", err)
	}
	if len(view.Comments) != 10 {
		t.Fatalf("visible = %d", len(view.Comments))
	}
	if view.NextCount != 15 {
		t.Fatalf("next count = %d", view.NextCount)
	}
}

func TestCommentThreadExhaustedHasNoSentinel(t *testing.T) {
	t.Parallel()

	commentGW := &fakeCommentGateway{thread: threadOf(4)}
	s := newTestService(testGateways(nil, nil, nil, commentGW))

	view, err := s.commentThread(context.Background(), "p1", "oldest", 0, "", false)
	if err != nil {
		t.Fatalf("commentThread() error = %v", err)
	}
	if len(view.Comments) != 4 {
		t.Fatalf("visible = %d", len(view.Comments))
	}
	if view.NextCount != 0 {
		t.Fatalf("next count = %d", view.NextCount)
	}
	if view.CanComment {
		t.Fatal("anonymous viewer should not get the comment form")
	}
}

func TestCommentThreadTopOrderRanksByLikes(t *testing.T) {
	t.Parallel()

	commentGW := &fakeCommentGateway{thread: threadOf(6)}
	s := newTestService(testGateways(nil, nil, nil, commentGW))

	view, err := s.commentThread(context.Background(), "p1", "top", 0, "u1", false)
	if err != nil {
		t.Fatalf("commentThread() error = %v", err)
	}
	for i := 1; i < len(view.Comments); i++ {
		if view.Comments[i-1].LikeCount < view.Comments[i].LikeCount {
			t.Fatalf("comments not ranked by likes: %d before %d", view.Comments[i-1].LikeCount, view.Comments[i].LikeCount)
		}
	}
}

func TestCommentThreadAdminCanDelete(t *testing.T) {
	t.Parallel()

	commentGW := &fakeCommentGateway{thread: threadOf(2)}
	s := newTestService(testGateways(nil, nil, nil, commentGW))

	view, err := s.commentThread(context.Background(), "p1", "oldest", 0, "admin", true)
	if err != nil {
		t.Fatalf("commentThread() error = %v", err)
	}
	for _, comment := range view.Comments {
		if !comment.CanDelete {
			t.Fatal("admin should see delete controls")
		}
	}
}

func TestCreateCommentRequiresContent(t *testing.T) {
	t.Parallel()

	commentGW := &fakeCommentGateway{}
	s := newTestService(testGateways(nil, nil, nil, commentGW))

	if err := s.createComment(context.Background(), "p1", "   ", ""); err == nil {
		t.Fatal("expected error for blank content")
	}
	if len(commentGW.created) != 0 {
		t.Fatalf("gateway called %d times for blank content", len(commentGW.created))
	}
	if err := s.createComment(context.Background(), "p1", "  hello  ", ""); err != nil {
		t.Fatalf("createComment() error = %v", err)
	}
	if commentGW.created[0].Content != "hello" {
		t.Fatalf("created content = %q", commentGW.created[0].Content)
	}
}

func TestCommentLikeStateFindsReplies(t *testing.T) {
	t.Parallel()

	thread := threadOf(1)
	thread[0].Replies = []comments.Comment{{ID: "r1", LikeCount: 3, ViewerHasLiked: true}}
	commentGW := &fakeCommentGateway{thread: thread}
	s := newTestService(testGateways(nil, nil, nil, commentGW))

	likeCount, liked, err := s.commentLikeState(context.Background(), "p1", "r1")
	if err != nil {
		t.Fatalf("commentLikeState() error = %v", err)
	}
	if likeCount != 3 || !liked {
		t.Fatalf("state = %d/%v", likeCount, liked)
	}
	if _, _, err := s.commentLikeState(context.Background(), "p1", "missing"); err == nil {
		t.Fatal("expected error for unknown comment")
	}
}

func TestFeedErrorPropagates(t *testing.T) {
	t.Parallel()

	feedGW := &fakeFeedGateway{err: errors.New("upstream down")}
	s := newTestService(testGateways(feedGW, nil, nil, nil))

	if _, err := s.loadFeed(context.Background()); err == nil {
		t.Fatal("expected feed error")
	}
}
