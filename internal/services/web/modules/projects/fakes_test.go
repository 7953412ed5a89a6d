package projects

import (
	"context"
	"net/http"
	"time"

	"github.com/opencivica/civica/internal/engage/comments"
	"github.com/opencivica/civica/internal/engage/feed"
	"github.com/opencivica/civica/internal/engage/reaction"
	module "github.com/opencivica/civica/internal/services/web/module"
)

type fakeFeedGateway struct {
	items     []feed.Item
	moreItems []feed.Item
	exhausted bool
	err       error

	moreCalls   int
	reloadCalls int
}

func (f *fakeFeedGateway) FeedItems(context.Context) ([]feed.Item, bool, error) {
	return f.items, f.exhausted, f.err
}

func (f *fakeFeedGateway) LoadMoreFeed(context.Context) ([]feed.Item, bool, error) {
	f.moreCalls++
	return append(append([]feed.Item(nil), f.items...), f.moreItems...), f.exhausted, f.err
}

func (f *fakeFeedGateway) ReloadFeed(context.Context) ([]feed.Item, bool, error) {
	f.reloadCalls++
	return f.items, f.exhausted, f.err
}

type fakeProjectGateway struct {
	detail    ProjectDetail
	aggregate reaction.Aggregate
	err       error
}

func (f *fakeProjectGateway) Project(_ context.Context, projectID string) (ProjectDetail, error) {
	if f.err != nil {
		return ProjectDetail{}, f.err
	}
	detail := f.detail
	if detail.ID == "" {
		detail.ID = projectID
	}
	return detail, nil
}

func (f *fakeProjectGateway) ProjectAggregate(context.Context, string, string) (reaction.Aggregate, error) {
	if f.err != nil {
		return reaction.Aggregate{}, f.err
	}
	return f.aggregate, nil
}

type toggleCall struct {
	viewerID  string
	projectID string
	commentID string
	kind      reaction.Kind
}

type fakeReactionGateway struct {
	err   error
	calls []toggleCall
}

func (f *fakeReactionGateway) ToggleProjectReaction(_ context.Context, viewerID, projectID string, kind reaction.Kind) error {
	f.calls = append(f.calls, toggleCall{viewerID: viewerID, projectID: projectID, kind: kind})
	return f.err
}

func (f *fakeReactionGateway) ToggleCommentLike(_ context.Context, viewerID, projectID, commentID string) error {
	f.calls = append(f.calls, toggleCall{viewerID: viewerID, projectID: projectID, commentID: commentID})
	return f.err
}

type fakeCommentGateway struct {
	thread []comments.Comment
	err    error

	created []comments.Comment
	deleted []string
}

func (f *fakeCommentGateway) Comments(context.Context, string) ([]comments.Comment, error) {
	return f.thread, f.err
}

func (f *fakeCommentGateway) CreateComment(_ context.Context, _ string, content, parentID string) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, comments.Comment{Content: content, ParentID: parentID})
	return nil
}

func (f *fakeCommentGateway) DeleteComment(_ context.Context, _ string, commentID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, commentID)
	return nil
}

func testGateways(feedGW *fakeFeedGateway, projectGW *fakeProjectGateway, reactionGW *fakeReactionGateway, commentGW *fakeCommentGateway) Gateways {
	if feedGW == nil {
		feedGW = &fakeFeedGateway{}
	}
	if projectGW == nil {
		projectGW = &fakeProjectGateway{}
	}
	if reactionGW == nil {
		reactionGW = &fakeReactionGateway{}
	}
	if commentGW == nil {
		commentGW = &fakeCommentGateway{}
	}
	return Gateways{Feed: feedGW, Projects: projectGW, Reactions: reactionGW, Comments: commentGW}
}

func newTestService(gateways Gateways) service {
	s := newService(gateways)
	s.sleep = func(context.Context, time.Duration) {}
	return s
}

func signedInResolvers(viewerID string, isAdmin bool) module.Resolvers {
	return module.Resolvers{
		Viewer: func(*http.Request) module.Viewer {
			return module.Viewer{DisplayName: "Viewer " + viewerID, IsAdmin: isAdmin}
		},
		SignedIn: func(*http.Request) bool { return viewerID != "" },
		ViewerID: func(*http.Request) string { return viewerID },
		Language: func(*http.Request) string { return "en" },
	}
}

func threadOf(size int) []comments.Comment {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	thread := make([]comments.Comment, 0, size)
	for i := 0; i < size; i++ {
		thread = append(thread, comments.Comment{
			ID:        "c" + string(rune('a'+i)),
			Author:    "author",
			Content:   "content",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			LikeCount: uint(size - i),
		})
	}
	return thread
}
