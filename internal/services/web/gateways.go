package web

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/opencivica/civica/internal/api"
	"github.com/opencivica/civica/internal/engage/cache"
	"github.com/opencivica/civica/internal/engage/comments"
	"github.com/opencivica/civica/internal/engage/feed"
	"github.com/opencivica/civica/internal/engage/invalidate"
	"github.com/opencivica/civica/internal/engage/reaction"
	"github.com/opencivica/civica/internal/services/web/modules/admin"
	"github.com/opencivica/civica/internal/services/web/modules/announcements"
	"github.com/opencivica/civica/internal/services/web/modules/dashboard"
	"github.com/opencivica/civica/internal/services/web/modules/directory"
	"github.com/opencivica/civica/internal/services/web/modules/projects"
)

// readThrough registers the fetcher for key, reads a fresh payload through
// the cache store, and decodes it into out. Registration is idempotent, so
// every read path re-registers rather than coordinating first-use.
func readThrough(ctx context.Context, store *cache.Store, key string, fetch cache.FetchFunc, out any) error {
	if err := store.Register(ctx, key, fetch); err != nil {
		return err
	}
	raw, err := store.Read(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode cached payload for %q: %w", key, err)
	}
	return nil
}

// apiReactionClient adapts the remote API client to the toggle engine's
// mutation surface.
type apiReactionClient struct {
	client *api.Client
}

func (a apiReactionClient) CreateProjectReaction(ctx context.Context, projectID string, kind reaction.Kind) (string, error) {
	return a.client.CreateProjectReaction(ctx, projectID, string(kind))
}

func (a apiReactionClient) UpdateProjectReaction(ctx context.Context, projectID, reactionID string, kind reaction.Kind) error {
	return a.client.UpdateProjectReaction(ctx, projectID, reactionID, string(kind))
}

func (a apiReactionClient) DeleteProjectReaction(ctx context.Context, projectID, reactionID string) error {
	return a.client.DeleteProjectReaction(ctx, projectID, reactionID)
}

func (a apiReactionClient) ToggleCommentLike(ctx context.Context, projectID, commentID string) error {
	return a.client.ToggleCommentLike(ctx, projectID, commentID)
}

// projectGateway serves project detail and reaction aggregates through the
// cache store. It doubles as the toggle engine's aggregate source: both
// paths must agree on the point-in-time state a gesture is judged against.
type projectGateway struct {
	client *api.Client
	store  *cache.Store
}

func (g *projectGateway) Project(ctx context.Context, projectID string) (projects.ProjectDetail, error) {
	fetch := func(fctx context.Context) ([]byte, error) {
		project, err := g.client.GetProject(fctx, projectID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(project)
	}
	var project api.Project
	if err := readThrough(ctx, g.store, cache.ProjectDetailKey(projectID), fetch, &project); err != nil {
		return projects.ProjectDetail{}, err
	}
	return projects.ProjectDetail{
		ID:           project.ID,
		Title:        project.Title,
		Body:         project.Body,
		MediaURL:     project.MediaURL,
		Status:       project.Status,
		CommentCount: project.CommentCount,
	}, nil
}

func (g *projectGateway) ProjectAggregate(ctx context.Context, projectID, viewerID string) (reaction.Aggregate, error) {
	fetch := func(fctx context.Context) ([]byte, error) {
		summary, err := g.client.GetProjectReactions(fctx, projectID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(summary)
	}
	var summary api.ReactionSummary
	if err := readThrough(ctx, g.store, cache.ProjectReactionsKey(projectID), fetch, &summary); err != nil {
		return reaction.Aggregate{}, err
	}
	aggregate := reaction.Aggregate{
		LikeCount:    summary.Likes,
		DislikeCount: summary.Dislikes,
	}
	viewerID = strings.TrimSpace(viewerID)
	for _, user := range summary.UserReactions {
		if viewerID == "" || user.UserID != viewerID {
			continue
		}
		aggregate.Viewer = &reaction.ViewerReaction{
			ReactionID: user.ReactionID,
			Kind:       reaction.Kind(user.Type),
		}
		break
	}
	return aggregate, nil
}

// cachedFeedSource reads feed pages through the cache store so every
// materialized page stays subject to fan-out invalidation.
type cachedFeedSource struct {
	client *api.Client
	store  *cache.Store
}

// registerPage binds the fetcher for one cursor page and returns its key.
func (s cachedFeedSource) registerPage(ctx context.Context, cursor string) (string, error) {
	key := cache.FeedPageKey(cursor)
	fetch := func(fctx context.Context) ([]byte, error) {
		page, err := s.client.ListProjects(fctx, cursor)
		if err != nil {
			return nil, err
		}
		return json.Marshal(page)
	}
	return key, s.store.Register(ctx, key, fetch)
}

func (s cachedFeedSource) ListFeedPage(ctx context.Context, cursor string) (feed.Page, error) {
	key, err := s.registerPage(ctx, cursor)
	if err != nil {
		return feed.Page{}, err
	}
	raw, err := s.store.Read(ctx, key)
	if err != nil {
		return feed.Page{}, err
	}
	var page api.ProjectPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return feed.Page{}, fmt.Errorf("decode cached payload for %q: %w", key, err)
	}
	items := make([]feed.Item, 0, len(page.Projects))
	for _, project := range page.Projects {
		items = append(items, feed.Item{
			ID:           project.ID,
			Title:        project.Title,
			MediaURL:     project.MediaURL,
			Status:       project.Status,
			LikeCount:    project.LikeCount,
			DislikeCount: project.DislikeCount,
			CommentCount: project.CommentCount,
		})
	}
	return feed.Page{Items: items, NextCursor: page.NextCursor}, nil
}

// feedGateway wraps the cursor pager. The first read primes page one; later
// reads return the accumulated pages without refetching.
type feedGateway struct {
	pager *feed.Pager

	mu     sync.Mutex
	primed bool
}

func (g *feedGateway) FeedItems(ctx context.Context) ([]feed.Item, bool, error) {
	g.mu.Lock()
	primed := g.primed
	g.mu.Unlock()
	if !primed {
		if err := g.pager.LoadNext(ctx); err != nil {
			return nil, false, err
		}
		g.mu.Lock()
		g.primed = true
		g.mu.Unlock()
	}
	return g.pager.Items(), g.pager.Exhausted(), nil
}

func (g *feedGateway) LoadMoreFeed(ctx context.Context) ([]feed.Item, bool, error) {
	if err := g.pager.LoadNext(ctx); err != nil {
		return nil, false, err
	}
	g.mu.Lock()
	g.primed = true
	g.mu.Unlock()
	return g.pager.Items(), g.pager.Exhausted(), nil
}

func (g *feedGateway) ReloadFeed(ctx context.Context) ([]feed.Item, bool, error) {
	if err := g.pager.ReloadAll(ctx); err != nil {
		return nil, false, err
	}
	g.mu.Lock()
	g.primed = true
	g.mu.Unlock()
	return g.pager.Items(), g.pager.Exhausted(), nil
}

// reactionGateway routes vote gestures through the toggle engine. The
// viewer id rides on the outbound context so mutation requests carry the
// identity header.
type reactionGateway struct {
	engine *reaction.Engine
}

func (g *reactionGateway) ToggleProjectReaction(ctx context.Context, viewerID, projectID string, kind reaction.Kind) error {
	return g.engine.ToggleProject(api.WithViewerID(ctx, viewerID), viewerID, projectID, kind)
}

func (g *reactionGateway) ToggleCommentLike(ctx context.Context, viewerID, projectID, commentID string) error {
	return g.engine.ToggleCommentLike(api.WithViewerID(ctx, viewerID), viewerID, projectID, commentID)
}

// commentGateway reads threads through the cache and pushes writes through
// the fan-out protocol. Thread payloads include per-viewer like state, so
// the cache key carries the viewer suffix; fan-out still hits every viewer's
// copy because invalidation matches on the project-scoped prefix.
type commentGateway struct {
	client *api.Client
	store  *cache.Store
	fanout *invalidate.Protocol
}

func commentThreadKey(projectID, viewerID string) string {
	key := cache.ProjectCommentsKey(projectID)
	if viewerID != "" {
		key += ":viewer:" + viewerID
	}
	return key
}

func (g *commentGateway) Comments(ctx context.Context, projectID string) ([]comments.Comment, error) {
	viewerID := api.ViewerID(ctx)
	fetch := func(fctx context.Context) ([]byte, error) {
		thread, err := g.client.ListComments(api.WithViewerID(fctx, viewerID), projectID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(thread)
	}
	var thread []api.Comment
	if err := readThrough(ctx, g.store, commentThreadKey(projectID, viewerID), fetch, &thread); err != nil {
		return nil, err
	}
	return mapComments(thread), nil
}

func mapComments(thread []api.Comment) []comments.Comment {
	if len(thread) == 0 {
		return nil
	}
	mapped := make([]comments.Comment, 0, len(thread))
	for _, comment := range thread {
		mapped = append(mapped, comments.Comment{
			ID:             comment.ID,
			Author:         comment.Author,
			Content:        comment.Content,
			CreatedAt:      comment.CreatedAt,
			LikeCount:      comment.LikeCount,
			ViewerHasLiked: comment.ViewerHasLiked,
			ParentID:       comment.ParentID,
			Replies:        mapComments(comment.Replies),
		})
	}
	return mapped
}

func (g *commentGateway) CreateComment(ctx context.Context, projectID, content, parentID string) error {
	input := api.CommentInput{Content: content, ParentID: parentID}
	if _, err := g.client.CreateComment(ctx, projectID, input); err != nil {
		return err
	}
	g.fanout.OnMutationSettled(ctx, invalidate.MutationComment, projectID)
	return nil
}

func (g *commentGateway) DeleteComment(ctx context.Context, projectID, commentID string) error {
	if err := g.client.DeleteComment(ctx, projectID, commentID); err != nil {
		return err
	}
	g.fanout.OnMutationSettled(ctx, invalidate.MutationComment, projectID)
	return nil
}

// statsGateway reads the dashboard aggregate snapshot through the cache.
type statsGateway struct {
	client *api.Client
	store  *cache.Store
}

func (g *statsGateway) EngagementStats(ctx context.Context) (dashboard.Stats, error) {
	fetch := func(fctx context.Context) ([]byte, error) {
		stats, err := g.client.GetDashboardStats(fctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(stats)
	}
	var stats api.DashboardStats
	if err := readThrough(ctx, g.store, cache.DashboardStatsKey(), fetch, &stats); err != nil {
		return dashboard.Stats{}, err
	}
	return dashboard.Stats{
		ProjectCount:  stats.ProjectCount,
		ReactionCount: stats.ReactionCount,
		CommentCount:  stats.CommentCount,
		LikeCount:     stats.LikeCount,
		DislikeCount:  stats.DislikeCount,
	}, nil
}

// contactGateway reads the directory through the cache, one entry per
// server ordering.
type contactGateway struct {
	client *api.Client
	store  *cache.Store
}

func (g *contactGateway) Contacts(ctx context.Context, orderBy string) ([]directory.Contact, error) {
	fetch := func(fctx context.Context) ([]byte, error) {
		contacts, err := g.client.ListContacts(fctx, orderBy)
		if err != nil {
			return nil, err
		}
		return json.Marshal(contacts)
	}
	var listed []api.Contact
	if err := readThrough(ctx, g.store, cache.ContactListKey(orderBy), fetch, &listed); err != nil {
		return nil, err
	}
	contacts := make([]directory.Contact, 0, len(listed))
	for _, contact := range listed {
		contacts = append(contacts, directory.Contact{
			Name:         contact.Name,
			Organization: contact.Organization,
			Role:         contact.Role,
			Email:        contact.Email,
			Phone:        contact.Phone,
		})
	}
	return contacts, nil
}

// announcementGateway reads the announcement timeline through the cache.
type announcementGateway struct {
	client *api.Client
	store  *cache.Store
}

func (g *announcementGateway) Announcements(ctx context.Context) ([]announcements.Announcement, error) {
	fetch := func(fctx context.Context) ([]byte, error) {
		listed, err := g.client.ListAnnouncements(fctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(listed)
	}
	var listed []api.Announcement
	if err := readThrough(ctx, g.store, cache.AnnouncementListKey(), fetch, &listed); err != nil {
		return nil, err
	}
	mapped := make([]announcements.Announcement, 0, len(listed))
	for _, announcement := range listed {
		mapped = append(mapped, announcements.Announcement{
			ID:          announcement.ID,
			Title:       announcement.Title,
			Body:        announcement.Body,
			PublishedAt: announcement.PublishedAt,
		})
	}
	return mapped, nil
}

// adminGateway talks to the API directly for console reads, so editors
// always see the stored record rather than a cached copy. Every settled
// mutation runs through the fan-out protocol to refresh public surfaces.
type adminGateway struct {
	client *api.Client
	fanout *invalidate.Protocol
}

// adminProjectPageLimit caps the console walk over the project stream.
const adminProjectPageLimit = 50

func (g *adminGateway) ManagedProjects(ctx context.Context) ([]admin.ProjectRecord, error) {
	var records []admin.ProjectRecord
	cursor := ""
	for range adminProjectPageLimit {
		page, err := g.client.ListProjects(ctx, cursor)
		if err != nil {
			return nil, err
		}
		for _, project := range page.Projects {
			records = append(records, admin.ProjectRecord{
				ID:     project.ID,
				Title:  project.Title,
				Status: project.Status,
			})
		}
		if strings.TrimSpace(page.NextCursor) == "" {
			return records, nil
		}
		cursor = page.NextCursor
	}
	return records, nil
}

func (g *adminGateway) ManagedProject(ctx context.Context, projectID string) (admin.ProjectRecord, error) {
	project, err := g.client.GetProject(ctx, projectID)
	if err != nil {
		return admin.ProjectRecord{}, err
	}
	return admin.ProjectRecord{
		ID:       project.ID,
		Title:    project.Title,
		Summary:  project.Summary,
		Body:     project.Body,
		MediaURL: project.MediaURL,
		Status:   project.Status,
	}, nil
}

func (g *adminGateway) CreateProject(ctx context.Context, input admin.ProjectInput) error {
	created, err := g.client.CreateProject(ctx, adminProjectPayload(input))
	if err != nil {
		return err
	}
	g.fanout.OnMutationSettled(ctx, invalidate.MutationProjectWrite, created.ID)
	return nil
}

func (g *adminGateway) UpdateProject(ctx context.Context, projectID string, input admin.ProjectInput) error {
	if _, err := g.client.UpdateProject(ctx, projectID, adminProjectPayload(input)); err != nil {
		return err
	}
	g.fanout.OnMutationSettled(ctx, invalidate.MutationProjectWrite, projectID)
	return nil
}

func (g *adminGateway) DeleteProject(ctx context.Context, projectID string) error {
	if err := g.client.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	g.fanout.OnMutationSettled(ctx, invalidate.MutationProjectWrite, projectID)
	return nil
}

func adminProjectPayload(input admin.ProjectInput) api.ProjectInput {
	return api.ProjectInput{
		Title:    input.Title,
		Summary:  input.Summary,
		Body:     input.Body,
		MediaURL: input.MediaURL,
		Status:   input.Status,
	}
}

func (g *adminGateway) ManagedAnnouncements(ctx context.Context) ([]admin.AnnouncementRecord, error) {
	listed, err := g.client.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].PublishedAt.After(listed[j].PublishedAt)
	})
	records := make([]admin.AnnouncementRecord, 0, len(listed))
	for _, announcement := range listed {
		records = append(records, admin.AnnouncementRecord{
			ID:    announcement.ID,
			Title: announcement.Title,
		})
	}
	return records, nil
}

func (g *adminGateway) CreateAnnouncement(ctx context.Context, title, body string) error {
	if _, err := g.client.CreateAnnouncement(ctx, api.AnnouncementInput{Title: title, Body: body}); err != nil {
		return err
	}
	g.fanout.OnMutationSettled(ctx, invalidate.MutationAnnouncementWrite, "")
	return nil
}

func (g *adminGateway) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	if err := g.client.DeleteAnnouncement(ctx, announcementID); err != nil {
		return err
	}
	g.fanout.OnMutationSettled(ctx, invalidate.MutationAnnouncementWrite, "")
	return nil
}
