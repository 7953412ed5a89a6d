package projects

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/opencivica/civica/internal/engage/reaction"
	module "github.com/opencivica/civica/internal/services/web/module"
	flashnotice "github.com/opencivica/civica/internal/services/web/platform/flash"
	"github.com/opencivica/civica/internal/services/web/platform/httpx"
	"github.com/opencivica/civica/internal/services/web/platform/pagerender"
	"github.com/opencivica/civica/internal/services/web/platform/weberror"
	"github.com/opencivica/civica/internal/services/web/routepath"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

type handlers struct {
	service   service
	resolvers module.Resolvers
}

func newHandlers(s service, resolvers module.Resolvers) handlers {
	return handlers{service: s, resolvers: resolvers}
}

func (h handlers) handleFeedIndex(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.loadFeed(httpx.RequestContext(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeFeed(w, r, view)
}

func (h handlers) handleFeedMore(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.loadMoreFeed(httpx.RequestContext(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeFeed(w, r, view)
}

func (h handlers) handleFeedReload(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.reloadFeed(httpx.RequestContext(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.Projects)
		return
	}
	h.writeFragment(w, r, webtemplates.FeedPage(view.Columns, view.Exhausted))
}

func (h handlers) writeFeed(w http.ResponseWriter, r *http.Request, view feedView) {
	fragment := webtemplates.FeedPage(view.Columns, view.Exhausted)
	if httpx.IsHTMXRequest(r) {
		h.writeFragment(w, r, fragment)
		return
	}
	if err := pagerender.WritePage(w, r, h.resolvers, pagerender.Page{
		Title:    "Projects",
		Fragment: fragment,
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleProjectDetail(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	view, err := h.service.loadProject(httpx.RequestContext(r), projectID, h.viewerID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := pagerender.WritePage(w, r, h.resolvers, pagerender.Page{
		Title:    view.Title,
		Fragment: webtemplates.ProjectPage(view),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

// handleReactionToggle applies a vote gesture and re-renders the project
// article from post-settle state. A gesture while the previous toggle is in
// flight is dropped, not queued.
func (h handlers) handleReactionToggle(w http.ResponseWriter, r *http.Request) {
	viewerID := h.viewerID(r)
	if viewerID == "" {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	ctx := httpx.RequestContext(r)
	projectID := r.PathValue("projectID")
	kind := r.PathValue("kind")

	err := h.service.toggleProjectReaction(ctx, viewerID, projectID, kind)
	switch {
	case err == nil:
	case errors.Is(err, reaction.ErrTogglePending):
		// Re-render current state, the pending round trip owns the target.
	default:
		flashnotice.Write(w, r, flashnotice.NoticeError("Your vote could not be saved."))
	}

	view, loadErr := h.service.loadProject(ctx, projectID, viewerID)
	if loadErr != nil {
		h.writeError(w, r, loadErr)
		return
	}
	h.writeFragment(w, r, webtemplates.ProjectPage(view))
}

func (h handlers) handleCommentsFragment(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	order := r.URL.Query().Get(routepath.CommentOrderQueryKey)
	count := parseCount(r.URL.Query().Get(routepath.CommentCountQueryKey))

	view, err := h.service.commentThread(httpx.RequestContext(r), projectID, order, count, h.viewerID(r), h.viewerIsAdmin(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeFragment(w, r, webtemplates.CommentsFragment(projectID, view.Order, view.Comments, view.NextCount, view.CanComment))
}

func (h handlers) handleCommentCreate(w http.ResponseWriter, r *http.Request) {
	viewerID := h.viewerID(r)
	if viewerID == "" {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	ctx := httpx.RequestContext(r)
	projectID := r.PathValue("projectID")

	if err := h.service.createComment(ctx, projectID, r.FormValue("content"), r.FormValue("parent_id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	view, err := h.service.commentThread(ctx, projectID, r.FormValue(routepath.CommentOrderQueryKey), 0, viewerID, h.viewerIsAdmin(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeFragment(w, r, webtemplates.CommentsFragment(projectID, view.Order, view.Comments, view.NextCount, view.CanComment))
}

// handleCommentLike toggles a comment like and re-renders only the pressed
// control so the visible thread order never shifts.
func (h handlers) handleCommentLike(w http.ResponseWriter, r *http.Request) {
	viewerID := h.viewerID(r)
	if viewerID == "" {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	ctx := httpx.RequestContext(r)
	projectID := r.PathValue("projectID")
	commentID := r.PathValue("commentID")

	err := h.service.toggleCommentLike(ctx, viewerID, projectID, commentID)
	if err != nil && !errors.Is(err, reaction.ErrTogglePending) {
		h.writeError(w, r, err)
		return
	}

	likeCount, liked, err := h.service.commentLikeState(ctx, projectID, commentID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeFragment(w, r, webtemplates.CommentLikeButton(projectID, commentID, likeCount, liked))
}

func (h handlers) handleCommentDelete(w http.ResponseWriter, r *http.Request) {
	viewerID := h.viewerID(r)
	if viewerID == "" {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	if !h.viewerIsAdmin(r) {
		weberror.WriteErrorPage(w, r, http.StatusNotFound, h.resolvers)
		return
	}
	ctx := httpx.RequestContext(r)
	projectID := r.PathValue("projectID")
	commentID := r.PathValue("commentID")

	if err := h.service.deleteComment(ctx, projectID, commentID); err != nil {
		h.writeError(w, r, err)
		return
	}

	view, err := h.service.commentThread(ctx, projectID, r.FormValue(routepath.CommentOrderQueryKey), 0, viewerID, true)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeFragment(w, r, webtemplates.CommentsFragment(projectID, view.Order, view.Comments, view.NextCount, view.CanComment))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, h.resolvers)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.resolvers)
}

func (h handlers) writeFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, buf.String())
}

func (h handlers) viewerID(r *http.Request) string {
	if h.resolvers.ViewerID == nil {
		return ""
	}
	return strings.TrimSpace(h.resolvers.ViewerID(r))
}

func (h handlers) viewerIsAdmin(r *http.Request) bool {
	if h.resolvers.Viewer == nil {
		return false
	}
	return h.resolvers.Viewer(r).IsAdmin
}

func parseCount(raw string) int {
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || count < 0 {
		return 0
	}
	return count
}
