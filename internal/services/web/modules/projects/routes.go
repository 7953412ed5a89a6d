package projects

import (
	"net/http"

	"github.com/opencivica/civica/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Projects, h.handleFeedIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsPrefix+"{$}", h.handleFeedIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsMore, h.handleFeedMore)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectsReload, h.handleFeedReload)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectPattern, h.handleProjectDetail)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectReactionPattern, h.handleReactionToggle)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectCommentsPattern, h.handleCommentsFragment)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectCommentsPattern, h.handleCommentCreate)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectCommentLikePattern, h.handleCommentLike)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectCommentDeletePattern, h.handleCommentDelete)
	mux.HandleFunc(routepath.ProjectsPrefix+"{projectID}/{rest...}", h.handleNotFound)
}
