package admin

import (
	"net/http"

	"github.com/opencivica/civica/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Admin, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminProjects, h.handleProjectCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminProjectEditPattern, h.handleProjectEditForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminProjectUpdatePattern, h.handleProjectUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminProjectDeletePattern, h.handleProjectDelete)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminAnnouncements, h.handleAnnouncementCreate)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminAnnouncementDelete, h.handleAnnouncementDelete)
	mux.HandleFunc(routepath.AdminPrefix+"{rest...}", h.handleNotFound)
}
