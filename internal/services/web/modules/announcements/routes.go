package announcements

import (
	"net/http"

	"github.com/opencivica/civica/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Announcements, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AnnouncementsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.AnnouncementsPrefix+"{rest...}", h.handleNotFound)
}
