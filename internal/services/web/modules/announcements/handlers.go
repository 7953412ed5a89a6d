package announcements

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/platform/httpx"
	"github.com/opencivica/civica/internal/services/web/platform/pagerender"
	"github.com/opencivica/civica/internal/services/web/platform/weberror"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

type handlers struct {
	service   service
	resolvers module.Resolvers
}

func newHandlers(s service, resolvers module.Resolvers) handlers {
	return handlers{service: s, resolvers: resolvers}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.listAnnouncements(httpx.RequestContext(r))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.resolvers)
		return
	}
	if err := pagerender.WritePage(w, r, h.resolvers, pagerender.Page{
		Title:    "Announcements",
		Fragment: webtemplates.AnnouncementsPage(views),
	}); err != nil {
		weberror.WriteModuleError(w, r, err, h.resolvers)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, h.resolvers)
}
