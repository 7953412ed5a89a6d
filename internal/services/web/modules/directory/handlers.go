package directory

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
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

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	rawOrderBy := r.URL.Query().Get(routepath.ContactsOrderByQueryKey)
	view, err := h.service.listContacts(httpx.RequestContext(r), rawOrderBy)
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.resolvers)
		return
	}
	if err := pagerender.WritePage(w, r, h.resolvers, pagerender.Page{
		Title:    "Contacts",
		Fragment: webtemplates.ContactsPage(view.Contacts, view.OrderBy),
	}); err != nil {
		weberror.WriteModuleError(w, r, err, h.resolvers)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, h.resolvers)
}
