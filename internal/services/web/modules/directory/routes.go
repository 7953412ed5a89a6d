package directory

import (
	"net/http"

	"github.com/opencivica/civica/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contacts, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.ContactsPrefix+"{rest...}", h.handleNotFound)
}
