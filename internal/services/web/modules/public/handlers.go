package public

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
	apperrors "github.com/opencivica/civica/internal/services/web/platform/errors"
	flashnotice "github.com/opencivica/civica/internal/services/web/platform/flash"
	"github.com/opencivica/civica/internal/services/web/platform/httpx"
	"github.com/opencivica/civica/internal/services/web/platform/pagerender"
	"github.com/opencivica/civica/internal/services/web/platform/sessioncookie"
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

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	if err := pagerender.WritePage(w, r, h.resolvers, pagerender.Page{
		Title:    "Civica",
		Fragment: webtemplates.HomePage(),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		httpx.WriteRedirect(w, r, routepath.Dashboard)
		return
	}
	h.renderLogin(w, r, http.StatusOK, "")
}

func (h handlers) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	sessionValue, err := h.service.signIn(httpx.RequestContext(r), r.FormValue("token"))
	if err != nil {
		h.renderLogin(w, r, apperrors.HTTPStatus(err), err.Error())
		return
	}
	sessioncookie.Write(w, r, sessionValue)
	flashnotice.Write(w, r, flashnotice.NoticeSuccess("Welcome back."))
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, statusCode int, errorMessage string) {
	if err := pagerender.WritePage(w, r, h.resolvers, pagerender.Page{
		Title:      "Sign in",
		StatusCode: statusCode,
		Fragment:   webtemplates.LoginPage(errorMessage),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, h.resolvers)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.resolvers)
}

func (h handlers) signedIn(r *http.Request) bool {
	if h.resolvers.SignedIn == nil {
		return false
	}
	return h.resolvers.SignedIn(r)
}
