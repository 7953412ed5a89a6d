// Package weberror renders shared shell error responses for web modules.
package weberror

import (
	"net/http"

	"github.com/a-h/templ"

	module "github.com/opencivica/civica/internal/services/web/module"
	apperrors "github.com/opencivica/civica/internal/services/web/platform/errors"
	"github.com/opencivica/civica/internal/services/web/platform/httpx"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use error-page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteErrorPage writes a shell error response for full-page and HTMX
// requests.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, resolvers module.Resolvers) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	fragment := webtemplates.ErrorState(statusCode)
	ctx := httpx.RequestContext(r)

	if httpx.IsHTMXRequest(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(statusCode)
		main := webtemplates.MainFragment()
		if err := main.Render(templ.WithChildren(ctx, fragment), w); err != nil {
			http.Error(w, http.StatusText(statusCode), statusCode)
		}
		return
	}

	viewer := webtemplates.Viewer{}
	if resolvers.Viewer != nil {
		resolved := resolvers.Viewer(r)
		viewer = webtemplates.Viewer{DisplayName: resolved.DisplayName, IsAdmin: resolved.IsAdmin}
	}
	lang := ""
	if resolvers.Language != nil {
		lang = resolvers.Language(r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	title := http.StatusText(statusCode)
	layout := webtemplates.Layout(title, viewer, nil, lang)
	if err := layout.Render(templ.WithChildren(ctx, fragment), w); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe error response. Error-page statuses
// use the shared shell; everything else is a plain text status response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolvers module.Resolvers) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderErrorPage(statusCode) {
		WriteErrorPage(w, r, statusCode, resolvers)
		return
	}
	message := http.StatusText(statusCode)
	if err != nil {
		message = err.Error()
	}
	http.Error(w, message, statusCode)
}
