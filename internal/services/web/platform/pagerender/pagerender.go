// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	module "github.com/opencivica/civica/internal/services/web/module"
	flashnotice "github.com/opencivica/civica/internal/services/web/platform/flash"
	"github.com/opencivica/civica/internal/services/web/platform/httpx"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes a module page using the shared shell. HTMX requests get
// only the main fragment; full requests get the layout plus any pending
// flash notice.
func WritePage(w http.ResponseWriter, r *http.Request, resolvers module.Resolvers, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		main := webtemplates.MainFragment()
		if err := main.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
			return err
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(statusCode)
		_, _ = w.Write(buf.Bytes())
		return nil
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
	toast := resolveFlashToast(w, r)

	layout := webtemplates.Layout(page.Title, viewer, toast, lang)
	if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: notice.Message,
	}
}
