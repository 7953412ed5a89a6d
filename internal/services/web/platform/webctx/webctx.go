// Package webctx provides shared web request context helpers.
package webctx

import (
	"context"
	"net/http"
	"strings"

	"github.com/opencivica/civica/internal/api"
	module "github.com/opencivica/civica/internal/services/web/module"
)

// WithResolvedViewerID returns request context enriched with the resolved
// viewer identity, so API calls built from it carry the viewer header.
func WithResolvedViewerID(r *http.Request, resolve module.ResolveViewerID) context.Context {
	if r == nil {
		return context.Background()
	}
	ctx := r.Context()
	if resolve == nil {
		return ctx
	}
	viewerID := strings.TrimSpace(resolve(r))
	if viewerID == "" {
		return ctx
	}
	return api.WithViewerID(ctx, viewerID)
}
