package api

import (
	"context"
	"strings"
)

// viewerHeader carries the authenticated viewer identity on API requests.
const viewerHeader = "X-Civica-User"

type viewerIDKey struct{}

// WithViewerID attaches the authenticated viewer id to the context. Requests
// built from that context carry the identity header.
func WithViewerID(ctx context.Context, viewerID string) context.Context {
	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return ctx
	}
	return context.WithValue(ctx, viewerIDKey{}, viewerID)
}

// ViewerID returns the viewer id attached to the context, or empty when the
// request is anonymous.
func ViewerID(ctx context.Context) string {
	viewerID, _ := ctx.Value(viewerIDKey{}).(string)
	return viewerID
}
