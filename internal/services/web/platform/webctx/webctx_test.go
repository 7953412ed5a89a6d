package webctx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opencivica/civica/internal/api"
)

func TestWithResolvedViewerIDAttachesViewer(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := WithResolvedViewerID(req, func(*http.Request) string { return " u1 " })
	if got := api.ViewerID(ctx); got != "u1" {
		t.Fatalf("viewer id = %q, want u1", got)
	}
}

func TestWithResolvedViewerIDAnonymous(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := WithResolvedViewerID(req, func(*http.Request) string { return "" })
	if got := api.ViewerID(ctx); got != "" {
		t.Fatalf("viewer id = %q, want empty", got)
	}

	ctx = WithResolvedViewerID(req, nil)
	if got := api.ViewerID(ctx); got != "" {
		t.Fatalf("viewer id = %q, want empty", got)
	}
}

func TestWithResolvedViewerIDNilRequest(t *testing.T) {
	t.Parallel()

	ctx := WithResolvedViewerID(nil, func(*http.Request) string { return "u1" })
	if ctx == nil {
		t.Fatalf("expected non-nil context")
	}
	if got := api.ViewerID(ctx); got != "" {
		t.Fatalf("viewer id = %q, want empty", got)
	}
}
