package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opencivica/civica/internal/api"
	"github.com/opencivica/civica/internal/engage/comments"
	"github.com/opencivica/civica/internal/engage/feed"
	"github.com/opencivica/civica/internal/engage/reaction"
	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/modules"
	"github.com/opencivica/civica/internal/services/web/modules/projects"
)

type stubFeedGateway struct {
	items []feed.Item
}

func (s stubFeedGateway) FeedItems(context.Context) ([]feed.Item, bool, error) {
	return s.items, true, nil
}

func (s stubFeedGateway) LoadMoreFeed(context.Context) ([]feed.Item, bool, error) {
	return s.items, true, nil
}

func (s stubFeedGateway) ReloadFeed(context.Context) ([]feed.Item, bool, error) {
	return s.items, true, nil
}

type stubProjectGateway struct {
	viewerIDs chan string
}

func (s stubProjectGateway) Project(ctx context.Context, projectID string) (projects.ProjectDetail, error) {
	select {
	case s.viewerIDs <- api.ViewerID(ctx):
	default:
	}
	return projects.ProjectDetail{ID: projectID, Title: "Bike lanes"}, nil
}

func (s stubProjectGateway) ProjectAggregate(context.Context, string, string) (reaction.Aggregate, error) {
	return reaction.Aggregate{}, nil
}

type stubCommentGateway struct{}

func (stubCommentGateway) Comments(context.Context, string) ([]comments.Comment, error) {
	return nil, nil
}

func (stubCommentGateway) CreateComment(context.Context, string, string, string) error { return nil }

func (stubCommentGateway) DeleteComment(context.Context, string, string) error { return nil }

func anonymousResolvers() module.Resolvers {
	return module.Resolvers{
		Viewer:   func(*http.Request) module.Viewer { return module.Viewer{} },
		SignedIn: func(*http.Request) bool { return false },
		ViewerID: func(*http.Request) string { return "" },
		Language: func(*http.Request) string { return "en" },
	}
}

func testHandler(t *testing.T, gateways modules.Gateways, resolvers module.Resolvers) http.Handler {
	t.Helper()
	handler, err := buildHandler(gateways, resolvers)
	if err != nil {
		t.Fatalf("buildHandler() error = %v", err)
	}
	return handler
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	handler := testHandler(t, modules.Gateways{}, anonymousResolvers())
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/up", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
}

func TestBareAndSlashedPrefixesRouteToSameModule(t *testing.T) {
	t.Parallel()

	gateways := modules.Gateways{
		Feed: stubFeedGateway{items: []feed.Item{{ID: "p1", Title: "Bike lanes"}}},
	}
	handler := testHandler(t, gateways, anonymousResolvers())

	for _, path := range []string{"/projects", "/projects/"} {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, recorder.Code)
		}
		if !strings.Contains(recorder.Body.String(), "Bike lanes") {
			t.Fatalf("GET %s body missing feed item", path)
		}
	}
}

func TestViewerIdentityRidesOnRequestContext(t *testing.T) {
	t.Parallel()

	viewerIDs := make(chan string, 1)
	gateways := modules.Gateways{
		Projects: stubProjectGateway{viewerIDs: viewerIDs},
		Comments: stubCommentGateway{},
	}
	resolvers := anonymousResolvers()
	resolvers.ViewerID = func(*http.Request) string { return "u1" }
	resolvers.SignedIn = func(*http.Request) bool { return true }
	handler := testHandler(t, gateways, resolvers)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/projects/p1", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	select {
	case got := <-viewerIDs:
		if got != "u1" {
			t.Fatalf("viewer id on gateway context = %q, want %q", got, "u1")
		}
	default:
		t.Fatal("project gateway was never called")
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	t.Parallel()

	handler := testHandler(t, modules.Gateways{}, anonymousResolvers())
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/up", nil))

	if recorder.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}

func TestNewServerRequiresSessionSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{APIBaseURL: "http://localhost:8090"}); err == nil {
		t.Fatal("expected missing session secret to be rejected")
	}
}

func TestNewServerBuildsHandler(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{
		HTTPAddr:      "localhost:0",
		APIBaseURL:    "http://localhost:8090",
		SessionSecret: "secret",
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer server.close()

	recorder := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/up", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
}
