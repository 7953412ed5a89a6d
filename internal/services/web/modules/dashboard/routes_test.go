package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/opencivica/civica/internal/services/web/module"
)

type fakeStatsGateway struct {
	stats Stats
	err   error
	calls int
}

func (f *fakeStatsGateway) EngagementStats(context.Context) (Stats, error) {
	f.calls++
	return f.stats, f.err
}

func signedInResolvers() module.Resolvers {
	return module.Resolvers{
		Viewer: func(*http.Request) module.Viewer {
			return module.Viewer{DisplayName: "Ada"}
		},
		SignedIn: func(*http.Request) bool { return true },
		ViewerID: func(*http.Request) string { return "u1" },
	}
}

func mountDashboard(t *testing.T, stats StatsGateway, resolvers module.Resolvers) http.Handler {
	t.Helper()
	mount, err := New(stats, resolvers).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/dashboard/" {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func TestDashboardRendersStats(t *testing.T) {
	t.Parallel()

	stats := &fakeStatsGateway{stats: Stats{ProjectCount: 12, ReactionCount: 340, CommentCount: 89}}
	handler := mountDashboard(t, stats, signedInResolvers())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "<dd>12</dd>") || !strings.Contains(body, "<dd>340</dd>") {
		t.Fatalf("body missing stats: %q", body)
	}
	if stats.calls != 1 {
		t.Fatalf("gateway calls = %d", stats.calls)
	}
}

func TestDashboardRequiresSession(t *testing.T) {
	t.Parallel()

	stats := &fakeStatsGateway{}
	resolvers := module.Resolvers{SignedIn: func(*http.Request) bool { return false }}
	handler := mountDashboard(t, stats, resolvers)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if recorder.Code != http.StatusFound {
		t.Fatalf("status = %d", recorder.Code)
	}
	if got := recorder.Header().Get("Location"); got != "/login" {
		t.Fatalf("Location = %q", got)
	}
	if stats.calls != 0 {
		t.Fatalf("gateway called %d times without a session", stats.calls)
	}
}

func TestDashboardUpstreamFailureRendersErrorPage(t *testing.T) {
	t.Parallel()

	stats := &fakeStatsGateway{err: errors.New("stats upstream down")}
	handler := mountDashboard(t, stats, signedInResolvers())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", recorder.Code)
	}
}

func TestDashboardUnknownSubrouteIs404(t *testing.T) {
	t.Parallel()

	handler := mountDashboard(t, &fakeStatsGateway{}, signedInResolvers())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard/extra", nil))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d", recorder.Code)
	}
}
