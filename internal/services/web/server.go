package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/opencivica/civica/internal/api"
	"github.com/opencivica/civica/internal/engage/cache"
	cachesqlite "github.com/opencivica/civica/internal/engage/cache/sqlite"
	"github.com/opencivica/civica/internal/engage/feed"
	"github.com/opencivica/civica/internal/engage/invalidate"
	"github.com/opencivica/civica/internal/engage/reaction"
	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/modules"
	"github.com/opencivica/civica/internal/services/web/platform/httpx"
	"github.com/opencivica/civica/internal/services/web/platform/observability"
	"github.com/opencivica/civica/internal/services/web/platform/webctx"
	"github.com/opencivica/civica/internal/services/web/routepath"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// APIBaseURL is the base URL of the remote civic engagement API.
	APIBaseURL string
	// SessionSecret signs and verifies session tokens.
	SessionSecret string
	// CacheDBPath is the sqlite snapshot location. Empty disables the
	// persistent snapshot; the cache then starts cold on every boot.
	CacheDBPath string
	// HTTPClient overrides the outbound API transport, mainly for tests.
	HTTPClient *http.Client

	ShutdownTimeout time.Duration
}

const defaultShutdownTimeout = 10 * time.Second

// Server hosts the web HTTP server and owns the sync core it serves from.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	snapshot   *cachesqlite.Store
	shutdown   time.Duration

	unsubscribeFeed func()
}

// NewServer assembles the sync core, the feature modules, and the HTTP
// server around them.
func NewServer(config Config) (*Server, error) {
	if strings.TrimSpace(config.SessionSecret) == "" {
		return nil, errors.New("session secret is required")
	}

	var clientOpts []api.Option
	if config.HTTPClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(config.HTTPClient))
	}
	client, err := api.NewClient(config.APIBaseURL, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	var snapshot *cachesqlite.Store
	var cacheSnapshot cache.Snapshot
	if path := strings.TrimSpace(config.CacheDBPath); path != "" {
		snapshot, err = cachesqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open cache snapshot: %w", err)
		}
		cacheSnapshot = snapshot
	}

	store := cache.NewStore(cacheSnapshot)
	fanout := invalidate.NewProtocol(store)

	projectsGateway := &projectGateway{client: client, store: store}
	engine := reaction.NewEngine(apiReactionClient{client: client}, projectsGateway, fanout)
	feedSource := cachedFeedSource{client: client, store: store}
	pager := feed.NewPager(feedSource)
	feedGW := &feedGateway{pager: pager}

	// Register the first feed page up front so the reload subscription can
	// attach before the feed is ever read.
	if _, err := feedSource.registerPage(context.Background(), ""); err != nil {
		return nil, fmt.Errorf("register feed page: %w", err)
	}

	resolver := newSessionResolver([]byte(config.SessionSecret))
	resolvers := resolver.resolvers()

	gateways := modules.Gateways{
		Sessions:      resolver,
		Feed:          feedGW,
		Projects:      projectsGateway,
		Reactions:     &reactionGateway{engine: engine},
		Comments:      &commentGateway{client: client, store: store, fanout: fanout},
		Stats:         &statsGateway{client: client, store: store},
		Contacts:      &contactGateway{client: client, store: store},
		Announcements: &announcementGateway{client: client, store: store},
		Admin:         &adminGateway{client: client, fanout: fanout},
	}

	handler, err := buildHandler(gateways, resolvers)
	if err != nil {
		return nil, err
	}

	// A stale first feed page means fan-out hit the feed; reload every
	// materialized page so nothing renders from a half-refetched stream.
	unsubscribe := subscribeFeedReload(store, pager)

	shutdown := config.ShutdownTimeout
	if shutdown <= 0 {
		shutdown = defaultShutdownTimeout
	}

	return &Server{
		httpAddr: config.HTTPAddr,
		httpServer: &http.Server{
			Addr:              config.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		snapshot:        snapshot,
		shutdown:        shutdown,
		unsubscribeFeed: unsubscribe,
	}, nil
}

// buildHandler mounts every feature module and wraps the mux with the
// shared middleware chain.
func buildHandler(gateways modules.Gateways, resolvers module.Resolvers) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	for _, m := range modules.Default(gateways, resolvers) {
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", m.ID(), err)
		}
		if mount.Handler == nil {
			return nil, fmt.Errorf("module %q mounted nil handler", m.ID())
		}
		mux.Handle(mount.Prefix, mount.Handler)
		// Subtree prefixes also claim their exact bare path, so
		// /projects and /projects/ land in the same module.
		if bare := strings.TrimSuffix(mount.Prefix, "/"); bare != "" && bare != mount.Prefix {
			mux.Handle(bare, mount.Handler)
		}
	}

	handler := httpx.Chain(mux,
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
		httpx.RecoverPanic(),
		viewerContext(resolvers.ViewerID),
	)
	return handler, nil
}

// viewerContext stamps the resolved viewer identity onto the request
// context before any module handler runs, so gateway calls carry the
// identity header without each handler re-resolving the session.
func viewerContext(resolve module.ResolveViewerID) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(webctx.WithResolvedViewerID(r, resolve)))
		})
	}
}

// subscribeFeedReload wires fan-out invalidation back into the pager: when
// the first feed page goes stale, every materialized page is refetched.
func subscribeFeedReload(store *cache.Store, pager *feed.Pager) func() {
	firstPage := cache.FeedPageKey("")
	cancel, err := store.Subscribe(firstPage, func(event cache.Event) {
		if event.Kind != cache.EventStale {
			return
		}
		go func() {
			ctx, done := context.WithTimeout(context.Background(), 30*time.Second)
			defer done()
			if err := pager.ReloadAll(ctx); err != nil {
				log.Printf("feed reload after invalidation: %v", err)
			}
		}()
	})
	if err != nil {
		// The first page is not registered until the feed is first read;
		// the pager then reloads on demand through the stale cache reads.
		return func() {}
	}
	return cancel
}

// Run serves HTTP until the context is canceled, then drains connections.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("web server listening on %s", s.httpAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		s.close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()
	err := s.httpServer.Shutdown(shutdownCtx)
	s.close()
	if serveErr := <-errCh; serveErr != nil {
		return serveErr
	}
	return err
}

func (s *Server) close() {
	if s.unsubscribeFeed != nil {
		s.unsubscribeFeed()
	}
	if s.snapshot != nil {
		if err := s.snapshot.Close(); err != nil {
			log.Printf("close cache snapshot: %v", err)
		}
	}
}
