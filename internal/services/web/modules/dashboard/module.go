// Package dashboard serves the authenticated engagement statistics page.
package dashboard

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/routepath"
)

// Module provides authenticated dashboard routes.
type Module struct {
	stats     StatsGateway
	resolvers module.Resolvers
}

// New returns a dashboard module backed by the given stats gateway.
func New(stats StatsGateway, resolvers module.Resolvers) Module {
	return Module{stats: stats, resolvers: resolvers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.stats), m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
