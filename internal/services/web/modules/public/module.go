// Package public serves the landing page and session entry points.
package public

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/routepath"
)

// Module provides unauthenticated routes.
type Module struct {
	sessions  SessionGateway
	resolvers module.Resolvers
}

// New returns a public module backed by the given session gateway.
func New(sessions SessionGateway, resolvers module.Resolvers) Module {
	return Module{sessions: sessions, resolvers: resolvers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.sessions), m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
