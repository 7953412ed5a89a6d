// Package admin serves the project and announcement management console.
package admin

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/routepath"
)

// Module provides admin console routes.
type Module struct {
	gateway   Gateway
	resolvers module.Resolvers
}

// New returns an admin module backed by the given gateway.
func New(gateway Gateway, resolvers module.Resolvers) Module {
	return Module{gateway: gateway, resolvers: resolvers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "admin" }

// Mount wires admin route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AdminPrefix, Handler: mux}, nil
}
