// Package projects serves the project feed, detail pages, reactions, and
// comment threads.
package projects

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/routepath"
)

// Module provides the project feed and detail routes.
type Module struct {
	gateways  Gateways
	resolvers module.Resolvers
}

// New returns a projects module backed by the given gateways.
func New(gateways Gateways, resolvers module.Resolvers) Module {
	return Module{gateways: gateways, resolvers: resolvers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "projects" }

// Mount wires project route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateways), m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ProjectsPrefix, Handler: mux}, nil
}
