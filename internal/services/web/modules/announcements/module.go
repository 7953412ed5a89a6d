// Package announcements serves the public announcement timeline.
package announcements

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/routepath"
)

// Module provides announcement timeline routes.
type Module struct {
	announcements AnnouncementGateway
	resolvers     module.Resolvers
}

// New returns an announcements module backed by the given gateway.
func New(announcements AnnouncementGateway, resolvers module.Resolvers) Module {
	return Module{announcements: announcements, resolvers: resolvers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "announcements" }

// Mount wires announcement route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.announcements), m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AnnouncementsPrefix, Handler: mux}, nil
}
