// Package directory serves the civic contact directory.
package directory

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/routepath"
)

// Module provides contact directory routes.
type Module struct {
	contacts  ContactGateway
	resolvers module.Resolvers
}

// New returns a directory module backed by the given contact gateway.
func New(contacts ContactGateway, resolvers module.Resolvers) Module {
	return Module{contacts: contacts, resolvers: resolvers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "directory" }

// Mount wires directory route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.contacts), m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ContactsPrefix, Handler: mux}, nil
}
