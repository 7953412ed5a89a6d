// Package modules composes the web feature module registry.
package modules

import (
	module "github.com/opencivica/civica/internal/services/web/module"
	"github.com/opencivica/civica/internal/services/web/modules/admin"
	"github.com/opencivica/civica/internal/services/web/modules/announcements"
	"github.com/opencivica/civica/internal/services/web/modules/dashboard"
	"github.com/opencivica/civica/internal/services/web/modules/directory"
	"github.com/opencivica/civica/internal/services/web/modules/projects"
	"github.com/opencivica/civica/internal/services/web/modules/public"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Gateways carries the narrow per-module interfaces built by web
// composition. Each field is typed as the interface declared by the
// consuming module, so modules physically cannot reach gateways they were
// not given.
type Gateways struct {
	Sessions      public.SessionGateway
	Feed          projects.FeedGateway
	Projects      projects.ProjectGateway
	Reactions     projects.ReactionGateway
	Comments      projects.CommentGateway
	Stats         dashboard.StatsGateway
	Contacts      directory.ContactGateway
	Announcements announcements.AnnouncementGateway
	Admin         admin.Gateway
}

// Default returns the full module set in mount order.
func Default(gateways Gateways, resolvers module.Resolvers) []Module {
	return []Module{
		public.New(gateways.Sessions, resolvers),
		projects.New(projects.Gateways{
			Feed:      gateways.Feed,
			Projects:  gateways.Projects,
			Reactions: gateways.Reactions,
			Comments:  gateways.Comments,
		}, resolvers),
		dashboard.New(gateways.Stats, resolvers),
		directory.New(gateways.Contacts, resolvers),
		announcements.New(gateways.Announcements, resolvers),
		admin.New(gateways.Admin, resolvers),
	}
}
