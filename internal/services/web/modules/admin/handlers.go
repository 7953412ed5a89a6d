package admin

import (
	"net/http"

	module "github.com/opencivica/civica/internal/services/web/module"
	flashnotice "github.com/opencivica/civica/internal/services/web/platform/flash"
	"github.com/opencivica/civica/internal/services/web/platform/httpx"
	"github.com/opencivica/civica/internal/services/web/platform/pagerender"
	"github.com/opencivica/civica/internal/services/web/platform/weberror"
	"github.com/opencivica/civica/internal/services/web/routepath"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

type handlers struct {
	service   service
	resolvers module.Resolvers
}

func newHandlers(s service, resolvers module.Resolvers) handlers {
	return handlers{service: s, resolvers: resolvers}
}

// requireAdmin hides the console from non-admins behind a 404 rather than
// advertising it with a 403.
func (h handlers) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if h.resolvers.Viewer != nil && h.resolvers.Viewer(r).IsAdmin {
		return true
	}
	weberror.WriteErrorPage(w, r, http.StatusNotFound, h.resolvers)
	return false
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	view, err := h.service.loadConsole(httpx.RequestContext(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := pagerender.WritePage(w, r, h.resolvers, pagerender.Page{
		Title:    "Admin",
		Fragment: webtemplates.AdminPage(view.Projects, view.Announcements),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	if err := h.service.createProject(httpx.RequestContext(r), projectInputFromForm(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	flashnotice.Write(w, r, flashnotice.NoticeSuccess("Project created."))
	httpx.WriteRedirect(w, r, routepath.Admin)
}

func (h handlers) handleProjectEditForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	projectID := r.PathValue("projectID")
	form, err := h.service.loadProjectForm(httpx.RequestContext(r), projectID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	form.Action = routepath.AdminProjectUpdate(projectID)
	if err := pagerender.WritePage(w, r, h.resolvers, pagerender.Page{
		Title:    "Edit project",
		Fragment: webtemplates.AdminProjectFormPage(form),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	if err := h.service.updateProject(httpx.RequestContext(r), r.PathValue("projectID"), projectInputFromForm(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	flashnotice.Write(w, r, flashnotice.NoticeSuccess("Project updated."))
	httpx.WriteRedirect(w, r, routepath.Admin)
}

func (h handlers) handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	if err := h.service.deleteProject(httpx.RequestContext(r), r.PathValue("projectID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	flashnotice.Write(w, r, flashnotice.NoticeSuccess("Project deleted."))
	httpx.WriteRedirect(w, r, routepath.Admin)
}

func (h handlers) handleAnnouncementCreate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	if err := h.service.createAnnouncement(httpx.RequestContext(r), r.FormValue("title"), r.FormValue("body")); err != nil {
		h.writeError(w, r, err)
		return
	}
	flashnotice.Write(w, r, flashnotice.NoticeSuccess("Announcement published."))
	httpx.WriteRedirect(w, r, routepath.Admin)
}

func (h handlers) handleAnnouncementDelete(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	if err := h.service.deleteAnnouncement(httpx.RequestContext(r), r.PathValue("announcementID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	flashnotice.Write(w, r, flashnotice.NoticeSuccess("Announcement deleted."))
	httpx.WriteRedirect(w, r, routepath.Admin)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, h.resolvers)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.resolvers)
}

func projectInputFromForm(r *http.Request) ProjectInput {
	return ProjectInput{
		Title:    r.FormValue("title"),
		Summary:  r.FormValue("summary"),
		Body:     r.FormValue("body"),
		MediaURL: r.FormValue("media_url"),
		Status:   r.FormValue("status"),
	}
}
