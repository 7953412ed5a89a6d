// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                         = "/"
	Login                        = "/login"
	Logout                       = "/logout"
	Health                       = "/up"
	Projects                     = "/projects"
	ProjectsMore                 = "/projects/more"
	ProjectsReload               = "/projects/reload"
	ProjectsPrefix               = "/projects/"
	ProjectPattern               = ProjectsPrefix + "{projectID}"
	ProjectReactionPattern       = ProjectsPrefix + "{projectID}/reactions/{kind}"
	ProjectCommentsPattern       = ProjectsPrefix + "{projectID}/comments"
	ProjectCommentLikePattern    = ProjectsPrefix + "{projectID}/comments/{commentID}/like"
	ProjectCommentDeletePattern  = ProjectsPrefix + "{projectID}/comments/{commentID}/delete"
	Dashboard                    = "/dashboard"
	DashboardPrefix              = "/dashboard/"
	Contacts                     = "/contacts"
	ContactsPrefix               = "/contacts/"
	Announcements                = "/announcements"
	AnnouncementsPrefix          = "/announcements/"
	Admin                        = "/admin"
	AdminPrefix                  = "/admin/"
	AdminProjects                = "/admin/projects"
	AdminProjectsPrefix          = "/admin/projects/"
	AdminProjectEditPattern      = AdminProjectsPrefix + "{projectID}/edit"
	AdminProjectUpdatePattern    = AdminProjectsPrefix + "{projectID}/update"
	AdminProjectDeletePattern    = AdminProjectsPrefix + "{projectID}/delete"
	AdminAnnouncements           = "/admin/announcements"
	AdminAnnouncementsPrefix     = "/admin/announcements/"
	AdminAnnouncementDelete      = AdminAnnouncementsPrefix + "{announcementID}/delete"
	CommentOrderQueryKey         = "order"
	CommentCountQueryKey         = "count"
	CommentCountMore             = "more"
	ContactsOrderByQueryKey      = "order_by"
)

// Project returns the project detail route.
func Project(projectID string) string {
	return ProjectsPrefix + escapeSegment(projectID)
}

// ProjectReaction returns the project reaction toggle route for a kind.
func ProjectReaction(projectID string, kind string) string {
	return Project(projectID) + "/reactions/" + escapeSegment(kind)
}

// ProjectComments returns the project comments fragment route.
func ProjectComments(projectID string) string {
	return Project(projectID) + "/comments"
}

// ProjectCommentsOrdered returns the project comments route with an order.
func ProjectCommentsOrdered(projectID string, order string) string {
	order = strings.TrimSpace(order)
	if order == "" {
		return ProjectComments(projectID)
	}
	return ProjectComments(projectID) + "?" + CommentOrderQueryKey + "=" + url.QueryEscape(order)
}

// ProjectCommentLike returns the comment like-toggle route.
func ProjectCommentLike(projectID string, commentID string) string {
	return ProjectComments(projectID) + "/" + escapeSegment(commentID) + "/like"
}

// ProjectCommentDelete returns the comment delete route.
func ProjectCommentDelete(projectID string, commentID string) string {
	return ProjectComments(projectID) + "/" + escapeSegment(commentID) + "/delete"
}

// AdminProjectEdit returns the admin project edit-form route.
func AdminProjectEdit(projectID string) string {
	return AdminProjectsPrefix + escapeSegment(projectID) + "/edit"
}

// AdminProjectUpdate returns the admin project update route.
func AdminProjectUpdate(projectID string) string {
	return AdminProjectsPrefix + escapeSegment(projectID) + "/update"
}

// AdminProjectDelete returns the admin project delete route.
func AdminProjectDelete(projectID string) string {
	return AdminProjectsPrefix + escapeSegment(projectID) + "/delete"
}

// AdminAnnouncementDeleteFor returns the admin announcement delete route.
func AdminAnnouncementDeleteFor(announcementID string) string {
	return AdminAnnouncementsPrefix + escapeSegment(announcementID) + "/delete"
}

// ContactsOrdered returns the contact directory route with a sort order.
func ContactsOrdered(orderBy string) string {
	orderBy = strings.TrimSpace(orderBy)
	if orderBy == "" {
		return Contacts
	}
	return Contacts + "?" + ContactsOrderByQueryKey + "=" + url.QueryEscape(orderBy)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
