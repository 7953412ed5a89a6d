package cache

import "strings"

// Key prefixes group entries for fan-out invalidation. A prefix matches
// every parameterized key built by the constructor that shares it.
const (
	FeedPrefix          = "feed_page:"
	ProjectDetailPrefix = "project_detail:"
	ReactionsPrefix     = "project_reactions:"
	CommentsPrefix      = "project_comments:"
	DashboardPrefix     = "dashboard_stats"
	ContactsPrefix      = "contact_list"
	AnnouncementsPrefix = "announcement_list"
)

// FeedPageKey identifies one materialized feed page. The first page uses an
// empty cursor.
func FeedPageKey(cursor string) string {
	return FeedPrefix + "cursor:" + strings.TrimSpace(cursor)
}

// ProjectDetailKey identifies a single project detail payload.
func ProjectDetailKey(projectID string) string {
	return ProjectDetailPrefix + "id:" + strings.TrimSpace(projectID)
}

// ProjectReactionsKey identifies a project reaction aggregate payload.
func ProjectReactionsKey(projectID string) string {
	return ReactionsPrefix + "id:" + strings.TrimSpace(projectID)
}

// ProjectCommentsKey identifies a project comment list payload.
func ProjectCommentsKey(projectID string) string {
	return CommentsPrefix + "id:" + strings.TrimSpace(projectID)
}

// DashboardStatsKey identifies the dashboard aggregate payload.
func DashboardStatsKey() string {
	return DashboardPrefix
}

// ContactListKey identifies a contact directory payload for one ordering.
func ContactListKey(orderBy string) string {
	return ContactsPrefix + ":order:" + strings.TrimSpace(orderBy)
}

// AnnouncementListKey identifies the announcement timeline payload.
func AnnouncementListKey() string {
	return AnnouncementsPrefix
}
