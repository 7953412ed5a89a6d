package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Login != "/login" {
		t.Fatalf("Login = %q", Login)
	}
	if Logout != "/logout" {
		t.Fatalf("Logout = %q", Logout)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if Projects != "/projects" {
		t.Fatalf("Projects = %q", Projects)
	}
	if ProjectsMore != "/projects/more" {
		t.Fatalf("ProjectsMore = %q", ProjectsMore)
	}
	if ProjectsReload != "/projects/reload" {
		t.Fatalf("ProjectsReload = %q", ProjectsReload)
	}
	if Dashboard != "/dashboard" {
		t.Fatalf("Dashboard = %q", Dashboard)
	}
	if Contacts != "/contacts" {
		t.Fatalf("Contacts = %q", Contacts)
	}
	if Announcements != "/announcements" {
		t.Fatalf("Announcements = %q", Announcements)
	}
	if AdminPrefix != "/admin/" {
		t.Fatalf("AdminPrefix = %q", AdminPrefix)
	}
	if CommentOrderQueryKey != "order" {
		t.Fatalf("CommentOrderQueryKey = %q", CommentOrderQueryKey)
	}
	if CommentCountMore != "more" {
		t.Fatalf("CommentCountMore = %q", CommentCountMore)
	}
	if ContactsOrderByQueryKey != "order_by" {
		t.Fatalf("ContactsOrderByQueryKey = %q", ContactsOrderByQueryKey)
	}
}

func TestServeMuxPatternConstants(t *testing.T) {
	t.Parallel()

	if ProjectPattern != "/projects/{projectID}" {
		t.Fatalf("ProjectPattern = %q", ProjectPattern)
	}
	if ProjectReactionPattern != "/projects/{projectID}/reactions/{kind}" {
		t.Fatalf("ProjectReactionPattern = %q", ProjectReactionPattern)
	}
	if ProjectCommentsPattern != "/projects/{projectID}/comments" {
		t.Fatalf("ProjectCommentsPattern = %q", ProjectCommentsPattern)
	}
	if ProjectCommentLikePattern != "/projects/{projectID}/comments/{commentID}/like" {
		t.Fatalf("ProjectCommentLikePattern = %q", ProjectCommentLikePattern)
	}
	if ProjectCommentDeletePattern != "/projects/{projectID}/comments/{commentID}/delete" {
		t.Fatalf("ProjectCommentDeletePattern = %q", ProjectCommentDeletePattern)
	}
	if AdminProjectEditPattern != "/admin/projects/{projectID}/edit" {
		t.Fatalf("AdminProjectEditPattern = %q", AdminProjectEditPattern)
	}
	if AdminAnnouncementDelete != "/admin/announcements/{announcementID}/delete" {
		t.Fatalf("AdminAnnouncementDelete = %q", AdminAnnouncementDelete)
	}
}

func TestProjectRouteBuilders(t *testing.T) {
	t.Parallel()

	if got := Project("proj-1"); got != "/projects/proj-1" {
		t.Fatalf("Project() = %q", got)
	}
	if got := ProjectReaction("proj-1", "like"); got != "/projects/proj-1/reactions/like" {
		t.Fatalf("ProjectReaction() = %q", got)
	}
	if got := ProjectComments("proj-1"); got != "/projects/proj-1/comments" {
		t.Fatalf("ProjectComments() = %q", got)
	}
	if got := ProjectCommentsOrdered("proj-1", "top"); got != "/projects/proj-1/comments?order=top" {
		t.Fatalf("ProjectCommentsOrdered() = %q", got)
	}
	if got := ProjectCommentsOrdered("proj-1", "  "); got != "/projects/proj-1/comments" {
		t.Fatalf("ProjectCommentsOrdered() empty = %q", got)
	}
	if got := ProjectCommentLike("proj-1", "c-1"); got != "/projects/proj-1/comments/c-1/like" {
		t.Fatalf("ProjectCommentLike() = %q", got)
	}
	if got := ProjectCommentDelete("proj-1", "c-1"); got != "/projects/proj-1/comments/c-1/delete" {
		t.Fatalf("ProjectCommentDelete() = %q", got)
	}
}

func TestAdminAndDirectoryRouteBuilders(t *testing.T) {
	t.Parallel()

	if got := AdminProjectEdit("proj-1"); got != "/admin/projects/proj-1/edit" {
		t.Fatalf("AdminProjectEdit() = %q", got)
	}
	if got := AdminProjectUpdate("proj-1"); got != "/admin/projects/proj-1/update" {
		t.Fatalf("AdminProjectUpdate() = %q", got)
	}
	if got := AdminProjectDelete("proj-1"); got != "/admin/projects/proj-1/delete" {
		t.Fatalf("AdminProjectDelete() = %q", got)
	}
	if got := AdminAnnouncementDeleteFor("ann-1"); got != "/admin/announcements/ann-1/delete" {
		t.Fatalf("AdminAnnouncementDeleteFor() = %q", got)
	}
	if got := ContactsOrdered("name desc"); got != "/contacts?order_by=name+desc" {
		t.Fatalf("ContactsOrdered() = %q", got)
	}
	if got := ContactsOrdered(""); got != "/contacts" {
		t.Fatalf("ContactsOrdered() empty = %q", got)
	}
}

func TestRouteBuildersEscapeSegments(t *testing.T) {
	t.Parallel()

	if got := Project("proj/1"); got != "/projects/proj%2F1" {
		t.Fatalf("Project() escaped = %q", got)
	}
	if got := ProjectCommentLike("proj-1", "c/1"); got != "/projects/proj-1/comments/c%2F1/like" {
		t.Fatalf("ProjectCommentLike() escaped = %q", got)
	}
	if got := AdminProjectDelete("proj/1"); got != "/admin/projects/proj%2F1/delete" {
		t.Fatalf("AdminProjectDelete() escaped = %q", got)
	}
	if got := ProjectCommentsOrdered("proj-1", "top rated"); got != "/projects/proj-1/comments?order=top+rated" {
		t.Fatalf("ProjectCommentsOrdered() escaped = %q", got)
	}
}

func TestEscapeSegmentTrimsWhitespace(t *testing.T) {
	t.Parallel()

	if got := escapeSegment("  proj-1  "); got != "proj-1" {
		t.Fatalf("escapeSegment() = %q", got)
	}
	if got := escapeSegment("  "); got != "" {
		t.Fatalf("escapeSegment() empty = %q", got)
	}
}
