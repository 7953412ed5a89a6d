package templates

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// FeedCard is one project card in the feed grid.
type FeedCard struct {
	ID           string
	Title        string
	MediaURL     string
	Bucket       string
	LikeCount    uint
	DislikeCount uint
	CommentCount uint
}

// FeedPage renders the column grid plus the load-more sentinel.
func FeedPage(columns [][]FeedCard, exhausted bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="feed" id="feed"><div class="feed-columns">`); err != nil {
			return err
		}
		for _, column := range columns {
			if _, err := io.WriteString(w, `<div class="feed-column">`); err != nil {
				return err
			}
			for _, card := range column {
				if err := renderFeedCard(w, card); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		if !exhausted {
			if _, err := io.WriteString(w,
				`<div id="feed-sentinel" hx-get="/projects/more" hx-trigger="revealed" hx-target="#feed" hx-swap="outerHTML"></div>`,
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func renderFeedCard(w io.Writer, card FeedCard) error {
	_, err := fmt.Fprintf(w,
		`<article class="feed-card feed-card-%s"><a href="/projects/%s">`+
			`<img src="%s" alt="" loading="lazy"><h2>%s</h2></a>`+
			`<footer><span>%d</span><span>%d</span><span>%d comments</span></footer></article>`,
		templ.EscapeString(card.Bucket),
		templ.EscapeString(card.ID),
		templ.EscapeString(card.MediaURL),
		templ.EscapeString(card.Title),
		card.LikeCount, card.DislikeCount, card.CommentCount,
	)
	return err
}

// ProjectView is the detail page view model.
type ProjectView struct {
	ID            string
	Title         string
	Body          string
	MediaURL      string
	Status        string
	LikeCount     uint
	DislikeCount  uint
	CommentCount  uint
	ViewerKind    string
	TogglePending bool
}

// ProjectPage renders the project detail with vote controls.
func ProjectPage(view ProjectView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<article class="project"><h1>%s</h1><p class="status">%s</p><img src="%s" alt="">`+
				`<div class="project-body">%s</div>`,
			templ.EscapeString(view.Title),
			templ.EscapeString(view.Status),
			templ.EscapeString(view.MediaURL),
			templ.EscapeString(view.Body),
		); err != nil {
			return err
		}
		if err := renderVoteControls(w, view); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<div id="comments" hx-get="/projects/%s/comments" hx-trigger="load" hx-swap="innerHTML"></div></article>`,
			templ.EscapeString(view.ID),
		)
		return err
	})
}

func renderVoteControls(w io.Writer, view ProjectView) error {
	disabled := ""
	if view.TogglePending {
		disabled = " disabled"
	}
	likeClass := "vote"
	dislikeClass := "vote"
	switch view.ViewerKind {
	case "LIKE":
		likeClass = "vote vote-active"
	case "DISLIKE":
		dislikeClass = "vote vote-active"
	}
	_, err := fmt.Fprintf(w,
		`<div class="vote-controls">`+
			`<button class="%s"%s hx-post="/projects/%s/reactions/like" hx-target="closest article">Approve %d</button>`+
			`<button class="%s"%s hx-post="/projects/%s/reactions/dislike" hx-target="closest article">Disapprove %d</button>`+
			`</div>`,
		likeClass, disabled, templ.EscapeString(view.ID), view.LikeCount,
		dislikeClass, disabled, templ.EscapeString(view.ID), view.DislikeCount,
	)
	return err
}

// CommentView is one rendered thread entry.
type CommentView struct {
	ID             string
	Author         string
	Content        string
	CreatedAt      time.Time
	LikeCount      uint
	ViewerHasLiked bool
	CanDelete      bool
	Replies        []CommentView
}

// CommentsFragment renders the disclosed window of a ranked thread. A
// nextCount of zero means the thread is fully disclosed and no sentinel is
// rendered.
func CommentsFragment(projectID, order string, comments []CommentView, nextCount int, canComment bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := renderOrderPicker(w, projectID, order); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<ol class="comments">`); err != nil {
			return err
		}
		for _, comment := range comments {
			if err := renderComment(w, projectID, order, comment, true); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ol>`); err != nil {
			return err
		}
		if nextCount > 0 {
			if _, err := fmt.Fprintf(w,
				`<div id="comments-sentinel" hx-get="/projects/%s/comments?order=%s&count=%d" hx-trigger="revealed" hx-target="#comments" hx-swap="innerHTML"></div>`,
				templ.EscapeString(projectID), templ.EscapeString(order), nextCount,
			); err != nil {
				return err
			}
		}
		if canComment {
			if _, err := fmt.Fprintf(w,
				`<form class="comment-form" hx-post="/projects/%s/comments" hx-target="#comments" hx-swap="innerHTML">`+
					`<input type="hidden" name="order" value="%s">`+
					`<label>Add a comment<textarea name="content" required></textarea></label>`+
					`<button type="submit">Post</button></form>`,
				templ.EscapeString(projectID), templ.EscapeString(order),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// CommentLikeButton renders the self-swapping like control for one comment.
// Toggling a like must not reorder the visible thread, so the control swaps
// only itself.
func CommentLikeButton(projectID, commentID string, likeCount uint, liked bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		likeClass := "comment-like"
		if liked {
			likeClass = "comment-like comment-like-active"
		}
		_, err := fmt.Fprintf(w,
			`<button class="%s" hx-post="/projects/%s/comments/%s/like" hx-target="this" hx-swap="outerHTML">Like %d</button>`,
			likeClass, templ.EscapeString(projectID), templ.EscapeString(commentID), likeCount,
		)
		return err
	})
}

func renderOrderPicker(w io.Writer, projectID, order string) error {
	if _, err := io.WriteString(w, `<nav class="comment-order">`); err != nil {
		return err
	}
	for _, candidate := range []string{"relevant", "top", "latest", "oldest"} {
		class := "order"
		if candidate == order {
			class = "order order-active"
		}
		if _, err := fmt.Fprintf(w,
			`<a class="%s" hx-get="/projects/%s/comments?order=%s" hx-target="#comments" hx-swap="innerHTML">%s</a>`,
			class, templ.EscapeString(projectID), candidate, candidate,
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav>`)
	return err
}

func renderComment(w io.Writer, projectID, order string, comment CommentView, withReplies bool) error {
	if _, err := fmt.Fprintf(w,
		`<li class="comment"><header><span class="author">%s</span><time datetime="%s">%s</time></header>`+
			`<div class="comment-body">%s</div>`,
		templ.EscapeString(comment.Author),
		comment.CreatedAt.UTC().Format(time.RFC3339),
		comment.CreatedAt.UTC().Format("Jan 2, 2006"),
		templ.EscapeString(comment.Content),
	); err != nil {
		return err
	}
	like := CommentLikeButton(projectID, comment.ID, comment.LikeCount, comment.ViewerHasLiked)
	if err := like.Render(context.Background(), w); err != nil {
		return err
	}
	if comment.CanDelete {
		if _, err := fmt.Fprintf(w,
			`<form class="comment-delete" hx-post="/projects/%s/comments/%s/delete" hx-target="#comments" hx-swap="innerHTML">`+
				`<input type="hidden" name="order" value="%s"><button>Delete</button></form>`,
			templ.EscapeString(projectID), templ.EscapeString(comment.ID), templ.EscapeString(order),
		); err != nil {
			return err
		}
	}
	if withReplies && len(comment.Replies) > 0 {
		if _, err := io.WriteString(w, `<ol class="replies">`); err != nil {
			return err
		}
		for _, reply := range comment.Replies {
			if err := renderComment(w, projectID, order, reply, false); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ol>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</li>`)
	return err
}

// StatsView is the dashboard aggregates view model.
type StatsView struct {
	ProjectCount  uint
	ReactionCount uint
	CommentCount  uint
	LikeCount     uint
	DislikeCount  uint
}

// DashboardPage renders the aggregate statistics cards.
func DashboardPage(stats StatsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="dashboard"><h1>Dashboard</h1><dl class="stats">`+
				`<div><dt>Projects</dt><dd>%d</dd></div>`+
				`<div><dt>Reactions</dt><dd>%d</dd></div>`+
				`<div><dt>Comments</dt><dd>%d</dd></div>`+
				`<div><dt>Approvals</dt><dd>%d</dd></div>`+
				`<div><dt>Disapprovals</dt><dd>%d</dd></div>`+
				`</dl></section>`,
			stats.ProjectCount, stats.ReactionCount, stats.CommentCount, stats.LikeCount, stats.DislikeCount,
		)
		return err
	})
}

// ContactRow is one directory entry row.
type ContactRow struct {
	Name         string
	Organization string
	Role         string
	Email        string
	Phone        string
}

// ContactsPage renders the sortable contact directory.
func ContactsPage(contacts []ContactRow, orderBy string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="contacts"><h1>Contacts</h1><table><thead><tr>`); err != nil {
			return err
		}
		for _, column := range []string{"name", "organization", "role"} {
			if _, err := fmt.Fprintf(w,
				`<th><a href="/contacts?order_by=%s">%s</a></th>`,
				column, strings.ToUpper(column[:1])+column[1:],
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<th>Email</th><th>Phone</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, contact := range contacts {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(contact.Name),
				templ.EscapeString(contact.Organization),
				templ.EscapeString(contact.Role),
				templ.EscapeString(contact.Email),
				templ.EscapeString(contact.Phone),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// AnnouncementView is one timeline entry.
type AnnouncementView struct {
	ID          string
	Title       string
	Body        string
	PublishedAt time.Time
}

// AnnouncementsPage renders the announcement timeline, newest first.
func AnnouncementsPage(announcements []AnnouncementView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="announcements"><h1>Announcements</h1><ol class="timeline">`); err != nil {
			return err
		}
		for _, a := range announcements {
			if _, err := fmt.Fprintf(w,
				`<li><time datetime="%s">%s</time><h2>%s</h2><p>%s</p></li>`,
				a.PublishedAt.UTC().Format(time.RFC3339),
				a.PublishedAt.UTC().Format("Jan 2, 2006"),
				templ.EscapeString(a.Title),
				templ.EscapeString(a.Body),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ol></section>`)
		return err
	})
}

// HomePage renders the public landing content.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<section class="home"><h1>Shape your city</h1>`+
				`<p>Browse civic projects, cast your vote, and join the conversation.</p>`+
				`<a class="cta" href="/projects">Explore projects</a></section>`,
		)
		return err
	})
}

// LoginPage renders the session entry form.
func LoginPage(errorMessage string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="login"><h1>Sign in</h1>`); err != nil {
			return err
		}
		if msg := strings.TrimSpace(errorMessage); msg != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, templ.EscapeString(msg)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w,
			`<form method="post" action="/login">`+
				`<label>Access token<input type="password" name="token" required></label>`+
				`<button type="submit">Sign in</button></form></section>`,
		)
		return err
	})
}
