package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// AdminProjectRow is one project row in the admin console.
type AdminProjectRow struct {
	ID     string
	Title  string
	Status string
}

// AdminAnnouncementRow is one announcement row in the admin console.
type AdminAnnouncementRow struct {
	ID    string
	Title string
}

// AdminPage renders the CRUD console for projects and announcements.
func AdminPage(projects []AdminProjectRow, announcements []AdminAnnouncementRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="admin"><h1>Admin</h1><h2>Projects</h2><table><tbody>`); err != nil {
			return err
		}
		for _, project := range projects {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>`+
					`<a href="/admin/projects/%s/edit">Edit</a>`+
					`<form method="post" action="/admin/projects/%s/delete"><button>Delete</button></form>`+
					`</td></tr>`,
				templ.EscapeString(project.Title),
				templ.EscapeString(project.Status),
				templ.EscapeString(project.ID),
				templ.EscapeString(project.ID),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
			return err
		}
		if err := renderProjectForm(w, AdminProjectForm{Action: "/admin/projects"}); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<h2>Announcements</h2><table><tbody>`); err != nil {
			return err
		}
		for _, announcement := range announcements {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td><form method="post" action="/admin/announcements/%s/delete"><button>Delete</button></form></td></tr>`,
				templ.EscapeString(announcement.Title),
				templ.EscapeString(announcement.ID),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w,
			`</tbody></table>`+
				`<form method="post" action="/admin/announcements">`+
				`<label>Title<input name="title" required></label>`+
				`<label>Body<textarea name="body"></textarea></label>`+
				`<button type="submit">Publish</button></form></section>`,
		)
		return err
	})
}

// AdminProjectForm is the create/edit form view model.
type AdminProjectForm struct {
	Action   string
	Title    string
	Summary  string
	Body     string
	MediaURL string
	Status   string
}

// AdminProjectFormPage renders the standalone project edit form.
func AdminProjectFormPage(form AdminProjectForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="admin"><h1>Edit project</h1>`); err != nil {
			return err
		}
		if err := renderProjectForm(w, form); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func renderProjectForm(w io.Writer, form AdminProjectForm) error {
	_, err := fmt.Fprintf(w,
		`<form method="post" action="%s">`+
			`<label>Title<input name="title" value="%s" required></label>`+
			`<label>Summary<input name="summary" value="%s"></label>`+
			`<label>Body<textarea name="body">%s</textarea></label>`+
			`<label>Media URL<input name="media_url" value="%s"></label>`+
			`<label>Status<input name="status" value="%s"></label>`+
			`<button type="submit">Save</button></form>`,
		templ.EscapeString(form.Action),
		templ.EscapeString(form.Title),
		templ.EscapeString(form.Summary),
		templ.EscapeString(form.Body),
		templ.EscapeString(form.MediaURL),
		templ.EscapeString(form.Status),
	)
	return err
}
