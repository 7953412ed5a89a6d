// Package templates renders the web UI as templ components.
package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// Viewer carries chrome state for the page header.
type Viewer struct {
	DisplayName string
	IsAdmin     bool
}

// Toast is a one-time notice rendered at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// Layout renders the full page shell around a fragment passed as children.
func Layout(title string, viewer Viewer, toast *Toast, lang string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			lang = "en"
		}
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body>`,
			templ.EscapeString(lang), templ.EscapeString(title),
		); err != nil {
			return err
		}
		if err := renderHeader(w, viewer); err != nil {
			return err
		}
		if toast != nil {
			if _, err := fmt.Fprintf(w,
				`<div class="toast toast-%s" role="status">%s</div>`,
				templ.EscapeString(toast.Kind), templ.EscapeString(toast.Message),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main id="main">`); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// MainFragment renders only the main region, used for HTMX swaps.
func MainFragment() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main id="main">`); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}

// ErrorState renders the shared error fragment for a status code.
func ErrorState(statusCode int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		text := http.StatusText(statusCode)
		if text == "" {
			text = http.StatusText(http.StatusInternalServerError)
		}
		_, err := fmt.Fprintf(w,
			`<section class="error-state"><h1>%d</h1><p>%s</p><a href="/">Back to the feed</a></section>`,
			statusCode, templ.EscapeString(text),
		)
		return err
	})
}

func renderHeader(w io.Writer, viewer Viewer) error {
	if _, err := io.WriteString(w,
		`<header class="site-header"><a class="brand" href="/">Civica</a><nav>`+
			`<a href="/projects">Projects</a>`+
			`<a href="/announcements">Announcements</a>`+
			`<a href="/contacts">Contacts</a>`,
	); err != nil {
		return err
	}
	name := strings.TrimSpace(viewer.DisplayName)
	if name == "" {
		if _, err := io.WriteString(w, `<a href="/login">Sign in</a>`); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, `<a href="/dashboard">Dashboard</a>`); err != nil {
			return err
		}
		if viewer.IsAdmin {
			if _, err := io.WriteString(w, `<a href="/admin">Admin</a>`); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<span class="viewer">%s</span><a href="/logout">Sign out</a>`, templ.EscapeString(name)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav></header>`)
	return err
}
