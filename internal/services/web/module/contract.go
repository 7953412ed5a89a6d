// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Viewer contains user-facing chrome data for authenticated pages.
type Viewer struct {
	DisplayName string
	IsAdmin     bool
}

// ResolveViewer resolves page chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request carries a valid session.
type ResolveSignedIn func(*http.Request) bool

// ResolveViewerID resolves the authenticated viewer id for a request.
type ResolveViewerID func(*http.Request) string

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Resolvers carries request-scoped resolver functions derived from the
// session resolver. The server constructs these after building the session
// layer and passes them to modules at mount time.
type Resolvers struct {
	Viewer   ResolveViewer
	SignedIn ResolveSignedIn
	ViewerID ResolveViewerID
	Language ResolveLanguage
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
