package web

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	module "github.com/opencivica/civica/internal/services/web/module"
	apperrors "github.com/opencivica/civica/internal/services/web/platform/errors"
	"github.com/opencivica/civica/internal/services/web/platform/i18n"
	"github.com/opencivica/civica/internal/services/web/platform/sessioncookie"
)

// sessionClaims is the signed payload carried by the session cookie. The
// subject is the viewer id.
type sessionClaims struct {
	DisplayName string `json:"name,omitempty"`
	Admin       bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// sessionPrincipal is the identity resolved from a validated session token.
type sessionPrincipal struct {
	ViewerID    string
	DisplayName string
	IsAdmin     bool
}

// sessionResolver validates session cookies and resolves viewer identity.
// Tokens are HS256-signed; the secret is shared with the identity provider
// that issues access tokens at login.
type sessionResolver struct {
	secret []byte
}

func newSessionResolver(secret []byte) sessionResolver {
	return sessionResolver{secret: secret}
}

func (r sessionResolver) parseToken(token string) (sessionPrincipal, bool) {
	token = strings.TrimSpace(token)
	if token == "" || len(r.secret) == 0 {
		return sessionPrincipal{}, false
	}
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil || !parsed.Valid {
		return sessionPrincipal{}, false
	}
	viewerID := strings.TrimSpace(claims.Subject)
	if viewerID == "" {
		return sessionPrincipal{}, false
	}
	return sessionPrincipal{
		ViewerID:    viewerID,
		DisplayName: strings.TrimSpace(claims.DisplayName),
		IsAdmin:     claims.Admin,
	}, true
}

func (r sessionResolver) resolveRequestPrincipal(request *http.Request) (sessionPrincipal, bool) {
	if request == nil {
		return sessionPrincipal{}, false
	}
	token, ok := sessioncookie.Read(request)
	if !ok {
		return sessionPrincipal{}, false
	}
	return r.parseToken(token)
}

// StartSession validates a submitted access token and returns it as the
// session cookie value. Invalid or foreign-signed tokens are rejected
// before a cookie is ever written.
func (r sessionResolver) StartSession(_ context.Context, token string) (string, error) {
	if _, ok := r.parseToken(token); !ok {
		return "", apperrors.E(apperrors.KindUnauthorized, "the access token was not accepted")
	}
	return strings.TrimSpace(token), nil
}

// resolvers derives the per-request resolver set modules consume.
func (r sessionResolver) resolvers() module.Resolvers {
	return module.Resolvers{
		Viewer: func(request *http.Request) module.Viewer {
			principal, ok := r.resolveRequestPrincipal(request)
			if !ok {
				return module.Viewer{}
			}
			name := principal.DisplayName
			if name == "" {
				name = principal.ViewerID
			}
			return module.Viewer{DisplayName: name, IsAdmin: principal.IsAdmin}
		},
		SignedIn: func(request *http.Request) bool {
			_, ok := r.resolveRequestPrincipal(request)
			return ok
		},
		ViewerID: func(request *http.Request) string {
			principal, _ := r.resolveRequestPrincipal(request)
			return principal.ViewerID
		},
		Language: func(request *http.Request) string {
			tag, _ := i18n.ResolveTag(request)
			return tag.String()
		},
	}
}
