package public

import (
	"context"
	"strings"

	apperrors "github.com/opencivica/civica/internal/services/web/platform/errors"
)

// SessionGateway exchanges an access token for a signed session value
// suitable for the session cookie.
type SessionGateway interface {
	StartSession(ctx context.Context, token string) (sessionValue string, err error)
}

type service struct {
	sessions SessionGateway
}

func newService(sessions SessionGateway) service {
	return service{sessions: sessions}
}

func (s service) signIn(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", apperrors.E(apperrors.KindInvalidInput, "an access token is required")
	}
	if s.sessions == nil {
		return "", apperrors.E(apperrors.KindUnavailable, "sign-in is unavailable")
	}
	sessionValue, err := s.sessions.StartSession(ctx, token)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(sessionValue) == "" {
		return "", apperrors.E(apperrors.KindUnauthorized, "the access token was not accepted")
	}
	return sessionValue, nil
}
