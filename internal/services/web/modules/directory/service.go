package directory

import (
	"context"
	"strings"

	"go.einride.tech/aip/ordering"

	apperrors "github.com/opencivica/civica/internal/services/web/platform/errors"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

const defaultOrderBy = "name"

// orderablePaths are the AIP-132 order_by fields the directory accepts.
var orderablePaths = []string{"name", "organization", "role"}

// Contact is one directory entry.
type Contact struct {
	Name         string
	Organization string
	Role         string
	Email        string
	Phone        string
}

// ContactGateway lists directory contacts in a server-applied order.
type ContactGateway interface {
	Contacts(ctx context.Context, orderBy string) ([]Contact, error)
}

type service struct {
	contacts ContactGateway
}

func newService(contacts ContactGateway) service {
	return service{contacts: contacts}
}

type directoryView struct {
	Contacts []webtemplates.ContactRow
	OrderBy  string
}

func (s service) listContacts(ctx context.Context, rawOrderBy string) (directoryView, error) {
	if s.contacts == nil {
		return directoryView{}, apperrors.E(apperrors.KindUnavailable, "the contact directory is unavailable")
	}
	orderBy, err := parseOrderBy(rawOrderBy)
	if err != nil {
		return directoryView{}, err
	}
	contacts, err := s.contacts.Contacts(ctx, orderBy)
	if err != nil {
		return directoryView{}, err
	}
	rows := make([]webtemplates.ContactRow, 0, len(contacts))
	for _, contact := range contacts {
		rows = append(rows, webtemplates.ContactRow{
			Name:         contact.Name,
			Organization: contact.Organization,
			Role:         contact.Role,
			Email:        contact.Email,
			Phone:        contact.Phone,
		})
	}
	return directoryView{Contacts: rows, OrderBy: orderBy}, nil
}

// parseOrderBy validates an AIP-132 order_by expression against the
// orderable paths before it is forwarded upstream.
func parseOrderBy(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultOrderBy, nil
	}
	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(raw); err != nil {
		return "", apperrors.E(apperrors.KindInvalidInput, "order_by is not a valid ordering expression")
	}
	if err := orderBy.ValidateForPaths(orderablePaths...); err != nil {
		return "", apperrors.E(apperrors.KindInvalidInput, "order_by references an unknown field")
	}
	return raw, nil
}
