package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Contact is one directory entry.
type Contact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// ListContacts fetches the contact directory. orderBy is passed through
// verbatim; the caller validates it first.
func (c *Client) ListContacts(ctx context.Context, orderBy string) ([]Contact, error) {
	query := url.Values{}
	if orderBy = strings.TrimSpace(orderBy); orderBy != "" {
		query.Set("order_by", orderBy)
	}
	var resp struct {
		Contacts []Contact `json:"contacts"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/contacts", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Contacts, nil
}
