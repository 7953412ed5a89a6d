package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Announcement is one timeline entry.
type Announcement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"published_at"`
}

// ListAnnouncements fetches the announcement timeline, newest first.
func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	var resp struct {
		Announcements []Announcement `json:"announcements"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/announcements", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Announcements, nil
}

// AnnouncementInput is the admin create payload.
type AnnouncementInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CreateAnnouncement publishes an announcement and returns the stored record.
func (c *Client) CreateAnnouncement(ctx context.Context, input AnnouncementInput) (Announcement, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Announcement{}, fmt.Errorf("announcement title is required")
	}
	var announcement Announcement
	if err := c.doJSON(ctx, http.MethodPost, "/announcements", nil, input, &announcement); err != nil {
		return Announcement{}, err
	}
	return announcement, nil
}

// DeleteAnnouncement removes an announcement.
func (c *Client) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	announcementID = strings.TrimSpace(announcementID)
	if announcementID == "" {
		return fmt.Errorf("announcement id is required")
	}
	return c.doJSON(ctx, http.MethodDelete, "/announcements/"+url.PathEscape(announcementID), nil, nil, nil)
}
