package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Project is a full project record.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Body         string    `json:"body"`
	MediaURL     string    `json:"media_url"`
	Status       string    `json:"status"`
	LikeCount    uint      `json:"like_count"`
	DislikeCount uint      `json:"dislike_count"`
	CommentCount uint      `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectSummary is the feed-list shape of a project.
type ProjectSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	MediaURL     string `json:"media_url"`
	Status       string `json:"status"`
	LikeCount    uint   `json:"like_count"`
	DislikeCount uint   `json:"dislike_count"`
	CommentCount uint   `json:"comment_count"`
}

// ProjectPage is one cursor page of project summaries.
type ProjectPage struct {
	Projects   []ProjectSummary `json:"projects"`
	NextCursor string           `json:"next_cursor"`
}

// ListProjects fetches one page of the project stream. An empty cursor
// requests the first page.
func (c *Client) ListProjects(ctx context.Context, cursor string) (ProjectPage, error) {
	query := url.Values{}
	if cursor = strings.TrimSpace(cursor); cursor != "" {
		query.Set("cursor", cursor)
	}
	var page ProjectPage
	if err := c.doJSON(ctx, http.MethodGet, "/projects", query, nil, &page); err != nil {
		return ProjectPage{}, err
	}
	return page, nil
}

// GetProject fetches one project by id.
func (c *Client) GetProject(ctx context.Context, projectID string) (Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return Project{}, fmt.Errorf("project id is required")
	}
	var project Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID), nil, nil, &project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// ProjectInput is the admin create/update payload.
type ProjectInput struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Body     string `json:"body"`
	MediaURL string `json:"media_url"`
	Status   string `json:"status"`
}

// CreateProject creates a project and returns the stored record.
func (c *Client) CreateProject(ctx context.Context, input ProjectInput) (Project, error) {
	var project Project
	if err := c.doJSON(ctx, http.MethodPost, "/projects", nil, input, &project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// UpdateProject updates a project and returns the stored record.
func (c *Client) UpdateProject(ctx context.Context, projectID string, input ProjectInput) (Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return Project{}, fmt.Errorf("project id is required")
	}
	var project Project
	if err := c.doJSON(ctx, http.MethodPatch, "/projects/"+url.PathEscape(projectID), nil, input, &project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return fmt.Errorf("project id is required")
	}
	return c.doJSON(ctx, http.MethodDelete, "/projects/"+url.PathEscape(projectID), nil, nil, nil)
}
