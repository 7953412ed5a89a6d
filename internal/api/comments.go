package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Comment is one thread entry as served by the remote API. Replies carry one
// nesting level; a reply's own replies list is always empty.
type Comment struct {
	ID             string    `json:"id"`
	Author         string    `json:"author"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	LikeCount      uint      `json:"like_count"`
	ViewerHasLiked bool      `json:"viewer_has_liked"`
	ParentID       string    `json:"parent_id,omitempty"`
	Replies        []Comment `json:"replies,omitempty"`
}

// ListComments fetches the full comment set for a project. The API returns
// the whole thread; ranking and disclosure happen client-side.
func (c *Client) ListComments(ctx context.Context, projectID string) ([]Comment, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("project id is required")
	}
	var resp struct {
		Comments []Comment `json:"comments"`
	}
	path := "/projects/" + url.PathEscape(projectID) + "/comments"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// CommentInput is the create payload. ParentID is empty for top-level
// comments.
type CommentInput struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id,omitempty"`
}

// CreateComment posts a comment or reply and returns the stored record.
func (c *Client) CreateComment(ctx context.Context, projectID string, input CommentInput) (Comment, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return Comment{}, fmt.Errorf("project id is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return Comment{}, fmt.Errorf("comment content is required")
	}
	var comment Comment
	path := "/projects/" + url.PathEscape(projectID) + "/comments"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, input, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, projectID, commentID string) error {
	projectID = strings.TrimSpace(projectID)
	commentID = strings.TrimSpace(commentID)
	if projectID == "" || commentID == "" {
		return fmt.Errorf("project id and comment id are required")
	}
	path := "/projects/" + url.PathEscape(projectID) + "/comments/" + url.PathEscape(commentID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}
