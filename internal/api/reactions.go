package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// UserReaction is one viewer's standing reaction within a project summary.
type UserReaction struct {
	UserID     string `json:"userId"`
	ReactionID string `json:"reactionId"`
	Type       string `json:"type"`
}

// ReactionSummary is the counted reaction state of a project.
type ReactionSummary struct {
	Likes         uint           `json:"likes"`
	Dislikes      uint           `json:"dislikes"`
	UserReactions []UserReaction `json:"userReactions"`
}

// GetProjectReactions fetches the reaction summary for a project.
func (c *Client) GetProjectReactions(ctx context.Context, projectID string) (ReactionSummary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ReactionSummary{}, fmt.Errorf("project id is required")
	}
	var summary ReactionSummary
	path := "/projects/" + url.PathEscape(projectID) + "/reactions"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &summary); err != nil {
		return ReactionSummary{}, err
	}
	return summary, nil
}

type reactionRequest struct {
	Type string `json:"type"`
}

type reactionResponse struct {
	ReactionID string `json:"reactionId"`
}

// CreateProjectReaction casts a new vote and returns the reaction id.
func (c *Client) CreateProjectReaction(ctx context.Context, projectID, kind string) (string, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return "", fmt.Errorf("project id is required")
	}
	var resp reactionResponse
	path := "/projects/" + url.PathEscape(projectID) + "/reactions"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, reactionRequest{Type: kind}, &resp); err != nil {
		return "", err
	}
	return resp.ReactionID, nil
}

// UpdateProjectReaction switches an existing vote's type in one request.
func (c *Client) UpdateProjectReaction(ctx context.Context, projectID, reactionID, kind string) error {
	projectID = strings.TrimSpace(projectID)
	reactionID = strings.TrimSpace(reactionID)
	if projectID == "" || reactionID == "" {
		return fmt.Errorf("project id and reaction id are required")
	}
	path := "/projects/" + url.PathEscape(projectID) + "/reactions/" + url.PathEscape(reactionID)
	return c.doJSON(ctx, http.MethodPatch, path, nil, reactionRequest{Type: kind}, nil)
}

// DeleteProjectReaction withdraws a vote.
func (c *Client) DeleteProjectReaction(ctx context.Context, projectID, reactionID string) error {
	projectID = strings.TrimSpace(projectID)
	reactionID = strings.TrimSpace(reactionID)
	if projectID == "" || reactionID == "" {
		return fmt.Errorf("project id and reaction id are required")
	}
	path := "/projects/" + url.PathEscape(projectID) + "/reactions/" + url.PathEscape(reactionID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

type commentToggleRequest struct {
	Type      string `json:"type"`
	CommentID string `json:"commentId"`
}

// ToggleCommentLike flips a comment like. The server resolves
// create-or-delete internally; callers only know the boolean outcome via the
// next comment-list fetch.
func (c *Client) ToggleCommentLike(ctx context.Context, projectID, commentID string) error {
	projectID = strings.TrimSpace(projectID)
	commentID = strings.TrimSpace(commentID)
	if projectID == "" || commentID == "" {
		return fmt.Errorf("project id and comment id are required")
	}
	path := "/projects/" + url.PathEscape(projectID) + "/reactions/toggle"
	return c.doJSON(ctx, http.MethodPost, path, nil, commentToggleRequest{Type: "LIKE", CommentID: commentID}, nil)
}
