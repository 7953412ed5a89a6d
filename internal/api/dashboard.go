package api

import (
	"context"
	"net/http"
)

// DashboardStats is the read-only aggregate snapshot for the dashboard view.
type DashboardStats struct {
	ProjectCount  uint `json:"project_count"`
	ReactionCount uint `json:"reaction_count"`
	CommentCount  uint `json:"comment_count"`
	LikeCount     uint `json:"like_count"`
	DislikeCount  uint `json:"dislike_count"`
}

// GetDashboardStats fetches the aggregate statistics snapshot.
func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
