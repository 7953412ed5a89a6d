package dashboard

import (
	"context"

	apperrors "github.com/opencivica/civica/internal/services/web/platform/errors"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

// Stats carries the engagement aggregates rendered on the dashboard.
type Stats struct {
	ProjectCount  uint
	ReactionCount uint
	CommentCount  uint
	LikeCount     uint
	DislikeCount  uint
}

// StatsGateway loads the engagement aggregates.
type StatsGateway interface {
	EngagementStats(ctx context.Context) (Stats, error)
}

type service struct {
	stats StatsGateway
}

func newService(stats StatsGateway) service {
	return service{stats: stats}
}

func (s service) loadStats(ctx context.Context) (webtemplates.StatsView, error) {
	if s.stats == nil {
		return webtemplates.StatsView{}, apperrors.E(apperrors.KindUnavailable, "dashboard statistics are unavailable")
	}
	stats, err := s.stats.EngagementStats(ctx)
	if err != nil {
		return webtemplates.StatsView{}, err
	}
	return webtemplates.StatsView{
		ProjectCount:  stats.ProjectCount,
		ReactionCount: stats.ReactionCount,
		CommentCount:  stats.CommentCount,
		LikeCount:     stats.LikeCount,
		DislikeCount:  stats.DislikeCount,
	}, nil
}
