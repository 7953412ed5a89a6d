package announcements

import (
	"context"
	"sort"
	"time"

	apperrors "github.com/opencivica/civica/internal/services/web/platform/errors"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

// Announcement is one published entry.
type Announcement struct {
	ID          string
	Title       string
	Body        string
	PublishedAt time.Time
}

// AnnouncementGateway lists published announcements.
type AnnouncementGateway interface {
	Announcements(ctx context.Context) ([]Announcement, error)
}

type service struct {
	announcements AnnouncementGateway
}

func newService(announcements AnnouncementGateway) service {
	return service{announcements: announcements}
}

// listAnnouncements returns the timeline newest first regardless of the
// upstream order.
func (s service) listAnnouncements(ctx context.Context) ([]webtemplates.AnnouncementView, error) {
	if s.announcements == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "announcements are unavailable")
	}
	announcements, err := s.announcements.Announcements(ctx)
	if err != nil {
		return nil, err
	}
	ordered := append([]Announcement(nil), announcements...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[j].PublishedAt.Before(ordered[i].PublishedAt)
	})
	views := make([]webtemplates.AnnouncementView, 0, len(ordered))
	for _, announcement := range ordered {
		views = append(views, webtemplates.AnnouncementView{
			ID:          announcement.ID,
			Title:       announcement.Title,
			Body:        announcement.Body,
			PublishedAt: announcement.PublishedAt,
		})
	}
	return views, nil
}
