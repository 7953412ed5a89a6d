package admin

import (
	"context"
	"strings"

	apperrors "github.com/opencivica/civica/internal/services/web/platform/errors"
	webtemplates "github.com/opencivica/civica/internal/services/web/templates"
)

// ProjectInput carries create and update form fields.
type ProjectInput struct {
	Title    string
	Summary  string
	Body     string
	MediaURL string
	Status   string
}

// ProjectRecord is one managed project.
type ProjectRecord struct {
	ID       string
	Title    string
	Summary  string
	Body     string
	MediaURL string
	Status   string
}

// AnnouncementRecord is one managed announcement.
type AnnouncementRecord struct {
	ID    string
	Title string
}

// Gateway mutates projects and announcements upstream.
type Gateway interface {
	ManagedProjects(ctx context.Context) ([]ProjectRecord, error)
	ManagedProject(ctx context.Context, projectID string) (ProjectRecord, error)
	CreateProject(ctx context.Context, input ProjectInput) error
	UpdateProject(ctx context.Context, projectID string, input ProjectInput) error
	DeleteProject(ctx context.Context, projectID string) error
	ManagedAnnouncements(ctx context.Context) ([]AnnouncementRecord, error)
	CreateAnnouncement(ctx context.Context, title, body string) error
	DeleteAnnouncement(ctx context.Context, announcementID string) error
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	return service{gateway: gateway}
}

type consoleView struct {
	Projects      []webtemplates.AdminProjectRow
	Announcements []webtemplates.AdminAnnouncementRow
}

func (s service) loadConsole(ctx context.Context) (consoleView, error) {
	if s.gateway == nil {
		return consoleView{}, apperrors.E(apperrors.KindUnavailable, "the admin console is unavailable")
	}
	projects, err := s.gateway.ManagedProjects(ctx)
	if err != nil {
		return consoleView{}, err
	}
	announcements, err := s.gateway.ManagedAnnouncements(ctx)
	if err != nil {
		return consoleView{}, err
	}
	view := consoleView{}
	for _, project := range projects {
		view.Projects = append(view.Projects, webtemplates.AdminProjectRow{
			ID:     project.ID,
			Title:  project.Title,
			Status: project.Status,
		})
	}
	for _, announcement := range announcements {
		view.Announcements = append(view.Announcements, webtemplates.AdminAnnouncementRow{
			ID:    announcement.ID,
			Title: announcement.Title,
		})
	}
	return view, nil
}

func (s service) loadProjectForm(ctx context.Context, projectID string) (webtemplates.AdminProjectForm, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return webtemplates.AdminProjectForm{}, apperrors.E(apperrors.KindInvalidInput, "project id is required")
	}
	project, err := s.gateway.ManagedProject(ctx, projectID)
	if err != nil {
		return webtemplates.AdminProjectForm{}, err
	}
	return webtemplates.AdminProjectForm{
		Title:    project.Title,
		Summary:  project.Summary,
		Body:     project.Body,
		MediaURL: project.MediaURL,
		Status:   project.Status,
	}, nil
}

func (s service) createProject(ctx context.Context, input ProjectInput) error {
	normalized, err := normalizeProjectInput(input)
	if err != nil {
		return err
	}
	return s.gateway.CreateProject(ctx, normalized)
}

func (s service) updateProject(ctx context.Context, projectID string, input ProjectInput) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "project id is required")
	}
	normalized, err := normalizeProjectInput(input)
	if err != nil {
		return err
	}
	return s.gateway.UpdateProject(ctx, projectID, normalized)
}

func (s service) deleteProject(ctx context.Context, projectID string) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "project id is required")
	}
	return s.gateway.DeleteProject(ctx, projectID)
}

func (s service) createAnnouncement(ctx context.Context, title, body string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperrors.E(apperrors.KindInvalidInput, "announcement title is required")
	}
	return s.gateway.CreateAnnouncement(ctx, title, strings.TrimSpace(body))
}

func (s service) deleteAnnouncement(ctx context.Context, announcementID string) error {
	announcementID = strings.TrimSpace(announcementID)
	if announcementID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "announcement id is required")
	}
	return s.gateway.DeleteAnnouncement(ctx, announcementID)
}

func normalizeProjectInput(input ProjectInput) (ProjectInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return ProjectInput{}, apperrors.E(apperrors.KindInvalidInput, "project title is required")
	}
	input.Summary = strings.TrimSpace(input.Summary)
	input.Body = strings.TrimSpace(input.Body)
	input.MediaURL = strings.TrimSpace(input.MediaURL)
	input.Status = strings.TrimSpace(input.Status)
	return input, nil
}
