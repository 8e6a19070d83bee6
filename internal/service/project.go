package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/folio/folio-go/internal/model"
)

// ProjectService manages portfolio projects.
type ProjectService struct {
	projects ProjectStore
	now      func() time.Time
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projects ProjectStore) *ProjectService {
	return &ProjectService{projects: projects, now: time.Now}
}

// ListPublished returns published projects in display order.
func (s *ProjectService) ListPublished(ctx context.Context) ([]model.Project, error) {
	projects, err := s.projects.ListPublished(ctx)
	if err != nil {
		return nil, storageErr("list projects", err)
	}
	return projects, nil
}

// Create validates and stores a new project.
func (s *ProjectService) Create(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Description) == "" || req.UserID == "" {
		return nil, ErrMissingFields
	}

	liveURL, githubURL := emptyToNil(req.LiveURL), emptyToNil(req.GithubURL)
	for _, u := range []*string{liveURL, githubURL} {
		if u != nil && !isWebURL(*u) {
			return nil, ErrInvalidURL
		}
	}

	p := &model.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: req.Description,
		Content:     emptyToNil(req.Content),
		Image:       emptyToNil(req.Image),
		ImageAlt:    emptyToNil(req.ImageAlt),
		Tags:        nonNil(req.Tags),
		Skills:      nonNil(req.Skills),
		Featured:    boolOr(req.Featured, false),
		LiveURL:     liveURL,
		GithubURL:   githubURL,
		Published:   boolOr(req.Published, true),
		CreatedAt:   s.now().UTC(),
		UserID:      req.UserID,
	}
	if req.Position != nil {
		p.Position = *req.Position
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, storageErr("create project", err)
	}
	return p, nil
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
