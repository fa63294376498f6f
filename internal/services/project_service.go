package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/isdelr/portfolio-be/internal/cache"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/store"
)

// ProjectServiceProvider defines the interface for project services.
type ProjectServiceProvider interface {
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, input models.ProjectInput) (models.Project, error)
	UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
}

// ProjectService provides business logic for portfolio projects.
type ProjectService struct {
	projects store.Table[models.Project]
	cache    *cache.Cache
	events   EventServiceProvider
	now      func() time.Time
}

// NewProjectService creates a new ProjectService.
func NewProjectService(s store.Store, c *cache.Cache, events EventServiceProvider) *ProjectService {
	return &ProjectService{
		projects: s.Projects(),
		cache:    c,
		events:   events,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GetAllProjects returns every project, newest first. The returned slice is
// shared with the cache and must not be modified.
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return cache.Fetch(s.cache, cache.KeyProjects, func() ([]models.Project, error) {
		projects, err := s.projects.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		})
		return projects, nil
	})
}

// GetProjectByID retrieves a single project.
func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (models.Project, error) {
	project, ok, err := s.projects.Get(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	if !ok {
		return models.Project{}, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return project, nil
}

// CreateProject validates the input and stores a new project.
func (s *ProjectService) CreateProject(ctx context.Context, input models.ProjectInput) (models.Project, error) {
	if err := input.Validate(); err != nil {
		return models.Project{}, err
	}

	project := input.NewProject(store.NewID(), s.now())
	if err := s.projects.Insert(ctx, project.ID, project); err != nil {
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	s.cache.Invalidate(cache.KeyProjects)
	s.events.Publish(EventProjectCreated, project)
	return project, nil
}

// UpdateProject merges the supplied fields into an existing project.
// It never creates a project on a miss.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error) {
	if err := patch.Validate(); err != nil {
		return models.Project{}, err
	}

	project, ok, err := s.projects.Update(ctx, id, func(p *models.Project) {
		patch.Apply(p, s.now())
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	if !ok {
		return models.Project{}, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}

	s.cache.Invalidate(cache.KeyProjects)
	s.events.Publish(EventProjectUpdated, project)
	return project, nil
}

// DeleteProject removes a project and reports whether it existed.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) (bool, error) {
	removed, err := s.projects.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	if removed {
		s.cache.Invalidate(cache.KeyProjects)
		s.events.Publish(EventProjectDeleted, deletedPayload(id))
	}
	return removed, nil
}
