package services

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ProjectInput is the body of a project create request.
type ProjectInput struct {
	Title       string            `json:"title" validate:"required,max=255"`
	Description string            `json:"description" validate:"required"`
	Tech        models.StringList `json:"tech" validate:"required,min=1"`
	ImageURL    *string           `json:"imageUrl"`
	GithubURL   *string           `json:"githubUrl"`
	LiveURL     *string           `json:"liveUrl"`
	Featured    bool              `json:"featured"`
}

// ProjectPatch is the body of a project update request. Nil fields are
// left unchanged.
type ProjectPatch struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Tech        *models.StringList `json:"tech"`
	ImageURL    *string            `json:"imageUrl"`
	GithubURL   *string            `json:"githubUrl"`
	LiveURL     *string            `json:"liveUrl"`
	Featured    *bool              `json:"featured"`
}

// ProjectService handles business logic related to projects.
type ProjectService struct {
	repo     repositories.ProjectRepository
	validate *validator.Validate
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo:     repo,
		validate: newValidator(),
	}
}

// GetAllProjects retrieves all projects, newest first.
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.GetAll(ctx)
}

// GetProjectByID retrieves a single project by its ID.
func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Project", id)
	}
	return project, nil
}

// CreateProject validates in and stores a new project.
func (s *ProjectService) CreateProject(ctx context.Context, in ProjectInput) (*models.Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       in.Title,
		Description: in.Description,
		Tech:        in.Tech,
		ImageURL:    optionalText(in.ImageURL),
		GithubURL:   optionalText(in.GithubURL),
		LiveURL:     optionalText(in.LiveURL),
		Featured:    in.Featured,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProject applies the non-nil fields of patch to project id.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Project", id)
	}

	if patch.Title != nil {
		if err := requireText("title", patch.Title); err != nil {
			return nil, err
		}
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		if err := requireText("description", patch.Description); err != nil {
			return nil, err
		}
		project.Description = *patch.Description
	}
	if patch.Tech != nil {
		if len(*patch.Tech) == 0 {
			return nil, &ValidationError{Message: MsgMissingFields, Fields: map[string]string{"tech": "Field 'tech' failed on the 'min' tag"}}
		}
		project.Tech = *patch.Tech
	}
	if patch.ImageURL != nil {
		project.ImageURL = optionalText(patch.ImageURL)
	}
	if patch.GithubURL != nil {
		project.GithubURL = optionalText(patch.GithubURL)
	}
	if patch.LiveURL != nil {
		project.LiveURL = optionalText(patch.LiveURL)
	}
	if patch.Featured != nil {
		project.Featured = *patch.Featured
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, notFound(err, "Project", id)
	}
	return project, nil
}

// DeleteProject removes project id and returns it as it was before deletion.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Project", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, notFound(err, "Project", id)
	}
	return project, nil
}
