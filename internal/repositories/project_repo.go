package repositories

import (
	"context"

	"portfolio/internal/models"
)

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.ProjectSummary, error)
}
