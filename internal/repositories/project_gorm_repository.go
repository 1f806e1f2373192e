package repositories

import (
	"context"
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// GORMProjectRepository is a GORM implementation of ProjectRepository.
type GORMProjectRepository struct {
	crud gormCRUD[models.Project]
}

// NewGORMProjectRepository creates a new instance of GORMProjectRepository.
func NewGORMProjectRepository(db *gorm.DB) *GORMProjectRepository {
	return &GORMProjectRepository{
		crud: gormCRUD[models.Project]{db: db, name: "project", orderBy: "created_at DESC"},
	}
}

// GetAll returns every project, newest first.
func (r *GORMProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	return r.crud.list(ctx)
}

// GetByID retrieves a single project by its ID.
func (r *GORMProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return r.crud.get(ctx, id)
}

// Create inserts a new project.
func (r *GORMProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.crud.create(ctx, project, &project.ID)
}

// Update overwrites an existing project.
func (r *GORMProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.crud.update(ctx, project, project.ID)
}

// Delete removes a project by its ID.
func (r *GORMProjectRepository) Delete(ctx context.Context, id string) error {
	return r.crud.delete(ctx, id)
}

// Count returns the number of projects.
func (r *GORMProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.crud.count(ctx, nil)
}

// Recent returns the limit most recently created projects.
func (r *GORMProjectRepository) Recent(ctx context.Context, limit int) ([]models.ProjectSummary, error) {
	out := make([]models.ProjectSummary, 0, limit)
	err := r.crud.db.WithContext(ctx).Model(&models.Project{}).
		Select("id", "title", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("recent projects: %w", err)
	}
	return out, nil
}
