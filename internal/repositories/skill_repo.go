package repositories

import (
	"context"

	"portfolio/internal/models"
)

// SkillRepository defines the interface for skill data access.
type SkillRepository interface {
	GetAll(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
