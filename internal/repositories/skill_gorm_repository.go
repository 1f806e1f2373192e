package repositories

import (
	"context"
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// GORMSkillRepository is a GORM implementation of SkillRepository.
type GORMSkillRepository struct {
	crud gormCRUD[models.Skill]
}

// NewGORMSkillRepository creates a new instance of GORMSkillRepository.
func NewGORMSkillRepository(db *gorm.DB) *GORMSkillRepository {
	return &GORMSkillRepository{
		crud: gormCRUD[models.Skill]{db: db, name: "skill", orderBy: "name ASC"},
	}
}

// GetAll returns every skill ordered by name.
func (r *GORMSkillRepository) GetAll(ctx context.Context) ([]models.Skill, error) {
	return r.crud.list(ctx)
}

// GetByID retrieves a single skill by its ID.
func (r *GORMSkillRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	return r.crud.get(ctx, id)
}

// GetByName retrieves a skill by its unique name.
func (r *GORMSkillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.crud.db.WithContext(ctx).First(&skill, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("get skill by name %s: %w", name, translate(err))
	}
	return &skill, nil
}

// Create inserts a new skill. A name collision returns ErrDuplicate.
func (r *GORMSkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.crud.create(ctx, skill, &skill.ID)
}

// Update overwrites an existing skill. A name collision returns ErrDuplicate.
func (r *GORMSkillRepository) Update(ctx context.Context, skill *models.Skill) error {
	return r.crud.update(ctx, skill, skill.ID)
}

// Delete removes a skill by its ID.
func (r *GORMSkillRepository) Delete(ctx context.Context, id string) error {
	return r.crud.delete(ctx, id)
}

// Count returns the number of skills.
func (r *GORMSkillRepository) Count(ctx context.Context) (int64, error) {
	return r.crud.count(ctx, nil)
}
