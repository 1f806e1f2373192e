package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/go-playground/validator/v10"
)

const (
	msgSkillExists     = "Skill already exists"
	msgSkillNameExists = "Skill name already exists"
)

// SkillInput is the body of a skill create request.
type SkillInput struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Color    string  `json:"color" validate:"required,max=64"`
	Category *string `json:"category"`
	Level    int     `json:"level" validate:"gte=0"`
}

// SkillPatch is the body of a skill update request. Nil fields are left unchanged.
type SkillPatch struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Category *string `json:"category"`
	Level    *int    `json:"level"`
}

// SkillService handles business logic related to skills.
type SkillService struct {
	repo     repositories.SkillRepository
	validate *validator.Validate
}

// NewSkillService creates a new SkillService.
func NewSkillService(repo repositories.SkillRepository) *SkillService {
	return &SkillService{
		repo:     repo,
		validate: newValidator(),
	}
}

// GetAllSkills retrieves all skills ordered by name.
func (s *SkillService) GetAllSkills(ctx context.Context) ([]models.Skill, error) {
	return s.repo.GetAll(ctx)
}

// GetSkillByID retrieves a single skill by its ID.
func (s *SkillService) GetSkillByID(ctx context.Context, id string) (*models.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Skill", id)
	}
	return skill, nil
}

// CreateSkill stores a new skill. The name must not be taken.
func (s *SkillService) CreateSkill(ctx context.Context, in SkillInput) (*models.Skill, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Color = strings.TrimSpace(in.Color)
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	if err := s.ensureNameFree(ctx, in.Name, "", msgSkillExists); err != nil {
		return nil, err
	}

	skill := &models.Skill{
		Name:     in.Name,
		Color:    in.Color,
		Category: optionalText(in.Category),
		Level:    levelOrDefault(in.Level),
	}
	if err := s.repo.Create(ctx, skill); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, &ValidationError{Message: msgSkillExists}
		}
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

// UpdateSkill applies the non-nil fields of patch to skill id.
func (s *SkillService) UpdateSkill(ctx context.Context, id string, patch SkillPatch) (*models.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Skill", id)
	}

	if patch.Name != nil {
		if err := requireText("name", patch.Name); err != nil {
			return nil, err
		}
		if *patch.Name != skill.Name {
			if err := s.ensureNameFree(ctx, *patch.Name, id, msgSkillNameExists); err != nil {
				return nil, err
			}
		}
		skill.Name = *patch.Name
	}
	if patch.Color != nil {
		if err := requireText("color", patch.Color); err != nil {
			return nil, err
		}
		skill.Color = *patch.Color
	}
	if patch.Category != nil {
		skill.Category = optionalText(patch.Category)
	}
	if patch.Level != nil {
		if *patch.Level < 0 {
			return nil, &ValidationError{Message: "Invalid skill level", Fields: map[string]string{"level": "Field 'level' failed on the 'gte' tag"}}
		}
		skill.Level = levelOrDefault(*patch.Level)
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, &ValidationError{Message: msgSkillNameExists}
		}
		return nil, notFound(err, "Skill", id)
	}
	return skill, nil
}

// DeleteSkill removes skill id and returns it as it was before deletion.
func (s *SkillService) DeleteSkill(ctx context.Context, id string) (*models.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Skill", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, notFound(err, "Skill", id)
	}
	return skill, nil
}

// ensureNameFree fails with msg when a skill other than exceptID already
// uses name. The unique index still backs this check under concurrent writes.
func (s *SkillService) ensureNameFree(ctx context.Context, name, exceptID, msg string) error {
	existing, err := s.repo.GetByName(ctx, name)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check skill name: %w", err)
	case existing.ID != exceptID:
		return &ValidationError{Message: msg}
	}
	return nil
}

func levelOrDefault(level int) int {
	if level == 0 {
		return models.DefaultSkillLevel
	}
	return level
}
