package services_test

import (
	"context"
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSkillService_CreateSkill(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	mockRepo.On("GetByName", "Go").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Skill")).Return(nil).Once()

	skill, err := service.CreateSkill(context.Background(), services.SkillInput{Name: " Go ", Color: "#00ADD8"})
	require.NoError(t, err)
	assert.Equal(t, "Go", skill.Name)
	assert.Equal(t, models.DefaultSkillLevel, skill.Level)
	assert.Nil(t, skill.Category)
	mockRepo.AssertExpectations(t)
}

func TestSkillService_CreateSkill_Duplicate(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	mockRepo.On("GetByName", "Go").Return(&models.Skill{ID: "s-1", Name: "Go"}, nil).Once()

	_, err := service.CreateSkill(context.Background(), services.SkillInput{Name: "Go", Color: "blue"})
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Skill already exists", validationErr.Message)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSkillService_CreateSkill_DuplicateRace(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	// the unique index catches a concurrent insert the pre-check missed
	mockRepo.On("GetByName", "Go").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Skill")).Return(repositories.ErrDuplicate).Once()

	_, err := service.CreateSkill(context.Background(), services.SkillInput{Name: "Go", Color: "blue"})
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Skill already exists", validationErr.Message)
}

func TestSkillService_CreateSkill_MissingFields(t *testing.T) {
	service := services.NewSkillService(new(MockSkillRepository))

	_, err := service.CreateSkill(context.Background(), services.SkillInput{Name: "Go"})
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "color")
}

func TestSkillService_UpdateSkill(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	mockRepo.On("GetByID", "s-1").Return(&models.Skill{ID: "s-1", Name: "Go", Color: "blue", Level: 3}, nil)

	t.Run("rename to taken name", func(t *testing.T) {
		mockRepo.On("GetByName", "Rust").Return(&models.Skill{ID: "s-2", Name: "Rust"}, nil).Once()
		_, err := service.UpdateSkill(context.Background(), "s-1", services.SkillPatch{Name: strPtr("Rust")})
		var validationErr *services.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Skill name already exists", validationErr.Message)
	})

	t.Run("same name skips check", func(t *testing.T) {
		mockRepo.On("Update", mock.AnythingOfType("*models.Skill")).Return(nil).Once()
		level := 5
		skill, err := service.UpdateSkill(context.Background(), "s-1", services.SkillPatch{Name: strPtr("Go"), Level: &level})
		require.NoError(t, err)
		assert.Equal(t, 5, skill.Level)
		assert.Equal(t, "blue", skill.Color)
	})

	t.Run("negative level", func(t *testing.T) {
		level := -1
		_, err := service.UpdateSkill(context.Background(), "s-1", services.SkillPatch{Level: &level})
		var validationErr *services.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	mockRepo.AssertExpectations(t)
}

func TestSkillService_DeleteSkill_NotFound(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)
	mockRepo.On("GetByID", "nope").Return(nil, repositories.ErrNotFound).Once()

	_, err := service.DeleteSkill(context.Background(), "nope")
	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Skill not found", err.Error())
}
