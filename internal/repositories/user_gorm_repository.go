package repositories

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get user by ID %s: %w", id, translate(err))
	}
	return &user, nil
}

// GetByUsername retrieves a user by their username.
func (r *GORMUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, fmt.Errorf("get user by username %s: %w", username, translate(err))
	}
	return &user, nil
}

// Upsert creates the user, or rotates the password and role of an existing
// user with the same username. user.ID is filled in either way.
func (r *GORMUserRepository) Upsert(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.First(&existing, "username = ?", user.Username).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if user.ID == "" {
				user.ID = uuid.New().String()
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("create user %s: %w", user.Username, translate(err))
			}
			return nil
		case err != nil:
			return fmt.Errorf("look up user %s: %w", user.Username, err)
		}

		user.ID = existing.ID
		updates := map[string]any{"password_hash": user.PasswordHash, "role": user.Role}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("update user %s: %w", user.Username, err)
		}
		return nil
	})
}
