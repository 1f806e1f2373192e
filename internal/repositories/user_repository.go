package repositories

import (
	"context"

	"portfolio/internal/models"
)

// UserRepository defines the interface for credential store access.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}
