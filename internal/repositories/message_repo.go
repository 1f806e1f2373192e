package repositories

import (
	"context"

	"portfolio/internal/models"
)

// MessageRepository defines the interface for contact message data access.
type MessageRepository interface {
	GetAll(ctx context.Context) ([]models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
	Create(ctx context.Context, message *models.Message) error
	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.MessageSummary, error)
}
