package repositories

import (
	"context"
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	crud gormCRUD[models.Message]
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{
		crud: gormCRUD[models.Message]{db: db, name: "message", orderBy: "created_at DESC"},
	}
}

// GetAll returns every message, newest first.
func (r *GORMMessageRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	return r.crud.list(ctx)
}

// GetByID retrieves a single message by its ID.
func (r *GORMMessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	return r.crud.get(ctx, id)
}

// Create inserts a new message.
func (r *GORMMessageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.crud.create(ctx, message, &message.ID)
}

// SetRead updates the read flag and nothing else.
func (r *GORMMessageRepository) SetRead(ctx context.Context, id string, read bool) error {
	res := r.crud.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Update("read", read)
	if res.Error != nil {
		return fmt.Errorf("set read on message %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("set read on message %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a message by its ID.
func (r *GORMMessageRepository) Delete(ctx context.Context, id string) error {
	return r.crud.delete(ctx, id)
}

// Count returns the number of messages.
func (r *GORMMessageRepository) Count(ctx context.Context) (int64, error) {
	return r.crud.count(ctx, nil)
}

// CountUnread returns the number of messages not yet marked read.
func (r *GORMMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	return r.crud.count(ctx, "read = ?", false)
}

// Recent returns the limit most recently received messages.
func (r *GORMMessageRepository) Recent(ctx context.Context, limit int) ([]models.MessageSummary, error) {
	out := make([]models.MessageSummary, 0, limit)
	err := r.crud.db.WithContext(ctx).Model(&models.Message{}).
		Select("id", "name", "subject", "created_at", "read").
		Order("created_at DESC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}
	return out, nil
}
