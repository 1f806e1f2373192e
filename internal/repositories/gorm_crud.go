package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCRUD holds the row operations shared by every resource table.
// name is used in error messages only.
type gormCRUD[T any] struct {
	db      *gorm.DB
	name    string
	orderBy string
}

func (r gormCRUD[T]) list(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := r.db.WithContext(ctx).Order(r.orderBy).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %ss: %w", r.name, err)
	}
	return items, nil
}

func (r gormCRUD[T]) get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get %s %s: %w", r.name, id, translate(err))
	}
	return &item, nil
}

// create inserts item, assigning a new UUID to *id when it is empty.
func (r gormCRUD[T]) create(ctx context.Context, item *T, id *string) error {
	if *id == "" {
		*id = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create %s: %w", r.name, translate(err))
	}
	return nil
}

// update writes every column of item except id and created_at. gorm's Save
// would insert a missing row, so Updates is used and the row count checked.
func (r gormCRUD[T]) update(ctx context.Context, item *T, id string) error {
	res := r.db.WithContext(ctx).Model(item).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(item)
	if res.Error != nil {
		return fmt.Errorf("update %s %s: %w", r.name, id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update %s %s: %w", r.name, id, ErrNotFound)
	}
	return nil
}

func (r gormCRUD[T]) delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %s: %w", r.name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s %s: %w", r.name, id, ErrNotFound)
	}
	return nil
}

func (r gormCRUD[T]) count(ctx context.Context, query any, args ...any) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(new(T))
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %ss: %w", r.name, err)
	}
	return n, nil
}
