package repositories

import (
	"context"

	"portfolio/internal/models"
)

// CertificateRepository defines the interface for certificate data access.
type CertificateRepository interface {
	GetAll(ctx context.Context) ([]models.Certificate, error)
	GetByID(ctx context.Context, id string) (*models.Certificate, error)
	Create(ctx context.Context, certificate *models.Certificate) error
	Update(ctx context.Context, certificate *models.Certificate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
