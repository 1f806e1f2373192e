package repositories

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// GORMCertificateRepository is a GORM implementation of CertificateRepository.
type GORMCertificateRepository struct {
	crud gormCRUD[models.Certificate]
}

// NewGORMCertificateRepository creates a new instance of GORMCertificateRepository.
func NewGORMCertificateRepository(db *gorm.DB) *GORMCertificateRepository {
	return &GORMCertificateRepository{
		crud: gormCRUD[models.Certificate]{db: db, name: "certificate", orderBy: "issue_date DESC"},
	}
}

func (r *GORMCertificateRepository) GetAll(ctx context.Context) ([]models.Certificate, error) {
	return r.crud.list(ctx)
}

func (r *GORMCertificateRepository) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	return r.crud.get(ctx, id)
}

func (r *GORMCertificateRepository) Create(ctx context.Context, certificate *models.Certificate) error {
	return r.crud.create(ctx, certificate, &certificate.ID)
}

func (r *GORMCertificateRepository) Update(ctx context.Context, certificate *models.Certificate) error {
	return r.crud.update(ctx, certificate, certificate.ID)
}

func (r *GORMCertificateRepository) Delete(ctx context.Context, id string) error {
	return r.crud.delete(ctx, id)
}

func (r *GORMCertificateRepository) Count(ctx context.Context) (int64, error) {
	return r.crud.count(ctx, nil)
}
