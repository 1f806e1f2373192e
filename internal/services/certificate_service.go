package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// dateLayouts are the accepted encodings of certificate dates, tried in order.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// CertificateInput is the body of a certificate create request.
type CertificateInput struct {
	Title         string            `json:"title" validate:"required,max=255"`
	Issuer        string            `json:"issuer" validate:"required,max=255"`
	Description   *string           `json:"description"`
	ImageURL      *string           `json:"imageUrl"`
	CredentialURL *string           `json:"credentialUrl"`
	IssueDate     string            `json:"issueDate" validate:"required"`
	ExpiryDate    *string           `json:"expiryDate"`
	Skills        models.StringList `json:"skills"`
	Featured      bool              `json:"featured"`
}

// CertificatePatch is the body of a certificate update request. Nil fields
// are left unchanged; an empty expiryDate clears it.
type CertificatePatch struct {
	Title         *string            `json:"title"`
	Issuer        *string            `json:"issuer"`
	Description   *string            `json:"description"`
	ImageURL      *string            `json:"imageUrl"`
	CredentialURL *string            `json:"credentialUrl"`
	IssueDate     *string            `json:"issueDate"`
	ExpiryDate    *string            `json:"expiryDate"`
	Skills        *models.StringList `json:"skills"`
	Featured      *bool              `json:"featured"`
}

// CertificateService handles business logic related to certificates.
type CertificateService struct {
	repo     repositories.CertificateRepository
	validate *validator.Validate
}

// NewCertificateService creates a new CertificateService.
func NewCertificateService(repo repositories.CertificateRepository) *CertificateService {
	return &CertificateService{
		repo:     repo,
		validate: newValidator(),
	}
}

// GetAllCertificates retrieves all certificates, most recently issued first.
func (s *CertificateService) GetAllCertificates(ctx context.Context) ([]models.Certificate, error) {
	return s.repo.GetAll(ctx)
}

// GetCertificateByID retrieves a single certificate by its ID.
func (s *CertificateService) GetCertificateByID(ctx context.Context, id string) (*models.Certificate, error) {
	certificate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Certificate", id)
	}
	return certificate, nil
}

// CreateCertificate validates in and stores a new certificate.
func (s *CertificateService) CreateCertificate(ctx context.Context, in CertificateInput) (*models.Certificate, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Issuer = strings.TrimSpace(in.Issuer)
	in.IssueDate = strings.TrimSpace(in.IssueDate)
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	issueDate, err := parseDate("issueDate", in.IssueDate)
	if err != nil {
		return nil, err
	}
	expiryDate, err := parseOptionalDate("expiryDate", in.ExpiryDate)
	if err != nil {
		return nil, err
	}

	skills := in.Skills
	if skills == nil {
		skills = models.StringList{}
	}
	certificate := &models.Certificate{
		Title:         in.Title,
		Issuer:        in.Issuer,
		Description:   optionalText(in.Description),
		ImageURL:      optionalText(in.ImageURL),
		CredentialURL: optionalText(in.CredentialURL),
		IssueDate:     issueDate,
		ExpiryDate:    expiryDate,
		Skills:        skills,
		Featured:      in.Featured,
	}
	if err := s.repo.Create(ctx, certificate); err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}
	return certificate, nil
}

// UpdateCertificate applies the non-nil fields of patch to certificate id.
func (s *CertificateService) UpdateCertificate(ctx context.Context, id string, patch CertificatePatch) (*models.Certificate, error) {
	certificate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Certificate", id)
	}

	if patch.Title != nil {
		if err := requireText("title", patch.Title); err != nil {
			return nil, err
		}
		certificate.Title = *patch.Title
	}
	if patch.Issuer != nil {
		if err := requireText("issuer", patch.Issuer); err != nil {
			return nil, err
		}
		certificate.Issuer = *patch.Issuer
	}
	if patch.IssueDate != nil {
		if err := requireText("issueDate", patch.IssueDate); err != nil {
			return nil, err
		}
		issueDate, err := parseDate("issueDate", *patch.IssueDate)
		if err != nil {
			return nil, err
		}
		certificate.IssueDate = issueDate
	}
	if patch.ExpiryDate != nil {
		expiryDate, err := parseOptionalDate("expiryDate", patch.ExpiryDate)
		if err != nil {
			return nil, err
		}
		certificate.ExpiryDate = expiryDate
	}
	if patch.Description != nil {
		certificate.Description = optionalText(patch.Description)
	}
	if patch.ImageURL != nil {
		certificate.ImageURL = optionalText(patch.ImageURL)
	}
	if patch.CredentialURL != nil {
		certificate.CredentialURL = optionalText(patch.CredentialURL)
	}
	if patch.Skills != nil {
		certificate.Skills = *patch.Skills
	}
	if patch.Featured != nil {
		certificate.Featured = *patch.Featured
	}

	if err := s.repo.Update(ctx, certificate); err != nil {
		return nil, notFound(err, "Certificate", id)
	}
	return certificate, nil
}

// DeleteCertificate removes certificate id and returns it as it was before deletion.
func (s *CertificateService) DeleteCertificate(ctx context.Context, id string) (*models.Certificate, error) {
	certificate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Certificate", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, notFound(err, "Certificate", id)
	}
	return certificate, nil
}

func parseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &ValidationError{
		Message: "Invalid date format",
		Fields:  map[string]string{field: "expected YYYY-MM-DD or RFC 3339"},
	}
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	v := optionalText(value)
	if v == nil {
		return nil, nil
	}
	t, err := parseDate(field, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
