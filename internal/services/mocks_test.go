package services_test

import (
	"context"

	"portfolio/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockProjectRepository is a mock implementation of repositories.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	args := m.Called()
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) Recent(ctx context.Context, limit int) ([]models.ProjectSummary, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProjectSummary), args.Error(1)
}

// MockSkillRepository is a mock implementation of repositories.SkillRepository
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) GetAll(ctx context.Context) ([]models.Skill, error) {
	args := m.Called()
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	args := m.Called(skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Update(ctx context.Context, skill *models.Skill) error {
	args := m.Called(skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSkillRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockMessageRepository is a mock implementation of repositories.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	args := m.Called()
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockMessageRepository) SetRead(ctx context.Context, id string, read bool) error {
	args := m.Called(id, read)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMessageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) Recent(ctx context.Context, limit int) ([]models.MessageSummary, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MessageSummary), args.Error(1)
}

// MockCertificateRepository is a mock implementation of repositories.CertificateRepository
type MockCertificateRepository struct {
	mock.Mock
}

func (m *MockCertificateRepository) GetAll(ctx context.Context) ([]models.Certificate, error) {
	args := m.Called()
	return args.Get(0).([]models.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) Create(ctx context.Context, certificate *models.Certificate) error {
	args := m.Called(certificate)
	return args.Error(0)
}

func (m *MockCertificateRepository) Update(ctx context.Context, certificate *models.Certificate) error {
	args := m.Called(certificate)
	return args.Error(0)
}

func (m *MockCertificateRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCertificateRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockNotifier is a mock implementation of services.MessageNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PublishMessageCreated(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}
