package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// MessageNotifier announces newly received contact messages.
type MessageNotifier interface {
	PublishMessageCreated(message *models.Message) error
}

// MessageInput is the body of the public contact form.
type MessageInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required"`
}

// MessagePatch is the body of a message update. Only the read flag is applied.
type MessagePatch struct {
	Read *bool `json:"read"`
}

// MessageService handles business logic related to contact messages.
type MessageService struct {
	repo     repositories.MessageRepository
	notifier MessageNotifier
	log      *zap.SugaredLogger
	validate *validator.Validate
	policy   *bluemonday.Policy
}

// NewMessageService creates a new MessageService. notifier may be nil.
func NewMessageService(repo repositories.MessageRepository, notifier MessageNotifier, log *zap.SugaredLogger) *MessageService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &MessageService{
		repo:     repo,
		notifier: notifier,
		log:      log,
		validate: newValidator(),
		policy:   bluemonday.StrictPolicy(),
	}
}

// GetAllMessages retrieves all messages, newest first.
func (s *MessageService) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	return s.repo.GetAll(ctx)
}

// GetMessageByID retrieves a single message by its ID.
func (s *MessageService) GetMessageByID(ctx context.Context, id string) (*models.Message, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Message", id)
	}
	return message, nil
}

// CreateMessage stores a contact-form submission and notifies the owner.
func (s *MessageService) CreateMessage(ctx context.Context, in MessageInput) (*models.Message, error) {
	in.Name = s.plainText(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = s.plainText(in.Subject)
	in.Message = s.plainText(in.Message)
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	if in.Subject == "" {
		in.Subject = models.DefaultMessageSubject
	}

	message := &models.Message{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.PublishMessageCreated(message); err != nil {
			s.log.Warnw("failed to publish message created event", "messageId", message.ID, "err", err)
		}
	}
	return message, nil
}

// UpdateMessage sets the read flag of message id. A nil Read keeps the
// stored value.
func (s *MessageService) UpdateMessage(ctx context.Context, id string, patch MessagePatch) (*models.Message, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Message", id)
	}
	if patch.Read == nil {
		return message, nil
	}
	if err := s.repo.SetRead(ctx, id, *patch.Read); err != nil {
		return nil, notFound(err, "Message", id)
	}
	message.Read = *patch.Read
	return message, nil
}

// DeleteMessage removes message id and returns it as it was before deletion.
func (s *MessageService) DeleteMessage(ctx context.Context, id string) (*models.Message, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Message", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, notFound(err, "Message", id)
	}
	return message, nil
}

// plainText strips markup and returns trimmed text with entities decoded.
func (s *MessageService) plainText(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}
