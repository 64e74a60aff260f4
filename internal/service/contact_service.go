package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
	"github.com/ngoconnect/ngo-connect-api/pkg/jobs"
	"github.com/ngoconnect/ngo-connect-api/pkg/sanitize"
)

// ContactConfirmation is returned for every accepted contact message.
const ContactConfirmation = "Thank you for your message! We will get back to you soon."

// ContactService accepts contact form messages and hands them off for storage.
type ContactService struct {
	queue     jobEnqueuer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContactService constructs the service.
func NewContactService(queue jobEnqueuer, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{queue: queue, validator: validate, logger: logger}
}

// Submit validates and enqueues req.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name, email, subject and message are required")
	}
	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      sanitize.Text(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   sanitize.Text(req.Subject),
		Message:   sanitize.Text(req.Message),
		CreatedAt: time.Now().UTC(),
	}
	if msg.Name == "" || msg.Subject == "" || msg.Message == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name, subject and message must contain text")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(jobs.Job{ID: msg.ID, Type: JobTypeContactMessage, Payload: msg}); err != nil {
		s.logger.Error("failed to enqueue contact message", zap.String("message_id", msg.ID), zap.Error(err))
		if errors.Is(err, jobs.ErrQueueFull) {
			return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "we are receiving many messages, please retry shortly")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to send message")
	}
	return &dto.ContactResponse{ID: msg.ID, Message: ContactConfirmation}, nil
}
