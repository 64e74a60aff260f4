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

// ErrFullyBooked is returned when a selection targets an opportunity with no room left.
var ErrFullyBooked = appErrors.Clone(appErrors.ErrPreconditionFailed, "opportunity is fully booked")

// SelectionForwarder hands a selection to whoever processes volunteer applications.
type SelectionForwarder interface {
	Forward(ctx context.Context, opportunity models.Opportunity, application models.VolunteerApplication) error
}

// Selector guards selections by capacity before forwarding them. It never mutates the opportunity.
type Selector struct {
	forwarder SelectionForwarder
}

// NewSelector constructs a selector.
func NewSelector(forwarder SelectionForwarder) *Selector {
	return &Selector{forwarder: forwarder}
}

// Select forwards application for opportunity when it still has room.
func (s *Selector) Select(ctx context.Context, opportunity models.Opportunity, application models.VolunteerApplication) error {
	if !opportunity.CanApply() {
		return ErrFullyBooked
	}
	return s.forwarder.Forward(ctx, opportunity, application)
}

type jobEnqueuer interface {
	Enqueue(job jobs.Job) error
}

// ApplicationHandoff is the payload of a volunteer.application job.
type ApplicationHandoff struct {
	Opportunity models.Opportunity
	Application models.VolunteerApplication
}

// QueueForwarder forwards selections onto the hand-off queue.
type QueueForwarder struct {
	queue jobEnqueuer
}

// NewQueueForwarder constructs a forwarder over queue.
func NewQueueForwarder(queue jobEnqueuer) *QueueForwarder {
	return &QueueForwarder{queue: queue}
}

// Forward enqueues the selection as a volunteer.application job.
func (f *QueueForwarder) Forward(ctx context.Context, opportunity models.Opportunity, application models.VolunteerApplication) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.queue.Enqueue(jobs.Job{
		ID:      application.ID,
		Type:    JobTypeVolunteerApplication,
		Payload: ApplicationHandoff{Opportunity: opportunity, Application: application},
	})
}

type opportunityFinder interface {
	Find(ctx context.Context, id string) (*models.Opportunity, error)
}

// SelectionService resolves an opportunity and runs the applicant through the selector.
type SelectionService struct {
	opportunities opportunityFinder
	selector      *Selector
	validator     *validator.Validate
	metrics       *MetricsService
	logger        *zap.Logger
}

// NewSelectionService constructs the service.
func NewSelectionService(opportunities opportunityFinder, selector *Selector, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *SelectionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SelectionService{opportunities: opportunities, selector: selector, validator: validate, metrics: metrics, logger: logger}
}

// Apply validates req and forwards it for the opportunity with id.
func (s *SelectionService) Apply(ctx context.Context, opportunityID string, req dto.ApplyRequest) (*dto.ApplyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}

	opportunity, err := s.opportunities.Find(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	application := newApplication(opportunity.ID, req)
	if err := s.selector.Select(ctx, *opportunity, application); err != nil {
		if errors.Is(err, ErrFullyBooked) {
			s.metrics.RecordSelection(OutcomeRejected)
			return nil, err
		}
		s.metrics.RecordSelection(OutcomeFailed)
		s.logger.Error("failed to forward application", zap.String("opportunity_id", opportunity.ID), zap.Error(err))
		if errors.Is(err, jobs.ErrQueueFull) {
			return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "applications are busy, please retry shortly")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit application")
	}

	s.metrics.RecordSelection(OutcomeSuccess)
	return &dto.ApplyResponse{
		ApplicationID: application.ID,
		OpportunityID: opportunity.ID,
		Status:        string(application.Status),
		Message:       "Application submitted for " + opportunity.Title,
	}, nil
}

func newApplication(opportunityID string, req dto.ApplyRequest) models.VolunteerApplication {
	return models.VolunteerApplication{
		ID:               uuid.NewString(),
		OpportunityID:    opportunityID,
		FullName:         sanitize.Text(req.FullName),
		Email:            strings.TrimSpace(req.Email),
		Phone:            strings.TrimSpace(req.Phone),
		Address:          optionalText(req.Address),
		Experience:       optionalText(req.Experience),
		Motivation:       sanitize.Text(req.Motivation),
		Availability:     sanitize.Text(req.Availability),
		EmergencyContact: optionalText(req.EmergencyContact),
		EmergencyPhone:   optionalText(req.EmergencyPhone),
		Skills:           optionalText(req.Skills),
		AdditionalInfo:   optionalText(req.AdditionalInfo),
		Status:           models.ApplicationPending,
		CreatedAt:        time.Now().UTC(),
	}
}

func optionalText(raw string) *string {
	cleaned := sanitize.Text(raw)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
