package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
	"github.com/ngoconnect/ngo-connect-api/internal/repository"
	"github.com/ngoconnect/ngo-connect-api/pkg/jobs"
)

// Hand-off job types.
const (
	JobTypeVolunteerApplication = "volunteer.application"
	JobTypeContactMessage       = "contact.message"
)

type applicationStore interface {
	Create(ctx context.Context, app *models.VolunteerApplication, reserveSeat bool) error
}

type contactStore interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

type listingInvalidator interface {
	Invalidate(ctx context.Context)
}

// HandoffWorker receives forwarded selections and contact messages from the queue and records them.
type HandoffWorker struct {
	applications applicationStore
	contacts     contactStore
	listings     listingInvalidator
	reserveSeats bool
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewHandoffWorker constructs the worker. reserveSeats enables capacity bookkeeping on the
// opportunities table and should only be set when opportunities come from the database.
func NewHandoffWorker(applications applicationStore, contacts contactStore, listings listingInvalidator, reserveSeats bool, metrics *MetricsService, logger *zap.Logger) *HandoffWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HandoffWorker{
		applications: applications,
		contacts:     contacts,
		listings:     listings,
		reserveSeats: reserveSeats,
		metrics:      metrics,
		logger:       logger,
	}
}

// Register routes the worker's job types on mux.
func (w *HandoffWorker) Register(mux *jobs.Mux) {
	mux.Handle(JobTypeVolunteerApplication, w.HandleApplication)
	mux.Handle(JobTypeContactMessage, w.HandleContact)
}

// HandleApplication persists a forwarded selection. Duplicates and full opportunities are
// rejected permanently; other failures are retried by the queue.
func (w *HandoffWorker) HandleApplication(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(ApplicationHandoff)
	if !ok {
		w.metrics.RecordHandoff(job.Type, OutcomeRejected)
		return jobs.Permanent(fmt.Errorf("unexpected payload %T", job.Payload))
	}
	app := payload.Application

	err := w.applications.Create(ctx, &app, w.reserveSeats)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrDuplicateApplication), errors.Is(err, repository.ErrOpportunityFull):
		w.metrics.RecordHandoff(job.Type, OutcomeRejected)
		w.logger.Warn("application not recorded",
			zap.String("application_id", app.ID),
			zap.String("opportunity_id", app.OpportunityID),
			zap.Error(err))
		return jobs.Permanent(err)
	default:
		w.metrics.RecordHandoff(job.Type, OutcomeFailed)
		return err
	}

	if w.reserveSeats && w.listings != nil {
		w.listings.Invalidate(ctx)
	}
	w.metrics.RecordHandoff(job.Type, OutcomeSuccess)
	w.logger.Info("application recorded",
		zap.String("application_id", app.ID),
		zap.String("opportunity_id", app.OpportunityID),
		zap.String("opportunity", payload.Opportunity.Title))
	return nil
}

// HandleContact persists a contact form message.
func (w *HandoffWorker) HandleContact(ctx context.Context, job jobs.Job) error {
	msg, ok := job.Payload.(models.ContactMessage)
	if !ok {
		w.metrics.RecordHandoff(job.Type, OutcomeRejected)
		return jobs.Permanent(fmt.Errorf("unexpected payload %T", job.Payload))
	}
	if err := w.contacts.Create(ctx, &msg); err != nil {
		w.metrics.RecordHandoff(job.Type, OutcomeFailed)
		return err
	}
	w.metrics.RecordHandoff(job.Type, OutcomeSuccess)
	w.logger.Info("contact message recorded", zap.String("message_id", msg.ID), zap.String("subject", msg.Subject))
	return nil
}
