package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

var (
	// ErrDuplicateApplication signals the applicant already applied for the opportunity.
	ErrDuplicateApplication = errors.New("applicant already applied")
	// ErrOpportunityFull signals no capacity was left when the application was recorded.
	ErrOpportunityFull = errors.New("opportunity is fully booked")
)

// ApplicationRepository persists forwarded volunteer applications.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository constructs the repository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create records an application. When reserveSeat is set the opportunity's applied count is
// incremented in the same transaction, only while it is below the needed count.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.VolunteerApplication, reserveSeat bool) (err error) {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = models.ApplicationPending
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create application: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists bool
	if err = tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM volunteer_applications
WHERE opportunity_id = $1 AND lower(email) = lower($2))`, app.OpportunityID, app.Email); err != nil {
		return fmt.Errorf("check duplicate application: %w", err)
	}
	if exists {
		err = ErrDuplicateApplication
		return err
	}

	if reserveSeat {
		res, execErr := tx.ExecContext(ctx, `UPDATE opportunities SET volunteers_applied = volunteers_applied + 1
WHERE id = $1 AND volunteers_applied < volunteers_needed`, app.OpportunityID)
		if execErr != nil {
			err = fmt.Errorf("reserve opportunity seat: %w", execErr)
			return err
		}
		affected, raErr := res.RowsAffected()
		if raErr != nil {
			err = fmt.Errorf("reserve opportunity seat: %w", raErr)
			return err
		}
		if affected == 0 {
			err = ErrOpportunityFull
			return err
		}
	}

	const insert = `INSERT INTO volunteer_applications (id, opportunity_id, full_name, email, phone, address, experience,
motivation, availability, emergency_contact, emergency_phone, skills, additional_info, status, created_at)
VALUES (:id, :opportunity_id, :full_name, :email, :phone, :address, :experience,
:motivation, :availability, :emergency_contact, :emergency_phone, :skills, :additional_info, :status, :created_at)`
	if _, err = tx.NamedExecContext(ctx, insert, app); err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create application: %w", err)
	}
	return nil
}

// Count returns the number of recorded applications.
func (r *ApplicationRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM volunteer_applications`); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return total, nil
}
