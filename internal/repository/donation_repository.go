package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

// DonationRepository records checkout outcomes.
type DonationRepository struct {
	db *sqlx.DB
}

// NewDonationRepository constructs the repository.
func NewDonationRepository(db *sqlx.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create inserts a donation row.
func (r *DonationRepository) Create(ctx context.Context, donation *models.Donation) error {
	if donation.ID == "" {
		donation.ID = uuid.NewString()
	}
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO donations (id, payment_id, order_id, amount, currency, ngo_id, ngo_name, pledge_type,
donor_name, donor_email, donor_phone, donor_address, status, created_at)
VALUES (:id, :payment_id, :order_id, :amount, :currency, :ngo_id, :ngo_name, :pledge_type,
:donor_name, :donor_email, :donor_phone, :donor_address, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, donation); err != nil {
		return fmt.Errorf("create donation: %w", err)
	}
	return nil
}

// SuccessfulTotals counts and sums successful donations.
func (r *DonationRepository) SuccessfulTotals(ctx context.Context) (*models.DonationTotals, error) {
	const query = `SELECT COUNT(*) AS donations, COALESCE(SUM(amount), 0) AS amount FROM donations WHERE status = $1`
	var totals models.DonationTotals
	if err := r.db.GetContext(ctx, &totals, query, models.DonationSuccess); err != nil {
		return nil, fmt.Errorf("sum donations: %w", err)
	}
	return &totals, nil
}
