package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

// FundReportRepository persists NGO fund reports.
type FundReportRepository struct {
	db *sqlx.DB
}

// NewFundReportRepository constructs the repository.
func NewFundReportRepository(db *sqlx.DB) *FundReportRepository {
	return &FundReportRepository{db: db}
}

// Create inserts a report, assigning id and createdAt when unset.
func (r *FundReportRepository) Create(ctx context.Context, report *models.FundReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO fund_reports (id, ngo_id, report_date, total_funds_received, total_funds_spent, breakdown, created_at)
VALUES (:id, :ngo_id, :report_date, :total_funds_received, :total_funds_spent, :breakdown, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("create fund report: %w", err)
	}
	return nil
}

// ListByNGO returns an NGO's reports, newest report date first.
func (r *FundReportRepository) ListByNGO(ctx context.Context, ngoID string) ([]models.FundReport, error) {
	const query = `SELECT id, ngo_id, report_date, total_funds_received, total_funds_spent, breakdown, created_at
FROM fund_reports WHERE ngo_id = $1 ORDER BY report_date DESC, created_at DESC`
	reports := []models.FundReport{}
	if err := r.db.SelectContext(ctx, &reports, query, ngoID); err != nil {
		return nil, fmt.Errorf("list fund reports: %w", err)
	}
	return reports, nil
}

// Totals sums every report on the platform.
func (r *FundReportRepository) Totals(ctx context.Context) (*models.FundTotals, error) {
	const query = `SELECT COALESCE(SUM(total_funds_received), 0) AS received,
COALESCE(SUM(total_funds_spent), 0) AS spent,
COUNT(DISTINCT ngo_id) AS reporting_ngos,
COUNT(*) AS reports
FROM fund_reports`
	var totals models.FundTotals
	if err := r.db.GetContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("sum fund reports: %w", err)
	}
	return &totals, nil
}
