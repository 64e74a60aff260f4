package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

func TestFundReportRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFundReportRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fund_reports")).
		WithArgs(sqlmock.AnyArg(), "ngo-1", "2024-02-01", "5000", "3000", "Education: 3000", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	report := &models.FundReport{
		NGOID:              "ngo-1",
		ReportDate:         models.MustParseDate("2024-02-01"),
		TotalFundsReceived: decimal.RequireFromString("5000"),
		TotalFundsSpent:    decimal.RequireFromString("3000"),
		Breakdown:          "Education: 3000",
	}
	require.NoError(t, repo.Create(context.Background(), report))
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFundReportRepositoryCreateError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFundReportRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fund_reports")).WillReturnError(errors.New("boom"))

	err := repo.Create(context.Background(), &models.FundReport{NGOID: "ngo-1", ReportDate: models.MustParseDate("2024-02-01")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create fund report")
}

func TestFundReportRepositoryListByNGO(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFundReportRepository(db)

	created := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "ngo_id", "report_date", "total_funds_received", "total_funds_spent", "breakdown", "created_at"}).
		AddRow("r-2", "ngo-1", "2024-03-31", "100000.00", "75000.50", "Food", created).
		AddRow("r-1", "ngo-1", "2024-02-29", "50000", "50000", "Shelter", created)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY report_date DESC, created_at DESC")).
		WithArgs("ngo-1").
		WillReturnRows(rows)

	reports, err := repo.ListByNGO(context.Background(), "ngo-1")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "2024-03-31", reports[0].ReportDate.String())
	assert.True(t, decimal.RequireFromString("75000.50").Equal(reports[0].TotalFundsSpent))
}

func TestFundReportRepositoryListEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFundReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fund_reports WHERE ngo_id = $1")).
		WithArgs("ngo-2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	reports, err := repo.ListByNGO(context.Background(), "ngo-2")
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestFundReportRepositoryTotals(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFundReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(DISTINCT ngo_id) AS reporting_ngos")).
		WillReturnRows(sqlmock.NewRows([]string{"received", "spent", "reporting_ngos", "reports"}).AddRow("150000", "125000.5", 2, 3))

	totals, err := repo.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, totals.ReportingNGOs)
	assert.Equal(t, 3, totals.Reports)
	assert.True(t, decimal.RequireFromString("150000").Equal(totals.Received))
}
