package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
)

type totalsStub struct {
	funds        *models.FundTotals
	donations    *models.DonationTotals
	applications int
	err          error
}

func (s *totalsStub) Totals(context.Context) (*models.FundTotals, error) { return s.funds, s.err }

func (s *totalsStub) SuccessfulTotals(context.Context) (*models.DonationTotals, error) {
	return s.donations, nil
}

func (s *totalsStub) Count(context.Context) (int, error) { return s.applications, nil }

type reportListerStub struct {
	reports []models.FundReport
	err     error
}

func (s *reportListerStub) List(context.Context, string) ([]models.FundReport, error) {
	return s.reports, s.err
}

func TestTransparencySummary(t *testing.T) {
	stub := &totalsStub{
		funds: &models.FundTotals{
			Received:      decimal.NewFromInt(300),
			Spent:         decimal.NewFromInt(100),
			ReportingNGOs: 2,
			Reports:       3,
		},
		donations:    &models.DonationTotals{Count: 4, Amount: decimal.NewFromInt(1500)},
		applications: 9,
	}
	svc := NewTransparencyService(stub, stub, stub, &reportListerStub{}, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.3333", summary.UtilisationRate.String())
	assert.Equal(t, 2, summary.ReportingNGOs)
	assert.Equal(t, 4, summary.SuccessfulDonations)
	assert.Equal(t, 9, summary.VolunteerApplications)
}

func TestTransparencySummaryNothingReceived(t *testing.T) {
	stub := &totalsStub{
		funds:     &models.FundTotals{Received: decimal.Zero, Spent: decimal.NewFromInt(10)},
		donations: &models.DonationTotals{},
	}
	svc := NewTransparencyService(stub, stub, stub, &reportListerStub{}, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.UtilisationRate.IsZero())
}

func TestTransparencySummaryError(t *testing.T) {
	stub := &totalsStub{err: errors.New("db down")}
	svc := NewTransparencyService(stub, stub, stub, &reportListerStub{}, nil)

	_, err := svc.Summary(context.Background())
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}

func sampleReports() []models.FundReport {
	return []models.FundReport{
		{
			ID:                 "b",
			NGOID:              "1",
			ReportDate:         models.MustParseDate("2024-02-29"),
			TotalFundsReceived: decimal.NewFromInt(1000),
			TotalFundsSpent:    decimal.NewFromInt(750),
			Breakdown:          "Books, meals",
			CreatedAt:          time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:                 "a",
			NGOID:              "1",
			ReportDate:         models.MustParseDate("2024-01-31"),
			TotalFundsReceived: decimal.NewFromInt(1000),
			TotalFundsSpent:    decimal.NewFromInt(250),
			Breakdown:          "Rent",
			CreatedAt:          time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
		},
	}
}

func TestTransparencyExportCSV(t *testing.T) {
	svc := NewTransparencyService(nil, nil, nil, &reportListerStub{reports: sampleReports()}, nil)

	file, err := svc.Export(context.Background(), "1", "")
	require.NoError(t, err)
	assert.Equal(t, "fund-reports-1.csv", file.Filename)
	assert.Contains(t, file.ContentType, "text/csv")

	body := string(file.Body)
	assert.True(t, strings.HasPrefix(body, "Report Date,Funds Received,Funds Spent,Breakdown,Submitted At"))
	assert.Less(t, strings.Index(body, "2024-02-29"), strings.Index(body, "2024-01-31"))
	assert.Contains(t, body, `"Books, meals"`)
	assert.Contains(t, body, "Total received: 2000.00")
	assert.Contains(t, body, "Utilisation: 50.00%")
}

func TestTransparencyExportPDFAndErrors(t *testing.T) {
	svc := NewTransparencyService(nil, nil, nil, &reportListerStub{reports: sampleReports()}, nil)

	file, err := svc.Export(context.Background(), "ngo/1", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "fund-reports-ngo_1.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Body), "%PDF"))

	_, err = svc.Export(context.Background(), "1", "xlsx")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	failing := NewTransparencyService(nil, nil, nil, &reportListerStub{err: appErrors.Clone(appErrors.ErrInternal, "boom")}, nil)
	_, err = failing.Export(context.Background(), "1", "csv")
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}
