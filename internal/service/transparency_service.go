package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
	"github.com/ngoconnect/ngo-connect-api/pkg/export"
)

type fundTotalsReader interface {
	Totals(ctx context.Context) (*models.FundTotals, error)
}

type donationTotalsReader interface {
	SuccessfulTotals(ctx context.Context) (*models.DonationTotals, error)
}

type applicationCounter interface {
	Count(ctx context.Context) (int, error)
}

type reportLister interface {
	List(ctx context.Context, ngoID string) ([]models.FundReport, error)
}

var fundReportHeaders = []string{"Report Date", "Funds Received", "Funds Spent", "Breakdown", "Submitted At"}

// TransparencyService aggregates disclosures across the platform.
type TransparencyService struct {
	funds        fundTotalsReader
	donations    donationTotalsReader
	applications applicationCounter
	reports      reportLister
	logger       *zap.Logger
}

// NewTransparencyService constructs the service.
func NewTransparencyService(funds fundTotalsReader, donations donationTotalsReader, applications applicationCounter, reports reportLister, logger *zap.Logger) *TransparencyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransparencyService{funds: funds, donations: donations, applications: applications, reports: reports, logger: logger}
}

// Summary returns platform totals. The utilisation rate is spent/received, or zero when nothing was received.
func (s *TransparencyService) Summary(ctx context.Context) (*dto.TransparencySummary, error) {
	funds, err := s.funds.Totals(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fund totals")
	}
	donations, err := s.donations.SuccessfulTotals(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load donation totals")
	}
	applications, err := s.applications.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count applications")
	}

	return &dto.TransparencySummary{
		TotalFundsReceived:    funds.Received,
		TotalFundsSpent:       funds.Spent,
		UtilisationRate:       utilisation(funds.Received, funds.Spent),
		ReportingNGOs:         funds.ReportingNGOs,
		Reports:               funds.Reports,
		SuccessfulDonations:   donations.Count,
		DonatedAmount:         donations.Amount,
		VolunteerApplications: applications,
	}, nil
}

// Export renders ngoID's reports in the requested format.
func (s *TransparencyService) Export(ctx context.Context, ngoID, format string) (*dto.ExportFile, error) {
	parsed, err := export.ParseFormat(format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be csv or pdf")
	}
	renderer, err := export.NewRenderer(parsed)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be csv or pdf")
	}

	reports, err := s.reports.List(ctx, ngoID)
	if err != nil {
		return nil, err
	}

	body, err := renderer.Render(fundReportDataset(ngoID, reports))
	if err != nil {
		s.logger.Error("failed to render fund report export", zap.String("ngo_id", ngoID), zap.String("format", string(parsed)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &dto.ExportFile{
		Filename:    fmt.Sprintf("fund-reports-%s.%s", safeFilePart(ngoID), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func fundReportDataset(ngoID string, reports []models.FundReport) export.Dataset {
	rows := make([]map[string]string, 0, len(reports))
	received := decimal.Zero
	spent := decimal.Zero
	for _, r := range reports {
		received = received.Add(r.TotalFundsReceived)
		spent = spent.Add(r.TotalFundsSpent)
		rows = append(rows, map[string]string{
			"Report Date":    r.ReportDate.String(),
			"Funds Received": r.TotalFundsReceived.StringFixed(2),
			"Funds Spent":    r.TotalFundsSpent.StringFixed(2),
			"Breakdown":      r.Breakdown,
			"Submitted At":   r.CreatedAt.UTC().Format("2006-01-02 15:04"),
		})
	}
	return export.Dataset{
		Title:   "Fund reports for NGO " + ngoID,
		Headers: fundReportHeaders,
		Rows:    rows,
		Footer: []string{
			"Total received: " + received.StringFixed(2),
			"Total spent: " + spent.StringFixed(2),
			"Utilisation: " + utilisation(received, spent).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%",
		},
	}
}

func utilisation(received, spent decimal.Decimal) decimal.Decimal {
	if !received.IsPositive() {
		return decimal.Zero
	}
	return spent.DivRound(received, 4)
}

func safeFilePart(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, raw)
}
