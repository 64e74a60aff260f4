package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
	"github.com/ngoconnect/ngo-connect-api/pkg/sanitize"
)

type fundReportStore interface {
	Create(ctx context.Context, report *models.FundReport) error
	ListByNGO(ctx context.Context, ngoID string) ([]models.FundReport, error)
}

// FundReportService manages NGO fund disclosures.
type FundReportService struct {
	repo      fundReportStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFundReportService constructs the service.
func NewFundReportService(repo fundReportStore, validate *validator.Validate, logger *zap.Logger) *FundReportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FundReportService{repo: repo, validator: validate, logger: logger}
}

// Create records a report for ngoID on behalf of actor. Admins may report for any NGO,
// NGO users only for their own.
func (s *FundReportService) Create(ctx context.Context, ngoID string, req dto.CreateFundReportRequest, actor *models.JWTClaims) (*models.FundReport, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if !actor.HasRole(models.RoleNGO, models.RoleAdmin) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only NGO or admin users can submit fund reports")
	}
	ngoID = strings.TrimSpace(ngoID)
	if ngoID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "ngoId is required")
	}
	if actor.Role == models.RoleNGO && actor.NGOID != ngoID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "cannot submit reports for another NGO")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fund report fields are required")
	}
	reportDate, err := models.ParseDate(strings.TrimSpace(req.ReportDate))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "reportDate must be YYYY-MM-DD")
	}
	received, err := parseAmount(req.TotalFundsReceived, "totalFundsReceived")
	if err != nil {
		return nil, err
	}
	spent, err := parseAmount(req.TotalFundsSpent, "totalFundsSpent")
	if err != nil {
		return nil, err
	}
	breakdown := sanitize.Text(req.Breakdown)
	if breakdown == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "breakdown must contain text")
	}

	report := &models.FundReport{
		NGOID:              ngoID,
		ReportDate:         reportDate,
		TotalFundsReceived: received,
		TotalFundsSpent:    spent,
		Breakdown:          breakdown,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save fund report")
	}

	s.logger.Info("fund report created",
		zap.String("report_id", report.ID),
		zap.String("ngo_id", ngoID),
		zap.String("actor", actor.UserID))
	return report, nil
}

// List returns ngoID's reports, newest report date first. An NGO without reports yields an empty list.
func (s *FundReportService) List(ctx context.Context, ngoID string) ([]models.FundReport, error) {
	ngoID = strings.TrimSpace(ngoID)
	if ngoID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "ngoId is required")
	}
	reports, err := s.repo.ListByNGO(ctx, ngoID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fund reports")
	}
	if reports == nil {
		reports = []models.FundReport{}
	}
	return reports, nil
}

func parseAmount(raw, field string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, field+" must be a number")
	}
	if amount.IsNegative() {
		return decimal.Zero, appErrors.Clone(appErrors.ErrValidation, field+" cannot be negative")
	}
	return amount, nil
}
