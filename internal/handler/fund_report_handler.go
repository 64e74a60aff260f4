package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	"github.com/ngoconnect/ngo-connect-api/pkg/response"
)

type fundReportService interface {
	Create(ctx context.Context, ngoID string, req dto.CreateFundReportRequest, actor *models.JWTClaims) (*models.FundReport, error)
	List(ctx context.Context, ngoID string) ([]models.FundReport, error)
}

// FundReportHandler manages NGO fund disclosures.
type FundReportHandler struct {
	reports fundReportService
}

// NewFundReportHandler constructs the handler.
func NewFundReportHandler(reports fundReportService) *FundReportHandler {
	return &FundReportHandler{reports: reports}
}

// Create godoc
// @Summary Submit a fund report
// @Tags Transparency
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param ngoId path string true "NGO ID"
// @Param payload body dto.CreateFundReportRequest true "Report"
// @Success 201 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /transparency/reports/ngo/{ngoId} [post]
func (h *FundReportHandler) Create(c *gin.Context) {
	var req dto.CreateFundReportRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reports.Create(c.Request.Context(), c.Param("ngoId"), req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, report)
}

// List godoc
// @Summary List an NGO's fund reports, newest first
// @Tags Transparency
// @Produce json
// @Param ngoId path string true "NGO ID"
// @Success 200 {object} response.Envelope
// @Router /transparency/reports/ngo/{ngoId} [get]
func (h *FundReportHandler) List(c *gin.Context) {
	reports, err := h.reports.List(c.Request.Context(), c.Param("ngoId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reports)
}
