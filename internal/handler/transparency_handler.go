package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/pkg/response"
)

type transparencyService interface {
	Summary(ctx context.Context) (*dto.TransparencySummary, error)
	Export(ctx context.Context, ngoID, format string) (*dto.ExportFile, error)
}

// TransparencyHandler serves platform disclosures.
type TransparencyHandler struct {
	transparency transparencyService
}

// NewTransparencyHandler constructs the handler.
func NewTransparencyHandler(transparency transparencyService) *TransparencyHandler {
	return &TransparencyHandler{transparency: transparency}
}

// Summary godoc
// @Summary Platform transparency totals
// @Tags Transparency
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /transparency/summary [get]
func (h *TransparencyHandler) Summary(c *gin.Context) {
	summary, err := h.transparency.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// Export godoc
// @Summary Download an NGO's fund reports
// @Tags Transparency
// @Produce text/csv
// @Produce application/pdf
// @Param ngoId path string true "NGO ID"
// @Param format query string false "csv or pdf" Enums(csv, pdf)
// @Success 200 {file} file
// @Router /transparency/reports/ngo/{ngoId}/export [get]
func (h *TransparencyHandler) Export(c *gin.Context) {
	file, err := h.transparency.Export(c.Request.Context(), c.Param("ngoId"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
