package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
)

type transparencyServiceMock struct {
	summary   *dto.TransparencySummary
	file      *dto.ExportFile
	err       error
	gotFormat string
}

func (m *transparencyServiceMock) Summary(context.Context) (*dto.TransparencySummary, error) {
	return m.summary, m.err
}

func (m *transparencyServiceMock) Export(_ context.Context, _ string, format string) (*dto.ExportFile, error) {
	m.gotFormat = format
	return m.file, m.err
}

func TestTransparencyHandlerSummary(t *testing.T) {
	h := NewTransparencyHandler(&transparencyServiceMock{summary: &dto.TransparencySummary{
		TotalFundsReceived: decimal.NewFromInt(300),
		UtilisationRate:    decimal.RequireFromString("0.3333"),
		ReportingNGOs:      2,
	}})
	c, w := newGinContext(http.MethodGet, "/api/transparency/summary", nil)
	h.Summary(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reportingNgos":2`)
	assert.Contains(t, w.Body.String(), `"utilisationRate":"0.3333"`)
}

func TestTransparencyHandlerExport(t *testing.T) {
	svc := &transparencyServiceMock{file: &dto.ExportFile{Filename: "fund-reports-1.csv", ContentType: "text/csv", Body: []byte("a,b\n")}}
	h := NewTransparencyHandler(svc)
	c, w := newGinContext(http.MethodGet, "/api/transparency/reports/ngo/1/export?format=csv", nil)
	c.Params = gin.Params{{Key: "ngoId", Value: "1"}}

	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", svc.gotFormat)
	assert.Equal(t, `attachment; filename="fund-reports-1.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "a,b\n", w.Body.String())
}

func TestTransparencyHandlerExportBadFormat(t *testing.T) {
	h := NewTransparencyHandler(&transparencyServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")})
	c, w := newGinContext(http.MethodGet, "/api/transparency/reports/ngo/1/export?format=xls", nil)
	h.Export(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
