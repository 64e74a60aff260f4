package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/middleware"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
)

type fundReportServiceMock struct {
	created *models.FundReport
	reports []models.FundReport
	err     error

	gotNGO   string
	gotActor *models.JWTClaims
	gotReq   dto.CreateFundReportRequest
}

func (m *fundReportServiceMock) Create(_ context.Context, ngoID string, req dto.CreateFundReportRequest, actor *models.JWTClaims) (*models.FundReport, error) {
	m.gotNGO, m.gotReq, m.gotActor = ngoID, req, actor
	return m.created, m.err
}

func (m *fundReportServiceMock) List(_ context.Context, ngoID string) ([]models.FundReport, error) {
	m.gotNGO = ngoID
	return m.reports, m.err
}

func TestFundReportHandlerCreate(t *testing.T) {
	svc := &fundReportServiceMock{created: &models.FundReport{ID: "fr-1", NGOID: "1"}}
	h := NewFundReportHandler(svc)

	body := []byte(`{"reportDate":"2024-01-31","totalFundsReceived":"50000","totalFundsSpent":"32000","breakdown":"Books"}`)
	c, w := newGinContext(http.MethodPost, "/api/transparency/reports/ngo/1", body)
	c.Params = gin.Params{{Key: "ngoId", Value: "1"}}
	actor := &models.JWTClaims{UserID: "u", Role: models.RoleNGO, NGOID: "1"}
	c.Set(middleware.ContextUserKey, actor)

	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", svc.gotNGO)
	assert.Same(t, actor, svc.gotActor)
	assert.Equal(t, "Books", svc.gotReq.Breakdown)
	assert.Contains(t, w.Body.String(), `"id":"fr-1"`)
}

func TestFundReportHandlerCreateForbidden(t *testing.T) {
	h := NewFundReportHandler(&fundReportServiceMock{err: appErrors.Clone(appErrors.ErrForbidden, "cannot submit reports for another NGO")})
	c, w := newGinContext(http.MethodPost, "/api/transparency/reports/ngo/2", []byte(`{}`))
	c.Params = gin.Params{{Key: "ngoId", Value: "2"}}

	h.Create(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFundReportHandlerList(t *testing.T) {
	svc := &fundReportServiceMock{reports: []models.FundReport{}}
	h := NewFundReportHandler(svc)
	c, w := newGinContext(http.MethodGet, "/api/transparency/reports/ngo/5", nil)
	c.Params = gin.Params{{Key: "ngoId", Value: "5"}}

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", svc.gotNGO)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, w).Data))
}
