package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/service"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
)

type contactServiceMock struct {
	err error
	got dto.ContactRequest
}

func (m *contactServiceMock) Submit(_ context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.ContactResponse{ID: "m1", Message: service.ContactConfirmation}, nil
}

func TestContactHandlerSubmit(t *testing.T) {
	svc := &contactServiceMock{}
	h := NewContactHandler(svc)

	c, w := newGinContext(http.MethodPost, "/api/contact", []byte(`{"name":"Ravi","email":"r@x.org","subject":"Hi","message":"Hello"}`))
	h.Submit(c)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "Ravi", svc.got.Name)
	assert.Contains(t, w.Body.String(), service.ContactConfirmation)
}

func TestContactHandlerValidationError(t *testing.T) {
	h := NewContactHandler(&contactServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "name, email, subject and message are required")})
	c, w := newGinContext(http.MethodPost, "/api/contact", []byte(`{}`))
	h.Submit(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w).Error.Code)
}
