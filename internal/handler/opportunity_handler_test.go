package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	"github.com/ngoconnect/ngo-connect-api/internal/service"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
)

type opportunityServiceMock struct {
	listing    dto.OpportunityListing
	lastFilter dto.OpportunityFilter
	view       *dto.OpportunityView
	err        error
}

func (m *opportunityServiceMock) List(_ context.Context, filter dto.OpportunityFilter) dto.OpportunityListing {
	m.lastFilter = filter
	return m.listing
}

func (m *opportunityServiceMock) Available(context.Context) dto.OpportunityListing {
	return m.listing
}

func (m *opportunityServiceMock) Get(context.Context, string) (*dto.OpportunityView, error) {
	return m.view, m.err
}

func (m *opportunityServiceMock) FilterOptions(context.Context) dto.FilterOptions {
	return dto.FilterOptions{Causes: []string{"Education"}}
}

type selectionServiceMock struct {
	resp *dto.ApplyResponse
	err  error
	id   string
}

func (m *selectionServiceMock) Apply(_ context.Context, id string, _ dto.ApplyRequest) (*dto.ApplyResponse, error) {
	m.id = id
	return m.resp, m.err
}

func TestOpportunityHandlerListBindsQuery(t *testing.T) {
	opp := models.Opportunity{ID: "2", Title: "Teaching Assistant", VolunteersNeeded: 10, VolunteersApplied: 8}
	svc := &opportunityServiceMock{listing: dto.OpportunityListing{
		Items:   []dto.OpportunityView{dto.NewOpportunityView(opp)},
		Total:   4,
		Matched: 1,
	}}
	h := NewOpportunityHandler(svc, nil)

	c, w := newGinContext(http.MethodGet, "/api/opportunities?cause=Education&location=Del&search=teach&workType=Teaching&timeCommitment=2+hours%2Fweek", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.OpportunityFilter{
		Cause:          "Education",
		Location:       "Del",
		TimeCommitment: "2 hours/week",
		WorkType:       "Teaching",
		SearchTerm:     "teach",
	}, svc.lastFilter)

	env := decodeEnvelope(t, w)
	var listing dto.OpportunityListing
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	require.Len(t, listing.Items, 1)
	assert.Equal(t, 80, listing.Items[0].ProgressPercentage)
	assert.Equal(t, "Apply Now", listing.Items[0].ActionLabel)
	assert.NotContains(t, env.Meta, "message")
}

func TestOpportunityHandlerListMessages(t *testing.T) {
	cases := []struct {
		name    string
		listing dto.OpportunityListing
		message string
	}{
		{"load failure", dto.OpportunityListing{LoadFailed: true}, MessageOpportunityError},
		{"empty store", dto.OpportunityListing{}, MessageNoOpportunities},
		{"no matches", dto.OpportunityListing{Total: 4}, MessageNoMatches},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewOpportunityHandler(&opportunityServiceMock{listing: tc.listing}, nil)
			c, w := newGinContext(http.MethodGet, "/api/opportunities", nil)
			h.List(c)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.message, decodeEnvelope(t, w).Meta["message"])
		})
	}
}

func TestOpportunityHandlerGet(t *testing.T) {
	h := NewOpportunityHandler(&opportunityServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "opportunity not found")}, nil)
	c, w := newGinContext(http.MethodGet, "/api/opportunities/9", nil)
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	view := dto.NewOpportunityView(models.Opportunity{ID: "3", VolunteersNeeded: 25, VolunteersApplied: 25})
	h = NewOpportunityHandler(&opportunityServiceMock{view: &view}, nil)
	c, w = newGinContext(http.MethodGet, "/api/opportunities/3", nil)
	h.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actionLabel":"Fully Booked"`)
	assert.Contains(t, w.Body.String(), `"canApply":false`)
}

func TestOpportunityHandlerFilterOptions(t *testing.T) {
	h := NewOpportunityHandler(&opportunityServiceMock{}, nil)
	c, w := newGinContext(http.MethodGet, "/api/opportunities/filter-options", nil)
	h.FilterOptions(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"causes":["Education"]`)
}

func TestOpportunityHandlerApply(t *testing.T) {
	sel := &selectionServiceMock{resp: &dto.ApplyResponse{ApplicationID: "app-1", OpportunityID: "1", Status: "PENDING"}}
	h := NewOpportunityHandler(nil, sel)

	c, w := newGinContext(http.MethodPost, "/api/opportunities/1/apply", []byte(`{"fullName":"Asha","email":"a@b.org"}`))
	c.Params = []gin.Param{{Key: "id", Value: "1"}}
	h.Apply(c)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "1", sel.id)
}

func TestOpportunityHandlerApplyErrors(t *testing.T) {
	h := NewOpportunityHandler(nil, &selectionServiceMock{err: service.ErrFullyBooked})
	c, w := newGinContext(http.MethodPost, "/api/opportunities/3/apply", []byte(`{}`))
	h.Apply(c)
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Equal(t, "opportunity is fully booked", decodeEnvelope(t, w).Error.Message)

	c, w = newGinContext(http.MethodPost, "/api/opportunities/3/apply", []byte(`{not json`))
	h.Apply(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
