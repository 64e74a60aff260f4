package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/middleware"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
	"github.com/ngoconnect/ngo-connect-api/pkg/response"
)

// Listing messages shown when nothing can be rendered.
const (
	MessageNoOpportunities  = "No volunteer opportunities available at the moment."
	MessageNoMatches        = "No opportunities match the selected filters."
	MessageOpportunityError = "Failed to load volunteer opportunities. Please try again later."
)

type opportunityService interface {
	List(ctx context.Context, filter dto.OpportunityFilter) dto.OpportunityListing
	Available(ctx context.Context) dto.OpportunityListing
	Get(ctx context.Context, id string) (*dto.OpportunityView, error)
	FilterOptions(ctx context.Context) dto.FilterOptions
}

type selectionService interface {
	Apply(ctx context.Context, opportunityID string, req dto.ApplyRequest) (*dto.ApplyResponse, error)
}

// OpportunityHandler serves the volunteer opportunity board.
type OpportunityHandler struct {
	opportunities opportunityService
	selections    selectionService
}

// NewOpportunityHandler constructs the handler.
func NewOpportunityHandler(opportunities opportunityService, selections selectionService) *OpportunityHandler {
	return &OpportunityHandler{opportunities: opportunities, selections: selections}
}

// List godoc
// @Summary List volunteer opportunities
// @Tags Opportunities
// @Produce json
// @Param cause query string false "Exact cause"
// @Param location query string false "Location substring"
// @Param timeCommitment query string false "Exact time commitment"
// @Param workType query string false "Exact work type"
// @Param search query string false "Search title, description and NGO name"
// @Success 200 {object} response.Envelope
// @Router /opportunities [get]
func (h *OpportunityHandler) List(c *gin.Context) {
	var filter dto.OpportunityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid filter"))
		return
	}
	h.writeListing(c, h.opportunities.List(c.Request.Context(), filter))
}

// Available godoc
// @Summary List opportunities that still accept volunteers
// @Tags Opportunities
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /opportunities/available [get]
func (h *OpportunityHandler) Available(c *gin.Context) {
	h.writeListing(c, h.opportunities.Available(c.Request.Context()))
}

// FilterOptions godoc
// @Summary Distinct filter values
// @Tags Opportunities
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /opportunities/filter-options [get]
func (h *OpportunityHandler) FilterOptions(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.opportunities.FilterOptions(c.Request.Context()))
}

// Get godoc
// @Summary Get an opportunity
// @Tags Opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) Get(c *gin.Context) {
	view, err := h.opportunities.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Apply godoc
// @Summary Apply to volunteer
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Param payload body dto.ApplyRequest true "Applicant"
// @Success 202 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /opportunities/{id}/apply [post]
func (h *OpportunityHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.selections.Apply(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, resp)
}

func (h *OpportunityHandler) writeListing(c *gin.Context, listing dto.OpportunityListing) {
	middleware.SetMeta(c, "total", listing.Total)
	middleware.SetMeta(c, "matched", listing.Matched)
	switch {
	case listing.LoadFailed:
		middleware.SetMeta(c, "message", MessageOpportunityError)
	case listing.Total == 0:
		middleware.SetMeta(c, "message", MessageNoOpportunities)
	case listing.Matched == 0:
		middleware.SetMeta(c, "message", MessageNoMatches)
	}
	response.JSON(c, http.StatusOK, listing, middleware.ExtractMeta(c))
}
