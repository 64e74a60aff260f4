package dto

import (
	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

// OpportunityFilter is the transient filter state for an opportunity listing.
// Empty fields are inactive.
type OpportunityFilter struct {
	Cause          string `form:"cause" json:"cause,omitempty"`
	Location       string `form:"location" json:"location,omitempty"`
	TimeCommitment string `form:"timeCommitment" json:"timeCommitment,omitempty"`
	WorkType       string `form:"workType" json:"workType,omitempty"`
	SearchTerm     string `form:"search" json:"searchTerm,omitempty"`
}

// IsZero reports whether no selector is set.
func (f OpportunityFilter) IsZero() bool {
	return f == OpportunityFilter{}
}

// OpportunityView is an opportunity enriched with the values the card renders.
type OpportunityView struct {
	models.Opportunity
	ProgressPercentage int    `json:"progressPercentage"`
	ProgressBarWidth   int    `json:"progressBarWidth"`
	CanApply           bool   `json:"canApply"`
	ActionLabel        string `json:"actionLabel"`
	UrgencyBadge       string `json:"urgencyBadge"`
}

// NewOpportunityView derives the rendered fields for o.
func NewOpportunityView(o models.Opportunity) OpportunityView {
	return OpportunityView{
		Opportunity:        o,
		ProgressPercentage: o.Progress(),
		ProgressBarWidth:   o.ProgressBarWidth(),
		CanApply:           o.CanApply(),
		ActionLabel:        o.ActionLabel(),
		UrgencyBadge:       o.Urgency.Badge(),
	}
}

// OpportunityListing is the outcome of a list request.
// LoadFailed distinguishes a store failure from a filter that matched nothing.
type OpportunityListing struct {
	Items      []OpportunityView `json:"items"`
	Total      int               `json:"total"`
	Matched    int               `json:"matched"`
	Filter     OpportunityFilter `json:"filter"`
	LoadFailed bool              `json:"loadFailed"`
}

// FilterOptions lists the distinct selector values present in the store.
type FilterOptions struct {
	Causes          []string `json:"causes"`
	Locations       []string `json:"locations"`
	TimeCommitments []string `json:"timeCommitments"`
	WorkTypes       []string `json:"workTypes"`
	Urgencies       []string `json:"urgencies"`
}

// ApplyRequest carries the applicant details for a selection.
type ApplyRequest struct {
	FullName         string `json:"fullName" validate:"required,max=200"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,max=32"`
	Address          string `json:"address" validate:"max=500"`
	Experience       string `json:"experience" validate:"max=2000"`
	Motivation       string `json:"motivation" validate:"required,max=2000"`
	Availability     string `json:"availability" validate:"required,max=200"`
	EmergencyContact string `json:"emergencyContact" validate:"max=200"`
	EmergencyPhone   string `json:"emergencyPhone" validate:"max=32"`
	Skills           string `json:"skills" validate:"max=1000"`
	AdditionalInfo   string `json:"additionalInfo" validate:"max=2000"`
}

// ApplyResponse acknowledges a forwarded selection.
type ApplyResponse struct {
	ApplicationID string `json:"applicationId"`
	OpportunityID string `json:"opportunityId"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}
