package service

import (
	"strings"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

type opportunityPredicate func(models.Opportunity) bool

// filterStage is one selector of the filter. active reports whether state sets the selector;
// build is only called for active stages.
type filterStage struct {
	name   string
	active func(state dto.OpportunityFilter) bool
	build  func(state dto.OpportunityFilter) opportunityPredicate
}

// OpportunityFilter derives the visible subset of opportunities for a filter state.
// Stages run in a fixed order and each one narrows the output of the previous one.
type OpportunityFilter struct {
	stages []filterStage
}

// NewOpportunityFilter builds the filter. Location matching ignores case unless locationCaseSensitive is set.
func NewOpportunityFilter(locationCaseSensitive bool) *OpportunityFilter {
	return &OpportunityFilter{stages: []filterStage{
		{
			name:   "cause",
			active: func(s dto.OpportunityFilter) bool { return s.Cause != "" },
			build: func(s dto.OpportunityFilter) opportunityPredicate {
				return func(o models.Opportunity) bool { return o.Cause == s.Cause }
			},
		},
		{
			name:   "location",
			active: func(s dto.OpportunityFilter) bool { return s.Location != "" },
			build: func(s dto.OpportunityFilter) opportunityPredicate {
				if locationCaseSensitive {
					return func(o models.Opportunity) bool { return strings.Contains(o.Location, s.Location) }
				}
				needle := strings.ToLower(s.Location)
				return func(o models.Opportunity) bool { return strings.Contains(strings.ToLower(o.Location), needle) }
			},
		},
		{
			name:   "timeCommitment",
			active: func(s dto.OpportunityFilter) bool { return s.TimeCommitment != "" },
			build: func(s dto.OpportunityFilter) opportunityPredicate {
				return func(o models.Opportunity) bool { return o.TimeCommitment == s.TimeCommitment }
			},
		},
		{
			name:   "workType",
			active: func(s dto.OpportunityFilter) bool { return s.WorkType != "" },
			build: func(s dto.OpportunityFilter) opportunityPredicate {
				return func(o models.Opportunity) bool { return o.WorkType == s.WorkType }
			},
		},
		{
			name:   "searchTerm",
			active: func(s dto.OpportunityFilter) bool { return s.SearchTerm != "" },
			build: func(s dto.OpportunityFilter) opportunityPredicate {
				needle := strings.ToLower(s.SearchTerm)
				return func(o models.Opportunity) bool {
					return strings.Contains(strings.ToLower(o.Title), needle) ||
						strings.Contains(strings.ToLower(o.Description), needle) ||
						strings.Contains(strings.ToLower(o.NGO), needle)
				}
			},
		},
	}}
}

// Apply returns the opportunities of all that satisfy every active selector of state,
// in their original order. The input is never modified and the result is a new slice.
func (f *OpportunityFilter) Apply(all []models.Opportunity, state dto.OpportunityFilter) []models.Opportunity {
	visible := append(make([]models.Opportunity, 0, len(all)), all...)
	for _, stage := range f.stages {
		if !stage.active(state) {
			continue
		}
		visible = narrow(visible, stage.build(state))
	}
	return visible
}

// ActiveStages lists the names of the stages state enables, in evaluation order.
func (f *OpportunityFilter) ActiveStages(state dto.OpportunityFilter) []string {
	names := []string{}
	for _, stage := range f.stages {
		if stage.active(state) {
			names = append(names, stage.name)
		}
	}
	return names
}

func narrow(items []models.Opportunity, keep opportunityPredicate) []models.Opportunity {
	out := items[:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
