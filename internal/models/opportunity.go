package models

import "math"

// Urgency ranks how soon an opportunity needs volunteers.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Badge maps urgency to the front-end badge variant.
func (u Urgency) Badge() string {
	switch u {
	case UrgencyHigh:
		return "danger"
	case UrgencyMedium:
		return "warning"
	case UrgencyLow:
		return "success"
	default:
		return "secondary"
	}
}

// Known causes.
const (
	CauseEnvironment       = "Environment"
	CauseEducation         = "Education"
	CauseHealthcare        = "Healthcare"
	CauseWomenEmpowerment  = "Women Empowerment"
	CauseDisasterRelief    = "Disaster Relief"
	ActionLabelApply       = "Apply Now"
	ActionLabelFullyBooked = "Fully Booked"
)

// Opportunity is a volunteering listing published by an NGO.
type Opportunity struct {
	ID                string   `db:"id" json:"id" yaml:"id"`
	Title             string   `db:"title" json:"title" yaml:"title"`
	NGO               string   `db:"ngo" json:"ngo" yaml:"ngo"`
	Cause             string   `db:"cause" json:"cause" yaml:"cause"`
	Location          string   `db:"location" json:"location" yaml:"location"`
	TimeCommitment    string   `db:"time_commitment" json:"timeCommitment" yaml:"timeCommitment"`
	WorkType          string   `db:"work_type" json:"workType" yaml:"workType"`
	Description       string   `db:"description" json:"description" yaml:"description"`
	Requirements      []string `db:"-" json:"requirements" yaml:"requirements"`
	StartDate         Date     `db:"start_date" json:"startDate" yaml:"startDate"`
	EndDate           Date     `db:"end_date" json:"endDate" yaml:"endDate"`
	VolunteersNeeded  int      `db:"volunteers_needed" json:"volunteersNeeded" yaml:"volunteersNeeded"`
	VolunteersApplied int      `db:"volunteers_applied" json:"volunteersApplied" yaml:"volunteersApplied"`
	Urgency           Urgency  `db:"urgency" json:"urgency" yaml:"urgency"`
	Image             string   `db:"image" json:"image" yaml:"image"`
}

// CanApply reports whether the opportunity still has room.
func (o Opportunity) CanApply() bool {
	return o.VolunteersApplied < o.VolunteersNeeded
}

// ActionLabel is the call-to-action text shown for the opportunity.
func (o Opportunity) ActionLabel() string {
	if o.CanApply() {
		return ActionLabelApply
	}
	return ActionLabelFullyBooked
}

// Progress returns the filled percentage of the opportunity.
func (o Opportunity) Progress() int {
	return ProgressPercentage(o.VolunteersApplied, o.VolunteersNeeded)
}

// ProgressBarWidth is Progress clamped to 0..100 for rendering a bar.
func (o Opportunity) ProgressBarWidth() int {
	if p := o.Progress(); p < 100 {
		return p
	}
	return 100
}

// ProgressPercentage returns round(applied/needed*100) with halves rounded up.
// A non-positive need counts as full. Overfilled listings report more than 100.
func ProgressPercentage(applied, needed int) int {
	if needed <= 0 {
		return 100
	}
	if applied <= 0 {
		return 0
	}
	return int(math.Floor(float64(applied)*100/float64(needed) + 0.5))
}
