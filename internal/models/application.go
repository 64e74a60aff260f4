package models

import "time"

// ApplicationStatus tracks a forwarded volunteer selection.
type ApplicationStatus string

const ApplicationPending ApplicationStatus = "PENDING"

// VolunteerApplication is a selection forwarded for an opportunity.
type VolunteerApplication struct {
	ID               string            `db:"id" json:"id"`
	OpportunityID    string            `db:"opportunity_id" json:"opportunityId"`
	FullName         string            `db:"full_name" json:"fullName"`
	Email            string            `db:"email" json:"email"`
	Phone            string            `db:"phone" json:"phone"`
	Address          *string           `db:"address" json:"address,omitempty"`
	Experience       *string           `db:"experience" json:"experience,omitempty"`
	Motivation       string            `db:"motivation" json:"motivation"`
	Availability     string            `db:"availability" json:"availability"`
	EmergencyContact *string           `db:"emergency_contact" json:"emergencyContact,omitempty"`
	EmergencyPhone   *string           `db:"emergency_phone" json:"emergencyPhone,omitempty"`
	Skills           *string           `db:"skills" json:"skills,omitempty"`
	AdditionalInfo   *string           `db:"additional_info" json:"additionalInfo,omitempty"`
	Status           ApplicationStatus `db:"status" json:"status"`
	CreatedAt        time.Time         `db:"created_at" json:"createdAt"`
}
