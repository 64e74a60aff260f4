package dto

import "github.com/shopspring/decimal"

// TransparencySummary is the platform-wide disclosure view.
type TransparencySummary struct {
	TotalFundsReceived    decimal.Decimal `json:"totalFundsReceived"`
	TotalFundsSpent       decimal.Decimal `json:"totalFundsSpent"`
	UtilisationRate       decimal.Decimal `json:"utilisationRate"`
	ReportingNGOs         int             `json:"reportingNgos"`
	Reports               int             `json:"reports"`
	SuccessfulDonations   int             `json:"successfulDonations"`
	DonatedAmount         decimal.Decimal `json:"donatedAmount"`
	VolunteerApplications int             `json:"volunteerApplications"`
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
