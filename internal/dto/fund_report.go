package dto

// CreateFundReportRequest is the fund report form payload. Amounts are decimal strings.
type CreateFundReportRequest struct {
	ReportDate         string `json:"reportDate" validate:"required"`
	TotalFundsReceived string `json:"totalFundsReceived" validate:"required"`
	TotalFundsSpent    string `json:"totalFundsSpent" validate:"required"`
	Breakdown          string `json:"breakdown" validate:"required,max=10000"`
}
