package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundReport is an NGO's disclosure of funds received and spent up to a date.
type FundReport struct {
	ID                 string          `db:"id" json:"id"`
	NGOID              string          `db:"ngo_id" json:"ngoId"`
	ReportDate         Date            `db:"report_date" json:"reportDate"`
	TotalFundsReceived decimal.Decimal `db:"total_funds_received" json:"totalFundsReceived"`
	TotalFundsSpent    decimal.Decimal `db:"total_funds_spent" json:"totalFundsSpent"`
	Breakdown          string          `db:"breakdown" json:"breakdown"`
	CreatedAt          time.Time       `db:"created_at" json:"createdAt"`
}

// FundTotals aggregates reports across the platform.
type FundTotals struct {
	Received      decimal.Decimal `db:"received"`
	Spent         decimal.Decimal `db:"spent"`
	ReportingNGOs int             `db:"reporting_ngos"`
	Reports       int             `db:"reports"`
}
