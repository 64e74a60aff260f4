package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PledgeType distinguishes single gifts from recurring ones.
type PledgeType string

const (
	PledgeOneTime PledgeType = "one-time"
	PledgeMonthly PledgeType = "monthly"
)

// DonationStatus is the recorded outcome of a checkout.
type DonationStatus string

const (
	DonationSuccess   DonationStatus = "SUCCESS"
	DonationCancelled DonationStatus = "CANCELLED"
)

// Donation is one checkout attempt.
type Donation struct {
	ID           string          `db:"id" json:"id"`
	PaymentID    *string         `db:"payment_id" json:"paymentId,omitempty"`
	OrderID      *string         `db:"order_id" json:"orderId,omitempty"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	Currency     string          `db:"currency" json:"currency"`
	NGOID        string          `db:"ngo_id" json:"ngoId"`
	NGOName      string          `db:"ngo_name" json:"ngoName"`
	PledgeType   PledgeType      `db:"pledge_type" json:"pledgeType"`
	DonorName    string          `db:"donor_name" json:"donorName"`
	DonorEmail   string          `db:"donor_email" json:"donorEmail"`
	DonorPhone   string          `db:"donor_phone" json:"donorPhone"`
	DonorAddress *string         `db:"donor_address" json:"donorAddress,omitempty"`
	Status       DonationStatus  `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}

// DonationTotals aggregates successful donations.
type DonationTotals struct {
	Count  int             `db:"donations"`
	Amount decimal.Decimal `db:"amount"`
}
