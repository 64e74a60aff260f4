package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

// NGORef identifies the beneficiary of a donation.
type NGORef struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"max=200"`
}

// DonorDetails are the payer's contact details.
type DonorDetails struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Address string `json:"address,omitempty" validate:"max=500"`
}

// CheckoutRequest starts a simulated donation payment.
type CheckoutRequest struct {
	Amount     decimal.Decimal   `json:"amount"`
	NGO        NGORef            `json:"ngo"`
	PledgeType models.PledgeType `json:"pledgeType" validate:"required,oneof=one-time monthly"`
	Donor      DonorDetails      `json:"donor"`
}

// PaymentResult is delivered to the success listener and returned to the caller.
type PaymentResult struct {
	PaymentID  string            `json:"paymentId"`
	OrderID    string            `json:"orderId"`
	Signature  string            `json:"signature"`
	Amount     decimal.Decimal   `json:"amount"`
	Currency   string            `json:"currency"`
	NGO        NGORef            `json:"ngo"`
	PledgeType models.PledgeType `json:"pledgeType"`
	Donor      DonorDetails      `json:"donor"`
}

// CancelRequest reports a checkout the donor dismissed.
type CancelRequest struct {
	OrderID string `json:"orderId"`
	CheckoutRequest
}

// CancelResponse acknowledges a cancellation.
type CancelResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VerifyRequest checks a payment signature.
type VerifyRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// VerifyResponse reports whether a signature is authentic.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}
