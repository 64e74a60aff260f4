package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/pkg/response"
)

type paymentService interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.PaymentResult, error)
	Cancel(ctx context.Context, req dto.CancelRequest) (*dto.CancelResponse, error)
	Verify(ctx context.Context, req dto.VerifyRequest) (*dto.VerifyResponse, error)
}

// PaymentHandler runs donation checkouts.
type PaymentHandler struct {
	payments paymentService
}

// NewPaymentHandler constructs the handler.
func NewPaymentHandler(payments paymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Checkout godoc
// @Summary Pay a donation through the simulated gateway
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body dto.CheckoutRequest true "Checkout"
// @Success 200 {object} response.Envelope
// @Failure 402 {object} response.Envelope
// @Router /payments/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.payments.Checkout(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Cancel godoc
// @Summary Record a dismissed checkout
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body dto.CancelRequest true "Cancelled checkout"
// @Success 200 {object} response.Envelope
// @Router /payments/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	var req dto.CancelRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.payments.Cancel(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// Verify godoc
// @Summary Verify a payment signature
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body dto.VerifyRequest true "Signature"
// @Success 200 {object} response.Envelope
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.payments.Verify(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
