package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
	"github.com/ngoconnect/ngo-connect-api/pkg/payment"
)

// PaymentListener is notified of checkout outcomes.
type PaymentListener interface {
	OnSuccess(ctx context.Context, result dto.PaymentResult) error
	OnCancel(ctx context.Context, req dto.CancelRequest) error
}

type signatureVerifier interface {
	Verify(orderID, paymentID, signature string) error
}

// PaymentService runs simulated donation checkouts.
type PaymentService struct {
	gateway   payment.Gateway
	verifier  signatureVerifier
	listener  PaymentListener
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewPaymentService constructs the service.
func NewPaymentService(gateway payment.Gateway, verifier signatureVerifier, listener PaymentListener, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *PaymentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{gateway: gateway, verifier: verifier, listener: listener, validator: validate, metrics: metrics, logger: logger}
}

// Checkout opens a gateway session, captures the payment and notifies the success listener.
// The session is closed on every path.
func (s *PaymentService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.PaymentResult, error) {
	if err := s.validateCheckout(req); err != nil {
		return nil, err
	}

	session, err := s.gateway.Open(ctx)
	if err != nil {
		s.metrics.RecordPayment(OutcomeFailed, string(req.PledgeType))
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "payment gateway unavailable")
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			s.logger.Warn("failed to close payment session", zap.Error(cerr))
		}
	}()

	order, err := session.CreateOrder(ctx, payment.OrderRequest{
		Amount:  req.Amount,
		Receipt: "donation-" + req.NGO.ID,
		Notes: map[string]string{
			"ngo_id":      req.NGO.ID,
			"ngo_name":    req.NGO.Name,
			"pledge_type": string(req.PledgeType),
		},
	})
	if err != nil {
		s.metrics.RecordPayment(OutcomeFailed, string(req.PledgeType))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create payment order")
	}

	capture, err := session.Capture(ctx, order, payment.Prefill{Name: req.Donor.Name, Email: req.Donor.Email, Contact: req.Donor.Phone})
	if err != nil {
		if errors.Is(err, payment.ErrDeclined) {
			s.metrics.RecordPayment(OutcomeDeclined, string(req.PledgeType))
			return nil, appErrors.Wrap(err, appErrors.ErrPaymentDeclined.Code, appErrors.ErrPaymentDeclined.Status, "payment was declined")
		}
		s.metrics.RecordPayment(OutcomeFailed, string(req.PledgeType))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "payment failed")
	}

	result := dto.PaymentResult{
		PaymentID:  capture.PaymentID,
		OrderID:    capture.OrderID,
		Signature:  capture.Signature,
		Amount:     req.Amount,
		Currency:   order.Currency,
		NGO:        req.NGO,
		PledgeType: req.PledgeType,
		Donor:      req.Donor,
	}
	s.metrics.RecordPayment(OutcomeSuccess, string(req.PledgeType))

	if err := s.listener.OnSuccess(ctx, result); err != nil {
		s.logger.Error("payment captured but not recorded",
			zap.String("payment_id", result.PaymentID),
			zap.String("order_id", result.OrderID),
			zap.Error(err))
	}
	s.logger.Info("payment captured",
		zap.String("payment_id", result.PaymentID),
		zap.String("ngo_id", req.NGO.ID),
		zap.String("amount", req.Amount.String()))
	return &result, nil
}

// Cancel records a checkout the donor dismissed.
func (s *PaymentService) Cancel(ctx context.Context, req dto.CancelRequest) (*dto.CancelResponse, error) {
	if strings.TrimSpace(req.NGO.ID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "ngo id is required")
	}
	s.metrics.RecordPayment(OutcomeCancelled, string(req.PledgeType))
	if err := s.listener.OnCancel(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record cancellation")
	}
	return &dto.CancelResponse{Status: string(models.DonationCancelled), Message: "Payment was cancelled"}, nil
}

// Verify reports whether a signature was produced by this gateway for the order and payment.
func (s *PaymentService) Verify(ctx context.Context, req dto.VerifyRequest) (*dto.VerifyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "orderId, paymentId and signature are required")
	}
	if err := s.verifier.Verify(req.OrderID, req.PaymentID, req.Signature); err != nil {
		if errors.Is(err, payment.ErrSignatureMismatch) {
			return &dto.VerifyResponse{Valid: false}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify signature")
	}
	return &dto.VerifyResponse{Valid: true}, nil
}

func (s *PaymentService) validateCheckout(req dto.CheckoutRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "please fill in all required fields")
	}
	if !req.Amount.IsPositive() {
		return appErrors.Clone(appErrors.ErrValidation, "amount must be greater than zero")
	}
	if req.Amount.Exponent() < -2 {
		return appErrors.Clone(appErrors.ErrValidation, "amount supports at most two decimal places")
	}
	return nil
}

type donationWriter interface {
	Create(ctx context.Context, donation *models.Donation) error
}

// DonationRecorder is the PaymentListener that stores checkout outcomes as donations.
type DonationRecorder struct {
	repo     donationWriter
	currency string
}

// NewDonationRecorder constructs the recorder. currency is used for cancelled attempts, which carry none.
func NewDonationRecorder(repo donationWriter, currency string) *DonationRecorder {
	return &DonationRecorder{repo: repo, currency: currency}
}

// OnSuccess stores a successful donation.
func (r *DonationRecorder) OnSuccess(ctx context.Context, result dto.PaymentResult) error {
	paymentID, orderID := result.PaymentID, result.OrderID
	return r.repo.Create(ctx, &models.Donation{
		PaymentID:    &paymentID,
		OrderID:      &orderID,
		Amount:       result.Amount,
		Currency:     result.Currency,
		NGOID:        result.NGO.ID,
		NGOName:      result.NGO.Name,
		PledgeType:   result.PledgeType,
		DonorName:    result.Donor.Name,
		DonorEmail:   result.Donor.Email,
		DonorPhone:   result.Donor.Phone,
		DonorAddress: nonEmpty(result.Donor.Address),
		Status:       models.DonationSuccess,
	})
}

// OnCancel stores a cancelled attempt.
func (r *DonationRecorder) OnCancel(ctx context.Context, req dto.CancelRequest) error {
	return r.repo.Create(ctx, &models.Donation{
		OrderID:      nonEmpty(req.OrderID),
		Amount:       req.Amount,
		Currency:     r.currency,
		NGOID:        req.NGO.ID,
		NGOName:      req.NGO.Name,
		PledgeType:   req.PledgeType,
		DonorName:    req.Donor.Name,
		DonorEmail:   req.Donor.Email,
		DonorPhone:   req.Donor.Phone,
		DonorAddress: nonEmpty(req.Donor.Address),
		Status:       models.DonationCancelled,
	})
}

func nonEmpty(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}
