package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrSessionClosed is returned by a Session used after Close.
	ErrSessionClosed = errors.New("payment session closed")
	// ErrDeclined is returned when the simulated gateway refuses a capture.
	ErrDeclined = errors.New("payment declined")
)

// OrderRequest describes the order to open with the gateway.
type OrderRequest struct {
	Amount  decimal.Decimal
	Receipt string
	Notes   map[string]string
}

// Order is a gateway order. AmountMinor is expressed in the currency's minor unit.
type Order struct {
	ID          string            `json:"id"`
	AmountMinor int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Receipt     string            `json:"receipt"`
	Notes       map[string]string `json:"notes,omitempty"`
	Merchant    string            `json:"merchant"`
	KeyID       string            `json:"keyId"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Prefill carries the payer details shown on the checkout form.
type Prefill struct {
	Name    string
	Email   string
	Contact string
}

// Capture is the outcome of a successful payment.
type Capture struct {
	OrderID    string
	PaymentID  string
	Signature  string
	CapturedAt time.Time
}

// Session is a checkout client bound to one donation attempt. Close must be called once done.
type Session interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	Capture(ctx context.Context, order *Order, prefill Prefill) (*Capture, error)
	Close() error
}

// Gateway hands out checkout sessions.
type Gateway interface {
	Open(ctx context.Context) (Session, error)
}

// MinorUnits converts a major-unit amount into minor units (paise for INR), rounding half-up.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// SimulatedConfig configures the in-process gateway.
type SimulatedConfig struct {
	KeyID     string
	KeySecret string
	Currency  string
	Merchant  string
	// Decline, when set, is consulted before each capture.
	Decline func(order *Order, prefill Prefill) bool
	Now     func() time.Time
}

// SimulatedGateway fabricates orders and payments locally and signs them like a real gateway would.
type SimulatedGateway struct {
	cfg    SimulatedConfig
	signer *Signer

	mu     sync.Mutex
	active int
}

// NewSimulatedGateway constructs the simulated gateway.
func NewSimulatedGateway(cfg SimulatedConfig) *SimulatedGateway {
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	cfg.Currency = strings.ToUpper(cfg.Currency)
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	return &SimulatedGateway{cfg: cfg, signer: NewSigner(cfg.KeySecret)}
}

// Signer exposes the signer used for captures.
func (g *SimulatedGateway) Signer() *Signer {
	return g.signer
}

// ActiveSessions reports the number of sessions opened and not yet closed.
func (g *SimulatedGateway) ActiveSessions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Open starts a checkout session.
func (g *SimulatedGateway) Open(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	g.active++
	g.mu.Unlock()
	return &simulatedSession{gateway: g}, nil
}

func (g *SimulatedGateway) release() {
	g.mu.Lock()
	g.active--
	g.mu.Unlock()
}

type simulatedSession struct {
	gateway *SimulatedGateway
	once    sync.Once
	mu      sync.Mutex
	closed  bool
}

func (s *simulatedSession) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if err := s.usable(ctx); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("order amount must be positive, got %s", req.Amount.String())
	}
	cfg := s.gateway.cfg
	return &Order{
		ID:          "order_" + uuid.NewString(),
		AmountMinor: MinorUnits(req.Amount),
		Currency:    cfg.Currency,
		Receipt:     req.Receipt,
		Notes:       req.Notes,
		Merchant:    cfg.Merchant,
		KeyID:       cfg.KeyID,
		CreatedAt:   cfg.Now(),
	}, nil
}

func (s *simulatedSession) Capture(ctx context.Context, order *Order, prefill Prefill) (*Capture, error) {
	if err := s.usable(ctx); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order required")
	}
	if decline := s.gateway.cfg.Decline; decline != nil && decline(order, prefill) {
		return nil, ErrDeclined
	}
	paymentID := "pay_" + uuid.NewString()
	signature, err := s.gateway.signer.Sign(order.ID, paymentID)
	if err != nil {
		return nil, fmt.Errorf("sign payment: %w", err)
	}
	return &Capture{
		OrderID:    order.ID,
		PaymentID:  paymentID,
		Signature:  signature,
		CapturedAt: s.gateway.cfg.Now(),
	}, nil
}

func (s *simulatedSession) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		s.gateway.release()
	})
	return nil
}

func (s *simulatedSession) usable(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}
