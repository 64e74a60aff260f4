package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrSignatureMismatch is returned when a payment signature does not verify.
var ErrSignatureMismatch = errors.New("payment signature mismatch")

// Signer creates and validates checkout signatures over "orderId|paymentId".
type Signer struct {
	secret []byte
}

// NewSigner constructs a signer keyed with the gateway secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the hex encoded HMAC-SHA256 of orderID|paymentID.
func (s *Signer) Sign(orderID, paymentID string) (string, error) {
	if orderID == "" || paymentID == "" {
		return "", errors.New("orderID and paymentID required")
	}
	if len(s.secret) == 0 {
		return "", errors.New("signing secret missing")
	}
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks signature in constant time.
func (s *Signer) Verify(orderID, paymentID, signature string) error {
	expected, err := s.Sign(orderID, paymentID)
	if err != nil {
		return err
	}
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}
