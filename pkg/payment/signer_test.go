package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignerRoundTrip(t *testing.T) {
	s := NewSigner("secret")
	sig, err := s.Sign("order_1", "pay_1")
	require.NoError(t, err)
	assert.Len(t, sig, 64)
	assert.NoError(t, s.Verify("order_1", "pay_1", sig))
}

func TestSignerRejectsTampering(t *testing.T) {
	s := NewSigner("secret")
	sig, err := s.Sign("order_1", "pay_1")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Verify("order_1", "pay_2", sig), ErrSignatureMismatch)
	assert.ErrorIs(t, NewSigner("other").Verify("order_1", "pay_1", sig), ErrSignatureMismatch)
}

func TestSignerRequiresInputs(t *testing.T) {
	_, err := NewSigner("").Sign("order_1", "pay_1")
	assert.Error(t, err)
	_, err = NewSigner("secret").Sign("", "pay_1")
	assert.Error(t, err)
}
