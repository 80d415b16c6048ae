package entity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentApplyTransition(t *testing.T) {
	tests := []struct {
		name        string
		from        PaymentStatus
		target      PaymentStatus
		wantChanged bool
		wantErr     bool
	}{
		{name: "pending to paid", from: PaymentStatusPending, target: PaymentStatusPaid, wantChanged: true},
		{name: "pending to failed", from: PaymentStatusPending, target: PaymentStatusFailed, wantChanged: true},
		{name: "paid to refunded", from: PaymentStatusPaid, target: PaymentStatusRefunded, wantChanged: true},
		{name: "paid replay is noop", from: PaymentStatusPaid, target: PaymentStatusPaid, wantChanged: false},
		{name: "failed replay is noop", from: PaymentStatusFailed, target: PaymentStatusFailed, wantChanged: false},
		{name: "paid to failed rejected", from: PaymentStatusPaid, target: PaymentStatusFailed, wantErr: true},
		{name: "failed to paid rejected", from: PaymentStatusFailed, target: PaymentStatusPaid, wantErr: true},
		{name: "refunded to pending rejected", from: PaymentStatusRefunded, target: PaymentStatusPending, wantErr: true},
		{name: "refunded to paid rejected", from: PaymentStatusRefunded, target: PaymentStatusPaid, wantErr: true},
		{name: "pending to refunded rejected", from: PaymentStatusPending, target: PaymentStatusRefunded, wantErr: true},
		{name: "unknown status rejected", from: PaymentStatusPending, target: PaymentStatus("bogus"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payment{Method: PaymentMethodStripe, Status: tt.from}
			changed, err := p.ApplyTransition(tt.target, "pi_123")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrPaymentTransitionInvalid))
				assert.Equal(t, tt.from, p.Status, "rejected transition must not mutate the payment")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			if tt.wantChanged {
				assert.Equal(t, tt.target, p.Status)
				assert.Equal(t, "pi_123", p.TransactionID)
			} else {
				assert.Equal(t, tt.from, p.Status)
			}
		})
	}
}

func TestPaymentApplyTransitionIdempotentReplay(t *testing.T) {
	p := Payment{Method: PaymentMethodStripe, Status: PaymentStatusPending}

	changed, err := p.ApplyTransition(PaymentStatusPaid, "pi_once")
	require.NoError(t, err)
	assert.True(t, changed)

	// Replaying the same event must converge to the same state.
	changed, err = p.ApplyTransition(PaymentStatusPaid, "pi_once")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, PaymentStatusPaid, p.Status)
	assert.Equal(t, "pi_once", p.TransactionID)
}

func TestCanTransitionOrderStatus(t *testing.T) {
	assert.True(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusProcessing))
	assert.True(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusCancelled))
	assert.True(t, CanTransitionOrderStatus(OrderStatusProcessing, OrderStatusShipped))
	assert.True(t, CanTransitionOrderStatus(OrderStatusProcessing, OrderStatusCancelled))
	assert.True(t, CanTransitionOrderStatus(OrderStatusShipped, OrderStatusDelivered))
	assert.True(t, CanTransitionOrderStatus(OrderStatusDelivered, OrderStatusDelivered))

	assert.False(t, CanTransitionOrderStatus(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, CanTransitionOrderStatus(OrderStatusCancelled, OrderStatusProcessing))
	assert.False(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusDelivered))
	assert.False(t, CanTransitionOrderStatus(OrderStatusShipped, OrderStatusCancelled))
}
