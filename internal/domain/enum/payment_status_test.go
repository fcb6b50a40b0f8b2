package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTransitions(t *testing.T) {
	tests := []struct {
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{PaymentStatusPending, PaymentStatusPaid, true},
		{PaymentStatusPending, PaymentStatusOverdue, true},
		{PaymentStatusPending, PaymentStatusCancelled, true},
		{PaymentStatusOverdue, PaymentStatusPaid, true},
		{PaymentStatusOverdue, PaymentStatusCancelled, true},
		{PaymentStatusOverdue, PaymentStatusPending, false},
		{PaymentStatusPaid, PaymentStatusPending, false},
		{PaymentStatusPaid, PaymentStatusOverdue, false},
		{PaymentStatusCancelled, PaymentStatusPaid, false},
		{PaymentStatusPending, PaymentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentStatusTerminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.False(t, PaymentStatusOverdue.IsTerminal())
	assert.True(t, PaymentStatusPaid.IsTerminal())
	assert.True(t, PaymentStatusCancelled.IsTerminal())
}

func TestPaymentStatusJSONRoundTrip(t *testing.T) {
	data, err := PaymentStatusOverdue.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"overdue"`, string(data))

	var s PaymentStatus
	assert.NoError(t, s.UnmarshalJSON([]byte(`"cancelled"`)))
	assert.Equal(t, PaymentStatusCancelled, s)
}
