package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, st := range []string{"pending", "paid", "shipped", "delivered", "cancelled"} {
		t.Run(st, func(t *testing.T) {
			got, err := entities.ParseOrderStatus(st)
			require.NoError(t, err)
			assert.Equal(t, entities.OrderStatus(st), got)
		})
	}

	for _, st := range []string{"shipped-ish", "", "PAID", "refunded"} {
		t.Run("reject "+st, func(t *testing.T) {
			_, err := entities.ParseOrderStatus(st)
			assert.ErrorIs(t, err, entities.ErrValidation)
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from, to entities.OrderStatus
		want     bool
	}{
		{entities.StatusPending, entities.StatusPaid, true},
		{entities.StatusPaid, entities.StatusShipped, true},
		{entities.StatusShipped, entities.StatusDelivered, true},
		{entities.StatusPending, entities.StatusCancelled, true},
		{entities.StatusPaid, entities.StatusCancelled, true},

		{entities.StatusPending, entities.StatusShipped, false},
		{entities.StatusShipped, entities.StatusCancelled, false},
		{entities.StatusDelivered, entities.StatusPending, false},
		{entities.StatusCancelled, entities.StatusPaid, false},
		{entities.StatusPaid, entities.StatusPaid, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, entities.StatusDelivered.Terminal())
	assert.True(t, entities.StatusCancelled.Terminal())
	assert.False(t, entities.StatusPending.Terminal())
	assert.False(t, entities.StatusPaid.Terminal())
	assert.False(t, entities.StatusShipped.Terminal())
}
