package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusBaking, true},
		{OrderStatusBaking, OrderStatusDelivered, true},

		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusBaking, OrderStatusCancelled, true},

		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},

		{OrderStatusPending, OrderStatusBaking, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusDelivered, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusBaking, OrderStatusConfirmed, false},

		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusPending, "unknown", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidStatusTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
