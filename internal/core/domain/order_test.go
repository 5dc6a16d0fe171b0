package domain

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusDelivered, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusShipped, OrderStatusProcessing, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusCancelled, OrderStatusShipped, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusProcessing.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("pending").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderTotal(t *testing.T) {
	items := []LineItem{
		{ProductID: "p1", Size: "M", Color: "White", Quantity: 2, UnitPrice: decimal.NewFromFloat(29.99)},
	}
	// 59.98 + 10.00 shipping + 4.80 tax (8% of 59.98, rounded to cents)
	total := OrderTotal(items)
	assert.True(t, total.Equal(decimal.NewFromFloat(74.78)), "got %s", total)
}

func TestOrderTotalEmpty(t *testing.T) {
	total := OrderTotal(nil)
	assert.True(t, total.Equal(ShippingFee), "got %s", total)
}

func TestNewOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		require.Regexp(t, pattern, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestLineItemKey(t *testing.T) {
	li := LineItem{ProductID: "p1", Size: "L", Color: "Black"}
	assert.Equal(t, VariantKey{ProductID: "p1", Size: "L", Color: "Black"}, li.Key())
	assert.Equal(t, "p1/L/Black", li.Key().String())
}
