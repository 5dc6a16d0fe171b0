package domain

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
// Processing orders may move to any other status (shipped may be skipped).
// Shipped orders may only be delivered. Delivered and cancelled are terminal,
// and nothing transitions back into processing.
func CanTransition(from, to OrderStatus) bool {
	switch from {
	case OrderStatusProcessing:
		return to == OrderStatusShipped || to == OrderStatusDelivered || to == OrderStatusCancelled
	case OrderStatusShipped:
		return to == OrderStatusDelivered
	}
	return false
}

// LineItem is a snapshot taken at order time. UnitPrice must not be
// re-derived from the current product price.
type LineItem struct {
	ProductID string
	Name      string
	Size      string
	Color     string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (li LineItem) Key() VariantKey {
	return VariantKey{ProductID: li.ProductID, Size: li.Size, Color: li.Color}
}

type Order struct {
	OrderID         string
	UserID          string
	Items           []LineItem
	ShippingAddress Address
	Total           decimal.Decimal // immutable after creation
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

var (
	ShippingFee = decimal.NewFromFloat(10.00)
	TaxRate     = decimal.NewFromFloat(0.08)
)

// OrderTotal computes item subtotal + flat shipping + tax on the subtotal,
// with the tax rounded to cents.
func OrderTotal(items []LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}
	tax := subtotal.Mul(TaxRate).Round(2)
	return subtotal.Add(ShippingFee).Add(tax)
}

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID returns a human-shareable order identifier:
// a fixed prefix, the creation time in unix millis, and a random suffix.
func NewOrderID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
