package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/obs"
	"github.com/ltnam/fashion-store/internal/port"
)

var ErrEmptyOrder = errors.New("order has no items")

// ItemRequest is one cart line at checkout. The cart itself lives on the
// client; this is its only synchronization point with the server.
type ItemRequest struct {
	ProductID string
	Size      string
	Color     string
	Quantity  int
}

// OrderService is the only component that mutates orders and the stock
// ledger together. It preserves: sum of reserved stock equals the sum of
// quantities in all non-cancelled orders' line items.
type OrderService struct {
	orders   port.OrderRepository
	products port.ProductRepository
	stock    *InventoryService
}

func NewOrderService(orders port.OrderRepository, products port.ProductRepository, stock *InventoryService) *OrderService {
	return &OrderService{orders: orders, products: products, stock: stock}
}

// PlaceOrder snapshots prices, reserves stock all-or-nothing, and persists
// the order with status processing. On any reservation failure nothing is
// persisted and no net stock change remains.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, items []ItemRequest, shipping domain.Address) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	lines, err := s.snapshotItems(ctx, items)
	if err != nil {
		return nil, err
	}

	if err := s.stock.ReserveAll(ctx, lines); err != nil {
		return nil, err
	}

	now := time.Now()
	order := domain.Order{
		OrderID:         domain.NewOrderID(),
		UserID:          userID,
		Items:           lines,
		ShippingAddress: shipping,
		Total:           domain.OrderTotal(lines),
		Status:          domain.OrderStatusProcessing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		// Reservation already applied; give the stock back.
		if rbErr := s.stock.ReleaseAll(ctx, lines); rbErr != nil {
			obs.Logger.Error("order_rollback_failed",
				"order_id", order.OrderID,
				"error", rbErr.Error(),
			)
		}
		return nil, fmt.Errorf("persist order: %w", err)
	}

	return &order, nil
}

// snapshotItems resolves each requested variant against the catalog and
// freezes name and unit price.
func (s *OrderService) snapshotItems(ctx context.Context, items []ItemRequest) ([]domain.LineItem, error) {
	cache := make(map[string]*domain.Product)
	lines := make([]domain.LineItem, 0, len(items))

	for _, req := range items {
		key := domain.VariantKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
		if req.Quantity <= 0 {
			return nil, &domain.OrderRejectedError{Item: key, Err: errors.New("quantity must be positive")}
		}

		p, ok := cache[req.ProductID]
		if !ok {
			var err error
			p, err = s.products.GetProduct(ctx, req.ProductID)
			if err != nil {
				return nil, fmt.Errorf("load product %s: %w", req.ProductID, err)
			}
			cache[req.ProductID] = p
		}
		if p == nil || !p.Active || p.Variant(req.Size, req.Color) == nil {
			return nil, &domain.OrderRejectedError{Item: key, Err: domain.ErrVariantNotFound}
		}

		lines = append(lines, domain.LineItem{
			ProductID: req.ProductID,
			Name:      p.Name,
			Size:      req.Size,
			Color:     req.Color,
			Quantity:  req.Quantity,
			UnitPrice: p.Price,
		})
	}
	return lines, nil
}

// CancelOrder is the customer-driven cancellation. Only the owner may
// cancel, and only while the order is still processing.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, requestingUserID string) error {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.UserID != requestingUserID {
		return domain.ErrForbidden
	}
	return s.cancel(ctx, order)
}

// cancel is the single cancellation path, for customers and
// administrators alike. The status flips first and stock is released
// after: if the release then fails, the stranded reservation can be
// swept back, whereas releasing first would let a failed status write
// plus a retried cancel inflate stock.
func (s *OrderService) cancel(ctx context.Context, order *domain.Order) error {
	if order.Status != domain.OrderStatusProcessing {
		return fmt.Errorf("%w: cannot cancel order with status %s", domain.ErrInvalidTransition, order.Status)
	}
	if err := s.orders.UpdateOrderStatus(ctx, order.OrderID, domain.OrderStatusCancelled); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if err := s.stock.ReleaseAll(ctx, order.Items); err != nil {
		obs.Logger.Error("stock_release_after_cancel_failed",
			"order_id", order.OrderID,
			"error", err.Error(),
		)
	}
	return nil
}

// UpdateStatus is the administrative transition. A cancellation goes
// through the same path as a customer cancel so reserved stock is never
// stranded.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, status)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return domain.ErrNotFound
	}

	if status == domain.OrderStatusCancelled {
		return s.cancel(ctx, order)
	}
	if !domain.CanTransition(order.Status, status) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, status)
	}
	if err := s.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// GetOrder returns an order visible to the requester: the owner or an admin.
func (s *OrderService) GetOrder(ctx context.Context, orderID string, requester port.Identity) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != requester.UserID && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// ListUserOrders returns a user's orders, newest first. Only the user
// themselves or an admin may list them.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string, requester port.Identity) ([]domain.Order, error) {
	if userID != requester.UserID && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	orders, err := s.orders.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListAllOrders returns every order, newest first. Admin gating happens at
// the transport layer.
func (s *OrderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
