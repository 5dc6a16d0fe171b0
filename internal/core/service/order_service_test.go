package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltnam/fashion-store/internal/adapter/storage"
	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/core/service"
	"github.com/ltnam/fashion-store/internal/port"
)

type orderFixture struct {
	store    *storage.MemoryStore
	orders   *service.OrderService
	products *service.ProductService
	product  *domain.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	inventory := service.NewInventoryService(store)
	products := service.NewProductService(store, inventory)
	orders := service.NewOrderService(store, store, inventory)

	product, err := products.Create(context.Background(), domain.Product{
		Name:     "Classic Cotton T-Shirt",
		Category: domain.CategoryMen,
		Price:    decimal.NewFromFloat(29.99),
		Sizes:    []string{"M", "L"},
		Colors:   []string{"White"},
		Variants: []domain.Variant{
			{Size: "M", Color: "White", SKU: "TS-W-M", Stock: 5},
			{Size: "L", Color: "White", SKU: "TS-W-L", Stock: 2},
		},
	})
	require.NoError(t, err)

	return &orderFixture{store: store, orders: orders, products: products, product: product}
}

func (f *orderFixture) stock(t *testing.T, size, color string) int {
	t.Helper()
	p, err := f.store.GetProduct(context.Background(), f.product.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	v := p.Variant(size, color)
	require.NotNil(t, v)
	return v.Stock
}

func shippingAddr() domain.Address {
	return domain.Address{FullName: "An Tran", Line1: "12 Hang Bai", City: "Hanoi", Country: "VN"}
}

func TestPlaceOrderSuccess(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 2},
	}, shippingAddr())
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Equal(t, "user-1", order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Classic Cotton T-Shirt", order.Items[0].Name)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromFloat(29.99)))

	// 59.98 + 10.00 + 4.80
	assert.True(t, order.Total.Equal(decimal.NewFromFloat(74.78)), "got %s", order.Total)
	assert.Equal(t, 3, f.stock(t, "M", "White"))
}

func TestPlaceOrderSnapshotSurvivesPriceChange(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 1},
	}, shippingAddr())
	require.NoError(t, err)

	updated := *f.product
	updated.Price = decimal.NewFromFloat(99.99)
	_, err = f.products.Update(ctx, updated)
	require.NoError(t, err)

	reloaded, err := f.store.GetOrder(ctx, order.OrderID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.Items[0].UnitPrice.Equal(decimal.NewFromFloat(29.99)))
	assert.True(t, reloaded.Total.Equal(order.Total))
}

func TestPlaceOrderEmpty(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.orders.PlaceOrder(context.Background(), "user-1", nil, shippingAddr())
	require.ErrorIs(t, err, service.ErrEmptyOrder)
}

func TestPlaceOrderInsufficientStockLeavesNoTrace(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 2},
		{ProductID: f.product.ID, Size: "L", Color: "White", Quantity: 3},
	}, shippingAddr())
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var rejected *domain.OrderRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "L", rejected.Item.Size)

	// Neither stock nor orders may show any effect of the failed attempt.
	assert.Equal(t, 5, f.stock(t, "M", "White"))
	assert.Equal(t, 2, f.stock(t, "L", "White"))
	all, err := f.store.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPlaceOrderUnknownVariant(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.orders.PlaceOrder(context.Background(), "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "XXL", Color: "White", Quantity: 1},
	}, shippingAddr())
	require.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestPlaceOrderInactiveProduct(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	require.NoError(t, f.products.Delete(ctx, f.product.ID))

	_, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 1},
	}, shippingAddr())
	require.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestPlaceOrderRejectsNonPositiveQuantity(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.orders.PlaceOrder(context.Background(), "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 0},
	}, shippingAddr())
	var rejected *domain.OrderRejectedError
	require.ErrorAs(t, err, &rejected)
}

func TestPlaceOrderConcurrentOversell(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	// Stock 5, two concurrent orders of 3 each: exactly one may win.
	var success, fail atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
				{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 3},
			}, shippingAddr())
			if err == nil {
				success.Add(1)
			} else {
				fail.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), success.Load())
	assert.Equal(t, int32(1), fail.Load())
	assert.Equal(t, 2, f.stock(t, "M", "White"))
}

func TestCancelOrderReleasesStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 2},
	}, shippingAddr())
	require.NoError(t, err)
	require.Equal(t, 3, f.stock(t, "M", "White"))

	require.NoError(t, f.orders.CancelOrder(ctx, order.OrderID, "user-1"))
	assert.Equal(t, 5, f.stock(t, "M", "White"))

	reloaded, err := f.store.GetOrder(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, reloaded.Status)
}

func TestCancelOrderOnlyByOwner(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 1},
	}, shippingAddr())
	require.NoError(t, err)

	err = f.orders.CancelOrder(ctx, order.OrderID, "user-2")
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 4, f.stock(t, "M", "White"))
}

func TestCancelOrderMissing(t *testing.T) {
	f := newOrderFixture(t)
	err := f.orders.CancelOrder(context.Background(), "ORD-0-XXXXXXXXX", "user-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelShippedOrderRejected(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 1},
	}, shippingAddr())
	require.NoError(t, err)
	require.NoError(t, f.orders.UpdateStatus(ctx, order.OrderID, domain.OrderStatusShipped))

	err = f.orders.CancelOrder(ctx, order.OrderID, "user-1")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, 4, f.stock(t, "M", "White"))
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 1},
	}, shippingAddr())
	require.NoError(t, err)

	require.NoError(t, f.orders.UpdateStatus(ctx, order.OrderID, domain.OrderStatusShipped))
	require.NoError(t, f.orders.UpdateStatus(ctx, order.OrderID, domain.OrderStatusDelivered))

	// Delivered is terminal.
	err = f.orders.UpdateStatus(ctx, order.OrderID, domain.OrderStatusShipped)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatusSkipShipped(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 1},
	}, shippingAddr())
	require.NoError(t, err)

	require.NoError(t, f.orders.UpdateStatus(ctx, order.OrderID, domain.OrderStatusDelivered))
}

func TestUpdateStatusUnknown(t *testing.T) {
	f := newOrderFixture(t)
	err := f.orders.UpdateStatus(context.Background(), "whatever", domain.OrderStatus("pending"))
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatusCancelReleasesStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 2},
	}, shippingAddr())
	require.NoError(t, err)

	// Administrative cancel goes through the same release path.
	require.NoError(t, f.orders.UpdateStatus(ctx, order.OrderID, domain.OrderStatusCancelled))
	assert.Equal(t, 5, f.stock(t, "M", "White"))
}

func TestGetOrderVisibility(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 1},
	}, shippingAddr())
	require.NoError(t, err)

	_, err = f.orders.GetOrder(ctx, order.OrderID, port.Identity{UserID: "user-1", Role: domain.RoleCustomer})
	require.NoError(t, err)

	_, err = f.orders.GetOrder(ctx, order.OrderID, port.Identity{UserID: "user-2", Role: domain.RoleCustomer})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.orders.GetOrder(ctx, order.OrderID, port.Identity{UserID: "someone", Role: domain.RoleAdmin})
	require.NoError(t, err)
}

func TestListUserOrdersVisibility(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 1},
	}, shippingAddr())
	require.NoError(t, err)

	own, err := f.orders.ListUserOrders(ctx, "user-1", port.Identity{UserID: "user-1", Role: domain.RoleCustomer})
	require.NoError(t, err)
	assert.Len(t, own, 1)

	_, err = f.orders.ListUserOrders(ctx, "user-1", port.Identity{UserID: "user-2", Role: domain.RoleCustomer})
	require.ErrorIs(t, err, domain.ErrForbidden)

	asAdmin, err := f.orders.ListUserOrders(ctx, "user-1", port.Identity{UserID: "root", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, asAdmin, 1)
}

// flakyOrderRepo fails the next n status writes, then recovers.
type flakyOrderRepo struct {
	port.OrderRepository
	failures int
}

func (r *flakyOrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if r.failures > 0 {
		r.failures--
		return errors.New("transient store failure")
	}
	return r.OrderRepository.UpdateOrderStatus(ctx, orderID, status)
}

func TestCancelRetryAfterStatusWriteFailure(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	repo := &flakyOrderRepo{OrderRepository: f.store, failures: 1}
	inventory := service.NewInventoryService(f.store)
	orders := service.NewOrderService(repo, f.store, inventory)

	order, err := orders.PlaceOrder(ctx, "user-1", []service.ItemRequest{
		{ProductID: f.product.ID, Size: "M", Color: "White", Quantity: 3},
	}, shippingAddr())
	require.NoError(t, err)
	require.Equal(t, 2, f.stock(t, "M", "White"))

	// The first attempt dies on the status write; no stock may move.
	err = orders.CancelOrder(ctx, order.OrderID, "user-1")
	require.Error(t, err)
	assert.Equal(t, 2, f.stock(t, "M", "White"))

	// The retry releases exactly the reserved quantity, once.
	require.NoError(t, orders.CancelOrder(ctx, order.OrderID, "user-1"))
	assert.Equal(t, 5, f.stock(t, "M", "White"))

	got, err := f.store.GetOrder(ctx, order.OrderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.OrderStatusCancelled, got.Status)
}
