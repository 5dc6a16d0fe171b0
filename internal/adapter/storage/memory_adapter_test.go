package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltnam/fashion-store/internal/core/domain"
)

func seedProduct(t *testing.T, m *MemoryStore, id string, stock int) domain.VariantKey {
	t.Helper()
	p := domain.Product{
		ID:       id,
		Name:     "Tee " + id,
		Category: domain.CategoryMen,
		Price:    decimal.NewFromFloat(19.99),
		Variants: []domain.Variant{
			{Size: "M", Color: "White", SKU: id + "-M-W", Stock: stock},
		},
		Active:    true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, m.CreateProduct(context.Background(), p))
	return domain.VariantKey{ProductID: id, Size: "M", Color: "White"}
}

func TestMemoryReserveRelease(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	key := seedProduct(t, m, "p1", 10)

	remaining, err := m.Reserve(ctx, key, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, remaining)

	_, err = m.Reserve(ctx, key, 7)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	require.NoError(t, m.Release(ctx, key, 4))
	p, err := m.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Variants[0].Stock)
}

func TestMemoryReserveUnknownVariant(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	seedProduct(t, m, "p1", 10)

	_, err := m.Reserve(ctx, domain.VariantKey{ProductID: "p1", Size: "XL", Color: "White"}, 1)
	require.ErrorIs(t, err, domain.ErrVariantNotFound)

	_, err = m.Reserve(ctx, domain.VariantKey{ProductID: "ghost", Size: "M", Color: "White"}, 1)
	require.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestMemoryReserveConcurrent(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	key := seedProduct(t, m, "p1", 50)

	var wg sync.WaitGroup
	success := make(chan struct{}, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Reserve(ctx, key, 1); err == nil {
				success <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(success)

	assert.Equal(t, 50, len(success))
	p, err := m.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Variants[0].Stock)
}

func TestMemorySetStock(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	key := seedProduct(t, m, "p1", 3)

	require.NoError(t, m.SetStock(ctx, key, 42))
	remaining, err := m.Reserve(ctx, key, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	err = m.SetStock(ctx, domain.VariantKey{ProductID: "ghost", Size: "M", Color: "White"}, 1)
	require.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestMemoryGetProductReturnsCopy(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	key := seedProduct(t, m, "p1", 10)

	p, err := m.GetProduct(ctx, "p1")
	require.NoError(t, err)
	p.Variants[0].Stock = 999
	p.Name = "mutated"

	// The stored product must be unaffected by caller-side writes.
	remaining, err := m.Reserve(ctx, key, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	fresh, err := m.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tee p1", fresh.Name)
}

func TestMemoryListProductsFilters(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	for i, spec := range []struct {
		id       string
		category domain.Category
		active   bool
	}{
		{"p1", domain.CategoryMen, true},
		{"p2", domain.CategoryWomen, true},
		{"p3", domain.CategoryMen, false},
	} {
		require.NoError(t, m.CreateProduct(ctx, domain.Product{
			ID:        spec.id,
			Category:  spec.category,
			Active:    spec.active,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	all, err := m.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, "p2", all[0].ID)

	men, err := m.ListProducts(ctx, domain.CategoryMen)
	require.NoError(t, err)
	require.Len(t, men, 1)
	assert.Equal(t, "p1", men[0].ID)
}

func TestMemoryOrders(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	for i, id := range []string{"ORD-1-AAAAAAAAA", "ORD-2-BBBBBBBBB"} {
		require.NoError(t, m.CreateOrder(ctx, domain.Order{
			OrderID:   id,
			UserID:    "user-1",
			Status:    domain.OrderStatusProcessing,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	err := m.CreateOrder(ctx, domain.Order{OrderID: "ORD-1-AAAAAAAAA"})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	missing, err := m.GetOrder(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	orders, err := m.ListOrdersByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-2-BBBBBBBBB", orders[0].OrderID)

	require.NoError(t, m.UpdateOrderStatus(ctx, "ORD-1-AAAAAAAAA", domain.OrderStatusShipped))
	o, err := m.GetOrder(ctx, "ORD-1-AAAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, o.Status)

	require.ErrorIs(t, m.UpdateOrderStatus(ctx, "nope", domain.OrderStatusShipped), domain.ErrNotFound)
}

func TestMemoryUserEmailUnique(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.CreateUser(ctx, domain.User{ID: "u1", Email: "a@example.com"}))
	err := m.CreateUser(ctx, domain.User{ID: "u2", Email: "a@example.com"})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	byEmail, err := m.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "u1", byEmail.ID)
}

func TestMemorySetDefaultAddress(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.CreateUser(ctx, domain.User{ID: "u1", Email: "a@example.com"}))
	require.NoError(t, m.AddAddress(ctx, "u1", domain.Address{ID: "a1", Default: true}))
	require.NoError(t, m.AddAddress(ctx, "u1", domain.Address{ID: "a2"}))

	require.NoError(t, m.SetDefaultAddress(ctx, "u1", "a2"))
	u, err := m.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, u.Addresses[0].Default)
	assert.True(t, u.Addresses[1].Default)

	require.ErrorIs(t, m.SetDefaultAddress(ctx, "u1", "missing"), domain.ErrNotFound)
}

func TestMemoryUpdateAddressPreservesDefaultFlag(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.CreateUser(ctx, domain.User{ID: "u1", Email: "a@example.com"}))
	require.NoError(t, m.AddAddress(ctx, "u1", domain.Address{ID: "a1", City: "Hanoi", Default: true}))

	// An update claiming Default=false must not clear the stored flag.
	require.NoError(t, m.UpdateAddress(ctx, "u1", domain.Address{ID: "a1", City: "Da Nang"}))
	u, err := m.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, u.Addresses[0].Default)
	assert.Equal(t, "Da Nang", u.Addresses[0].City)
}
