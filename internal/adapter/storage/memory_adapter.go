package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ltnam/fashion-store/internal/core/domain"
)

// MemoryStore is an in-process implementation of every repository port and
// the stock ledger. A single mutex serializes ledger mutations, so the
// check-and-decrement in Reserve is atomic. Used by the default dev wiring
// and the unit tests.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	orders   map[string]domain.Order
	users    map[string]domain.User
	reviews  map[string][]domain.Review // keyed by product ID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]domain.Product),
		orders:   make(map[string]domain.Order),
		users:    make(map[string]domain.User),
		reviews:  make(map[string][]domain.Review),
	}
}

// ---- stock ledger ----

func (m *MemoryStore) Reserve(ctx context.Context, key domain.VariantKey, qty int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.variantLocked(key)
	if err != nil {
		return 0, err
	}
	if v.Stock < qty {
		return 0, fmt.Errorf("%w: %s has %d, want %d", domain.ErrInsufficientStock, key, v.Stock, qty)
	}
	v.Stock -= qty
	return v.Stock, nil
}

func (m *MemoryStore) Release(ctx context.Context, key domain.VariantKey, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.variantLocked(key)
	if err != nil {
		return err
	}
	v.Stock += qty
	return nil
}

func (m *MemoryStore) SetStock(ctx context.Context, key domain.VariantKey, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.variantLocked(key)
	if err != nil {
		return err
	}
	v.Stock = qty
	return nil
}

// variantLocked returns a pointer into the stored variant slice so stock
// writes stick. Caller must hold mu.
func (m *MemoryStore) variantLocked(key domain.VariantKey) (*domain.Variant, error) {
	p, ok := m.products[key.ProductID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	}
	for i := range p.Variants {
		if p.Variants[i].Size == key.Size && p.Variants[i].Color == key.Color {
			return &p.Variants[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
}

// ---- products ----

func (m *MemoryStore) CreateProduct(ctx context.Context, p domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = copyProduct(p)
	return nil
}

func (m *MemoryStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := copyProduct(p)
	return &cp, nil
}

func (m *MemoryStore) ListProducts(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Product
	for _, p := range m.products {
		if !p.Active {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, copyProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) UpdateProduct(ctx context.Context, p domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.products[p.ID] = copyProduct(p)
	return nil
}

func (m *MemoryStore) DeactivateProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = false
	m.products[id] = p
	return nil
}

func (m *MemoryStore) SetRating(ctx context.Context, id string, rating float64, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Rating = rating
	p.ReviewCount = count
	m.products[id] = p
	return nil
}

// ---- orders ----

func (m *MemoryStore) CreateOrder(ctx context.Context, o domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[o.OrderID]; ok {
		return fmt.Errorf("%w: order %s", domain.ErrDuplicate, o.OrderID)
	}
	m.orders[o.OrderID] = copyOrder(o)
	return nil
}

func (m *MemoryStore) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, nil
	}
	cp := copyOrder(o)
	return &cp, nil
}

func (m *MemoryStore) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, copyOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, copyOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	m.orders[orderID] = o
	return nil
}

// ---- users ----

func (m *MemoryStore) CreateUser(ctx context.Context, u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; ok {
		return fmt.Errorf("%w: user %s", domain.ErrDuplicate, u.ID)
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return fmt.Errorf("%w: email %s", domain.ErrDuplicate, u.Email)
		}
	}
	m.users[u.ID] = copyUser(u)
	return nil
}

func (m *MemoryStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := copyUser(u)
	return &cp, nil
}

func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := copyUser(u)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) AddAddress(ctx context.Context, userID string, a domain.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.Addresses = append(u.Addresses, a)
	m.users[userID] = u
	return nil
}

func (m *MemoryStore) UpdateAddress(ctx context.Context, userID string, a domain.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range u.Addresses {
		if u.Addresses[i].ID == a.ID {
			a.Default = u.Addresses[i].Default // flag only changes via SetDefaultAddress
			u.Addresses[i] = a
			m.users[userID] = u
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MemoryStore) DeleteAddress(ctx context.Context, userID, addressID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range u.Addresses {
		if u.Addresses[i].ID == addressID {
			u.Addresses = append(u.Addresses[:i], u.Addresses[i+1:]...)
			m.users[userID] = u
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MemoryStore) SetDefaultAddress(ctx context.Context, userID, addressID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	found := false
	for i := range u.Addresses {
		u.Addresses[i].Default = u.Addresses[i].ID == addressID
		if u.Addresses[i].Default {
			found = true
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	m.users[userID] = u
	return nil
}

func (m *MemoryStore) AddToWishlist(ctx context.Context, userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, id := range u.Wishlist {
		if id == productID {
			return nil
		}
	}
	u.Wishlist = append(u.Wishlist, productID)
	m.users[userID] = u
	return nil
}

func (m *MemoryStore) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	out := u.Wishlist[:0]
	for _, id := range u.Wishlist {
		if id != productID {
			out = append(out, id)
		}
	}
	u.Wishlist = out
	m.users[userID] = u
	return nil
}

// ---- reviews ----

func (m *MemoryStore) CreateReview(ctx context.Context, r domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews[r.ProductID] = append(m.reviews[r.ProductID], r)
	return nil
}

func (m *MemoryStore) ListReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Review, len(m.reviews[productID]))
	copy(out, m.reviews[productID])
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ---- copies ----

func copyProduct(p domain.Product) domain.Product {
	cp := p
	cp.Images = append([]string(nil), p.Images...)
	cp.Sizes = append([]string(nil), p.Sizes...)
	cp.Colors = append([]string(nil), p.Colors...)
	cp.Variants = append([]domain.Variant(nil), p.Variants...)
	return cp
}

func copyOrder(o domain.Order) domain.Order {
	cp := o
	cp.Items = append([]domain.LineItem(nil), o.Items...)
	return cp
}

func copyUser(u domain.User) domain.User {
	cp := u
	cp.Addresses = append([]domain.Address(nil), u.Addresses...)
	cp.Wishlist = append([]string(nil), u.Wishlist...)
	return cp
}
