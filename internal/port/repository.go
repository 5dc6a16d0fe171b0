package port

import (
	"context"

	"github.com/ltnam/fashion-store/internal/core/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, p domain.Product) error

	// GetProduct returns nil when no product matches.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// ListProducts returns active products, newest first.
	// An empty category means no filter.
	ListProducts(ctx context.Context, category domain.Category) ([]domain.Product, error)

	UpdateProduct(ctx context.Context, p domain.Product) error

	// DeactivateProduct soft-deletes; the document is kept for order history.
	DeactivateProduct(ctx context.Context, id string) error

	SetRating(ctx context.Context, id string, rating float64, count int) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, o domain.Order) error

	// GetOrder returns nil when no order matches.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByUser returns the user's orders, newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)

	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, u domain.User) error

	// GetUser and GetUserByEmail return nil when no user matches.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// AddAddress and UpdateAddress never touch the default flag; the
	// single-default invariant is maintained only through SetDefaultAddress,
	// except that the very first address may be stored with Default set.
	AddAddress(ctx context.Context, userID string, a domain.Address) error
	UpdateAddress(ctx context.Context, userID string, a domain.Address) error
	DeleteAddress(ctx context.Context, userID, addressID string) error

	// SetDefaultAddress atomically flags exactly one address as default,
	// clearing the flag on every other address in the same write.
	SetDefaultAddress(ctx context.Context, userID, addressID string) error

	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, r domain.Review) error

	// ListReviewsByProduct returns reviews newest first.
	ListReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}
