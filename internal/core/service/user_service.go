package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/port"
)

type UserService struct {
	users      port.UserRepository
	bcryptCost int
}

func NewUserService(users port.UserRepository, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, bcryptCost: bcryptCost}
}

func (s *UserService) Register(ctx context.Context, name, email, password, phone string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s", domain.ErrDuplicate, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		Phone:        phone,
		CreatedAt:    time.Now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Authenticate checks credentials for the glue layer. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *UserService) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Addresses, nil
}

// AddAddress saves a new address. The first address becomes the default;
// a later address asking to be the default is flagged through the atomic
// SetDefaultAddress operation, never by rewriting the others.
func (s *UserService) AddAddress(ctx context.Context, userID string, a domain.Address) (*domain.Address, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	a.ID = uuid.NewString()
	wantDefault := a.Default || len(user.Addresses) == 0
	a.Default = len(user.Addresses) == 0

	if err := s.users.AddAddress(ctx, userID, a); err != nil {
		return nil, fmt.Errorf("add address: %w", err)
	}
	if wantDefault && !a.Default {
		if err := s.users.SetDefaultAddress(ctx, userID, a.ID); err != nil {
			return nil, fmt.Errorf("set default address: %w", err)
		}
		a.Default = true
	}
	return &a, nil
}

func (s *UserService) UpdateAddress(ctx context.Context, userID string, a domain.Address) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.Address(a.ID) == nil {
		return domain.ErrNotFound
	}
	if err := s.users.UpdateAddress(ctx, userID, a); err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if a.Default {
		if err := s.users.SetDefaultAddress(ctx, userID, a.ID); err != nil {
			return fmt.Errorf("set default address: %w", err)
		}
	}
	return nil
}

// DeleteAddress removes an address; if it was the default, the first
// remaining address is promoted.
func (s *UserService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	addr := user.Address(addressID)
	if addr == nil {
		return domain.ErrNotFound
	}
	wasDefault := addr.Default

	if err := s.users.DeleteAddress(ctx, userID, addressID); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if !wasDefault {
		return nil
	}

	user, err = s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if len(user.Addresses) == 0 {
		return nil
	}
	if err := s.users.SetDefaultAddress(ctx, userID, user.Addresses[0].ID); err != nil {
		return fmt.Errorf("promote default address: %w", err)
	}
	return nil
}

func (s *UserService) SetDefaultAddress(ctx context.Context, userID, addressID string) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.Address(addressID) == nil {
		return domain.ErrNotFound
	}
	if err := s.users.SetDefaultAddress(ctx, userID, addressID); err != nil {
		return fmt.Errorf("set default address: %w", err)
	}
	return nil
}

func (s *UserService) Wishlist(ctx context.Context, userID string) ([]string, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

func (s *UserService) AddToWishlist(ctx context.Context, userID, productID string) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.InWishlist(productID) {
		return fmt.Errorf("%w: product already in wishlist", domain.ErrDuplicate)
	}
	if err := s.users.AddToWishlist(ctx, userID, productID); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func (s *UserService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !user.InWishlist(productID) {
		return fmt.Errorf("%w: product not in wishlist", domain.ErrNotFound)
	}
	if err := s.users.RemoveFromWishlist(ctx, userID, productID); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}
