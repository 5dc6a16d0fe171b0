package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltnam/fashion-store/internal/adapter/storage"
	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/core/service"
)

// A low bcrypt cost keeps the hashing rounds out of the test's runtime.
const testBcryptCost = 4

func newUserFixture(t *testing.T) (*service.UserService, *domain.User) {
	t.Helper()
	svc := service.NewUserService(storage.NewMemoryStore(), testBcryptCost)
	user, err := svc.Register(context.Background(), "An Tran", "an@example.com", "secret123", "0901234567")
	require.NoError(t, err)
	return svc, user
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := service.NewUserService(storage.NewMemoryStore(), testBcryptCost)
	user, err := svc.Register(context.Background(), "An Tran", "  An@Example.COM ", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, "an@example.com", user.Email)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture(t)
	_, err := svc.Register(context.Background(), "Someone Else", "AN@example.com", "other456", "")
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAuthenticate(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	got, err := svc.Authenticate(ctx, "an@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "an@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Unknown email must be indistinguishable from a wrong password.
	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func addr(name string, dflt bool) domain.Address {
	return domain.Address{
		FullName: name,
		Phone:    "0901234567",
		Line1:    "12 Hang Bai",
		City:     "Hanoi",
		State:    "HN",
		ZipCode:  "100000",
		Country:  "VN",
		Type:     domain.AddressTypeHome,
		Default:  dflt,
	}
}

func defaultCount(t *testing.T, svc *service.UserService, userID string) int {
	t.Helper()
	addrs, err := svc.ListAddresses(context.Background(), userID)
	require.NoError(t, err)
	n := 0
	for _, a := range addrs {
		if a.Default {
			n++
		}
	}
	return n
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	svc, user := newUserFixture(t)
	a, err := svc.AddAddress(context.Background(), user.ID, addr("Home", false))
	require.NoError(t, err)
	assert.True(t, a.Default)
	assert.Equal(t, 1, defaultCount(t, svc, user.ID))
}

func TestAddAddressDefaultFlagMovesDefault(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	first, err := svc.AddAddress(ctx, user.ID, addr("Home", false))
	require.NoError(t, err)

	second, err := svc.AddAddress(ctx, user.ID, addr("Office", true))
	require.NoError(t, err)
	assert.True(t, second.Default)

	addrs, err := svc.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, addrs, 2)
	assert.Equal(t, 1, defaultCount(t, svc, user.ID))
	for _, a := range addrs {
		if a.ID == first.ID {
			assert.False(t, a.Default)
		}
	}
}

func TestSetDefaultAddress(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.AddAddress(ctx, user.ID, addr("Home", false))
	require.NoError(t, err)
	second, err := svc.AddAddress(ctx, user.ID, addr("Office", false))
	require.NoError(t, err)
	assert.False(t, second.Default)

	require.NoError(t, svc.SetDefaultAddress(ctx, user.ID, second.ID))
	assert.Equal(t, 1, defaultCount(t, svc, user.ID))

	addrs, err := svc.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	for _, a := range addrs {
		assert.Equal(t, a.ID == second.ID, a.Default)
	}

	require.ErrorIs(t, svc.SetDefaultAddress(ctx, user.ID, "missing"), domain.ErrNotFound)
}

func TestDeleteDefaultAddressPromotesRemaining(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	first, err := svc.AddAddress(ctx, user.ID, addr("Home", false))
	require.NoError(t, err)
	_, err = svc.AddAddress(ctx, user.ID, addr("Office", false))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAddress(ctx, user.ID, first.ID))

	addrs, err := svc.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.True(t, addrs[0].Default)
}

func TestDeleteLastAddress(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	only, err := svc.AddAddress(ctx, user.ID, addr("Home", false))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteAddress(ctx, user.ID, only.ID))

	addrs, err := svc.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, addrs)
}

func TestUpdateAddressKeepsDefaultElsewhere(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	first, err := svc.AddAddress(ctx, user.ID, addr("Home", false))
	require.NoError(t, err)
	second, err := svc.AddAddress(ctx, user.ID, addr("Office", false))
	require.NoError(t, err)

	// A plain field edit on a non-default address must not move the flag.
	updated := *second
	updated.FullName = "Office Reception"
	require.NoError(t, svc.UpdateAddress(ctx, user.ID, updated))

	addrs, err := svc.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, defaultCount(t, svc, user.ID))
	for _, a := range addrs {
		if a.ID == first.ID {
			assert.True(t, a.Default)
		}
		if a.ID == second.ID {
			assert.Equal(t, "Office Reception", a.FullName)
		}
	}
}

func TestWishlist(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddToWishlist(ctx, user.ID, "prod-1"))
	require.NoError(t, svc.AddToWishlist(ctx, user.ID, "prod-2"))
	require.ErrorIs(t, svc.AddToWishlist(ctx, user.ID, "prod-1"), domain.ErrDuplicate)

	ids, err := svc.Wishlist(ctx, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"prod-1", "prod-2"}, ids)

	require.NoError(t, svc.RemoveFromWishlist(ctx, user.ID, "prod-1"))
	ids, err = svc.Wishlist(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-2"}, ids)

	require.ErrorIs(t, svc.RemoveFromWishlist(ctx, user.ID, "prod-1"), domain.ErrNotFound)
	require.ErrorIs(t, svc.RemoveFromWishlist(ctx, user.ID, "prod-9"), domain.ErrNotFound)
}
