package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type AddressType string

const (
	AddressTypeHome   AddressType = "Home"
	AddressTypeOffice AddressType = "Office"
)

type Address struct {
	ID       string
	FullName string
	Phone    string
	Line1    string
	Line2    string
	Landmark string
	City     string
	State    string
	ZipCode  string
	Country  string
	Type     AddressType
	Default  bool
}

type User struct {
	ID           string
	Name         string
	Email        string // unique
	PasswordHash string
	Role         Role
	Phone        string
	Addresses    []Address // at most one with Default set
	Wishlist     []string  // product IDs
	CreatedAt    time.Time
}

// Address returns the saved address with the given ID, or nil.
func (u *User) Address(id string) *Address {
	for i := range u.Addresses {
		if u.Addresses[i].ID == id {
			return &u.Addresses[i]
		}
	}
	return nil
}

// DefaultAddress returns the address flagged as default, or nil.
func (u *User) DefaultAddress() *Address {
	for i := range u.Addresses {
		if u.Addresses[i].Default {
			return &u.Addresses[i]
		}
	}
	return nil
}

// InWishlist reports whether the product is already wishlisted.
func (u *User) InWishlist(productID string) bool {
	for _, id := range u.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}
