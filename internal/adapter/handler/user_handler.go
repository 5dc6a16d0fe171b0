package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/port"
)

// addressPayload is the wire shape for saved addresses and for the
// shipping snapshot embedded in orders.
type addressPayload struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Line1    string `json:"addressLine1"`
	Line2    string `json:"addressLine2,omitempty"`
	Landmark string `json:"landmark,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	Type     string `json:"type"`
	Default  bool   `json:"isDefault"`
}

func toAddressPayload(a domain.Address) addressPayload {
	return addressPayload{
		ID:       a.ID,
		FullName: a.FullName,
		Phone:    a.Phone,
		Line1:    a.Line1,
		Line2:    a.Line2,
		Landmark: a.Landmark,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Country:  a.Country,
		Type:     string(a.Type),
		Default:  a.Default,
	}
}

func fromAddressPayload(p addressPayload) domain.Address {
	return domain.Address{
		ID:       p.ID,
		FullName: p.FullName,
		Phone:    p.Phone,
		Line1:    p.Line1,
		Line2:    p.Line2,
		Landmark: p.Landmark,
		City:     p.City,
		State:    p.State,
		ZipCode:  p.ZipCode,
		Country:  p.Country,
		Type:     domain.AddressType(p.Type),
		Default:  p.Default,
	}
}

func toAddressPayloads(addrs []domain.Address) []addressPayload {
	out := make([]addressPayload, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, toAddressPayload(a))
	}
	return out
}

func (a *App) listAddressesHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	addrs, err := a.Users.ListAddresses(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAddressPayloads(addrs))
}

func (a *App) addAddressHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	var req addressPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FullName == "" || req.Line1 == "" || req.City == "" {
		writeMessage(w, http.StatusBadRequest, "fullName, addressLine1 and city are required")
		return
	}
	addr, err := a.Users.AddAddress(r.Context(), ident.UserID, fromAddressPayload(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAddressPayload(*addr))
}

func (a *App) updateAddressHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	var req addressPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	addr := fromAddressPayload(req)
	addr.ID = r.PathValue("id")
	if err := a.Users.UpdateAddress(r.Context(), ident.UserID, addr); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "address updated successfully")
}

func (a *App) deleteAddressHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	if err := a.Users.DeleteAddress(r.Context(), ident.UserID, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "address deleted successfully")
}

func (a *App) setDefaultAddressHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	if err := a.Users.SetDefaultAddress(r.Context(), ident.UserID, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "default address updated")
}

func (a *App) getWishlistHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	ids, err := a.Users.Wishlist(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"productIds": ids})
}

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

func (a *App) addToWishlistHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	var req wishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeMessage(w, http.StatusBadRequest, "productId is required")
		return
	}
	if err := a.Users.AddToWishlist(r.Context(), ident.UserID, req.ProductID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "product added to wishlist")
}

func (a *App) removeFromWishlistHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	if err := a.Users.RemoveFromWishlist(r.Context(), ident.UserID, r.PathValue("productId")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "product removed from wishlist")
}
