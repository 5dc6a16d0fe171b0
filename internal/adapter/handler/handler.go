// Package handler exposes the REST surface consumed by the storefront SPA.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/core/service"
	"github.com/ltnam/fashion-store/internal/port"
)

type App struct {
	Orders   *service.OrderService
	Products *service.ProductService
	Users    *service.UserService
	Reviews  *service.ReviewService
	Auth     port.Authenticator
}

func NewApp(orders *service.OrderService, products *service.ProductService, users *service.UserService, reviews *service.ReviewService, auth port.Authenticator) *App {
	return &App{Orders: orders, Products: products, Users: users, Reviews: reviews, Auth: auth}
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps the domain error taxonomy onto HTTP statuses. Business
// errors surface their own message; everything else is a generic
// infrastructure failure.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrVariantNotFound),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, service.ErrEmptyOrder):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "access denied")
	case errors.Is(err, domain.ErrDuplicate):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
	default:
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
