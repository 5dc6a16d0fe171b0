package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/core/service"
	"github.com/ltnam/fashion-store/internal/port"
)

type orderItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items"`
	ShippingAddress addressPayload     `json:"shippingAddress"`
}

type orderItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type orderResponse struct {
	OrderID         string              `json:"orderId"`
	UserID          string              `json:"userId"`
	Items           []orderItemResponse `json:"items"`
	ShippingAddress addressPayload      `json:"shippingAddress"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, orderItemResponse{
			ProductID: li.ProductID,
			Name:      li.Name,
			Size:      li.Size,
			Color:     li.Color,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		})
	}
	return orderResponse{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		Items:           items,
		ShippingAddress: toAddressPayload(o.ShippingAddress),
		TotalAmount:     o.Total,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}

func (a *App) createOrderHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]service.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.ItemRequest{
			ProductID: it.ProductID,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
		})
	}

	order, err := a.Orders.PlaceOrder(r.Context(), ident.UserID, items, fromAddressPayload(req.ShippingAddress))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (a *App) getOrderHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	order, err := a.Orders.GetOrder(r.Context(), r.PathValue("id"), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (a *App) listUserOrdersHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	orders, err := a.Orders.ListUserOrders(r.Context(), r.PathValue("userId"), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

func (a *App) listAllOrdersHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	orders, err := a.Orders.ListAllOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

func (a *App) cancelOrderHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	if err := a.Orders.CancelOrder(r.Context(), r.PathValue("id"), ident.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "order cancelled successfully")
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (a *App) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.Orders.UpdateStatus(r.Context(), r.PathValue("id"), domain.OrderStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "order status updated successfully")
}
