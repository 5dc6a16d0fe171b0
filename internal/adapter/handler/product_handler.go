package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/port"
)

type variantPayload struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	SKU   string `json:"sku,omitempty"`
	Stock int    `json:"stockQuantity"`
}

type productPayload struct {
	ID          string           `json:"id,omitempty"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	Images      []string         `json:"images"`
	Sizes       []string         `json:"sizes"`
	Colors      []string         `json:"colors"`
	Variants    []variantPayload `json:"variants"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"reviewCount"`
	CreatedAt   time.Time        `json:"createdAt,omitzero"`
}

func toProductPayload(p *domain.Product) productPayload {
	variants := make([]variantPayload, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, variantPayload{Size: v.Size, Color: v.Color, SKU: v.SKU, Stock: v.Stock})
	}
	return productPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    string(p.Category),
		Price:       p.Price,
		Images:      p.Images,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Variants:    variants,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		CreatedAt:   p.CreatedAt,
	}
}

func fromProductPayload(p productPayload) domain.Product {
	variants := make([]domain.Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, domain.Variant{Size: v.Size, Color: v.Color, SKU: v.SKU, Stock: v.Stock})
	}
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    domain.Category(p.Category),
		Price:       p.Price,
		Images:      p.Images,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Variants:    variants,
	}
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	if category != "" && !category.Valid() {
		writeMessage(w, http.StatusBadRequest, "unknown category")
		return
	}
	products, err := a.Products.List(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]productPayload, 0, len(products))
	for i := range products {
		out = append(out, toProductPayload(&products[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	p, err := a.Products.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductPayload(p))
}

func (a *App) createProductHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || !domain.Category(req.Category).Valid() || req.Price.IsNegative() {
		writeMessage(w, http.StatusBadRequest, "name, a valid category and a non-negative price are required")
		return
	}
	p, err := a.Products.Create(r.Context(), fromProductPayload(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductPayload(p))
}

func (a *App) updateProductHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in := fromProductPayload(req)
	in.ID = r.PathValue("id")
	p, err := a.Products.Update(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductPayload(p))
}

func (a *App) deleteProductHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	if err := a.Products.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "product deleted successfully")
}

type setStockRequest struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

func (a *App) setStockHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	var req setStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity < 0 {
		writeMessage(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}
	key := domain.VariantKey{ProductID: r.PathValue("id"), Size: req.Size, Color: req.Color}
	if err := a.Products.SetStock(r.Context(), key, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "stock updated successfully")
}
