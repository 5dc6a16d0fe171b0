package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/port"
)

type createReviewRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type reviewResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func toReviewResponse(rv *domain.Review) reviewResponse {
	return reviewResponse{
		ID:        rv.ID,
		ProductID: rv.ProductID,
		UserID:    rv.UserID,
		UserName:  rv.UserName,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}
}

func (a *App) createReviewHandler(w http.ResponseWriter, r *http.Request, ident port.Identity) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" {
		writeMessage(w, http.StatusBadRequest, "productId is required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeMessage(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	user, err := a.Users.Get(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	review, err := a.Reviews.Create(r.Context(), req.ProductID, ident.UserID, user.Name, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewResponse(review))
}

func (a *App) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	reviews, err := a.Reviews.ListByProduct(r.Context(), r.PathValue("productId"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]reviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
