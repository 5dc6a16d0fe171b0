package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/port"
)

type ReviewService struct {
	reviews  port.ReviewRepository
	products port.ProductRepository
}

func NewReviewService(reviews port.ReviewRepository, products port.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// Create stores a review and rolls the product's rating and review count
// forward from the full review list.
func (s *ReviewService) Create(ctx context.Context, productID, userID, userName string, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	review := domain.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviews.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	reviews, err := s.reviews.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10
	if err := s.products.SetRating(ctx, productID, avg, len(reviews)); err != nil {
		return nil, fmt.Errorf("update product rating: %w", err)
	}

	return &review, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	reviews, err := s.reviews.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
