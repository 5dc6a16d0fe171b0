package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/port"
)

type ProductService struct {
	products port.ProductRepository
	stock    *InventoryService
}

func NewProductService(products port.ProductRepository, stock *InventoryService) *ProductService {
	return &ProductService{products: products, stock: stock}
}

func (s *ProductService) List(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	products, err := s.products.ListProducts(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Active = true
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.products.CreateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &p, nil
}

func (s *ProductService) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	existing, err := s.products.GetProduct(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	if err := s.products.UpdateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &p, nil
}

// Delete deactivates the product; the document stays for order history.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	existing, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := s.products.DeactivateProduct(ctx, id); err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}

// SetStock is the administrative absolute stock override for one variant.
func (s *ProductService) SetStock(ctx context.Context, key domain.VariantKey, qty int) error {
	return s.stock.SetStock(ctx, key, qty)
}
