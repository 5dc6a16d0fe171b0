package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/obs"
	"github.com/ltnam/fashion-store/internal/port"
)

// InventoryService layers all-or-nothing multi-item semantics on a
// per-variant stock ledger.
type InventoryService struct {
	ledger port.StockLedger
}

func NewInventoryService(ledger port.StockLedger) *InventoryService {
	return &InventoryService{ledger: ledger}
}

// ReserveAll reserves stock for every item or none. When the ledger can
// reserve atomically across variants it is used directly; otherwise items
// are reserved one by one and already-applied reservations are released
// on the first failure.
func (s *InventoryService) ReserveAll(ctx context.Context, items []domain.LineItem) error {
	if mr, ok := s.ledger.(port.MultiReserver); ok {
		return mr.MultiReserve(ctx, items)
	}

	for i, item := range items {
		_, err := s.ledger.Reserve(ctx, item.Key(), item.Quantity)
		if err == nil {
			continue
		}

		// Compensate: undo everything reserved so far.
		s.releaseItems(ctx, items[:i])

		if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrVariantNotFound) {
			return &domain.OrderRejectedError{Item: item.Key(), Err: err}
		}
		return fmt.Errorf("reserve %s: %w", item.Key(), err)
	}
	return nil
}

// ReleaseAll restores stock for every item, best effort. A release that
// fails is logged and does not stop the remaining releases.
func (s *InventoryService) ReleaseAll(ctx context.Context, items []domain.LineItem) error {
	if err := s.releaseItems(ctx, items); err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	return nil
}

func (s *InventoryService) releaseItems(ctx context.Context, items []domain.LineItem) error {
	var firstErr error
	for _, item := range items {
		if err := s.ledger.Release(ctx, item.Key(), item.Quantity); err != nil {
			obs.Logger.Error("stock_release_failed",
				"variant", item.Key().String(),
				"quantity", item.Quantity,
				"error", err.Error(),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Reserve is a single-variant atomic check-and-decrement.
func (s *InventoryService) Reserve(ctx context.Context, key domain.VariantKey, qty int) (int, error) {
	return s.ledger.Reserve(ctx, key, qty)
}

// Release restores qty units of stock for one variant.
func (s *InventoryService) Release(ctx context.Context, key domain.VariantKey, qty int) error {
	return s.ledger.Release(ctx, key, qty)
}

// SetStock is the administrative absolute override.
func (s *InventoryService) SetStock(ctx context.Context, key domain.VariantKey, qty int) error {
	return s.ledger.SetStock(ctx, key, qty)
}
