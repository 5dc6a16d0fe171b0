package storage

import (
	"context"
	"fmt"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/obs"
	"github.com/ltnam/fashion-store/internal/port"
)

// WriteThroughLedger fronts the durable ledger with Redis. The fast
// atomic check happens in Redis first; a reservation that passes there is
// applied to the durable store, and rolled back in Redis if that write
// fails. Both sides hold the same counters outside of failure windows.
type WriteThroughLedger struct {
	front *RedisLedger
	back  port.StockLedger
}

func NewWriteThroughLedger(front *RedisLedger, back port.StockLedger) *WriteThroughLedger {
	return &WriteThroughLedger{front: front, back: back}
}

func (w *WriteThroughLedger) Reserve(ctx context.Context, key domain.VariantKey, qty int) (int, error) {
	if _, err := w.front.Reserve(ctx, key, qty); err != nil {
		return 0, err
	}

	remaining, err := w.back.Reserve(ctx, key, qty)
	if err != nil {
		if rbErr := w.front.Release(ctx, key, qty); rbErr != nil {
			obs.Logger.Error("cache_rollback_failed",
				"variant", key.String(),
				"quantity", qty,
				"error", rbErr.Error(),
			)
		}
		return 0, err
	}
	return remaining, nil
}

func (w *WriteThroughLedger) Release(ctx context.Context, key domain.VariantKey, qty int) error {
	if err := w.back.Release(ctx, key, qty); err != nil {
		return err
	}
	if err := w.front.Release(ctx, key, qty); err != nil {
		return fmt.Errorf("release cached stock: %w", err)
	}
	return nil
}

func (w *WriteThroughLedger) SetStock(ctx context.Context, key domain.VariantKey, qty int) error {
	if err := w.back.SetStock(ctx, key, qty); err != nil {
		return err
	}
	// The variant is known to the durable store; creating the counter is
	// fine here.
	if err := w.front.InitStock(ctx, key, qty); err != nil {
		return fmt.Errorf("set cached stock: %w", err)
	}
	return nil
}

// SyncStock loads every active product's variant counters into Redis.
// Called once at startup before the ledger serves traffic.
func (w *WriteThroughLedger) SyncStock(ctx context.Context, products port.ProductRepository) error {
	all, err := products.ListProducts(ctx, "")
	if err != nil {
		return fmt.Errorf("load products for stock sync: %w", err)
	}
	for _, p := range all {
		for _, v := range p.Variants {
			key := domain.VariantKey{ProductID: p.ID, Size: v.Size, Color: v.Color}
			if err := w.front.InitStock(ctx, key, v.Stock); err != nil {
				return fmt.Errorf("sync stock for %s: %w", key, err)
			}
		}
	}
	return nil
}
