package port

import (
	"context"

	"github.com/ltnam/fashion-store/internal/core/domain"
)

// StockLedger holds authoritative per-variant stock counts.
type StockLedger interface {
	// Reserve atomically checks and decrements stock, returning the
	// remaining quantity. Fails with domain.ErrInsufficientStock when
	// stock < qty and domain.ErrVariantNotFound when no variant matches.
	Reserve(ctx context.Context, key domain.VariantKey, qty int) (int, error)

	// Release increments stock by qty with no upper bound check; restoring
	// previously reserved stock is always valid.
	Release(ctx context.Context, key domain.VariantKey, qty int) error

	// SetStock is the administrative absolute override. Fails with
	// domain.ErrVariantNotFound when no variant matches.
	SetStock(ctx context.Context, key domain.VariantKey, qty int) error
}

// MultiReserver is implemented by ledgers that can reserve several
// variants in one atomic step, with nothing decremented on failure.
type MultiReserver interface {
	MultiReserve(ctx context.Context, items []domain.LineItem) error
}
