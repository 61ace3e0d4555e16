package ports

import (
	"context"
	"time"

	"kokko-factory-service/internal/inventory/core/domain"
)

type InventoryRepositoryPort interface {
	// AddStock upserts the supplier, merging non-empty contact fields, and
	// adds delta to the item's count, creating the item when new.
	AddStock(ctx context.Context, supplier domain.Supplier, item string, delta int) error
	ListStock(ctx context.Context) ([]domain.StockItem, error)
	SetCount(ctx context.Context, supplier, item string, count int) (found bool, err error)
	// SetThreshold reports found=false when the item does not exist.
	SetThreshold(ctx context.Context, supplier, item string, threshold int, at time.Time) (found bool, err error)
	// DeleteStock removes the item together with its threshold.
	DeleteStock(ctx context.Context, supplier, item string) (found bool, err error)
}
