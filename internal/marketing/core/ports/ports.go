package ports

import (
	"context"

	"kokko-factory-service/internal/marketing/core/domain"
)

type ShipmentReaderPort interface {
	// ListShipments returns every shipment, newest first.
	ListShipments(ctx context.Context) ([]domain.ShipmentRecord, error)
}

type ChartCachePort interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type ChartRecorderPort interface {
	ChartBuilt(chart string, hit bool)
}
