package ports

import (
	"context"

	"kokko-factory-service/internal/shipments/core/domain"
)

type ShipmentRepositoryPort interface {
	// InsertShipment stores s and registers its customer with contact when the
	// name is not yet known. Existing customers are left untouched.
	InsertShipment(ctx context.Context, s *domain.Shipment, contact domain.Contact) error
	// ListShipments returns every shipment, newest first. Vendor falls back to
	// domain.UnknownVendor for orphaned rows.
	ListShipments(ctx context.Context) ([]domain.ShipmentView, error)
	// GetShipment reports found=false when either the shipment or its customer
	// is missing.
	GetShipment(ctx context.Context, id, customerName string) (view *domain.ShipmentView, found bool, err error)
}

// ChartCachePort drops cached analytics built from shipments.
type ChartCachePort interface {
	Invalidate(ctx context.Context, chart string) error
}
