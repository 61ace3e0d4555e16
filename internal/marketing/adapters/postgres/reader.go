package postgres

import (
	"context"
	"fmt"

	"kokko-factory-service/internal/marketing/core/domain"
	"kokko-factory-service/internal/marketing/core/ports"
	"kokko-factory-service/internal/platform/sqldb"
	shipments "kokko-factory-service/internal/shipments/core/domain"
)

type ShipmentReader struct {
	db sqldb.DB
}

func NewShipmentReader(db sqldb.DB) *ShipmentReader {
	return &ShipmentReader{db: db}
}

var _ ports.ShipmentReaderPort = (*ShipmentReader)(nil)

const listShipmentRecordsSQL = `
SELECT
    COALESCE(c.name, $1) AS vendor,
    s.shipped_count,
    s.shipment_date
FROM shipments s
LEFT JOIN customers c ON c.name = s.customer_name
ORDER BY s.shipment_date DESC`

func (r *ShipmentReader) ListShipments(ctx context.Context) ([]domain.ShipmentRecord, error) {
	rows, err := r.db.QueryContext(ctx, listShipmentRecordsSQL, shipments.UnknownVendor)
	if err != nil {
		return nil, fmt.Errorf("list shipment records: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ShipmentRecord, 0)
	for rows.Next() {
		var rec domain.ShipmentRecord
		if err := rows.Scan(&rec.Vendor, &rec.ShippedCount, &rec.ShipmentDate); err != nil {
			return nil, fmt.Errorf("scan shipment record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipment records: %w", err)
	}
	return out, nil
}
