package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"kokko-factory-service/internal/platform/sqldb"
	"kokko-factory-service/internal/shipments/core/domain"
	"kokko-factory-service/internal/shipments/core/ports"
)

type ShipmentRepository struct {
	db sqldb.DB
}

func NewShipmentRepository(db sqldb.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

var _ ports.ShipmentRepositoryPort = (*ShipmentRepository)(nil)

const insertShipmentSQL = `
WITH customer AS (
    INSERT INTO customers (name, address, phone_number, email)
    VALUES ($2, $5, $6, $7)
    ON CONFLICT (name) DO NOTHING
)
INSERT INTO shipments (id, customer_name, shipped_count, shipment_date)
VALUES ($1, $2, $3, $4)`

const listShipmentsSQL = `
SELECT
    s.id,
    s.customer_name,
    s.shipped_count,
    s.shipment_date,
    COALESCE(c.name, $1),
    c.address,
    c.phone_number,
    c.email
FROM shipments s
LEFT JOIN customers c ON c.name = s.customer_name
ORDER BY s.shipment_date DESC`

const getShipmentSQL = `
SELECT
    s.id,
    s.customer_name,
    s.shipped_count,
    s.shipment_date,
    c.name,
    c.address,
    c.phone_number,
    c.email
FROM shipments s
JOIN customers c ON c.name = s.customer_name
WHERE s.id = $1 AND s.customer_name = $2`

func (r *ShipmentRepository) InsertShipment(ctx context.Context, s *domain.Shipment, contact domain.Contact) error {
	_, err := r.db.ExecContext(ctx, insertShipmentSQL,
		s.ID,
		s.CustomerName,
		s.ShippedCount,
		s.ShipmentDate,
		sqldb.NullString(contact.Address),
		sqldb.NullString(contact.PhoneNumber),
		sqldb.NullString(contact.Email),
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

func (r *ShipmentRepository) ListShipments(ctx context.Context) ([]domain.ShipmentView, error) {
	rows, err := r.db.QueryContext(ctx, listShipmentsSQL, domain.UnknownVendor)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ShipmentView, 0)
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return out, nil
}

func (r *ShipmentRepository) GetShipment(ctx context.Context, id, customerName string) (*domain.ShipmentView, bool, error) {
	rows, err := r.db.QueryContext(ctx, getShipmentSQL, id, customerName)
	if err != nil {
		return nil, false, fmt.Errorf("get shipment: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("get shipment: %w", err)
		}
		return nil, false, nil
	}
	v, err := scanView(rows)
	if err != nil {
		return nil, false, err
	}
	return &v, true, nil
}

func scanView(rows sqldb.RowScanner) (domain.ShipmentView, error) {
	var (
		v                     domain.ShipmentView
		address, phone, email sql.NullString
	)
	if err := rows.Scan(
		&v.ID,
		&v.CustomerName,
		&v.ShippedCount,
		&v.ShipmentDate,
		&v.Vendor,
		&address,
		&phone,
		&email,
	); err != nil {
		return v, fmt.Errorf("scan shipment: %w", err)
	}
	v.Address = address.String
	v.PhoneNumber = phone.String
	v.Email = email.String
	return v, nil
}
