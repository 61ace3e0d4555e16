package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kokko-factory-service/internal/inventory/core/domain"
	"kokko-factory-service/internal/inventory/core/ports"
	"kokko-factory-service/internal/platform/sqldb"
)

type InventoryRepository struct {
	db sqldb.DB
}

func NewInventoryRepository(db sqldb.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

var _ ports.InventoryRepositoryPort = (*InventoryRepository)(nil)

const addStockSQL = `
WITH supplier AS (
    INSERT INTO suppliers (name, address, phone_number, email)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (name) DO UPDATE SET
        address      = COALESCE(EXCLUDED.address, suppliers.address),
        phone_number = COALESCE(EXCLUDED.phone_number, suppliers.phone_number),
        email        = COALESCE(EXCLUDED.email, suppliers.email)
    RETURNING name
)
INSERT INTO inventory (supplier_name, item_name, count)
SELECT name, $5, $6 FROM supplier
ON CONFLICT (supplier_name, item_name)
DO UPDATE SET count = inventory.count + EXCLUDED.count`

const listStockSQL = `
SELECT
    i.supplier_name,
    s.address,
    s.phone_number,
    s.email,
    i.item_name,
    i.count,
    t.alert_threshold
FROM inventory i
JOIN suppliers s ON s.name = i.supplier_name
LEFT JOIN inventory_thresholds t
    ON t.supplier_name = i.supplier_name AND t.item_name = i.item_name
ORDER BY i.supplier_name, i.item_name`

const setCountSQL = `
UPDATE inventory SET count = $3
WHERE supplier_name = $1 AND item_name = $2`

const setThresholdSQL = `
INSERT INTO inventory_thresholds (supplier_name, item_name, alert_threshold, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (supplier_name, item_name)
DO UPDATE SET alert_threshold = EXCLUDED.alert_threshold, updated_at = EXCLUDED.updated_at`

const deleteStockSQL = `
DELETE FROM inventory
WHERE supplier_name = $1 AND item_name = $2`

func (r *InventoryRepository) AddStock(ctx context.Context, s domain.Supplier, item string, delta int) error {
	_, err := r.db.ExecContext(ctx, addStockSQL,
		s.Name,
		sqldb.NullString(s.Address),
		sqldb.NullString(s.PhoneNumber),
		sqldb.NullString(s.Email),
		item,
		delta,
	)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

func (r *InventoryRepository) ListStock(ctx context.Context) ([]domain.StockItem, error) {
	rows, err := r.db.QueryContext(ctx, listStockSQL)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	out := make([]domain.StockItem, 0)
	for rows.Next() {
		var (
			it                    domain.StockItem
			address, phone, email sql.NullString
			threshold             sql.NullInt64
		)
		if err := rows.Scan(
			&it.Supplier.Name,
			&address,
			&phone,
			&email,
			&it.ItemName,
			&it.Count,
			&threshold,
		); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		it.Supplier.Address = address.String
		it.Supplier.PhoneNumber = phone.String
		it.Supplier.Email = email.String
		if threshold.Valid {
			v := int(threshold.Int64)
			it.Threshold = &v
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	return out, nil
}

func (r *InventoryRepository) SetCount(ctx context.Context, supplier, item string, count int) (bool, error) {
	res, err := r.db.ExecContext(ctx, setCountSQL, supplier, item, count)
	if err != nil {
		return false, fmt.Errorf("set stock count: %w", err)
	}
	return affected(res)
}

func (r *InventoryRepository) SetThreshold(ctx context.Context, supplier, item string, threshold int, at time.Time) (bool, error) {
	_, err := r.db.ExecContext(ctx, setThresholdSQL, supplier, item, threshold, at)
	if sqldb.IsForeignKeyViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("set alert threshold: %w", err)
	}
	return true, nil
}

func (r *InventoryRepository) DeleteStock(ctx context.Context, supplier, item string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteStockSQL, supplier, item)
	if err != nil {
		return false, fmt.Errorf("delete stock: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
