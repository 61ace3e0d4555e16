package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"kokko-factory-service/internal/customers/core/domain"
	"kokko-factory-service/internal/customers/core/ports"
	"kokko-factory-service/internal/platform/sqldb"
)

type CustomerRepository struct {
	db sqldb.DB
}

func NewCustomerRepository(db sqldb.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

var _ ports.CustomerRepositoryPort = (*CustomerRepository)(nil)

const insertCustomerSQL = `
INSERT INTO customers (
    name,
    address,
    phone_number,
    email,
    created_at
) VALUES (
    $1, $2, $3, $4, $5
)
ON CONFLICT (name) DO NOTHING;
`

const listCustomersSQL = `
SELECT name, address, phone_number, email, created_at
FROM customers
ORDER BY name`

const deleteCustomerSQL = `DELETE FROM customers WHERE name = $1`

func (r *CustomerRepository) InsertCustomer(ctx context.Context, c *domain.Customer) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertCustomerSQL,
		c.Name,
		sqldb.NullString(c.Address),
		sqldb.NullString(c.PhoneNumber),
		sqldb.NullString(c.Email),
		c.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert customer: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> name taken (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, listCustomersSQL)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Customer, 0)
	for rows.Next() {
		var (
			c                     domain.Customer
			address, phone, email sql.NullString
		)
		if err := rows.Scan(&c.Name, &address, &phone, &email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Address = address.String
		c.PhoneNumber = phone.String
		c.Email = email.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteCustomerSQL, name)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
