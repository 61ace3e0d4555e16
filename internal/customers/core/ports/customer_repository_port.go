package ports

import (
	"context"

	"kokko-factory-service/internal/customers/core/domain"
)

type CustomerRepositoryPort interface {
	// InsertCustomer:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> name already registered
	//   created = false, err != nil -> DB error
	InsertCustomer(ctx context.Context, c *domain.Customer) (created bool, err error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	DeleteCustomer(ctx context.Context, name string) (found bool, err error)
}
