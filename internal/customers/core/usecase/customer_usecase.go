package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kokko-factory-service/internal/customers/core/domain"
	"kokko-factory-service/internal/customers/core/ports"
	"kokko-factory-service/internal/platform/validation"
)

var (
	ErrInvalidCustomer  = errors.New("invalid customer")
	ErrCustomerExists   = errors.New("customer already exists")
	ErrCustomerNotFound = errors.New("customer not found")
)

type CustomerUseCase struct {
	repo ports.CustomerRepositoryPort
	now  func() time.Time
}

func NewCustomerUseCase(repo ports.CustomerRepositoryPort) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, now: time.Now}
}

type CreateCustomerInput struct {
	Name        string `json:"name" validate:"notblank"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func (in CreateCustomerInput) normalize() CreateCustomerInput {
	return CreateCustomerInput{
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Email:       strings.TrimSpace(in.Email),
	}
}

// Create registers a customer. A name that is already taken yields
// ErrCustomerExists.
func (uc *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error) {
	in = in.normalize()
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
	}

	c, created, err := uc.insert(ctx, in)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrCustomerExists
	}
	return c, nil
}

func (uc *CustomerUseCase) insert(ctx context.Context, in CreateCustomerInput) (*domain.Customer, bool, error) {
	c := &domain.Customer{
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		CreatedAt:   uc.now().UTC(),
	}
	created, err := uc.repo.InsertCustomer(ctx, c)
	if err != nil {
		return nil, false, err
	}
	return c, created, nil
}

type BulkCreateCustomersInput struct {
	Customers []CreateCustomerInput
}

type BulkCreateCustomersResult struct {
	Created    int
	Duplicates int
}

// BulkCreate validates every entry before storing any of them, then inserts
// one by one. Names already registered are counted, not rejected.
func (uc *CustomerUseCase) BulkCreate(ctx context.Context, in BulkCreateCustomersInput) (BulkCreateCustomersResult, error) {
	var res BulkCreateCustomersResult

	inputs := make([]CreateCustomerInput, len(in.Customers))
	for i, c := range in.Customers {
		inputs[i] = c.normalize()
		if err := validation.Struct(inputs[i]); err != nil {
			return res, fmt.Errorf("%w: customers[%d]: %v", ErrInvalidCustomer, i, err)
		}
	}

	for _, c := range inputs {
		_, created, err := uc.insert(ctx, c)
		if err != nil {
			return res, err
		}
		if created {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *CustomerUseCase) List(ctx context.Context) ([]domain.Customer, error) {
	return uc.repo.ListCustomers(ctx)
}

// Delete removes the customer record only; its shipments stay on file.
func (uc *CustomerUseCase) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}
	found, err := uc.repo.DeleteCustomer(ctx, name)
	if err != nil {
		return err
	}
	if !found {
		return ErrCustomerNotFound
	}
	return nil
}
