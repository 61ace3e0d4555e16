package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kokko-factory-service/internal/customers/core/domain"
	"kokko-factory-service/internal/customers/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeCustomerUseCase struct {
	CreateFn       func(ctx context.Context, in usecase.CreateCustomerInput) (*domain.Customer, error)
	BulkCreateFn   func(ctx context.Context, in usecase.BulkCreateCustomersInput) (usecase.BulkCreateCustomersResult, error)
	ListFn         func(ctx context.Context) ([]domain.Customer, error)
	DeleteFn       func(ctx context.Context, name string) error
	LastBulkCreate usecase.BulkCreateCustomersInput
	LastDeleted    string
}

func (f *fakeCustomerUseCase) Create(ctx context.Context, in usecase.CreateCustomerInput) (*domain.Customer, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, in)
	}
	return &domain.Customer{Name: in.Name}, nil
}

func (f *fakeCustomerUseCase) BulkCreate(ctx context.Context, in usecase.BulkCreateCustomersInput) (usecase.BulkCreateCustomersResult, error) {
	f.LastBulkCreate = in
	if f.BulkCreateFn != nil {
		return f.BulkCreateFn(ctx, in)
	}
	return usecase.BulkCreateCustomersResult{}, nil
}

func (f *fakeCustomerUseCase) List(ctx context.Context) ([]domain.Customer, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeCustomerUseCase) Delete(ctx context.Context, name string) error {
	f.LastDeleted = name
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, name)
	}
	return nil
}

func setupTestApp(uc CustomerUseCase) *fiber.App {
	app := fiber.New()
	NewCustomerHandler(uc, nil).Register(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

// ------------------------------------------------------------
// CREATE
// ------------------------------------------------------------

func TestCreateCustomer_Created(t *testing.T) {
	app := setupTestApp(&fakeCustomerUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/customers", CreateCustomerRequest{Name: "Yamada"})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}
	var got CreateCustomerResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if got.ID != "Yamada" {
		t.Fatalf("expected id Yamada, got %q", got.ID)
	}
}

func TestCreateCustomer_Conflict(t *testing.T) {
	app := setupTestApp(&fakeCustomerUseCase{
		CreateFn: func(ctx context.Context, in usecase.CreateCustomerInput) (*domain.Customer, error) {
			return nil, usecase.ErrCustomerExists
		},
	})

	resp, _ := doRequest(t, app, http.MethodPost, "/customers", CreateCustomerRequest{Name: "Yamada"})

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, resp.StatusCode)
	}
}

func TestCreateCustomer_Invalid(t *testing.T) {
	app := setupTestApp(&fakeCustomerUseCase{
		CreateFn: func(ctx context.Context, in usecase.CreateCustomerInput) (*domain.Customer, error) {
			return nil, fmt.Errorf("%w: name must not be blank", usecase.ErrInvalidCustomer)
		},
	})

	resp, body := doRequest(t, app, http.MethodPost, "/customers", CreateCustomerRequest{})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	var got ErrorResponse
	_ = json.Unmarshal(body, &got)
	if got.Error != "invalid_customer" {
		t.Fatalf("expected invalid_customer, got %q", got.Error)
	}
}

// ------------------------------------------------------------
// BULK
// ------------------------------------------------------------

func TestBulkCreateCustomers_Success(t *testing.T) {
	uc := &fakeCustomerUseCase{
		BulkCreateFn: func(ctx context.Context, in usecase.BulkCreateCustomersInput) (usecase.BulkCreateCustomersResult, error) {
			return usecase.BulkCreateCustomersResult{Created: 1, Duplicates: 1}, nil
		},
	}
	app := setupTestApp(uc)

	reqBody := BulkCreateCustomersRequest{Customers: []CreateCustomerRequest{{Name: "A"}, {Name: "B", Email: "b@example.com"}}}
	resp, body := doRequest(t, app, http.MethodPost, "/customers/bulk", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}
	if len(uc.LastBulkCreate.Customers) != 2 || uc.LastBulkCreate.Customers[1].Email != "b@example.com" {
		t.Fatalf("unexpected bulk input: %+v", uc.LastBulkCreate)
	}
	var got BulkCreateCustomersResponse
	_ = json.Unmarshal(body, &got)
	if got.Created != 1 || got.Duplicates != 1 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestBulkCreateCustomers_EmptyList(t *testing.T) {
	app := setupTestApp(&fakeCustomerUseCase{})

	resp, _ := doRequest(t, app, http.MethodPost, "/customers/bulk", BulkCreateCustomersRequest{})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

// ------------------------------------------------------------
// LIST / DELETE
// ------------------------------------------------------------

func TestListCustomers_NullableContacts(t *testing.T) {
	app := setupTestApp(&fakeCustomerUseCase{
		ListFn: func(ctx context.Context) ([]domain.Customer, error) {
			return []domain.Customer{{Name: "A", Email: "a@example.com"}}, nil
		},
	})

	resp, body := doRequest(t, app, http.MethodGet, "/customers", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var got []map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(got))
	}
	if got[0]["address"] != nil {
		t.Fatalf("expected null address, got %v", got[0]["address"])
	}
	if got[0]["email"] != "a@example.com" {
		t.Fatalf("unexpected email: %v", got[0]["email"])
	}
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	uc := &fakeCustomerUseCase{
		DeleteFn: func(ctx context.Context, name string) error { return usecase.ErrCustomerNotFound },
	}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, http.MethodDelete, "/customers/Yamada", nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
	if uc.LastDeleted != "Yamada" {
		t.Fatalf("expected name Yamada, got %q", uc.LastDeleted)
	}
}
