package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kokko-factory-service/internal/flock/core/domain"
	"kokko-factory-service/internal/flock/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeEggUseCase struct {
	CreateFn    func(ctx context.Context, in usecase.EggInput) (*domain.EggRecord, error)
	ListFn      func(ctx context.Context) ([]domain.EggRecord, error)
	UpdateFn    func(ctx context.Context, id string, in usecase.EggInput) error
	DeleteFn    func(ctx context.Context, id string) error
	LastCreate  usecase.EggInput
	LastUpdated string
}

func (f *fakeEggUseCase) Create(ctx context.Context, in usecase.EggInput) (*domain.EggRecord, error) {
	f.LastCreate = in
	if f.CreateFn != nil {
		return f.CreateFn(ctx, in)
	}
	return &domain.EggRecord{ID: "e1", CoopNumber: in.CoopNumber, Count: in.Count}, nil
}

func (f *fakeEggUseCase) List(ctx context.Context) ([]domain.EggRecord, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeEggUseCase) Update(ctx context.Context, id string, in usecase.EggInput) error {
	f.LastUpdated = id
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, in)
	}
	return nil
}

func (f *fakeEggUseCase) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeDeathUseCase struct {
	CreateFn   func(ctx context.Context, in usecase.DeathInput) (*domain.DeathRecord, error)
	DeleteFn   func(ctx context.Context, id string) error
	LastCreate usecase.DeathInput
}

func (f *fakeDeathUseCase) Create(ctx context.Context, in usecase.DeathInput) (*domain.DeathRecord, error) {
	f.LastCreate = in
	if f.CreateFn != nil {
		return f.CreateFn(ctx, in)
	}
	return &domain.DeathRecord{ID: "d1", CoopNumber: in.CoopNumber, Count: in.Count, CauseOfDeath: in.CauseOfDeath}, nil
}

func (f *fakeDeathUseCase) List(ctx context.Context) ([]domain.DeathRecord, error) {
	return []domain.DeathRecord{}, nil
}

func (f *fakeDeathUseCase) Update(ctx context.Context, id string, in usecase.DeathInput) error {
	return nil
}

func (f *fakeDeathUseCase) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

// helper: create fiber app and routes
func setupTestApp(eggs EggUseCase, deaths DeathUseCase) *fiber.App {
	app := fiber.New()
	NewFlockHandler(eggs, deaths, nil).Register(app)
	return app
}

// helper: send request
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

func intPtr(v int) *int { return &v }

// ------------------------------------------------------------
// EGGS
// ------------------------------------------------------------

func TestCreateEgg_Created(t *testing.T) {
	uc := &fakeEggUseCase{}
	app := setupTestApp(uc, &fakeDeathUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/eggs", EggRequest{CoopNumber: intPtr(3), Count: intPtr(0)})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}
	if uc.LastCreate != (usecase.EggInput{CoopNumber: 3, Count: 0}) {
		t.Fatalf("unexpected input: %+v", uc.LastCreate)
	}

	var got EggResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if got.ID != "e1" || got.CoopNumber != 3 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestCreateEgg_MissingCount(t *testing.T) {
	uc := &fakeEggUseCase{
		CreateFn: func(ctx context.Context, in usecase.EggInput) (*domain.EggRecord, error) {
			t.Fatalf("use case must not be called")
			return nil, nil
		},
	}
	app := setupTestApp(uc, &fakeDeathUseCase{})

	resp, _ := doRequest(t, app, http.MethodPost, "/eggs", map[string]any{"coop_number": 3})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateEgg_InvalidJSON(t *testing.T) {
	app := setupTestApp(&fakeEggUseCase{}, &fakeDeathUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/eggs", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateEgg_ValidationError(t *testing.T) {
	uc := &fakeEggUseCase{
		CreateFn: func(ctx context.Context, in usecase.EggInput) (*domain.EggRecord, error) {
			return nil, errors.Join(usecase.ErrInvalidRecord, errors.New("coop_number must be at most 9"))
		},
	}
	app := setupTestApp(uc, &fakeDeathUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/eggs", EggRequest{CoopNumber: intPtr(12), Count: intPtr(1)})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	var got ErrorResponse
	_ = json.Unmarshal(body, &got)
	if got.Error != "invalid_record" {
		t.Fatalf("expected invalid_record, got %q", got.Error)
	}
}

func TestListEggs(t *testing.T) {
	at := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	uc := &fakeEggUseCase{
		ListFn: func(ctx context.Context) ([]domain.EggRecord, error) {
			return []domain.EggRecord{{ID: "b", RecordedAt: at}, {ID: "a", RecordedAt: at.Add(-time.Hour)}}, nil
		},
	}
	app := setupTestApp(uc, &fakeDeathUseCase{})

	resp, body := doRequest(t, app, http.MethodGet, "/eggs", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var got []EggResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestListEggs_EmptyIsArray(t *testing.T) {
	app := setupTestApp(&fakeEggUseCase{}, &fakeDeathUseCase{})

	_, body := doRequest(t, app, http.MethodGet, "/eggs", nil)

	if string(body) != "[]" {
		t.Fatalf("expected empty array, got %s", string(body))
	}
}

func TestUpdateEgg_NotFound(t *testing.T) {
	uc := &fakeEggUseCase{
		UpdateFn: func(ctx context.Context, id string, in usecase.EggInput) error {
			return usecase.ErrRecordNotFound
		},
	}
	app := setupTestApp(uc, &fakeDeathUseCase{})

	resp, _ := doRequest(t, app, http.MethodPut, "/eggs/abc", EggRequest{CoopNumber: intPtr(1), Count: intPtr(1)})

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
	if uc.LastUpdated != "abc" {
		t.Fatalf("expected id abc, got %q", uc.LastUpdated)
	}
}

func TestDeleteEgg_InternalError(t *testing.T) {
	uc := &fakeEggUseCase{
		DeleteFn: func(ctx context.Context, id string) error {
			return errors.New("db down")
		},
	}
	app := setupTestApp(uc, &fakeDeathUseCase{})

	resp, body := doRequest(t, app, http.MethodDelete, "/eggs/abc", nil)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
	var got ErrorResponse
	_ = json.Unmarshal(body, &got)
	if got.Error != "internal_server_error" {
		t.Fatalf("expected internal_server_error, got %q", got.Error)
	}
}

// ------------------------------------------------------------
// DEAD CHICKENS
// ------------------------------------------------------------

func TestCreateDeath_Created(t *testing.T) {
	uc := &fakeDeathUseCase{}
	app := setupTestApp(&fakeEggUseCase{}, uc)

	resp, body := doRequest(t, app, http.MethodPost, "/dead-chickens", DeathRequest{
		CoopNumber: intPtr(2), Count: intPtr(1), CauseOfDeath: "predator",
	})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}
	if uc.LastCreate.CauseOfDeath != "predator" {
		t.Fatalf("unexpected input: %+v", uc.LastCreate)
	}
}

func TestDeleteDeath_NotFound(t *testing.T) {
	uc := &fakeDeathUseCase{
		DeleteFn: func(ctx context.Context, id string) error { return usecase.ErrRecordNotFound },
	}
	app := setupTestApp(&fakeEggUseCase{}, uc)

	resp, _ := doRequest(t, app, http.MethodDelete, "/dead-chickens/x", nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}
