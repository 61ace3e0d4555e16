package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kokko-factory-service/internal/platform/cache"
	"kokko-factory-service/internal/platform/logger"
	"kokko-factory-service/internal/platform/validation"
	"kokko-factory-service/internal/shipments/core/domain"
	"kokko-factory-service/internal/shipments/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidShipment  = errors.New("invalid shipment")
	ErrShipmentNotFound = errors.New("shipment not found")
)

const dateLayout = "2006-01-02"

type CreateShipmentInput struct {
	CustomerName string `json:"customer_name" validate:"notblank"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email" validate:"omitempty,email"`
	ShippedCount int    `json:"shipped_count" validate:"gte=0"`
	// ShipmentDate accepts RFC3339 or YYYY-MM-DD; empty means now.
	ShipmentDate string `json:"shipment_date"`
}

type ShipmentUseCase struct {
	repo  ports.ShipmentRepositoryPort
	cache ports.ChartCachePort
	log   *logger.Logger
	loc   *time.Location
	now   func() time.Time
	newID func() string
}

// NewShipmentUseCase interprets bare dates in loc.
func NewShipmentUseCase(repo ports.ShipmentRepositoryPort, loc *time.Location) *ShipmentUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ShipmentUseCase{repo: repo, log: logger.Nop(), loc: loc, now: time.Now, newID: uuid.NewString}
}

// WithChartCache makes every recorded shipment drop the cached shipment charts.
func (uc *ShipmentUseCase) WithChartCache(c ports.ChartCachePort, log *logger.Logger) *ShipmentUseCase {
	uc.cache = c
	if log != nil {
		uc.log = log
	}
	return uc
}

func (uc *ShipmentUseCase) Create(ctx context.Context, in CreateShipmentInput) (*domain.Shipment, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShipment, err)
	}

	date, err := uc.parseDate(in.ShipmentDate)
	if err != nil {
		return nil, err
	}

	s := &domain.Shipment{
		ID:           uc.newID(),
		CustomerName: in.CustomerName,
		ShippedCount: in.ShippedCount,
		ShipmentDate: date,
	}
	contact := domain.Contact{
		Address:     strings.TrimSpace(in.Address),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Email:       in.Email,
	}
	if err := uc.repo.InsertShipment(ctx, s, contact); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, cache.ShipmentCharts); err != nil {
			uc.log.Warn(ctx, "chart cache invalidation failed", err)
		}
	}
	return s, nil
}

func (uc *ShipmentUseCase) parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uc.now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(dateLayout, raw, uc.loc); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: shipment_date %q is neither RFC3339 nor YYYY-MM-DD", ErrInvalidShipment, raw)
}

func (uc *ShipmentUseCase) List(ctx context.Context) ([]domain.ShipmentView, error) {
	return uc.repo.ListShipments(ctx)
}

func (uc *ShipmentUseCase) Get(ctx context.Context, id, customerName string) (*domain.ShipmentView, error) {
	id = strings.TrimSpace(id)
	customerName = strings.TrimSpace(customerName)
	if id == "" || customerName == "" {
		return nil, fmt.Errorf("%w: id and customer_name are required", ErrInvalidShipment)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrShipmentNotFound
	}

	view, found, err := uc.repo.GetShipment(ctx, id, customerName)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrShipmentNotFound
	}
	return view, nil
}
