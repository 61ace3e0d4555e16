package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kokko-factory-service/internal/inventory/core/domain"
	"kokko-factory-service/internal/inventory/core/ports"
	"kokko-factory-service/internal/platform/validation"
)

var (
	ErrInvalidStock  = errors.New("invalid stock request")
	ErrStockNotFound = errors.New("stock item not found")
)

type StockKey struct {
	SupplierName string `json:"supplier_name" validate:"notblank"`
	ItemName     string `json:"item_name" validate:"notblank"`
}

func (k StockKey) trimmed() StockKey {
	return StockKey{
		SupplierName: strings.TrimSpace(k.SupplierName),
		ItemName:     strings.TrimSpace(k.ItemName),
	}
}

type AddStockInput struct {
	StockKey
	Count          int    `json:"count"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email" validate:"omitempty,email"`
	AlertThreshold *int   `json:"alert_threshold" validate:"omitempty,gte=0"`
}

type SetCountInput struct {
	StockKey
	Count int `json:"count" validate:"gte=0"`
}

type SetThresholdInput struct {
	StockKey
	Threshold int `json:"threshold" validate:"gte=0"`
}

type InventoryUseCase struct {
	repo             ports.InventoryRepositoryPort
	defaultThreshold int
	now              func() time.Time
}

// NewInventoryUseCase applies defaultThreshold to items without one.
func NewInventoryUseCase(repo ports.InventoryRepositoryPort, defaultThreshold int) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, defaultThreshold: defaultThreshold, now: time.Now}
}

func (uc *InventoryUseCase) List(ctx context.Context) ([]domain.StockLevel, error) {
	items, err := uc.repo.ListStock(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.StockLevel, 0, len(items))
	for _, it := range items {
		threshold := uc.defaultThreshold
		if it.Threshold != nil {
			threshold = *it.Threshold
		}
		out = append(out, domain.StockLevel{
			Supplier:  it.Supplier,
			ItemName:  it.ItemName,
			Remaining: it.Count,
			Threshold: threshold,
			Low:       it.Count <= threshold,
		})
	}
	return out, nil
}

// Add increases an item's stock and optionally stores its alert threshold.
func (uc *InventoryUseCase) Add(ctx context.Context, in AddStockInput) error {
	in.StockKey = in.StockKey.trimmed()
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStock, err)
	}

	supplier := domain.Supplier{
		Name:        in.SupplierName,
		Address:     strings.TrimSpace(in.Address),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Email:       in.Email,
	}
	if err := uc.repo.AddStock(ctx, supplier, in.ItemName, in.Count); err != nil {
		return err
	}

	if in.AlertThreshold == nil {
		return nil
	}
	found, err := uc.repo.SetThreshold(ctx, in.SupplierName, in.ItemName, *in.AlertThreshold, uc.now().UTC())
	if err != nil {
		return err
	}
	if !found {
		return ErrStockNotFound
	}
	return nil
}

func (uc *InventoryUseCase) SetCount(ctx context.Context, in SetCountInput) error {
	in.StockKey = in.StockKey.trimmed()
	if err := validation.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStock, err)
	}
	found, err := uc.repo.SetCount(ctx, in.SupplierName, in.ItemName, in.Count)
	if err != nil {
		return err
	}
	if !found {
		return ErrStockNotFound
	}
	return nil
}

func (uc *InventoryUseCase) SetThreshold(ctx context.Context, in SetThresholdInput) error {
	in.StockKey = in.StockKey.trimmed()
	if err := validation.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStock, err)
	}
	found, err := uc.repo.SetThreshold(ctx, in.SupplierName, in.ItemName, in.Threshold, uc.now().UTC())
	if err != nil {
		return err
	}
	if !found {
		return ErrStockNotFound
	}
	return nil
}

func (uc *InventoryUseCase) Delete(ctx context.Context, key StockKey) error {
	key = key.trimmed()
	if err := validation.Struct(key); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStock, err)
	}
	found, err := uc.repo.DeleteStock(ctx, key.SupplierName, key.ItemName)
	if err != nil {
		return err
	}
	if !found {
		return ErrStockNotFound
	}
	return nil
}
