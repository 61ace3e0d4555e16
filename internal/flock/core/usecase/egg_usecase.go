package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kokko-factory-service/internal/flock/core/domain"
	"kokko-factory-service/internal/flock/core/ports"
	"kokko-factory-service/internal/platform/validation"

	"github.com/google/uuid"
)

type EggInput struct {
	CoopNumber int `json:"coop_number" validate:"min=1,max=9"`
	Count      int `json:"count" validate:"gte=0"`
}

type EggUseCase struct {
	repo  ports.EggRepositoryPort
	now   func() time.Time
	newID func() string
}

func NewEggUseCase(repo ports.EggRepositoryPort) *EggUseCase {
	return &EggUseCase{repo: repo, now: time.Now, newID: uuid.NewString}
}

// Create records a collection stamped with the current time.
func (uc *EggUseCase) Create(ctx context.Context, in EggInput) (*domain.EggRecord, error) {
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	rec := &domain.EggRecord{
		ID:         uc.newID(),
		CoopNumber: in.CoopNumber,
		Count:      in.Count,
		RecordedAt: uc.now().UTC(),
	}
	if err := uc.repo.InsertEgg(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns every collection, newest first.
func (uc *EggUseCase) List(ctx context.Context) ([]domain.EggRecord, error) {
	return uc.repo.ListEggs(ctx)
}

func (uc *EggUseCase) Update(ctx context.Context, id string, in EggInput) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	if err := validation.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	found, err := uc.repo.UpdateEgg(ctx, &domain.EggRecord{
		ID:         id,
		CoopNumber: in.CoopNumber,
		Count:      in.Count,
	}, uc.now().UTC())
	if err != nil {
		return err
	}
	if !found {
		return ErrRecordNotFound
	}
	return nil
}

func (uc *EggUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}

	found, err := uc.repo.DeleteEgg(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrRecordNotFound
	}
	return nil
}
