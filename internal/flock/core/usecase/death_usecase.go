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

type DeathInput struct {
	CoopNumber   int    `json:"coop_number" validate:"min=1,max=9"`
	Count        int    `json:"count" validate:"gte=0"`
	CauseOfDeath string `json:"cause_of_death" validate:"notblank"`
}

type DeathUseCase struct {
	repo  ports.DeathRepositoryPort
	now   func() time.Time
	newID func() string
}

func NewDeathUseCase(repo ports.DeathRepositoryPort) *DeathUseCase {
	return &DeathUseCase{repo: repo, now: time.Now, newID: uuid.NewString}
}

func (uc *DeathUseCase) Create(ctx context.Context, in DeathInput) (*domain.DeathRecord, error) {
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	rec := &domain.DeathRecord{
		ID:           uc.newID(),
		CoopNumber:   in.CoopNumber,
		Count:        in.Count,
		CauseOfDeath: strings.TrimSpace(in.CauseOfDeath),
		RecordedAt:   uc.now().UTC(),
	}
	if err := uc.repo.InsertDeath(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (uc *DeathUseCase) List(ctx context.Context) ([]domain.DeathRecord, error) {
	return uc.repo.ListDeaths(ctx)
}

func (uc *DeathUseCase) Update(ctx context.Context, id string, in DeathInput) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	if err := validation.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	found, err := uc.repo.UpdateDeath(ctx, &domain.DeathRecord{
		ID:           id,
		CoopNumber:   in.CoopNumber,
		Count:        in.Count,
		CauseOfDeath: strings.TrimSpace(in.CauseOfDeath),
	}, uc.now().UTC())
	if err != nil {
		return err
	}
	if !found {
		return ErrRecordNotFound
	}
	return nil
}

func (uc *DeathUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}

	found, err := uc.repo.DeleteDeath(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrRecordNotFound
	}
	return nil
}
