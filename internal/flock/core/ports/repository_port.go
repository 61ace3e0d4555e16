package ports

import (
	"context"
	"time"

	"kokko-factory-service/internal/flock/core/domain"
)

type EggRepositoryPort interface {
	InsertEgg(ctx context.Context, r *domain.EggRecord) error
	ListEggs(ctx context.Context) ([]domain.EggRecord, error)
	// UpdateEgg and DeleteEgg report found=false when no row has the id.
	UpdateEgg(ctx context.Context, r *domain.EggRecord, updatedAt time.Time) (found bool, err error)
	DeleteEgg(ctx context.Context, id string) (found bool, err error)
}

type DeathRepositoryPort interface {
	InsertDeath(ctx context.Context, r *domain.DeathRecord) error
	ListDeaths(ctx context.Context) ([]domain.DeathRecord, error)
	UpdateDeath(ctx context.Context, r *domain.DeathRecord, updatedAt time.Time) (found bool, err error)
	DeleteDeath(ctx context.Context, id string) (found bool, err error)
}
