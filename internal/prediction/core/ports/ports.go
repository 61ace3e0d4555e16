package ports

import (
	"context"

	"kokko-factory-service/internal/prediction/core/domain"
)

type SampleRepositoryPort interface {
	// UpsertSample stores s, replacing any sample already recorded for its date.
	UpsertSample(ctx context.Context, s *domain.Sample) error
	// ListSamples returns every sample, oldest first.
	ListSamples(ctx context.Context) ([]domain.Sample, error)
}

type ChartCachePort interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type ChartRecorderPort interface {
	ChartBuilt(chart string, hit bool)
}

// ChartInvalidatorPort drops cached prediction charts after a write.
type ChartInvalidatorPort interface {
	Invalidate(ctx context.Context, chart string) error
}
