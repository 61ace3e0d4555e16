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
	"kokko-factory-service/internal/prediction/core/domain"
	"kokko-factory-service/internal/prediction/core/ports"

	"github.com/shopspring/decimal"
)

var ErrInvalidSample = errors.New("invalid prediction sample")

type RecordSampleInput struct {
	Date                string          `validate:"required"`
	CumulativePotential decimal.Decimal `validate:"-"`
	ActualCount         int             `validate:"gte=0"`
}

type PredictionUseCase struct {
	repo  ports.SampleRepositoryPort
	cache ports.ChartInvalidatorPort
	model domain.Model
	log   *logger.Logger
}

func NewPredictionUseCase(repo ports.SampleRepositoryPort, model domain.Model) *PredictionUseCase {
	return &PredictionUseCase{repo: repo, model: model, log: logger.Nop()}
}

// WithChartCache makes every recorded sample drop the cached prediction charts.
func (uc *PredictionUseCase) WithChartCache(c ports.ChartInvalidatorPort, log *logger.Logger) *PredictionUseCase {
	uc.cache = c
	if log != nil {
		uc.log = log
	}
	return uc
}

// Record stores the sample for in.Date, computing its predicted count.
// Recording the same date twice replaces the earlier sample.
func (uc *PredictionUseCase) Record(ctx context.Context, in RecordSampleInput) (*domain.Sample, error) {
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSample, err)
	}
	if in.CumulativePotential.IsNegative() {
		return nil, fmt.Errorf("%w: cumulative_potential must not be negative", ErrInvalidSample)
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(in.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSample)
	}

	potential := in.CumulativePotential.Round(2)
	s := &domain.Sample{
		Date:                date,
		CumulativePotential: potential,
		PredictedCount:      uc.model.Predict(potential),
		ActualCount:         in.ActualCount,
	}
	if err := uc.repo.UpsertSample(ctx, s); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, cache.PredictionCharts); err != nil {
			uc.log.Warn(ctx, "chart cache invalidation failed", err)
		}
	}
	return s, nil
}

func (uc *PredictionUseCase) List(ctx context.Context) ([]domain.Sample, error) {
	return uc.repo.ListSamples(ctx)
}
