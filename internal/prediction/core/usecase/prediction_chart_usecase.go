package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kokko-factory-service/internal/charts"
	"kokko-factory-service/internal/platform/cache"
	"kokko-factory-service/internal/platform/logger"
	"kokko-factory-service/internal/prediction/core/domain"
	"kokko-factory-service/internal/prediction/core/ports"

	"github.com/shopspring/decimal"
)

var ErrInvalidChartQuery = errors.New("invalid chart query")

const chartName = cache.PredictionCharts

type ChartInput struct {
	GroupBy string
	Start   string
	End     string
}

type PredictionChartUseCase struct {
	repo     ports.SampleRepositoryPort
	cache    ports.ChartCachePort
	recorder ports.ChartRecorderPort
	model    domain.Model
	loc      *time.Location
	log      *logger.Logger
}

func NewPredictionChartUseCase(
	repo ports.SampleRepositoryPort,
	chartCache ports.ChartCachePort,
	recorder ports.ChartRecorderPort,
	model domain.Model,
	loc *time.Location,
	log *logger.Logger,
) *PredictionChartUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PredictionChartUseCase{repo: repo, cache: chartCache, recorder: recorder, model: model, loc: loc, log: log}
}

func (uc *PredictionChartUseCase) Execute(ctx context.Context, in ChartInput) (*domain.PredictionChart, error) {
	raw := in.GroupBy
	if strings.TrimSpace(raw) == "" {
		raw = string(charts.Day)
	}
	g, err := charts.ParseGranularityIn(raw, charts.PredictionGranularities)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChartQuery, err)
	}
	rng, err := charts.ParseDateRange(in.Start, in.End, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChartQuery, err)
	}

	key := fmt.Sprintf("%s:%s:%s:%s", chartName, g, strings.TrimSpace(in.Start), strings.TrimSpace(in.End))
	if uc.cache != nil {
		var cached domain.PredictionChart
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			uc.log.Warn(ctx, "chart cache read failed", err)
		}
		if hit {
			uc.record(true)
			return &cached, nil
		}
	}

	samples, err := uc.repo.ListSamples(ctx)
	if err != nil {
		return nil, err
	}
	res := uc.build(samples, g, rng)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, res); err != nil {
			uc.log.Warn(ctx, "chart cache write failed", err)
		}
	}
	uc.record(false)
	return res, nil
}

func (uc *PredictionChartUseCase) record(hit bool) {
	if uc.recorder != nil {
		uc.recorder.ChartBuilt(chartName, hit)
	}
}

func (uc *PredictionChartUseCase) build(samples []domain.Sample, g charts.Granularity, rng charts.DateRange) *domain.PredictionChart {
	// sample dates are calendar days; pin them to midnight in the display zone
	at := func(s domain.Sample) time.Time {
		if s.Date.IsZero() {
			return time.Time{}
		}
		y, m, d := s.Date.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, uc.loc)
	}
	dated, discarded := charts.DropUndated(samples, at)
	filtered := charts.FilterByRange(dated, at, rng)

	b := charts.NewBuckets(g, charts.Average)
	measures := []struct {
		series  string
		measure func(domain.Sample) decimal.Decimal
	}{
		{domain.PredictedSeries, func(s domain.Sample) decimal.Decimal { return decimal.NewFromInt(int64(s.PredictedCount)) }},
		{domain.ActualSeries, func(s domain.Sample) decimal.Decimal { return decimal.NewFromInt(int64(s.ActualCount)) }},
		{domain.PotentialSeries, func(s domain.Sample) decimal.Decimal { return s.CumulativePotential }},
	}
	for _, m := range measures {
		charts.Accumulate(b, filtered, charts.Spec[domain.Sample]{
			At:      at,
			Series:  charts.SingleSeries[domain.Sample](m.series),
			Measure: m.measure,
		})
	}

	return &domain.PredictionChart{
		GroupBy:   g,
		Line:      charts.BuildSeries(b, []string{domain.PredictedSeries, domain.ActualSeries, domain.PotentialSeries}, style),
		Model:     uc.model,
		Discarded: discarded,
	}
}

func style(series string, _ int) charts.Style {
	switch series {
	case domain.PredictedSeries:
		return charts.Style{
			BorderColor:     "rgb(255, 99, 132)",
			BackgroundColor: "rgba(255, 99, 132, 0.5)",
			Tension:         0.2,
			YAxisID:         "y1",
			PointRadius:     4,
		}
	case domain.ActualSeries:
		return charts.Style{
			BorderColor:     "rgb(54, 162, 235)",
			BackgroundColor: "rgba(54, 162, 235, 0.5)",
			Tension:         0.2,
			YAxisID:         "y1",
			BorderDash:      []int{5, 5},
			PointRadius:     4,
		}
	default:
		return charts.Style{
			BorderColor:     "rgb(75, 192, 192)",
			BackgroundColor: "rgba(75, 192, 192, 0.2)",
			Tension:         0.5,
			YAxisID:         "y2",
			BorderWidth:     1,
			PointRadius:     2,
		}
	}
}
