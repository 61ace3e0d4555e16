package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"kokko-factory-service/internal/charts"
	"kokko-factory-service/internal/marketing/core/domain"
	"kokko-factory-service/internal/marketing/core/ports"
	"kokko-factory-service/internal/platform/cache"
	"kokko-factory-service/internal/platform/logger"

	"github.com/shopspring/decimal"
)

var ErrInvalidChartQuery = errors.New("invalid chart query")

const chartName = cache.ShipmentCharts

// ChartInput is the full view state of one analytics request.
type ChartInput struct {
	GroupBy string
	Start   string
	End     string
	// Series restricts the line chart. Nil selects every series; an empty
	// non-nil slice selects none.
	Series []string
}

type ShipmentChartUseCase struct {
	reader   ports.ShipmentReaderPort
	cache    ports.ChartCachePort
	recorder ports.ChartRecorderPort
	loc      *time.Location
	log      *logger.Logger
}

func NewShipmentChartUseCase(
	reader ports.ShipmentReaderPort,
	chartCache ports.ChartCachePort,
	recorder ports.ChartRecorderPort,
	loc *time.Location,
	log *logger.Logger,
) *ShipmentChartUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ShipmentChartUseCase{reader: reader, cache: chartCache, recorder: recorder, loc: loc, log: log}
}

func (uc *ShipmentChartUseCase) Execute(ctx context.Context, in ChartInput) (*domain.ShipmentChart, error) {
	raw := in.GroupBy
	if strings.TrimSpace(raw) == "" {
		raw = string(charts.Month)
	}
	g, err := charts.ParseGranularityIn(raw, charts.ShipmentGranularities)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChartQuery, err)
	}
	rng, err := charts.ParseDateRange(in.Start, in.End, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChartQuery, err)
	}

	key := cacheKey(g, in)
	if uc.cache != nil {
		var cached domain.ShipmentChart
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			uc.log.Warn(ctx, "chart cache read failed", err)
		}
		if hit {
			uc.record(true)
			return &cached, nil
		}
	}

	records, err := uc.reader.ListShipments(ctx)
	if err != nil {
		return nil, err
	}

	res := build(records, g, rng, in.Series, uc.loc)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, res); err != nil {
			uc.log.Warn(ctx, "chart cache write failed", err)
		}
	}
	uc.record(false)
	return res, nil
}

func (uc *ShipmentChartUseCase) record(hit bool) {
	if uc.recorder != nil {
		uc.recorder.ChartBuilt(chartName, hit)
	}
}

func build(records []domain.ShipmentRecord, g charts.Granularity, rng charts.DateRange, selection []string, loc *time.Location) *domain.ShipmentChart {
	at := func(r domain.ShipmentRecord) time.Time { return r.ShipmentDate }

	vendors := vendorsInOrder(records)
	dated, discarded := charts.DropUndated(records, at)
	filtered := charts.FilterByRange(dated, at, rng)

	spec := charts.Spec[domain.ShipmentRecord]{
		At:       at,
		Series:   charts.BySeries(func(r domain.ShipmentRecord) string { return r.Vendor }),
		Measure:  func(r domain.ShipmentRecord) decimal.Decimal { return decimal.NewFromInt(r.ShippedCount) },
		Location: loc,
	}
	b := charts.NewBuckets(g, charts.Sum)
	charts.Accumulate(b, filtered, spec)
	spec.Series = charts.SingleSeries[domain.ShipmentRecord](domain.TotalSeries)
	charts.Accumulate(b, filtered, spec)

	options := append([]string{domain.TotalSeries}, vendors...)
	selected := selectSeries(options, selection)

	vendorIndex := make(map[string]int, len(vendors))
	for i, v := range vendors {
		vendorIndex[v] = i
	}
	style := func(name string, _ int) charts.Style {
		if name == domain.TotalSeries {
			return charts.Style{
				BorderColor:     "rgba(0, 0, 0, 1)",
				BackgroundColor: "rgba(0, 0, 0, 0.2)",
			}
		}
		i := vendorIndex[name]
		return charts.Style{
			BorderColor:     charts.Color(i, 1),
			BackgroundColor: charts.Color(i, 0.3),
		}
	}

	return &domain.ShipmentChart{
		GroupBy:   g,
		Line:      charts.BuildSeries(b, selected, style),
		Pie:       charts.BuildPie(b, vendors),
		Vendors:   vendors,
		Discarded: discarded,
	}
}

// vendorsInOrder lists distinct vendors by first appearance.
func vendorsInOrder(records []domain.ShipmentRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Vendor]; ok {
			continue
		}
		seen[r.Vendor] = struct{}{}
		out = append(out, r.Vendor)
	}
	return out
}

// selectSeries keeps options named in selection, in option order. Unknown
// names are ignored; a nil selection keeps everything.
func selectSeries(options, selection []string) []string {
	if selection == nil {
		return options
	}
	want := make(map[string]struct{}, len(selection))
	for _, s := range selection {
		want[strings.TrimSpace(s)] = struct{}{}
	}
	out := make([]string, 0, len(options))
	for _, o := range options {
		if _, ok := want[o]; ok {
			out = append(out, o)
		}
	}
	return out
}

func cacheKey(g charts.Granularity, in ChartInput) string {
	selection := "*"
	if in.Series != nil {
		series := make([]string, 0, len(in.Series))
		for _, s := range in.Series {
			series = append(series, strings.TrimSpace(s))
		}
		sort.Strings(series)
		selection = "[" + strings.Join(series, ",") + "]"
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s", chartName, g,
		strings.TrimSpace(in.Start), strings.TrimSpace(in.End), selection)
}
