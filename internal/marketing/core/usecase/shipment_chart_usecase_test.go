package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"kokko-factory-service/internal/charts"
	"kokko-factory-service/internal/marketing/core/domain"
	"kokko-factory-service/internal/marketing/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = time.FixedZone("JST", 9*60*60)

type fakeReader struct {
	ListFn func(ctx context.Context) ([]domain.ShipmentRecord, error)
	calls  int
}

func (f *fakeReader) ListShipments(ctx context.Context) ([]domain.ShipmentRecord, error) {
	f.calls++
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

type fakeCache struct {
	store  map[string][]byte
	GetErr error
}

func (f *fakeCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if f.GetErr != nil {
		return false, f.GetErr
	}
	raw, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.store == nil {
		f.store = map[string][]byte{}
	}
	f.store[key] = raw
	return nil
}

type fakeRecorder struct {
	hits, misses int
}

func (f *fakeRecorder) ChartBuilt(chart string, hit bool) {
	if hit {
		f.hits++
	} else {
		f.misses++
	}
}

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, tokyo)
}

// newest first, as the reader returns them
func sampleShipments() []domain.ShipmentRecord {
	return []domain.ShipmentRecord{
		{Vendor: "B", ShippedCount: 2, ShipmentDate: at(2024, 4, 2)},
		{Vendor: "A", ShippedCount: 4, ShipmentDate: at(2024, 4, 1)},
		{Vendor: "A", ShippedCount: 6, ShipmentDate: at(2024, 3, 31)},
		{Vendor: "C", ShippedCount: 1, ShipmentDate: at(2023, 12, 31)},
	}
}

func newUseCase(reader *fakeReader, cache *fakeCache, rec *fakeRecorder) *usecase.ShipmentChartUseCase {
	if cache == nil {
		return usecase.NewShipmentChartUseCase(reader, nil, rec, tokyo, nil)
	}
	return usecase.NewShipmentChartUseCase(reader, cache, rec, tokyo, nil)
}

func TestShipmentChart_MonthlyWithTotal(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return sampleShipments(), nil
	}}

	res, err := newUseCase(reader, nil, nil).Execute(context.Background(), usecase.ChartInput{GroupBy: "month"})
	require.NoError(t, err)

	assert.Equal(t, charts.Month, res.GroupBy)
	assert.Equal(t, []string{"2023-12", "2024-03", "2024-04"}, res.Line.Keys)
	assert.Equal(t, []string{"2023年12月", "2024年03月", "2024年04月"}, res.Line.Labels)
	assert.Equal(t, []string{"B", "A", "C"}, res.Vendors)

	require.Len(t, res.Line.Datasets, 4)
	total := res.Line.Datasets[0]
	assert.Equal(t, domain.TotalSeries, total.Label)
	assert.Equal(t, []float64{1, 6, 6}, total.Data)
	assert.Equal(t, "rgba(0, 0, 0, 1)", total.Style.BorderColor)

	a := res.Line.Datasets[2]
	assert.Equal(t, "A", a.Label)
	assert.Equal(t, []float64{0, 6, 4}, a.Data)
	assert.Equal(t, charts.Color(1, 1), a.Style.BorderColor)
}

func TestShipmentChart_DefaultsToMonth(t *testing.T) {
	res, err := newUseCase(&fakeReader{}, nil, nil).Execute(context.Background(), usecase.ChartInput{})
	require.NoError(t, err)
	assert.Equal(t, charts.Month, res.GroupBy)
	assert.Empty(t, res.Line.Labels)
}

func TestShipmentChart_SelectionKeepsAxisAndOptionOrder(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return sampleShipments(), nil
	}}

	res, err := newUseCase(reader, nil, nil).Execute(context.Background(), usecase.ChartInput{
		GroupBy: "year",
		Series:  []string{"C", domain.TotalSeries, "nobody"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2023年", "2024年"}, res.Line.Labels)
	require.Len(t, res.Line.Datasets, 2)
	assert.Equal(t, domain.TotalSeries, res.Line.Datasets[0].Label)
	assert.Equal(t, "C", res.Line.Datasets[1].Label)
	assert.Equal(t, []float64{1, 0}, res.Line.Datasets[1].Data)
}

func TestShipmentChart_ExplicitEmptySelection(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return sampleShipments(), nil
	}}

	res, err := newUseCase(reader, nil, nil).Execute(context.Background(), usecase.ChartInput{
		GroupBy: "month",
		Series:  []string{},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Line.Datasets)
	assert.Len(t, res.Line.Labels, 3)
}

func TestShipmentChart_RangeFiltersLineAndPieNotVendors(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return sampleShipments(), nil
	}}

	res, err := newUseCase(reader, nil, nil).Execute(context.Background(), usecase.ChartInput{
		GroupBy: "day",
		Start:   "2024-03-31",
		End:     "2024-04-02",
	})
	require.NoError(t, err)

	// 2024-04-02 10:00 is after the end bound's midnight.
	assert.Equal(t, []string{"2024-03-31", "2024-04-01"}, res.Line.Keys)
	assert.Equal(t, []string{"2024/3/31", "2024/4/1"}, res.Line.Labels)
	assert.Equal(t, []string{"B", "A", "C"}, res.Pie.Labels)
	assert.Equal(t, []float64{0, 10, 0}, res.Pie.Data)
}

func TestShipmentChart_CountsDiscarded(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return []domain.ShipmentRecord{
			{Vendor: "A", ShippedCount: 3},
			{Vendor: "A", ShippedCount: 1, ShipmentDate: at(2024, 1, 1)},
		}, nil
	}}

	res, err := newUseCase(reader, nil, nil).Execute(context.Background(), usecase.ChartInput{GroupBy: "day"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Discarded)
	assert.Equal(t, []string{"2024-01-01"}, res.Line.Keys)
}

func TestShipmentChart_ReversedRangeIsEmpty(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return sampleShipments(), nil
	}}

	res, err := newUseCase(reader, nil, nil).Execute(context.Background(), usecase.ChartInput{
		GroupBy: "day",
		Start:   "2024-04-02",
		End:     "2024-03-31",
	})
	require.NoError(t, err)

	assert.Empty(t, res.Line.Labels)
	assert.Empty(t, res.Line.Keys)
	require.Len(t, res.Line.Datasets, 4)
	for _, ds := range res.Line.Datasets {
		assert.NotNil(t, ds.Data)
		assert.Empty(t, ds.Data)
	}
	assert.Equal(t, []string{"B", "A", "C"}, res.Pie.Labels)
	assert.Equal(t, []float64{0, 0, 0}, res.Pie.Data)
}

func TestShipmentChart_CountsDiscardedWithRange(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return []domain.ShipmentRecord{
			{Vendor: "A", ShippedCount: 3},
			{Vendor: "A", ShippedCount: 1, ShipmentDate: at(2024, 1, 1)},
		}, nil
	}}

	res, err := newUseCase(reader, nil, nil).Execute(context.Background(), usecase.ChartInput{
		GroupBy: "day",
		Start:   "2024-01-01",
		End:     "2024-01-02",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Discarded)
	assert.Equal(t, []string{"2024-01-01"}, res.Line.Keys)
}

func TestShipmentChart_InvalidQuery(t *testing.T) {
	cases := map[string]usecase.ChartInput{
		"week not allowed": {GroupBy: "week"},
		"unknown":          {GroupBy: "hour"},
		"bad start":        {GroupBy: "day", Start: "2024/01/01", End: "2024-02-01"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			reader := &fakeReader{}
			_, err := newUseCase(reader, nil, nil).Execute(context.Background(), in)
			assert.ErrorIs(t, err, usecase.ErrInvalidChartQuery)
			assert.Zero(t, reader.calls)
		})
	}
}

func TestShipmentChart_ReaderError(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return nil, errors.New("db down")
	}}

	_, err := newUseCase(reader, nil, nil).Execute(context.Background(), usecase.ChartInput{GroupBy: "day"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrInvalidChartQuery)
}

func TestShipmentChart_CachesResult(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return sampleShipments(), nil
	}}
	cache := &fakeCache{}
	rec := &fakeRecorder{}
	uc := newUseCase(reader, cache, rec)

	first, err := uc.Execute(context.Background(), usecase.ChartInput{GroupBy: "month"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), usecase.ChartInput{GroupBy: " Month "})
	require.NoError(t, err)

	assert.Equal(t, 1, reader.calls)
	assert.Equal(t, first.Line, second.Line)
	assert.Equal(t, 1, rec.hits)
	assert.Equal(t, 1, rec.misses)

	_, err = uc.Execute(context.Background(), usecase.ChartInput{GroupBy: "month", Series: []string{"A"}})
	require.NoError(t, err)
	assert.Equal(t, 2, reader.calls, "a different selection is a different cache entry")
}

func TestShipmentChart_CacheFailureIsIgnored(t *testing.T) {
	reader := &fakeReader{ListFn: func(ctx context.Context) ([]domain.ShipmentRecord, error) {
		return sampleShipments(), nil
	}}
	cache := &fakeCache{GetErr: errors.New("redis down")}

	res, err := newUseCase(reader, cache, nil).Execute(context.Background(), usecase.ChartInput{GroupBy: "month"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Line.Labels)
}
