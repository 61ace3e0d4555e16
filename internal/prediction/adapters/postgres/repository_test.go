package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"kokko-factory-service/internal/platform/sqldb"
	"kokko-factory-service/internal/platform/sqldb/sqldbtest"
	"kokko-factory-service/internal/prediction/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRepository_Upsert(t *testing.T) {
	db := &sqldbtest.DB{}
	repo := NewSampleRepository(db)

	p := decimal.RequireFromString("1150.25")
	err := repo.UpsertSample(context.Background(), &domain.Sample{
		Date:                time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CumulativePotential: p,
		PredictedCount:      525,
		ActualCount:         510,
	})
	require.NoError(t, err)

	call := db.LastExec()
	assert.Contains(t, call.Query, "ON CONFLICT (sample_date) DO UPDATE")
	assert.Equal(t, []any{"2024-05-01", p, 525, 510}, call.Args)
}

func TestSampleRepository_Upsert_Error(t *testing.T) {
	db := &sqldbtest.DB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db down")
		},
	}

	err := NewSampleRepository(db).UpsertSample(context.Background(), &domain.Sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert prediction sample")
}

func TestSampleRepository_List(t *testing.T) {
	d1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	rows := &sqldbtest.Rows{Values: [][]any{
		{d1, decimal.NewFromInt(1100), 500, 490},
		{d2, decimal.RequireFromString("1200.5"), 550, 560},
	}}
	db := &sqldbtest.DB{
		QueryFn: func(ctx context.Context, query string, args ...any) (sqldb.RowScanner, error) {
			return rows, nil
		},
	}

	got, err := NewSampleRepository(db).ListSamples(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, d1, got[0].Date)
	assert.Equal(t, 500, got[0].PredictedCount)
	assert.Equal(t, "1200.5", got[1].CumulativePotential.String())
	assert.Equal(t, 560, got[1].ActualCount)
	assert.True(t, rows.Closed())
}

func TestSampleRepository_List_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		db := &sqldbtest.DB{
			QueryFn: func(ctx context.Context, query string, args ...any) (sqldb.RowScanner, error) {
				return nil, errors.New("db down")
			},
		}
		_, err := NewSampleRepository(db).ListSamples(context.Background())
		assert.ErrorContains(t, err, "list prediction samples")
	})

	t.Run("iterate", func(t *testing.T) {
		db := &sqldbtest.DB{
			QueryFn: func(ctx context.Context, query string, args ...any) (sqldb.RowScanner, error) {
				return &sqldbtest.Rows{Error: errors.New("conn reset")}, nil
			},
		}
		_, err := NewSampleRepository(db).ListSamples(context.Background())
		assert.ErrorContains(t, err, "iterate prediction samples")
	})
}
