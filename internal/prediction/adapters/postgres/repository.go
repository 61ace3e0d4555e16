package postgres

import (
	"context"
	"fmt"

	"kokko-factory-service/internal/platform/sqldb"
	"kokko-factory-service/internal/prediction/core/domain"
	"kokko-factory-service/internal/prediction/core/ports"
)

type SampleRepository struct {
	db sqldb.DB
}

func NewSampleRepository(db sqldb.DB) *SampleRepository {
	return &SampleRepository{db: db}
}

var _ ports.SampleRepositoryPort = (*SampleRepository)(nil)

const (
	upsertSampleSQL = `
INSERT INTO egg_predictions (sample_date, cumulative_potential, predicted_count, actual_count)
VALUES ($1, $2, $3, $4)
ON CONFLICT (sample_date) DO UPDATE
SET cumulative_potential = EXCLUDED.cumulative_potential,
    predicted_count      = EXCLUDED.predicted_count,
    actual_count         = EXCLUDED.actual_count`

	listSamplesSQL = `
SELECT sample_date, cumulative_potential, predicted_count, actual_count
FROM egg_predictions
ORDER BY sample_date ASC`
)

func (r *SampleRepository) UpsertSample(ctx context.Context, s *domain.Sample) error {
	_, err := r.db.ExecContext(ctx, upsertSampleSQL,
		s.Date.Format("2006-01-02"), s.CumulativePotential, s.PredictedCount, s.ActualCount)
	if err != nil {
		return fmt.Errorf("upsert prediction sample: %w", err)
	}
	return nil
}

func (r *SampleRepository) ListSamples(ctx context.Context) ([]domain.Sample, error) {
	rows, err := r.db.QueryContext(ctx, listSamplesSQL)
	if err != nil {
		return nil, fmt.Errorf("list prediction samples: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Sample, 0)
	for rows.Next() {
		var s domain.Sample
		if err := rows.Scan(&s.Date, &s.CumulativePotential, &s.PredictedCount, &s.ActualCount); err != nil {
			return nil, fmt.Errorf("scan prediction sample: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prediction samples: %w", err)
	}
	return out, nil
}
