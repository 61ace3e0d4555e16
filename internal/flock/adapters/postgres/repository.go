package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kokko-factory-service/internal/flock/core/domain"
	"kokko-factory-service/internal/flock/core/ports"
	"kokko-factory-service/internal/platform/sqldb"
)

type FlockRepository struct {
	db sqldb.DB
}

func NewFlockRepository(db sqldb.DB) *FlockRepository {
	return &FlockRepository{db: db}
}

var (
	_ ports.EggRepositoryPort   = (*FlockRepository)(nil)
	_ ports.DeathRepositoryPort = (*FlockRepository)(nil)
)

const (
	insertEggSQL = `
INSERT INTO eggs (id, coop_number, count, recorded_at)
VALUES ($1, $2, $3, $4)`

	listEggsSQL = `
SELECT id, coop_number, count, recorded_at, updated_at
FROM eggs
ORDER BY recorded_at DESC`

	updateEggSQL = `
UPDATE eggs
SET coop_number = $2, count = $3, updated_at = $4
WHERE id = $1`

	deleteEggSQL = `DELETE FROM eggs WHERE id = $1`

	insertDeathSQL = `
INSERT INTO dead_chickens (id, coop_number, count, cause_of_death, recorded_at)
VALUES ($1, $2, $3, $4, $5)`

	listDeathsSQL = `
SELECT id, coop_number, count, cause_of_death, recorded_at, updated_at
FROM dead_chickens
ORDER BY recorded_at DESC`

	updateDeathSQL = `
UPDATE dead_chickens
SET coop_number = $2, count = $3, cause_of_death = $4, updated_at = $5
WHERE id = $1`

	deleteDeathSQL = `DELETE FROM dead_chickens WHERE id = $1`
)

func (r *FlockRepository) InsertEgg(ctx context.Context, e *domain.EggRecord) error {
	if _, err := r.db.ExecContext(ctx, insertEggSQL, e.ID, e.CoopNumber, e.Count, e.RecordedAt); err != nil {
		return fmt.Errorf("insert egg record: %w", err)
	}
	return nil
}

func (r *FlockRepository) ListEggs(ctx context.Context) ([]domain.EggRecord, error) {
	rows, err := r.db.QueryContext(ctx, listEggsSQL)
	if err != nil {
		return nil, fmt.Errorf("list egg records: %w", err)
	}
	defer rows.Close()

	out := make([]domain.EggRecord, 0)
	for rows.Next() {
		var (
			rec     domain.EggRecord
			updated sql.NullTime
		)
		if err := rows.Scan(&rec.ID, &rec.CoopNumber, &rec.Count, &rec.RecordedAt, &updated); err != nil {
			return nil, fmt.Errorf("scan egg record: %w", err)
		}
		rec.UpdatedAt = nullTime(updated)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list egg records: %w", err)
	}
	return out, nil
}

func (r *FlockRepository) UpdateEgg(ctx context.Context, e *domain.EggRecord, updatedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateEggSQL, e.ID, e.CoopNumber, e.Count, updatedAt)
	if err != nil {
		return false, fmt.Errorf("update egg record: %w", err)
	}
	return affected(res)
}

func (r *FlockRepository) DeleteEgg(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteEggSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete egg record: %w", err)
	}
	return affected(res)
}

func (r *FlockRepository) InsertDeath(ctx context.Context, d *domain.DeathRecord) error {
	if _, err := r.db.ExecContext(ctx, insertDeathSQL, d.ID, d.CoopNumber, d.Count, d.CauseOfDeath, d.RecordedAt); err != nil {
		return fmt.Errorf("insert death record: %w", err)
	}
	return nil
}

func (r *FlockRepository) ListDeaths(ctx context.Context) ([]domain.DeathRecord, error) {
	rows, err := r.db.QueryContext(ctx, listDeathsSQL)
	if err != nil {
		return nil, fmt.Errorf("list death records: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DeathRecord, 0)
	for rows.Next() {
		var (
			rec     domain.DeathRecord
			updated sql.NullTime
		)
		if err := rows.Scan(&rec.ID, &rec.CoopNumber, &rec.Count, &rec.CauseOfDeath, &rec.RecordedAt, &updated); err != nil {
			return nil, fmt.Errorf("scan death record: %w", err)
		}
		rec.UpdatedAt = nullTime(updated)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list death records: %w", err)
	}
	return out, nil
}

func (r *FlockRepository) UpdateDeath(ctx context.Context, d *domain.DeathRecord, updatedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateDeathSQL, d.ID, d.CoopNumber, d.Count, d.CauseOfDeath, updatedAt)
	if err != nil {
		return false, fmt.Errorf("update death record: %w", err)
	}
	return affected(res)
}

func (r *FlockRepository) DeleteDeath(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteDeathSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete death record: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
