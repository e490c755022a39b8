package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shorty/internal/entity"
)

type locationStatDB struct {
	City string `db:"city"`
	Hits int64  `db:"hits"`
}

type dateStatDB struct {
	Key  string `db:"date_key"`
	Hits int64  `db:"hits"`
}

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) IncrementLocation(ctx context.Context, city string) error {
	const op = "adapter.repository.postgres.StatsRepository.IncrementLocation"
	const query = `
		INSERT INTO location_stats(city, hits) VALUES ($1, 1)
		ON CONFLICT (city) DO UPDATE SET hits = location_stats.hits + 1`

	if _, err := r.db.ExecContext(ctx, query, city); err != nil {
		return fmt.Errorf("%s: failed to upsert location_stats table row: %w", op, err)
	}

	return nil
}

func (r *StatsRepository) IncrementDate(ctx context.Context, key string, day time.Time) error {
	const op = "adapter.repository.postgres.StatsRepository.IncrementDate"
	const query = `
		INSERT INTO date_stats(date_key, day, hits) VALUES ($1, $2, 1)
		ON CONFLICT (date_key) DO UPDATE SET hits = date_stats.hits + 1`

	if _, err := r.db.ExecContext(ctx, query, key, day); err != nil {
		return fmt.Errorf("%s: failed to upsert date_stats table row: %w", op, err)
	}

	return nil
}

func (r *StatsRepository) ListLocations(ctx context.Context) ([]entity.LocationStat, error) {
	const op = "adapter.repository.postgres.StatsRepository.ListLocations"
	const query = `SELECT city, hits FROM location_stats ORDER BY hits DESC, city`

	var rows []locationStatDB

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: failed to select from location_stats table: %w", op, err)
	}

	stats := make([]entity.LocationStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.LocationStat{City: row.City, Hits: row.Hits})
	}

	return stats, nil
}

// ListRecentDates returns the last limit days that received hits, oldest first.
func (r *StatsRepository) ListRecentDates(ctx context.Context, limit int) ([]entity.DateStat, error) {
	const op = "adapter.repository.postgres.StatsRepository.ListRecentDates"
	const query = `
		SELECT date_key, hits FROM (
			SELECT date_key, day, hits FROM date_stats ORDER BY day DESC LIMIT $1
		) recent ORDER BY day`

	var rows []dateStatDB

	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("%s: failed to select from date_stats table: %w", op, err)
	}

	stats := make([]entity.DateStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.DateStat{Key: row.Key, Hits: row.Hits})
	}

	return stats, nil
}
