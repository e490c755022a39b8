package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const shortCodeCounterID = 1

var errCounterMissing = errors.New("counter row missing")

// CounterRepository allocates short code sequence numbers from the counters table.
type CounterRepository struct {
	db *sqlx.DB
}

func NewCounterRepository(db *sqlx.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// Next increments the counter and returns its new value in a single statement,
// so concurrent callers never observe the same value.
func (r *CounterRepository) Next(ctx context.Context) (int64, error) {
	const op = "adapter.repository.postgres.CounterRepository.Next"
	const query = `UPDATE counters SET value = value + 1 WHERE id = $1 RETURNING value`

	var value int64

	if err := r.db.GetContext(ctx, &value, query, shortCodeCounterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, errCounterMissing)
		}

		return 0, fmt.Errorf("%s: failed to update counters table row: %w", op, err)
	}

	return value, nil
}
