package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shorty/internal/entity"
)

type urlDB struct {
	ID        int64     `db:"id"`
	ShortCode string    `db:"short_code"`
	LongURL   string    `db:"long_url"`
	Hits      int64     `db:"hits"`
	Custom    bool      `db:"custom"`
	CreatedAt time.Time `db:"created_at"`
}

func (u *urlDB) toEntity() *entity.URL {
	return &entity.URL{
		ID:        u.ID,
		ShortCode: u.ShortCode,
		LongURL:   u.LongURL,
		Hits:      u.Hits,
		Custom:    u.Custom,
		CreatedAt: u.CreatedAt,
	}
}

type URLRepository struct {
	db *sqlx.DB
}

func NewURLRepository(db *sqlx.DB) *URLRepository {
	return &URLRepository{db: db}
}

func (r *URLRepository) Save(ctx context.Context, shortCode, longURL string, custom bool) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.Save"
	const query = `INSERT INTO urls(short_code, long_url, custom) VALUES ($1, $2, $3) RETURNING *`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, shortCode, longURL, custom); err != nil {
		if pgErr, ok := asUniqueViolationError(err); ok {
			switch pgErr.ConstraintName {
			case shortCodeConstraint:
				return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
			case canonicalURLConstraint:
				return nil, fmt.Errorf("%s: %w", op, entity.ErrLongURLExists)
			}
		}

		return nil, fmt.Errorf("%s: failed to insert into urls table: %w", op, err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) RetrieveByShortCode(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveByShortCode"
	const query = `SELECT * FROM urls WHERE short_code = $1`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, shortCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from urls table: %w", op, err)
	}

	return url.toEntity(), nil
}

// RetrieveByLongURL returns the auto-generated record of longURL. Custom codes are never returned.
func (r *URLRepository) RetrieveByLongURL(ctx context.Context, longURL string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveByLongURL"
	const query = `SELECT * FROM urls WHERE md5(long_url) = md5($1) AND long_url = $1 AND NOT custom`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, longURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from urls table: %w", op, err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) IncrementHits(ctx context.Context, shortCode string) error {
	const op = "adapter.repository.postgres.URLRepository.IncrementHits"
	const query = `UPDATE urls SET hits = hits + 1 WHERE short_code = $1`

	res, err := r.db.ExecContext(ctx, query, shortCode)
	if err != nil {
		return fmt.Errorf("%s: failed to update urls table row: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	return nil
}

func (r *URLRepository) List(ctx context.Context) ([]*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.List"
	const query = `SELECT * FROM urls ORDER BY hits DESC, id`

	var rows []urlDB

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: failed to select from urls table: %w", op, err)
	}

	urls := make([]*entity.URL, 0, len(rows))
	for i := range rows {
		urls = append(urls, rows[i].toEntity())
	}

	return urls, nil
}
