package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shorty/internal/entity"
)

type userAliasDB struct {
	LongURL string `db:"long_url"`
	Alias   string `db:"alias"`
}

// AliasRepository stores the short codes each user has bound to their long URLs.
type AliasRepository struct {
	db *sqlx.DB
}

func NewAliasRepository(db *sqlx.DB) *AliasRepository {
	return &AliasRepository{db: db}
}

// Bind adds alias to the entry of longURL owned by username, creating the entry if needed.
// Binding an alias twice is a no-op.
func (r *AliasRepository) Bind(ctx context.Context, username, longURL, alias string) error {
	const op = "adapter.repository.postgres.AliasRepository.Bind"

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	userID, err := r.userID(ctx, tx, username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	const upsertEntry = `
		INSERT INTO user_urls(user_id, long_url) VALUES ($1, $2)
		ON CONFLICT (user_id, long_url) DO UPDATE SET long_url = EXCLUDED.long_url
		RETURNING id`

	var entryID int64

	if err := tx.GetContext(ctx, &entryID, upsertEntry, userID, longURL); err != nil {
		return fmt.Errorf("%s: failed to upsert user_urls table row: %w", op, err)
	}

	const insertAlias = `
		INSERT INTO user_aliases(user_url_id, alias) VALUES ($1, $2)
		ON CONFLICT (user_url_id, alias) DO NOTHING`

	if _, err := tx.ExecContext(ctx, insertAlias, entryID, alias); err != nil {
		return fmt.Errorf("%s: failed to insert into user_aliases table: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}

// Unbind removes alias from the entry of longURL owned by username.
// The entry itself is removed together with its last alias.
func (r *AliasRepository) Unbind(ctx context.Context, username, longURL, alias string) error {
	const op = "adapter.repository.postgres.AliasRepository.Unbind"

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	const deleteAlias = `
		DELETE FROM user_aliases a
		USING user_urls u, users usr
		WHERE a.user_url_id = u.id AND u.user_id = usr.id
			AND usr.username = $1 AND u.long_url = $2 AND a.alias = $3`

	res, err := tx.ExecContext(ctx, deleteAlias, username, longURL, alias)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from user_aliases table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, entity.ErrAliasNotFound)
	}

	const deleteEmptyEntry = `
		DELETE FROM user_urls u
		USING users usr
		WHERE u.user_id = usr.id AND usr.username = $1 AND u.long_url = $2
			AND NOT EXISTS (SELECT 1 FROM user_aliases a WHERE a.user_url_id = u.id)`

	if _, err := tx.ExecContext(ctx, deleteEmptyEntry, username, longURL); err != nil {
		return fmt.Errorf("%s: failed to delete from user_urls table: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}

func (r *AliasRepository) ListByUser(ctx context.Context, username string) ([]entity.UserURL, error) {
	const op = "adapter.repository.postgres.AliasRepository.ListByUser"

	userID, err := r.userID(ctx, r.db, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	const query = `
		SELECT u.long_url, a.alias
		FROM user_urls u
		JOIN user_aliases a ON a.user_url_id = u.id
		WHERE u.user_id = $1
		ORDER BY u.id, a.id`

	var rows []userAliasDB

	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("%s: failed to select from user_aliases table: %w", op, err)
	}

	var urls []entity.UserURL

	for _, row := range rows {
		if n := len(urls); n > 0 && urls[n-1].LongURL == row.LongURL {
			urls[n-1].Aliases = append(urls[n-1].Aliases, row.Alias)
			continue
		}

		urls = append(urls, entity.UserURL{
			LongURL: row.LongURL,
			Aliases: []string{row.Alias},
		})
	}

	return urls, nil
}

func (r *AliasRepository) userID(ctx context.Context, q sqlx.QueryerContext, username string) (int64, error) {
	const query = `SELECT id FROM users WHERE username = $1`

	var id int64

	if err := sqlx.GetContext(ctx, q, &id, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, entity.ErrUserNotFound
		}

		return 0, fmt.Errorf("failed to get row from users table: %w", err)
	}

	return id, nil
}
