package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"photoclub_backend/internal/storage"
)

type ConfigRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewConfigRepository(db *pgxpool.Pool) *ConfigRepo {
	return &ConfigRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Get fetches a singleton config value. A missing key yields
// storage.ErrNotFound so the caller can substitute a default instead of
// failing the render.
func (r *ConfigRepo) Get(ctx context.Context, key string) (json.RawMessage, error) {
	const op = "repository.config_repository.Get"

	query, args, err := r.sb.
		Select("value").
		From("configs").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var value []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: failed to get config: %w", op, err)
	}

	return json.RawMessage(value), nil
}

// Upsert replaces the whole value blob under key.
func (r *ConfigRepo) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	const op = "repository.config_repository.Upsert"

	query, args, err := r.sb.
		Insert("configs").
		Columns("key", "value").
		Values(key, []byte(value)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to upsert config: %w", op, err)
	}

	return nil
}
