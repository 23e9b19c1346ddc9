package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"

	"photoclub_backend/internal/domain/models"
)

type LinkRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewLinkRepository(db *pgxpool.Pool) *LinkRepo {
	return &LinkRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// List returns links oldest-first so category columns keep a stable
// chronological order.
func (r *LinkRepo) List(ctx context.Context) ([]models.Link, error) {
	const op = "repository.link_repository.List"

	query, args, err := r.sb.
		Select("id", "name", "url", "category").
		From("linktree").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		var l models.Link
		if err := rows.Scan(&l.ID, &l.Name, &l.URL, &l.Category); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		links = append(links, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return links, nil
}

func (r *LinkRepo) Insert(ctx context.Context, link models.Link) (int64, error) {
	const op = "repository.link_repository.Insert"

	query, args, err := r.sb.
		Insert("linktree").
		Columns("name", "url", "category").
		Values(link.Name, link.URL, link.Category).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: failed to insert link: %w", op, err)
	}

	return id, nil
}

// Update rewrites every row the (id, name) predicate matches. The name
// here is the addressing name the client knew, not the new one.
func (r *LinkRepo) Update(ctx context.Context, link models.Link, id int64, name string) error {
	const op = "repository.link_repository.Update"

	query, args, err := r.sb.
		Update("linktree").
		Set("name", link.Name).
		Set("url", link.URL).
		Set("category", link.Category).
		Where(linkPredicate(id, name)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to update link: %w", op, err)
	}

	return nil
}

func (r *LinkRepo) Delete(ctx context.Context, id int64, name string) error {
	const op = "repository.link_repository.Delete"

	query, args, err := r.sb.
		Delete("linktree").
		Where(linkPredicate(id, name)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to delete link: %w", op, err)
	}

	return nil
}

// linkPredicate matches on id OR name, inclusive. Every row whose name
// equals the fallback name is affected, even when an id also matched.
func linkPredicate(id int64, name string) sq.Sqlizer {
	or := sq.Or{}
	if id > 0 {
		or = append(or, sq.Eq{"id": id})
	}
	if name != "" {
		or = append(or, sq.Eq{"name": name})
	}
	return or
}
