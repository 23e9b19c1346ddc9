package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"

	"photoclub_backend/internal/domain/models"
	"photoclub_backend/internal/storage"
)

type PhotographerRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPhotographerRepository(db *pgxpool.Pool) *PhotographerRepo {
	return &PhotographerRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// List returns the flat member rows. Grouping by generation and the
// role/name ordering are recomputed by the service on every read.
func (r *PhotographerRepo) List(ctx context.Context) ([]models.Member, error) {
	const op = "repository.photographer_repository.List"

	query, args, err := r.sb.
		Select("id", "generation", "name", "role", "image", "instagram", "works").
		From("photographers").
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

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Generation, &m.Name, &m.Role, &m.Image, &m.Instagram, &m.Works); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return members, nil
}

func (r *PhotographerRepo) Insert(ctx context.Context, member models.Member) (int64, error) {
	const op = "repository.photographer_repository.Insert"

	query, args, err := r.sb.
		Insert("photographers").
		Columns("generation", "name", "role", "image", "instagram", "works").
		Values(member.Generation, member.Name, member.Role, member.Image, member.Instagram, member.Works).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: failed to insert member: %w", op, err)
	}

	return id, nil
}

func (r *PhotographerRepo) Update(ctx context.Context, member models.Member, id int64, oldName, oldGeneration string) error {
	const op = "repository.photographer_repository.Update"

	query, args, err := r.sb.
		Update("photographers").
		Set("generation", member.Generation).
		Set("name", member.Name).
		Set("role", member.Role).
		Set("image", member.Image).
		Set("instagram", member.Instagram).
		Set("works", member.Works).
		Where(memberPredicate(id, oldName, oldGeneration)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to update member: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *PhotographerRepo) Delete(ctx context.Context, id int64, oldName, oldGeneration string) error {
	const op = "repository.photographer_repository.Delete"

	query, args, err := r.sb.
		Delete("photographers").
		Where(memberPredicate(id, oldName, oldGeneration)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to delete member: %w", op, err)
	}

	return nil
}

// memberPredicate addresses a row by id when known, else by the name and
// generation the client saw before the id reached it.
func memberPredicate(id int64, oldName, oldGeneration string) sq.Sqlizer {
	if id > 0 {
		return sq.Eq{"id": id}
	}
	return sq.Eq{"name": oldName, "generation": oldGeneration}
}
