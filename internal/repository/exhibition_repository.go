package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"

	"photoclub_backend/internal/domain/models"
	"photoclub_backend/internal/storage"
)

type ExhibitionRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewExhibitionRepository(db *pgxpool.Pool) *ExhibitionRepo {
	return &ExhibitionRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ExhibitionRepo) List(ctx context.Context) ([]models.Exhibition, error) {
	const op = "repository.exhibition_repository.List"

	query, args, err := r.sb.
		Select("id", "title", "date", "location", "image", "images", "description").
		From("exhibitions").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	var exhibitions []models.Exhibition
	for rows.Next() {
		var e models.Exhibition
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Location, &e.Image, &e.Images, &e.Description); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		exhibitions = append(exhibitions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return exhibitions, nil
}

func (r *ExhibitionRepo) Insert(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error) {
	const op = "repository.exhibition_repository.Insert"

	query, args, err := r.sb.
		Insert("exhibitions").
		Columns("title", "date", "location", "image", "images", "description").
		Values(
			exhibition.Title,
			exhibition.Date,
			exhibition.Location,
			exhibition.Image,
			exhibition.Images,
			exhibition.Description,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&exhibition.ID); err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: failed to insert exhibition: %w", op, err)
	}

	return exhibition, nil
}

// Update replaces every content column of the addressed row. The write is
// last-writer-wins; there is no version token to check.
func (r *ExhibitionRepo) Update(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error) {
	const op = "repository.exhibition_repository.Update"

	query, args, err := r.sb.
		Update("exhibitions").
		Set("title", exhibition.Title).
		Set("date", exhibition.Date).
		Set("location", exhibition.Location).
		Set("image", exhibition.Image).
		Set("images", exhibition.Images).
		Set("description", exhibition.Description).
		Where(sq.Eq{"id": exhibition.ID}).
		ToSql()
	if err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: failed to update exhibition: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return models.Exhibition{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return exhibition, nil
}

func (r *ExhibitionRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.exhibition_repository.Delete"

	query, args, err := r.sb.
		Delete("exhibitions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to delete exhibition: %w", op, err)
	}

	return nil
}
