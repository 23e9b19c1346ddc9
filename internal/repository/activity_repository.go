package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"

	"photoclub_backend/internal/domain/models"
	"photoclub_backend/internal/storage"
)

type ActivityRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewActivityRepository(db *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// List returns all activities newest-first. The id is the creation order,
// so ordering by it keeps the archive chronological.
func (r *ActivityRepo) List(ctx context.Context) ([]models.Activity, error) {
	const op = "repository.activity_repository.List"

	query, args, err := r.sb.
		Select("id", "title", "date", "cover_image", "images").
		From("activities").
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

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Date, &a.CoverImage, &a.Images); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return activities, nil
}

func (r *ActivityRepo) Insert(ctx context.Context, activity models.Activity) (models.Activity, error) {
	const op = "repository.activity_repository.Insert"

	query, args, err := r.sb.
		Insert("activities").
		Columns("title", "date", "cover_image", "images").
		Values(activity.Title, activity.Date, activity.CoverImage, activity.Images).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Activity{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&activity.ID); err != nil {
		return models.Activity{}, fmt.Errorf("%s: failed to insert activity: %w", op, err)
	}

	return activity, nil
}

// UpdateTitle renames an activity in place. Returns storage.ErrNotFound
// when no row carries the id, so the handler can answer 404.
func (r *ActivityRepo) UpdateTitle(ctx context.Context, id int64, title string) error {
	const op = "repository.activity_repository.UpdateTitle"

	query, args, err := r.sb.
		Update("activities").
		Set("title", title).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to update title: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// Delete removes the activity row. Deleting an absent id is a no-op, not
// an error.
func (r *ActivityRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.activity_repository.Delete"

	query, args, err := r.sb.
		Delete("activities").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to delete activity: %w", op, err)
	}

	return nil
}
